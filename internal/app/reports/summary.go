package reports

import "github.com/yigit/studentforce/internal/app/models"

type EnrollmentRow struct {
	models.CourseEnrollment
	StudentName string `json:"studentName"`
	CourseName  string `json:"courseName"`
}

type MarkRow struct {
	models.Mark
	StudentName   string `json:"studentName"`
	CourseName    string `json:"courseName"`
	ProfessorName string `json:"professorName"`
}

type AssignmentRow struct {
	models.TeachingAssignment
	ProfessorName string `json:"professorName"`
	CourseName    string `json:"courseName"`
}

// StudentSummary is a student with their enrollments and marks
type StudentSummary struct {
	Student     models.Student  `json:"student"`
	Enrollments []EnrollmentRow `json:"enrollments"`
	Marks       []MarkRow       `json:"marks"`
	AverageMark int             `json:"averageMark"`
}

// CourseSummary is a course with its enrollments, assignments and marks
type CourseSummary struct {
	Course      models.Course   `json:"course"`
	Enrollments []EnrollmentRow `json:"enrollments"`
	Assignments []AssignmentRow `json:"assignments"`
	Marks       []MarkRow       `json:"marks"`
	AverageMark int             `json:"averageMark"`
	Statuses    Distribution    `json:"statuses"`
}

// ProfessorSummary is a professor with their assignments and submitted marks
type ProfessorSummary struct {
	Professor   models.Professor `json:"professor"`
	Assignments []AssignmentRow  `json:"assignments"`
	Marks       []MarkRow        `json:"marks"`
	AverageMark int              `json:"averageMark"`
}

func enrollmentRows(r *Resolver, enrollments []models.CourseEnrollment, keep func(models.CourseEnrollment) bool) ([]EnrollmentRow, []models.CourseEnrollment) {
	rows := []EnrollmentRow{}
	var kept []models.CourseEnrollment
	for _, e := range enrollments {
		if !keep(e) {
			continue
		}
		kept = append(kept, e)
		rows = append(rows, EnrollmentRow{
			CourseEnrollment: e,
			StudentName:      r.StudentName(e.StudentID),
			CourseName:       r.CourseName(e.CourseID),
		})
	}
	return rows, kept
}

func markRows(r *Resolver, marks []models.Mark, keep func(models.Mark) bool) ([]MarkRow, []models.Mark) {
	rows := []MarkRow{}
	var kept []models.Mark
	for _, m := range marks {
		if !keep(m) {
			continue
		}
		kept = append(kept, m)
		rows = append(rows, MarkRow{
			Mark:          m,
			StudentName:   r.StudentName(m.StudentID),
			CourseName:    r.CourseName(m.CourseID),
			ProfessorName: r.ProfessorName(m.ProfessorID),
		})
	}
	return rows, kept
}

func assignmentRows(r *Resolver, assignments []models.TeachingAssignment, keep func(models.TeachingAssignment) bool) []AssignmentRow {
	rows := []AssignmentRow{}
	for _, a := range assignments {
		if !keep(a) {
			continue
		}
		rows = append(rows, AssignmentRow{
			TeachingAssignment: a,
			ProfessorName:      r.ProfessorName(a.ProfessorID),
			CourseName:         r.CourseName(a.CourseID),
		})
	}
	return rows
}

// SummarizeStudent builds the student detail view; false when id is unknown
func SummarizeStudent(s *models.Snapshot, id string) (StudentSummary, bool) {
	r := NewResolver(s)
	st, ok := r.Student(id)
	if !ok {
		return StudentSummary{}, false
	}
	enrollments, _ := enrollmentRows(r, s.Enrollments, func(e models.CourseEnrollment) bool { return e.StudentID == id })
	marks, kept := markRows(r, s.Marks, func(m models.Mark) bool { return m.StudentID == id })
	return StudentSummary{
		Student:     st,
		Enrollments: enrollments,
		Marks:       marks,
		AverageMark: AverageMark(kept),
	}, true
}

// SummarizeCourse builds the course detail view; false when id is unknown
func SummarizeCourse(s *models.Snapshot, id string) (CourseSummary, bool) {
	r := NewResolver(s)
	c, ok := r.Course(id)
	if !ok {
		return CourseSummary{}, false
	}
	enrollments, keptEnrollments := enrollmentRows(r, s.Enrollments, func(e models.CourseEnrollment) bool { return e.CourseID == id })
	marks, keptMarks := markRows(r, s.Marks, func(m models.Mark) bool { return m.CourseID == id })
	return CourseSummary{
		Course:      c,
		Enrollments: enrollments,
		Assignments: assignmentRows(r, s.Assignments, func(a models.TeachingAssignment) bool { return a.CourseID == id }),
		Marks:       marks,
		AverageMark: AverageMark(keptMarks),
		Statuses:    EnrollmentStatusDistribution(keptEnrollments),
	}, true
}

// SummarizeProfessor builds the professor detail view; false when id is unknown
func SummarizeProfessor(s *models.Snapshot, id string) (ProfessorSummary, bool) {
	r := NewResolver(s)
	p, ok := r.Professor(id)
	if !ok {
		return ProfessorSummary{}, false
	}
	marks, kept := markRows(r, s.Marks, func(m models.Mark) bool { return m.ProfessorID == id })
	return ProfessorSummary{
		Professor:   p,
		Assignments: assignmentRows(r, s.Assignments, func(a models.TeachingAssignment) bool { return a.ProfessorID == id }),
		Marks:       marks,
		AverageMark: AverageMark(kept),
	}, true
}
