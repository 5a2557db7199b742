package models

// Mark is a student's numeric result for a course, graded by a professor
type Mark struct {
	ID             string `json:"id" example:"mrk-001"`
	StudentID      string `json:"studentId" example:"st-001"`
	CourseID       string `json:"courseId" example:"cs-101"`
	ProfessorID    string `json:"professorId" example:"prof-001"`
	Marks          int    `json:"marks" example:"88"` // 0..100
	Grade          string `json:"grade" example:"B+"` // Derived from Marks
	Semester       string `json:"semester" example:"Fall 2023"`
	AcademicYear   string `json:"academicYear" example:"2023-2024"`
	SubmissionDate string `json:"submissionDate" example:"2023-12-20"`
}

// MarkPatch is a partial mark update
type MarkPatch struct {
	StudentID      *string `json:"studentId,omitempty"`
	CourseID       *string `json:"courseId,omitempty"`
	ProfessorID    *string `json:"professorId,omitempty"`
	Marks          *int    `json:"marks,omitempty"`
	Grade          *string `json:"grade,omitempty"`
	Semester       *string `json:"semester,omitempty"`
	AcademicYear   *string `json:"academicYear,omitempty"`
	SubmissionDate *string `json:"submissionDate,omitempty"`
}

// Apply returns a copy of m with the patch merged in
func (p MarkPatch) Apply(m Mark) Mark {
	applyString(&m.StudentID, p.StudentID)
	applyString(&m.CourseID, p.CourseID)
	applyString(&m.ProfessorID, p.ProfessorID)
	applyInt(&m.Marks, p.Marks)
	applyString(&m.Grade, p.Grade)
	applyString(&m.Semester, p.Semester)
	applyString(&m.AcademicYear, p.AcademicYear)
	applyString(&m.SubmissionDate, p.SubmissionDate)
	return m
}
