package reports

import "github.com/yigit/studentforce/internal/app/models"

// DashboardStats are the headline counters
type DashboardStats struct {
	TotalStudents     int `json:"totalStudents"`
	ActiveStudents    int `json:"activeStudents"`
	InactiveStudents  int `json:"inactiveStudents"`
	GraduatedStudents int `json:"graduatedStudents"`
	TotalCourses      int `json:"totalCourses"`
	ActiveCourses     int `json:"activeCourses"`
	TotalProfessors   int `json:"totalProfessors"`
	ActiveProfessors  int `json:"activeProfessors"`
	TotalEnrollments  int `json:"totalEnrollments"`
	TotalAssignments  int `json:"totalAssignments"`
	TotalMarks        int `json:"totalMarks"`
	AverageMark       int `json:"averageMark"`
}

// EnrollmentActivity is an enrollment with resolved names
type EnrollmentActivity struct {
	ID             string                  `json:"id"`
	StudentID      string                  `json:"studentId"`
	StudentName    string                  `json:"studentName"`
	CourseID       string                  `json:"courseId"`
	CourseName     string                  `json:"courseName"`
	Status         models.EnrollmentStatus `json:"status"`
	EnrollmentDate string                  `json:"enrollmentDate"`
}

// MarkActivity is a mark with resolved names
type MarkActivity struct {
	ID             string `json:"id"`
	StudentID      string `json:"studentId"`
	StudentName    string `json:"studentName"`
	CourseID       string `json:"courseId"`
	CourseName     string `json:"courseName"`
	Marks          int    `json:"marks"`
	Grade          string `json:"grade"`
	SubmissionDate string `json:"submissionDate"`
}

// Dashboard is the landing page view
type Dashboard struct {
	Greeting          string               `json:"greeting"`
	Stats             DashboardStats       `json:"stats"`
	RecentEnrollments []EnrollmentActivity `json:"recentEnrollments"`
	RecentMarks       []MarkActivity       `json:"recentMarks"`
}

// Stats computes the dashboard counters over the whole snapshot
func Stats(s *models.Snapshot) DashboardStats {
	stats := DashboardStats{
		TotalStudents:    len(s.Students),
		TotalCourses:     len(s.Courses),
		TotalProfessors:  len(s.Professors),
		TotalEnrollments: len(s.Enrollments),
		TotalAssignments: len(s.Assignments),
		TotalMarks:       len(s.Marks),
		AverageMark:      AverageMark(s.Marks),
	}
	for _, st := range s.Students {
		switch st.Status {
		case models.StudentActive:
			stats.ActiveStudents++
		case models.StudentInactive:
			stats.InactiveStudents++
		case models.StudentGraduated:
			stats.GraduatedStudents++
		}
	}
	for _, c := range s.Courses {
		if c.Status == models.StatusActive {
			stats.ActiveCourses++
		}
	}
	for _, p := range s.Professors {
		if p.Status == models.StatusActive {
			stats.ActiveProfessors++
		}
	}
	return stats
}

// RecentEnrollments returns up to limit enrollments, newest enrollmentDate first
func RecentEnrollments(s *models.Snapshot, r *Resolver, limit int) []EnrollmentActivity {
	order := newestFirst(len(s.Enrollments), func(i int) string { return s.Enrollments[i].EnrollmentDate })
	if len(order) > limit {
		order = order[:limit]
	}
	out := make([]EnrollmentActivity, 0, len(order))
	for _, i := range order {
		e := s.Enrollments[i]
		out = append(out, EnrollmentActivity{
			ID:             e.ID,
			StudentID:      e.StudentID,
			StudentName:    r.StudentName(e.StudentID),
			CourseID:       e.CourseID,
			CourseName:     r.CourseName(e.CourseID),
			Status:         e.Status,
			EnrollmentDate: e.EnrollmentDate,
		})
	}
	return out
}

// RecentMarks returns up to limit marks, newest submissionDate first
func RecentMarks(s *models.Snapshot, r *Resolver, limit int) []MarkActivity {
	order := newestFirst(len(s.Marks), func(i int) string { return s.Marks[i].SubmissionDate })
	if len(order) > limit {
		order = order[:limit]
	}
	out := make([]MarkActivity, 0, len(order))
	for _, i := range order {
		m := s.Marks[i]
		out = append(out, MarkActivity{
			ID:             m.ID,
			StudentID:      m.StudentID,
			StudentName:    r.StudentName(m.StudentID),
			CourseID:       m.CourseID,
			CourseName:     r.CourseName(m.CourseID),
			Marks:          m.Marks,
			Grade:          m.Grade,
			SubmissionDate: m.SubmissionDate,
		})
	}
	return out
}

// BuildDashboard assembles the dashboard view
func BuildDashboard(s *models.Snapshot, opts Options) Dashboard {
	opts = opts.normalized()
	r := NewResolver(s)
	return Dashboard{
		Greeting:          "Welcome back, " + s.CurrentUser.Name,
		Stats:             Stats(s),
		RecentEnrollments: RecentEnrollments(s, r, opts.RecentLimit),
		RecentMarks:       RecentMarks(s, r, opts.RecentLimit),
	}
}
