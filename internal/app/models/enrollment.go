package models

// CourseEnrollment links a student to a course
type CourseEnrollment struct {
	ID             string           `json:"id" example:"enr-001"`
	StudentID      string           `json:"studentId" example:"st-001"` // References Student.ID
	CourseID       string           `json:"courseId" example:"cs-101"`  // References Course.ID
	EnrollmentDate string           `json:"enrollmentDate" example:"2023-08-25"`
	Status         EnrollmentStatus `json:"status" example:"Enrolled" enums:"Enrolled,Completed,Dropped"`
}

// EnrollmentPatch is a partial enrollment update
type EnrollmentPatch struct {
	StudentID      *string           `json:"studentId,omitempty"`
	CourseID       *string           `json:"courseId,omitempty"`
	EnrollmentDate *string           `json:"enrollmentDate,omitempty"`
	Status         *EnrollmentStatus `json:"status,omitempty"`
}

// Apply returns a copy of e with the patch merged in
func (p EnrollmentPatch) Apply(e CourseEnrollment) CourseEnrollment {
	applyString(&e.StudentID, p.StudentID)
	applyString(&e.CourseID, p.CourseID)
	applyString(&e.EnrollmentDate, p.EnrollmentDate)
	if p.Status != nil {
		e.Status = *p.Status
	}
	return e
}
