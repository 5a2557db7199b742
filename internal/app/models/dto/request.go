package dto

import "github.com/yigit/studentforce/internal/app/models"

// Request bodies. Binding tags reject malformed input before it reaches the
// services; the services still validate the complete record.

// CreateStudentRequest represents a request to add a student
type CreateStudentRequest struct {
	FirstName      string               `json:"firstName" binding:"required,max=100" example:"John"`
	LastName       string               `json:"lastName" binding:"required,max=100" example:"Smith"`
	Email          string               `json:"email" binding:"required,emailaddr" example:"john.smith@example.com"`
	Phone          string               `json:"phone" binding:"required" example:"(555) 123-4567"`
	DateOfBirth    string               `json:"dateOfBirth" binding:"required,isodate" example:"1998-05-12"`
	Address        string               `json:"address" example:"123 Campus Drive"`
	EnrollmentDate string               `json:"enrollmentDate" binding:"required,isodate" example:"2022-09-01"`
	Status         models.StudentStatus `json:"status" binding:"omitempty,oneof=Active Inactive Graduated" example:"Active"`
}

// ToModel converts the request into a student record
func (r CreateStudentRequest) ToModel() models.Student {
	return models.Student{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		DateOfBirth:    r.DateOfBirth,
		Address:        r.Address,
		EnrollmentDate: r.EnrollmentDate,
		Status:         r.Status,
	}
}

// UpdateStudentRequest represents a partial student update
type UpdateStudentRequest struct {
	FirstName      *string               `json:"firstName" binding:"omitempty,max=100"`
	LastName       *string               `json:"lastName" binding:"omitempty,max=100"`
	Email          *string               `json:"email" binding:"omitempty,emailaddr"`
	Phone          *string               `json:"phone"`
	DateOfBirth    *string               `json:"dateOfBirth" binding:"omitempty,isodate"`
	Address        *string               `json:"address"`
	EnrollmentDate *string               `json:"enrollmentDate" binding:"omitempty,isodate"`
	Status         *models.StudentStatus `json:"status" binding:"omitempty,oneof=Active Inactive Graduated"`
}

// ToPatch converts the request into a student patch
func (r UpdateStudentRequest) ToPatch() models.StudentPatch {
	return models.StudentPatch{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		DateOfBirth:    r.DateOfBirth,
		Address:        r.Address,
		EnrollmentDate: r.EnrollmentDate,
		Status:         r.Status,
	}
}

// CreateCourseRequest represents a request to add a course
type CreateCourseRequest struct {
	Name        string                `json:"name" binding:"required" example:"Introduction to Computer Science"`
	Code        string                `json:"code" binding:"required" example:"CS101"`
	Description string                `json:"description" binding:"required"`
	Credits     int                   `json:"credits" binding:"required,min=1" example:"3"`
	Duration    int                   `json:"duration" binding:"required,min=1" example:"16"`
	Semester    string                `json:"semester" binding:"required" example:"Fall 2023"`
	Status      models.ActivityStatus `json:"status" binding:"omitempty,oneof=Active Inactive" example:"Active"`
}

// ToModel converts the request into a course record
func (r CreateCourseRequest) ToModel() models.Course {
	return models.Course{
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
		Credits:     r.Credits,
		Duration:    r.Duration,
		Semester:    r.Semester,
		Status:      r.Status,
	}
}

// UpdateCourseRequest represents a partial course update
type UpdateCourseRequest struct {
	Name        *string                `json:"name"`
	Code        *string                `json:"code"`
	Description *string                `json:"description"`
	Credits     *int                   `json:"credits" binding:"omitempty,min=1"`
	Duration    *int                   `json:"duration" binding:"omitempty,min=1"`
	Semester    *string                `json:"semester"`
	Status      *models.ActivityStatus `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// ToPatch converts the request into a course patch
func (r UpdateCourseRequest) ToPatch() models.CoursePatch {
	return models.CoursePatch{
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
		Credits:     r.Credits,
		Duration:    r.Duration,
		Semester:    r.Semester,
		Status:      r.Status,
	}
}

// CreateProfessorRequest represents a request to add a professor
type CreateProfessorRequest struct {
	FirstName      string                `json:"firstName" binding:"required,max=100" example:"Robert"`
	LastName       string                `json:"lastName" binding:"required,max=100" example:"Johnson"`
	Email          string                `json:"email" binding:"required,emailaddr" example:"robert.johnson@university.edu"`
	Phone          string                `json:"phone" binding:"required"`
	Department     string                `json:"department" binding:"required" example:"Computer Science"`
	Specialization string                `json:"specialization" binding:"required" example:"Artificial Intelligence"`
	JoinDate       string                `json:"joinDate" binding:"required,isodate" example:"2015-08-15"`
	Status         models.ActivityStatus `json:"status" binding:"omitempty,oneof=Active Inactive" example:"Active"`
}

// ToModel converts the request into a professor record
func (r CreateProfessorRequest) ToModel() models.Professor {
	return models.Professor{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Department:     r.Department,
		Specialization: r.Specialization,
		JoinDate:       r.JoinDate,
		Status:         r.Status,
	}
}

// UpdateProfessorRequest represents a partial professor update
type UpdateProfessorRequest struct {
	FirstName      *string                `json:"firstName" binding:"omitempty,max=100"`
	LastName       *string                `json:"lastName" binding:"omitempty,max=100"`
	Email          *string                `json:"email" binding:"omitempty,emailaddr"`
	Phone          *string                `json:"phone"`
	Department     *string                `json:"department"`
	Specialization *string                `json:"specialization"`
	JoinDate       *string                `json:"joinDate" binding:"omitempty,isodate"`
	Status         *models.ActivityStatus `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// ToPatch converts the request into a professor patch
func (r UpdateProfessorRequest) ToPatch() models.ProfessorPatch {
	return models.ProfessorPatch{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Department:     r.Department,
		Specialization: r.Specialization,
		JoinDate:       r.JoinDate,
		Status:         r.Status,
	}
}

// CreateEnrollmentRequest represents a request to enroll a student in a course
type CreateEnrollmentRequest struct {
	StudentID      string                  `json:"studentId" binding:"required" example:"st-001"`
	CourseID       string                  `json:"courseId" binding:"required" example:"cs-101"`
	EnrollmentDate string                  `json:"enrollmentDate" binding:"required,isodate" example:"2023-08-25"`
	Status         models.EnrollmentStatus `json:"status" binding:"omitempty,oneof=Enrolled Completed Dropped" example:"Enrolled"`
}

// ToModel converts the request into an enrollment record
func (r CreateEnrollmentRequest) ToModel() models.CourseEnrollment {
	return models.CourseEnrollment{
		StudentID:      r.StudentID,
		CourseID:       r.CourseID,
		EnrollmentDate: r.EnrollmentDate,
		Status:         r.Status,
	}
}

// UpdateEnrollmentRequest represents a partial enrollment update
type UpdateEnrollmentRequest struct {
	StudentID      *string                  `json:"studentId"`
	CourseID       *string                  `json:"courseId"`
	EnrollmentDate *string                  `json:"enrollmentDate" binding:"omitempty,isodate"`
	Status         *models.EnrollmentStatus `json:"status" binding:"omitempty,oneof=Enrolled Completed Dropped"`
}

// ToPatch converts the request into an enrollment patch
func (r UpdateEnrollmentRequest) ToPatch() models.EnrollmentPatch {
	return models.EnrollmentPatch{
		StudentID:      r.StudentID,
		CourseID:       r.CourseID,
		EnrollmentDate: r.EnrollmentDate,
		Status:         r.Status,
	}
}

// CreateMarkRequest represents a request to record a mark. The grade is always
// derived from the marks; semester and academic year default to the course's.
type CreateMarkRequest struct {
	StudentID      string `json:"studentId" binding:"required" example:"st-001"`
	CourseID       string `json:"courseId" binding:"required" example:"cs-101"`
	ProfessorID    string `json:"professorId" binding:"required" example:"prof-001"`
	Marks          *int   `json:"marks" binding:"required,min=0,max=100" example:"88"`
	Semester       string `json:"semester" example:"Fall 2023"`
	AcademicYear   string `json:"academicYear" example:"2023-2024"`
	SubmissionDate string `json:"submissionDate" binding:"required,isodate" example:"2023-12-20"`
}

// ToModel converts the request into a mark record
func (r CreateMarkRequest) ToModel() models.Mark {
	m := models.Mark{
		StudentID:      r.StudentID,
		CourseID:       r.CourseID,
		ProfessorID:    r.ProfessorID,
		Semester:       r.Semester,
		AcademicYear:   r.AcademicYear,
		SubmissionDate: r.SubmissionDate,
	}
	if r.Marks != nil {
		m.Marks = *r.Marks
	}
	return m
}

// UpdateMarkRequest represents a partial mark update
type UpdateMarkRequest struct {
	StudentID      *string `json:"studentId"`
	CourseID       *string `json:"courseId"`
	ProfessorID    *string `json:"professorId"`
	Marks          *int    `json:"marks" binding:"omitempty,min=0,max=100"`
	Semester       *string `json:"semester"`
	AcademicYear   *string `json:"academicYear"`
	SubmissionDate *string `json:"submissionDate" binding:"omitempty,isodate"`
}

// ToPatch converts the request into a mark patch
func (r UpdateMarkRequest) ToPatch() models.MarkPatch {
	return models.MarkPatch{
		StudentID:      r.StudentID,
		CourseID:       r.CourseID,
		ProfessorID:    r.ProfessorID,
		Marks:          r.Marks,
		Semester:       r.Semester,
		AcademicYear:   r.AcademicYear,
		SubmissionDate: r.SubmissionDate,
	}
}

// CreateAssignmentRequest represents a request to assign a professor to a course
type CreateAssignmentRequest struct {
	ProfessorID string                  `json:"professorId" binding:"required" example:"prof-001"`
	CourseID    string                  `json:"courseId" binding:"required" example:"cs-101"`
	StartDate   string                  `json:"startDate" binding:"required,isodate" example:"2023-09-01"`
	EndDate     *string                 `json:"endDate" binding:"omitempty,isodate" example:"2023-12-15"`
	Status      models.AssignmentStatus `json:"status" binding:"omitempty,oneof=Active Completed Cancelled" example:"Active"`
}

// ToModel converts the request into a teaching assignment
func (r CreateAssignmentRequest) ToModel() models.TeachingAssignment {
	return models.TeachingAssignment{
		ProfessorID: r.ProfessorID,
		CourseID:    r.CourseID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      r.Status,
	}
}

// UpdateAssignmentRequest represents a partial assignment update.
// ClearEndDate makes the assignment open-ended again.
type UpdateAssignmentRequest struct {
	ProfessorID  *string                  `json:"professorId"`
	CourseID     *string                  `json:"courseId"`
	StartDate    *string                  `json:"startDate" binding:"omitempty,isodate"`
	EndDate      *string                  `json:"endDate" binding:"omitempty,isodate"`
	ClearEndDate bool                     `json:"clearEndDate"`
	Status       *models.AssignmentStatus `json:"status" binding:"omitempty,oneof=Active Completed Cancelled"`
}

// ToPatch converts the request into an assignment patch
func (r UpdateAssignmentRequest) ToPatch() models.AssignmentPatch {
	return models.AssignmentPatch{
		ProfessorID:  r.ProfessorID,
		CourseID:     r.CourseID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		ClearEndDate: r.ClearEndDate,
		Status:       r.Status,
	}
}

// UpdateUserRequest changes the current user's profile. The role is fixed.
type UpdateUserRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=100" example:"Admin User"`
	Email  *string `json:"email" binding:"omitempty,emailaddr" example:"admin@studentforce.edu"`
	Avatar *string `json:"avatar"`
}

// ToPatch converts the request into a user patch
func (r UpdateUserRequest) ToPatch() models.UserPatch {
	return models.UserPatch{
		Name:   r.Name,
		Email:  r.Email,
		Avatar: r.Avatar,
	}
}
