package models

// StudentStatus is the lifecycle state of a student record
type StudentStatus string

const (
	StudentActive    StudentStatus = "Active"
	StudentInactive  StudentStatus = "Inactive"
	StudentGraduated StudentStatus = "Graduated"
)

// StudentStatuses lists every student status in display order
var StudentStatuses = []StudentStatus{StudentActive, StudentInactive, StudentGraduated}

// Valid reports whether s is a known student status
func (s StudentStatus) Valid() bool {
	switch s {
	case StudentActive, StudentInactive, StudentGraduated:
		return true
	}
	return false
}

// ActivityStatus is shared by courses and professors
type ActivityStatus string

const (
	StatusActive   ActivityStatus = "Active"
	StatusInactive ActivityStatus = "Inactive"
)

// ActivityStatuses lists every course/professor status in display order
var ActivityStatuses = []ActivityStatus{StatusActive, StatusInactive}

// Valid reports whether s is a known activity status
func (s ActivityStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// EnrollmentStatus is the state of a student's enrollment in a course
type EnrollmentStatus string

const (
	EnrollmentEnrolled  EnrollmentStatus = "Enrolled"
	EnrollmentCompleted EnrollmentStatus = "Completed"
	EnrollmentDropped   EnrollmentStatus = "Dropped"
)

// EnrollmentStatuses lists every enrollment status in display order
var EnrollmentStatuses = []EnrollmentStatus{EnrollmentEnrolled, EnrollmentCompleted, EnrollmentDropped}

// Valid reports whether s is a known enrollment status
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentEnrolled, EnrollmentCompleted, EnrollmentDropped:
		return true
	}
	return false
}

// AssignmentStatus is the state of a teaching assignment
type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "Active"
	AssignmentCompleted AssignmentStatus = "Completed"
	AssignmentCancelled AssignmentStatus = "Cancelled"
)

// Valid reports whether s is a known assignment status
func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentActive, AssignmentCompleted, AssignmentCancelled:
		return true
	}
	return false
}

// RoleType defines the current user's role
type RoleType string

const (
	RoleAdmin      RoleType = "Admin"
	RoleInstructor RoleType = "Instructor"
	RoleStudent    RoleType = "Student"
	RoleRegistrar  RoleType = "Registrar"
)

// Valid reports whether r is a known role
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent, RoleRegistrar:
		return true
	}
	return false
}

// EntityKind names one of the six record collections
type EntityKind string

const (
	EntityStudent     EntityKind = "student"
	EntityCourse      EntityKind = "course"
	EntityProfessor   EntityKind = "professor"
	EntityEnrollment  EntityKind = "enrollment"
	EntityMark        EntityKind = "mark"
	EntityAssignment  EntityKind = "assignment"
	EntityCurrentUser EntityKind = "currentUser"
	EntitySnapshot    EntityKind = "snapshot"
)

// Sentinel labels rendered when a foreign key cannot be resolved
const (
	UnknownStudent   = "Unknown Student"
	UnknownCourse    = "Unknown Course"
	UnknownProfessor = "Unknown Professor"
)

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
