package services

import (
	"context"

	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/app/store"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
)

// EnrollmentService handles course enrollments
type EnrollmentService struct {
	store *store.Store
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(s *store.Store) *EnrollmentService {
	return &EnrollmentService{store: s}
}

// validateEnrollment checks fields and references. selfID is the record being
// updated and is skipped by the duplicate check.
func validateEnrollment(snap *models.Snapshot, e models.CourseEnrollment, selfID string) error {
	v := violations{}
	if v.required("studentId", e.StudentID, "Student is required") && !studentExists(snap, e.StudentID) {
		v.add("studentId", "Student does not exist")
	}
	if v.required("courseId", e.CourseID, "Course is required") {
		if _, ok := findCourse(snap, e.CourseID); !ok {
			v.add("courseId", "Course does not exist")
		}
	}
	v.date("enrollmentDate", e.EnrollmentDate, "Enrollment date is required")
	if !e.Status.Valid() {
		v.add("status", "Status must be one of Enrolled, Completed, Dropped")
	}
	if err := v.err(); err != nil {
		return err
	}

	for _, other := range snap.Enrollments {
		if other.ID != selfID && other.StudentID == e.StudentID && other.CourseID == e.CourseID {
			return conflict(apperrors.ErrAlreadyEnrolled)
		}
	}
	return nil
}

// List returns enrollments matching query on id, student id or course id
func (s *EnrollmentService) List(query string) []models.CourseEnrollment {
	return filter(s.store.Snapshot().Enrollments, func(e models.CourseEnrollment) bool {
		return matches(query, e.ID, e.StudentID, e.CourseID)
	})
}

// Get returns one enrollment
func (s *EnrollmentService) Get(id string) (models.CourseEnrollment, error) {
	e, ok := s.store.GetEnrollmentByID(id)
	if !ok {
		return models.CourseEnrollment{}, notFound(apperrors.ErrEnrollmentNotFound, id)
	}
	return e, nil
}

// Create enrolls a student in a course. An empty status defaults to Enrolled.
// References and the duplicate pair are checked under the store's write lock.
func (s *EnrollmentService) Create(ctx context.Context, e models.CourseEnrollment) (models.CourseEnrollment, error) {
	if e.Status == "" {
		e.Status = models.EnrollmentEnrolled
	}
	id, err := s.store.AddEnrollment(ctx, e, func(snap *models.Snapshot, e *models.CourseEnrollment) error {
		return validateEnrollment(snap, *e, "")
	})
	if err != nil {
		return models.CourseEnrollment{}, storeError("error creating enrollment", err)
	}
	return s.Get(id)
}

// Update merges patch into the enrollment and validates the result
func (s *EnrollmentService) Update(ctx context.Context, id string, patch models.EnrollmentPatch) (models.CourseEnrollment, error) {
	found, err := s.store.UpdateEnrollment(ctx, id, patch, func(snap *models.Snapshot, merged *models.CourseEnrollment) error {
		return validateEnrollment(snap, *merged, id)
	})
	if err := persisted(found, err, apperrors.ErrEnrollmentNotFound, id); err != nil {
		return models.CourseEnrollment{}, err
	}
	return s.Get(id)
}

// Delete removes one enrollment. Marks are kept.
func (s *EnrollmentService) Delete(ctx context.Context, id string) error {
	found, err := s.store.DeleteEnrollment(ctx, id)
	return persisted(found, err, apperrors.ErrEnrollmentNotFound, id)
}
