package services

import (
	"context"
	"fmt"

	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/app/reports"
	"github.com/yigit/studentforce/internal/app/store"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/validation"
)

// StudentService handles student records
type StudentService struct {
	store *store.Store
}

// NewStudentService creates a new student service instance
func NewStudentService(s *store.Store) *StudentService {
	return &StudentService{store: s}
}

// validateStudent checks a complete student record before it is written
func validateStudent(st models.Student) error {
	v := violations{}
	if v.required("firstName", st.FirstName, "First name is required") &&
		!validation.NewStringValidation(st.FirstName).WithMaxLength(validation.NameMaxLength).Validate() {
		v.add("firstName", "First name is too long")
	}
	if v.required("lastName", st.LastName, "Last name is required") &&
		!validation.NewStringValidation(st.LastName).WithMaxLength(validation.NameMaxLength).Validate() {
		v.add("lastName", "Last name is too long")
	}
	v.email("email", st.Email)
	v.required("phone", st.Phone, "Phone number is required")
	v.date("dateOfBirth", st.DateOfBirth, "Date of birth is required")
	v.date("enrollmentDate", st.EnrollmentDate, "Enrollment date is required")
	if !st.Status.Valid() {
		v.add("status", "Status must be one of Active, Inactive, Graduated")
	}
	return v.err()
}

// List returns students matching query on first name, last name, email or phone
func (s *StudentService) List(query string) []models.Student {
	return filter(s.store.Snapshot().Students, func(st models.Student) bool {
		return matches(query, st.FirstName, st.LastName, st.Email, st.Phone)
	})
}

// Get returns one student
func (s *StudentService) Get(id string) (models.Student, error) {
	st, ok := s.store.GetStudentByID(id)
	if !ok {
		return models.Student{}, notFound(apperrors.ErrStudentNotFound, id)
	}
	return st, nil
}

// Create validates and stores a new student. An empty status defaults to Active.
func (s *StudentService) Create(ctx context.Context, st models.Student) (models.Student, error) {
	if st.Status == "" {
		st.Status = models.StudentActive
	}
	if err := validateStudent(st); err != nil {
		return models.Student{}, err
	}
	id, err := s.store.AddStudent(ctx, st)
	if err != nil {
		return models.Student{}, fmt.Errorf("error creating student: %w", err)
	}
	return s.Get(id)
}

// Update merges patch into the student and validates the result
func (s *StudentService) Update(ctx context.Context, id string, patch models.StudentPatch) (models.Student, error) {
	current, err := s.Get(id)
	if err != nil {
		return models.Student{}, err
	}
	if err := validateStudent(patch.Apply(current)); err != nil {
		return models.Student{}, err
	}
	found, err := s.store.UpdateStudent(ctx, id, patch)
	if err := persisted(found, err, apperrors.ErrStudentNotFound, id); err != nil {
		return models.Student{}, err
	}
	return s.Get(id)
}

// Delete removes the student with their enrollments and marks
func (s *StudentService) Delete(ctx context.Context, id string) error {
	found, err := s.store.DeleteStudent(ctx, id)
	return persisted(found, err, apperrors.ErrStudentNotFound, id)
}

// Summary returns the student's enrollments, marks and average
func (s *StudentService) Summary(id string) (reports.StudentSummary, error) {
	summary, ok := reports.SummarizeStudent(s.store.Snapshot(), id)
	if !ok {
		return reports.StudentSummary{}, notFound(apperrors.ErrStudentNotFound, id)
	}
	return summary, nil
}
