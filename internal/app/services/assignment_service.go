package services

import (
	"context"
	"strings"

	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/app/store"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/validation"
)

// AssignmentService handles teaching assignments
type AssignmentService struct {
	store *store.Store
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(s *store.Store) *AssignmentService {
	return &AssignmentService{store: s}
}

func validateAssignment(snap *models.Snapshot, a models.TeachingAssignment) error {
	v := violations{}
	if v.required("professorId", a.ProfessorID, "Professor is required") && !professorExists(snap, a.ProfessorID) {
		v.add("professorId", "Professor does not exist")
	}
	if v.required("courseId", a.CourseID, "Course is required") {
		if _, ok := findCourse(snap, a.CourseID); !ok {
			v.add("courseId", "Course does not exist")
		}
	}
	v.date("startDate", a.StartDate, "Start date is required")
	if a.EndDate != nil {
		end := strings.TrimSpace(*a.EndDate)
		switch {
		case !validation.IsISODate(end):
			v.add("endDate", "Must be a date in yyyy-mm-dd format")
		case validation.IsISODate(a.StartDate) && end < a.StartDate:
			v.add("endDate", "End date must not be before start date")
		}
	}
	if !a.Status.Valid() {
		v.add("status", "Status must be one of Active, Completed, Cancelled")
	}
	return v.err()
}

// List returns assignments matching query on id, professor id or course id
func (s *AssignmentService) List(query string) []models.TeachingAssignment {
	return filter(s.store.Snapshot().Assignments, func(a models.TeachingAssignment) bool {
		return matches(query, a.ID, a.ProfessorID, a.CourseID)
	})
}

// Get returns one assignment
func (s *AssignmentService) Get(id string) (models.TeachingAssignment, error) {
	a, ok := s.store.GetAssignmentByID(id)
	if !ok {
		return models.TeachingAssignment{}, notFound(apperrors.ErrAssignmentNotFound, id)
	}
	return a, nil
}

// Create stores a new assignment. An empty status defaults to Active.
func (s *AssignmentService) Create(ctx context.Context, a models.TeachingAssignment) (models.TeachingAssignment, error) {
	if a.Status == "" {
		a.Status = models.AssignmentActive
	}
	id, err := s.store.AddAssignment(ctx, a, func(snap *models.Snapshot, a *models.TeachingAssignment) error {
		return validateAssignment(snap, *a)
	})
	if err != nil {
		return models.TeachingAssignment{}, storeError("error creating assignment", err)
	}
	return s.Get(id)
}

// Update merges patch into the assignment and validates the result
func (s *AssignmentService) Update(ctx context.Context, id string, patch models.AssignmentPatch) (models.TeachingAssignment, error) {
	found, err := s.store.UpdateAssignment(ctx, id, patch, func(snap *models.Snapshot, merged *models.TeachingAssignment) error {
		return validateAssignment(snap, *merged)
	})
	if err := persisted(found, err, apperrors.ErrAssignmentNotFound, id); err != nil {
		return models.TeachingAssignment{}, err
	}
	return s.Get(id)
}

// Delete removes one assignment. Marks are kept.
func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	found, err := s.store.DeleteAssignment(ctx, id)
	return persisted(found, err, apperrors.ErrAssignmentNotFound, id)
}
