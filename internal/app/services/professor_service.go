package services

import (
	"context"
	"fmt"

	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/app/reports"
	"github.com/yigit/studentforce/internal/app/store"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
)

// ProfessorService handles professor records
type ProfessorService struct {
	store *store.Store
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(s *store.Store) *ProfessorService {
	return &ProfessorService{store: s}
}

func validateProfessor(p models.Professor) error {
	v := violations{}
	v.required("firstName", p.FirstName, "First name is required")
	v.required("lastName", p.LastName, "Last name is required")
	v.email("email", p.Email)
	v.required("phone", p.Phone, "Phone number is required")
	v.required("department", p.Department, "Department is required")
	v.required("specialization", p.Specialization, "Specialization is required")
	v.date("joinDate", p.JoinDate, "Join date is required")
	if !p.Status.Valid() {
		v.add("status", "Status must be one of Active, Inactive")
	}
	return v.err()
}

// List returns professors matching query on name, email, department or specialization
func (s *ProfessorService) List(query string) []models.Professor {
	return filter(s.store.Snapshot().Professors, func(p models.Professor) bool {
		return matches(query, p.FirstName, p.LastName, p.Email, p.Department, p.Specialization)
	})
}

// Get returns one professor
func (s *ProfessorService) Get(id string) (models.Professor, error) {
	p, ok := s.store.GetProfessorByID(id)
	if !ok {
		return models.Professor{}, notFound(apperrors.ErrProfessorNotFound, id)
	}
	return p, nil
}

// Create validates and stores a new professor. An empty status defaults to Active.
func (s *ProfessorService) Create(ctx context.Context, p models.Professor) (models.Professor, error) {
	if p.Status == "" {
		p.Status = models.StatusActive
	}
	if err := validateProfessor(p); err != nil {
		return models.Professor{}, err
	}
	id, err := s.store.AddProfessor(ctx, p)
	if err != nil {
		return models.Professor{}, fmt.Errorf("error creating professor: %w", err)
	}
	return s.Get(id)
}

// Update merges patch into the professor and validates the result
func (s *ProfessorService) Update(ctx context.Context, id string, patch models.ProfessorPatch) (models.Professor, error) {
	current, err := s.Get(id)
	if err != nil {
		return models.Professor{}, err
	}
	if err := validateProfessor(patch.Apply(current)); err != nil {
		return models.Professor{}, err
	}
	found, err := s.store.UpdateProfessor(ctx, id, patch)
	if err := persisted(found, err, apperrors.ErrProfessorNotFound, id); err != nil {
		return models.Professor{}, err
	}
	return s.Get(id)
}

// Delete removes the professor with their assignments and marks
func (s *ProfessorService) Delete(ctx context.Context, id string) error {
	found, err := s.store.DeleteProfessor(ctx, id)
	return persisted(found, err, apperrors.ErrProfessorNotFound, id)
}

// Summary returns the professor's assignments, marks and average
func (s *ProfessorService) Summary(id string) (reports.ProfessorSummary, error) {
	summary, ok := reports.SummarizeProfessor(s.store.Snapshot(), id)
	if !ok {
		return reports.ProfessorSummary{}, notFound(apperrors.ErrProfessorNotFound, id)
	}
	return summary, nil
}
