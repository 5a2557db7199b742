package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/app/reports"
	"github.com/yigit/studentforce/internal/app/store"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/validation"
)

// CourseService handles course records
type CourseService struct {
	store *store.Store
}

// NewCourseService creates a new course service instance
func NewCourseService(s *store.Store) *CourseService {
	return &CourseService{store: s}
}

func validateCourse(c models.Course) error {
	v := violations{}
	v.required("name", c.Name, "Course name is required")
	v.required("code", c.Code, "Course code is required")
	v.required("description", c.Description, "Description is required")
	v.required("semester", c.Semester, "Semester is required")
	if !validation.NewNumericValidation(c.Credits).WithMin(1).Validate() {
		v.add("credits", "Credits must be at least 1")
	}
	if !validation.NewNumericValidation(c.Duration).WithMin(1).Validate() {
		v.add("duration", "Duration must be at least 1 week")
	}
	if !c.Status.Valid() {
		v.add("status", "Status must be one of Active, Inactive")
	}
	return v.err()
}

// AcademicYear derives "2023-2024" from a "<Term> 2023" semester label
func AcademicYear(semester string) (string, bool) {
	year, ok := validation.SemesterYear(semester)
	if !ok {
		return "", false
	}
	start, err := strconv.Atoi(year)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%d-%d", start, start+1), true
}

// List returns courses matching query on name, code, description or semester
func (s *CourseService) List(query string) []models.Course {
	return filter(s.store.Snapshot().Courses, func(c models.Course) bool {
		return matches(query, c.Name, c.Code, c.Description, c.Semester)
	})
}

// Get returns one course
func (s *CourseService) Get(id string) (models.Course, error) {
	c, ok := s.store.GetCourseByID(id)
	if !ok {
		return models.Course{}, notFound(apperrors.ErrCourseNotFound, id)
	}
	return c, nil
}

// Create validates and stores a new course. An empty status defaults to Active.
func (s *CourseService) Create(ctx context.Context, c models.Course) (models.Course, error) {
	if c.Status == "" {
		c.Status = models.StatusActive
	}
	if err := validateCourse(c); err != nil {
		return models.Course{}, err
	}
	id, err := s.store.AddCourse(ctx, c)
	if err != nil {
		return models.Course{}, fmt.Errorf("error creating course: %w", err)
	}
	return s.Get(id)
}

// Update merges patch into the course and validates the result
func (s *CourseService) Update(ctx context.Context, id string, patch models.CoursePatch) (models.Course, error) {
	current, err := s.Get(id)
	if err != nil {
		return models.Course{}, err
	}
	if err := validateCourse(patch.Apply(current)); err != nil {
		return models.Course{}, err
	}
	found, err := s.store.UpdateCourse(ctx, id, patch)
	if err := persisted(found, err, apperrors.ErrCourseNotFound, id); err != nil {
		return models.Course{}, err
	}
	return s.Get(id)
}

// Delete removes the course with its enrollments, assignments and marks
func (s *CourseService) Delete(ctx context.Context, id string) error {
	found, err := s.store.DeleteCourse(ctx, id)
	return persisted(found, err, apperrors.ErrCourseNotFound, id)
}

// Summary returns the course's enrollments, assignments, marks and average
func (s *CourseService) Summary(id string) (reports.CourseSummary, error) {
	summary, ok := reports.SummarizeCourse(s.store.Snapshot(), id)
	if !ok {
		return reports.CourseSummary{}, notFound(apperrors.ErrCourseNotFound, id)
	}
	return summary, nil
}
