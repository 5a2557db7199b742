// Package services validates requests before they reach the store and turns
// store no-ops into typed errors for the HTTP layer.
//
// Services defined in this package:
// - StudentService, CourseService, ProfessorService: record CRUD, search and summaries
// - EnrollmentService: enrollments with reference and duplicate checks
// - MarkService: marks with derived grades and enrollment/assignment consistency
// - AssignmentService: teaching assignments
// - ReportService: dashboard and report aggregation
// - SettingsService: current user, export/import, reset and clear
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/app/store"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/validation"
)

// Services bundles every service built over one store
type Services struct {
	Students    *StudentService
	Courses     *CourseService
	Professors  *ProfessorService
	Enrollments *EnrollmentService
	Marks       *MarkService
	Assignments *AssignmentService
	Reports     *ReportService
	Settings    *SettingsService
}

// New wires all services to the given store
func New(s *store.Store, reportOpts ReportOptions) *Services {
	return &Services{
		Students:    NewStudentService(s),
		Courses:     NewCourseService(s),
		Professors:  NewProfessorService(s),
		Enrollments: NewEnrollmentService(s),
		Marks:       NewMarkService(s),
		Assignments: NewAssignmentService(s),
		Reports:     NewReportService(s, reportOpts),
		Settings:    NewSettingsService(s),
	}
}

// notFound wraps the entity error so that callers can match either it or
// apperrors.ErrResourceNotFound
func notFound(entityErr error, id string) error {
	return fmt.Errorf("%w %q: %w", entityErr, id, apperrors.ErrResourceNotFound)
}

func conflict(reason error) error {
	return fmt.Errorf("%w: %w", apperrors.ErrConflict, reason)
}

// violations collects field errors in the order they are found
type violations map[string]string

func (v violations) add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

func (v violations) required(field, value, message string) bool {
	if !validation.NewStringValidation(value).Validate() {
		v.add(field, message)
		return false
	}
	return true
}

func (v violations) email(field, value string) {
	if v.required(field, value, "Email is required") && !validation.IsEmail(strings.TrimSpace(value)) {
		v.add(field, "Invalid email address")
	}
}

func (v violations) date(field, value, message string) {
	if v.required(field, value, message) && !validation.IsISODate(strings.TrimSpace(value)) {
		v.add(field, "Must be a date in yyyy-mm-dd format")
	}
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return apperrors.NewValidationError(v)
}

// matches reports whether query is a case-insensitive substring of any key.
// An empty query matches everything.
func matches(query string, keys ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, k := range keys {
		if strings.Contains(strings.ToLower(k), query) {
			return true
		}
	}
	return false
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// storeError wraps persistence failures with context; check errors from the
// store keep their validation or conflict shape
func storeError(action string, err error) error {
	if errors.Is(err, apperrors.ErrPersistence) {
		return fmt.Errorf("%s: %w", action, err)
	}
	return err
}

// persisted turns a store result into the service error contract
func persisted(found bool, err error, entityErr error, id string) error {
	if err != nil {
		return err
	}
	if !found {
		return notFound(entityErr, id)
	}
	return nil
}

func studentExists(s *models.Snapshot, id string) bool {
	for _, st := range s.Students {
		if st.ID == id {
			return true
		}
	}
	return false
}

func professorExists(s *models.Snapshot, id string) bool {
	for _, p := range s.Professors {
		if p.ID == id {
			return true
		}
	}
	return false
}

func findCourse(s *models.Snapshot, id string) (models.Course, bool) {
	for _, c := range s.Courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}
