package services

import (
	"context"
	"strings"

	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/app/store"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/grading"
	"github.com/yigit/studentforce/internal/pkg/validation"
)

// MarkService handles marks. Grades are always derived from the numeric mark.
type MarkService struct {
	store *store.Store
}

// NewMarkService creates a new mark service instance
func NewMarkService(s *store.Store) *MarkService {
	return &MarkService{store: s}
}

// fillFromCourse sets a missing semester and academic year from the course
func fillFromCourse(snap *models.Snapshot, m *models.Mark) {
	course, ok := findCourse(snap, m.CourseID)
	if !ok {
		return
	}
	if strings.TrimSpace(m.Semester) == "" {
		m.Semester = course.Semester
	}
	if strings.TrimSpace(m.AcademicYear) == "" {
		if year, ok := AcademicYear(m.Semester); ok {
			m.AcademicYear = year
		}
	}
}

func validateMarkFields(snap *models.Snapshot, m models.Mark) violations {
	v := violations{}
	if v.required("studentId", m.StudentID, "Student is required") && !studentExists(snap, m.StudentID) {
		v.add("studentId", "Student does not exist")
	}
	if v.required("courseId", m.CourseID, "Course is required") {
		if _, ok := findCourse(snap, m.CourseID); !ok {
			v.add("courseId", "Course does not exist")
		}
	}
	if v.required("professorId", m.ProfessorID, "Professor is required") && !professorExists(snap, m.ProfessorID) {
		v.add("professorId", "Professor does not exist")
	}
	if !validation.NewNumericValidation(m.Marks).WithMin(validation.MarksMin).WithMax(validation.MarksMax).Validate() {
		v.add("marks", "Marks must be between 0 and 100")
	}
	v.required("semester", m.Semester, "Semester is required")
	v.required("academicYear", m.AcademicYear, "Academic year is required")
	v.date("submissionDate", m.SubmissionDate, "Submission date is required")
	return v
}

// checkConsistency requires a non-dropped enrollment for the student and
// course, and a non-cancelled assignment of the professor to the course
func checkConsistency(snap *models.Snapshot, m models.Mark, v violations) {
	enrolled := false
	for _, e := range snap.Enrollments {
		if e.StudentID == m.StudentID && e.CourseID == m.CourseID && e.Status != models.EnrollmentDropped {
			enrolled = true
			break
		}
	}
	if !enrolled {
		v.add("courseId", "Student is not enrolled in this course")
	}

	assigned := false
	for _, a := range snap.Assignments {
		if a.ProfessorID == m.ProfessorID && a.CourseID == m.CourseID && a.Status != models.AssignmentCancelled {
			assigned = true
			break
		}
	}
	if !assigned {
		v.add("professorId", "Professor is not assigned to this course")
	}
}

func duplicateMark(snap *models.Snapshot, m models.Mark, selfID string) error {
	for _, other := range snap.Marks {
		if other.ID != selfID && other.StudentID == m.StudentID && other.CourseID == m.CourseID {
			return conflict(apperrors.ErrMarkExists)
		}
	}
	return nil
}

// List returns marks matching query on id, student, course, professor or academic year
func (s *MarkService) List(query string) []models.Mark {
	return filter(s.store.Snapshot().Marks, func(m models.Mark) bool {
		return matches(query, m.ID, m.StudentID, m.CourseID, m.ProfessorID, m.AcademicYear)
	})
}

// Get returns one mark
func (s *MarkService) Get(id string) (models.Mark, error) {
	m, ok := s.store.GetMarkByID(id)
	if !ok {
		return models.Mark{}, notFound(apperrors.ErrMarkNotFound, id)
	}
	return m, nil
}

// Create records a mark. Any grade in the input is replaced by the computed one.
func (s *MarkService) Create(ctx context.Context, m models.Mark) (models.Mark, error) {
	id, err := s.store.AddMark(ctx, m, func(snap *models.Snapshot, m *models.Mark) error {
		fillFromCourse(snap, m)
		m.Grade = grading.Calculate(m.Marks)

		v := validateMarkFields(snap, *m)
		if len(v) == 0 {
			checkConsistency(snap, *m, v)
		}
		if err := v.err(); err != nil {
			return err
		}
		return duplicateMark(snap, *m, "")
	})
	if err != nil {
		return models.Mark{}, storeError("error creating mark", err)
	}
	return s.Get(id)
}

// Update merges patch into the mark. The grade follows the merged marks value;
// the consistency check only runs when the student, course or professor changes.
func (s *MarkService) Update(ctx context.Context, id string, patch models.MarkPatch) (models.Mark, error) {
	patch.Grade = nil
	found, err := s.store.UpdateMark(ctx, id, patch, func(snap *models.Snapshot, merged *models.Mark) error {
		merged.Grade = grading.Calculate(merged.Marks)

		v := validateMarkFields(snap, *merged)
		if current, ok := findMark(snap, id); ok && len(v) == 0 && relinked(current, *merged) {
			checkConsistency(snap, *merged, v)
		}
		if err := v.err(); err != nil {
			return err
		}
		return duplicateMark(snap, *merged, id)
	})
	if err := persisted(found, err, apperrors.ErrMarkNotFound, id); err != nil {
		return models.Mark{}, err
	}
	return s.Get(id)
}

func relinked(before, after models.Mark) bool {
	return before.StudentID != after.StudentID || before.CourseID != after.CourseID || before.ProfessorID != after.ProfessorID
}

func findMark(snap *models.Snapshot, id string) (models.Mark, bool) {
	for _, m := range snap.Marks {
		if m.ID == id {
			return m, true
		}
	}
	return models.Mark{}, false
}

// Delete removes one mark
func (s *MarkService) Delete(ctx context.Context, id string) error {
	found, err := s.store.DeleteMark(ctx, id)
	return persisted(found, err, apperrors.ErrMarkNotFound, id)
}
