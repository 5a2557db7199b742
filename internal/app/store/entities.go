package store

import (
	"context"

	"github.com/yigit/studentforce/internal/app/models"
)

// AddStudent stores a student under a fresh id; any id in st is ignored
func (s *Store) AddStudent(ctx context.Context, st models.Student, checks ...Check[models.Student]) (string, error) {
	return addRecord(ctx, s, studentRecords, st, checks)
}

// UpdateStudent merges patch into the student. Unknown ids report false.
func (s *Store) UpdateStudent(ctx context.Context, id string, patch models.StudentPatch, checks ...Check[models.Student]) (bool, error) {
	return updateRecord(ctx, s, studentRecords, id, patch.Apply, checks)
}

// DeleteStudent removes the student with its enrollments and marks
func (s *Store) DeleteStudent(ctx context.Context, id string) (bool, error) {
	return deleteRecord(ctx, s, studentRecords, id, studentDependents)
}

// GetStudentByID looks up a student in the current snapshot
func (s *Store) GetStudentByID(id string) (models.Student, bool) {
	return studentRecords.find(s.Snapshot(), id)
}

// AddCourse stores a course under a fresh id
func (s *Store) AddCourse(ctx context.Context, c models.Course, checks ...Check[models.Course]) (string, error) {
	return addRecord(ctx, s, courseRecords, c, checks)
}

// UpdateCourse merges patch into the course
func (s *Store) UpdateCourse(ctx context.Context, id string, patch models.CoursePatch, checks ...Check[models.Course]) (bool, error) {
	return updateRecord(ctx, s, courseRecords, id, patch.Apply, checks)
}

// DeleteCourse removes the course with its enrollments, assignments and marks
func (s *Store) DeleteCourse(ctx context.Context, id string) (bool, error) {
	return deleteRecord(ctx, s, courseRecords, id, courseDependents)
}

// GetCourseByID looks up a course in the current snapshot
func (s *Store) GetCourseByID(id string) (models.Course, bool) {
	return courseRecords.find(s.Snapshot(), id)
}

// AddProfessor stores a professor under a fresh id
func (s *Store) AddProfessor(ctx context.Context, p models.Professor, checks ...Check[models.Professor]) (string, error) {
	return addRecord(ctx, s, professorRecords, p, checks)
}

// UpdateProfessor merges patch into the professor
func (s *Store) UpdateProfessor(ctx context.Context, id string, patch models.ProfessorPatch, checks ...Check[models.Professor]) (bool, error) {
	return updateRecord(ctx, s, professorRecords, id, patch.Apply, checks)
}

// DeleteProfessor removes the professor with their assignments and marks
func (s *Store) DeleteProfessor(ctx context.Context, id string) (bool, error) {
	return deleteRecord(ctx, s, professorRecords, id, professorDependents)
}

// GetProfessorByID looks up a professor in the current snapshot
func (s *Store) GetProfessorByID(id string) (models.Professor, bool) {
	return professorRecords.find(s.Snapshot(), id)
}

func (s *Store) AddEnrollment(ctx context.Context, e models.CourseEnrollment, checks ...Check[models.CourseEnrollment]) (string, error) {
	return addRecord(ctx, s, enrollmentRecords, e, checks)
}

func (s *Store) UpdateEnrollment(ctx context.Context, id string, patch models.EnrollmentPatch, checks ...Check[models.CourseEnrollment]) (bool, error) {
	return updateRecord(ctx, s, enrollmentRecords, id, patch.Apply, checks)
}

func (s *Store) DeleteEnrollment(ctx context.Context, id string) (bool, error) {
	return deleteRecord(ctx, s, enrollmentRecords, id, nil)
}

func (s *Store) GetEnrollmentByID(id string) (models.CourseEnrollment, bool) {
	return enrollmentRecords.find(s.Snapshot(), id)
}

func (s *Store) AddMark(ctx context.Context, m models.Mark, checks ...Check[models.Mark]) (string, error) {
	return addRecord(ctx, s, markRecords, m, checks)
}

func (s *Store) UpdateMark(ctx context.Context, id string, patch models.MarkPatch, checks ...Check[models.Mark]) (bool, error) {
	return updateRecord(ctx, s, markRecords, id, patch.Apply, checks)
}

func (s *Store) DeleteMark(ctx context.Context, id string) (bool, error) {
	return deleteRecord(ctx, s, markRecords, id, nil)
}

func (s *Store) GetMarkByID(id string) (models.Mark, bool) {
	return markRecords.find(s.Snapshot(), id)
}

// AddAssignment stores a teaching assignment under a fresh id
func (s *Store) AddAssignment(ctx context.Context, a models.TeachingAssignment, checks ...Check[models.TeachingAssignment]) (string, error) {
	return addRecord(ctx, s, assignmentRecords, a, checks)
}

func (s *Store) UpdateAssignment(ctx context.Context, id string, patch models.AssignmentPatch, checks ...Check[models.TeachingAssignment]) (bool, error) {
	return updateRecord(ctx, s, assignmentRecords, id, patch.Apply, checks)
}

func (s *Store) DeleteAssignment(ctx context.Context, id string) (bool, error) {
	return deleteRecord(ctx, s, assignmentRecords, id, nil)
}

func (s *Store) GetAssignmentByID(id string) (models.TeachingAssignment, bool) {
	return assignmentRecords.find(s.Snapshot(), id)
}
