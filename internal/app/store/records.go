package store

import (
	"context"

	"github.com/yigit/studentforce/internal/app/models"
)

// collection binds a record type to its slot in the snapshot
type collection[T any] struct {
	kind  models.EntityKind
	get   func(*models.Snapshot) []T
	set   func(*models.Snapshot, []T)
	idOf  func(T) string
	setID func(*T, string)
}

func (c collection[T]) find(snap *models.Snapshot, id string) (T, bool) {
	items := c.get(snap)
	if i := indexByID(items, id, c.idOf); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// Check inspects a record against the snapshot it is about to be written into,
// while the store's write lock is held. It may adjust the record; an error
// aborts the mutation and is returned unchanged. For updates the snapshot
// still holds the record's previous version.
type Check[T any] func(current *models.Snapshot, record *T) error

func runChecks[T any](current *models.Snapshot, record *T, checks []Check[T]) error {
	for _, check := range checks {
		if err := check(current, record); err != nil {
			return err
		}
	}
	return nil
}

// cascade removes records depending on a deleted one and reports their ids
type cascade func(next *models.Snapshot, id string) map[models.EntityKind][]string

func addRecord[T any](ctx context.Context, s *Store, c collection[T], record T, checks []Check[T]) (string, error) {
	m := &mutation{
		entity: c.kind,
		action: ActionCreated,
		build: func(next *models.Snapshot, m *mutation) (bool, error) {
			if err := runChecks(next, &record, checks); err != nil {
				return false, err
			}
			items := c.get(next)
			m.id = s.newID(func(candidate string) bool {
				return indexByID(items, candidate, c.idOf) >= 0
			})
			c.setID(&record, m.id)
			c.set(next, appended(items, record))
			return true, nil
		},
	}
	if _, err := s.apply(ctx, m); err != nil {
		return "", err
	}
	return m.id, nil
}

func updateRecord[T any](ctx context.Context, s *Store, c collection[T], id string, apply func(T) T, checks []Check[T]) (bool, error) {
	return s.apply(ctx, &mutation{
		entity: c.kind,
		action: ActionUpdated,
		id:     id,
		build: func(next *models.Snapshot, _ *mutation) (bool, error) {
			items := c.get(next)
			i := indexByID(items, id, c.idOf)
			if i < 0 {
				return false, nil
			}
			updated := apply(items[i])
			c.setID(&updated, id)
			if err := runChecks(next, &updated, checks); err != nil {
				return false, err
			}
			c.set(next, replacedAt(items, i, updated))
			return true, nil
		},
	})
}

func deleteRecord[T any](ctx context.Context, s *Store, c collection[T], id string, dependents cascade) (bool, error) {
	return s.apply(ctx, &mutation{
		entity: c.kind,
		action: ActionDeleted,
		id:     id,
		build: func(next *models.Snapshot, m *mutation) (bool, error) {
			kept, removed := partition(c.get(next), func(item T) bool { return c.idOf(item) == id }, c.idOf)
			if len(removed) == 0 {
				return false, nil
			}
			c.set(next, kept)
			if dependents != nil {
				m.cascaded = dependents(next, id)
			}
			return true, nil
		},
	})
}

var (
	studentRecords = collection[models.Student]{
		kind:  models.EntityStudent,
		get:   func(s *models.Snapshot) []models.Student { return s.Students },
		set:   func(s *models.Snapshot, v []models.Student) { s.Students = v },
		idOf:  func(v models.Student) string { return v.ID },
		setID: func(v *models.Student, id string) { v.ID = id },
	}
	courseRecords = collection[models.Course]{
		kind:  models.EntityCourse,
		get:   func(s *models.Snapshot) []models.Course { return s.Courses },
		set:   func(s *models.Snapshot, v []models.Course) { s.Courses = v },
		idOf:  func(v models.Course) string { return v.ID },
		setID: func(v *models.Course, id string) { v.ID = id },
	}
	professorRecords = collection[models.Professor]{
		kind:  models.EntityProfessor,
		get:   func(s *models.Snapshot) []models.Professor { return s.Professors },
		set:   func(s *models.Snapshot, v []models.Professor) { s.Professors = v },
		idOf:  func(v models.Professor) string { return v.ID },
		setID: func(v *models.Professor, id string) { v.ID = id },
	}
	enrollmentRecords = collection[models.CourseEnrollment]{
		kind:  models.EntityEnrollment,
		get:   func(s *models.Snapshot) []models.CourseEnrollment { return s.Enrollments },
		set:   func(s *models.Snapshot, v []models.CourseEnrollment) { s.Enrollments = v },
		idOf:  func(v models.CourseEnrollment) string { return v.ID },
		setID: func(v *models.CourseEnrollment, id string) { v.ID = id },
	}
	markRecords = collection[models.Mark]{
		kind:  models.EntityMark,
		get:   func(s *models.Snapshot) []models.Mark { return s.Marks },
		set:   func(s *models.Snapshot, v []models.Mark) { s.Marks = v },
		idOf:  func(v models.Mark) string { return v.ID },
		setID: func(v *models.Mark, id string) { v.ID = id },
	}
	assignmentRecords = collection[models.TeachingAssignment]{
		kind:  models.EntityAssignment,
		get:   func(s *models.Snapshot) []models.TeachingAssignment { return s.Assignments },
		set:   func(s *models.Snapshot, v []models.TeachingAssignment) { s.Assignments = v },
		idOf:  func(v models.TeachingAssignment) string { return v.ID },
		setID: func(v *models.TeachingAssignment, id string) { v.ID = id },
	}
)

// removeWhere drops the records of c matching remove and records their ids in out
func removeWhere[T any](next *models.Snapshot, c collection[T], remove func(T) bool, out map[models.EntityKind][]string) {
	kept, removed := partition(c.get(next), remove, c.idOf)
	if len(removed) == 0 {
		return
	}
	c.set(next, kept)
	out[c.kind] = removed
}

func studentDependents(next *models.Snapshot, id string) map[models.EntityKind][]string {
	out := make(map[models.EntityKind][]string)
	removeWhere(next, enrollmentRecords, func(e models.CourseEnrollment) bool { return e.StudentID == id }, out)
	removeWhere(next, markRecords, func(m models.Mark) bool { return m.StudentID == id }, out)
	return out
}

func courseDependents(next *models.Snapshot, id string) map[models.EntityKind][]string {
	out := make(map[models.EntityKind][]string)
	removeWhere(next, enrollmentRecords, func(e models.CourseEnrollment) bool { return e.CourseID == id }, out)
	removeWhere(next, assignmentRecords, func(a models.TeachingAssignment) bool { return a.CourseID == id }, out)
	removeWhere(next, markRecords, func(m models.Mark) bool { return m.CourseID == id }, out)
	return out
}

func professorDependents(next *models.Snapshot, id string) map[models.EntityKind][]string {
	out := make(map[models.EntityKind][]string)
	removeWhere(next, assignmentRecords, func(a models.TeachingAssignment) bool { return a.ProfessorID == id }, out)
	removeWhere(next, markRecords, func(m models.Mark) bool { return m.ProfessorID == id }, out)
	return out
}
