package models

import (
	"fmt"

	"github.com/yigit/studentforce/internal/pkg/apperrors"
)

// SchemaVersion is the version written into every persisted snapshot document
const SchemaVersion = 1

// Snapshot is the complete state of the dashboard at one point in time.
// A Snapshot is never mutated after it has been published by the store;
// mutations build a new value and swap it in.
type Snapshot struct {
	Version     int                  `json:"version"`
	Students    []Student            `json:"students"`
	Courses     []Course             `json:"courses"`
	Professors  []Professor          `json:"professors"`
	Marks       []Mark               `json:"marks"`
	Enrollments []CourseEnrollment   `json:"enrollments"`
	Assignments []TeachingAssignment `json:"assignments"`
	CurrentUser User                 `json:"currentUser"`
}

// Clone returns a shallow copy. Collection slices are shared with s, so the
// copy must replace a slice rather than write into it.
func (s *Snapshot) Clone() *Snapshot {
	next := *s
	return &next
}

// Normalize replaces nil collections with empty ones so documents always
// encode as arrays.
func (s *Snapshot) Normalize() {
	if s.Students == nil {
		s.Students = []Student{}
	}
	if s.Courses == nil {
		s.Courses = []Course{}
	}
	if s.Professors == nil {
		s.Professors = []Professor{}
	}
	if s.Marks == nil {
		s.Marks = []Mark{}
	}
	if s.Enrollments == nil {
		s.Enrollments = []CourseEnrollment{}
	}
	if s.Assignments == nil {
		s.Assignments = []TeachingAssignment{}
	}
}

// Validate checks the structural shape of a snapshot: every record has a
// unique non-empty id and a known status, and the current user is set.
// Dangling foreign keys are allowed.
func (s *Snapshot) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: snapshot is nil", apperrors.ErrSnapshotInvalid)
	}

	ids := newIDSet("students")
	for _, st := range s.Students {
		if err := ids.add(st.ID); err != nil {
			return err
		}
		if !st.Status.Valid() {
			return invalidStatus("student", st.ID, string(st.Status))
		}
	}

	ids = newIDSet("courses")
	for _, c := range s.Courses {
		if err := ids.add(c.ID); err != nil {
			return err
		}
		if !c.Status.Valid() {
			return invalidStatus("course", c.ID, string(c.Status))
		}
	}

	ids = newIDSet("professors")
	for _, p := range s.Professors {
		if err := ids.add(p.ID); err != nil {
			return err
		}
		if !p.Status.Valid() {
			return invalidStatus("professor", p.ID, string(p.Status))
		}
	}

	ids = newIDSet("enrollments")
	for _, e := range s.Enrollments {
		if err := ids.add(e.ID); err != nil {
			return err
		}
		if !e.Status.Valid() {
			return invalidStatus("enrollment", e.ID, string(e.Status))
		}
	}

	ids = newIDSet("marks")
	for _, m := range s.Marks {
		if err := ids.add(m.ID); err != nil {
			return err
		}
	}

	ids = newIDSet("assignments")
	for _, a := range s.Assignments {
		if err := ids.add(a.ID); err != nil {
			return err
		}
		if !a.Status.Valid() {
			return invalidStatus("assignment", a.ID, string(a.Status))
		}
	}

	if s.CurrentUser.ID == "" {
		return fmt.Errorf("%w: current user has no id", apperrors.ErrSnapshotInvalid)
	}
	if !s.CurrentUser.Role.Valid() {
		return fmt.Errorf("%w: current user role %q", apperrors.ErrSnapshotInvalid, s.CurrentUser.Role)
	}
	return nil
}

type idSet struct {
	collection string
	seen       map[string]struct{}
}

func newIDSet(collection string) *idSet {
	return &idSet{collection: collection, seen: make(map[string]struct{})}
}

func (s *idSet) add(id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s contains a record without id", apperrors.ErrSnapshotInvalid, s.collection)
	}
	if _, dup := s.seen[id]; dup {
		return fmt.Errorf("%w: %s contains duplicate id %q", apperrors.ErrSnapshotInvalid, s.collection, id)
	}
	s.seen[id] = struct{}{}
	return nil
}

func invalidStatus(kind, id, status string) error {
	return fmt.Errorf("%w: %s %q has unknown status %q", apperrors.ErrSnapshotInvalid, kind, id, status)
}
