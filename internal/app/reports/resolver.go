package reports

import "github.com/yigit/studentforce/internal/app/models"

// Resolver maps foreign keys to display names. Dangling references resolve
// to the Unknown* sentinel labels instead of failing.
type Resolver struct {
	students   map[string]models.Student
	courses    map[string]models.Course
	professors map[string]models.Professor
}

// NewResolver indexes the snapshot's students, courses and professors
func NewResolver(s *models.Snapshot) *Resolver {
	r := &Resolver{
		students:   make(map[string]models.Student, len(s.Students)),
		courses:    make(map[string]models.Course, len(s.Courses)),
		professors: make(map[string]models.Professor, len(s.Professors)),
	}
	for _, st := range s.Students {
		r.students[st.ID] = st
	}
	for _, c := range s.Courses {
		r.courses[c.ID] = c
	}
	for _, p := range s.Professors {
		r.professors[p.ID] = p
	}
	return r
}

func (r *Resolver) Student(id string) (models.Student, bool) {
	st, ok := r.students[id]
	return st, ok
}

func (r *Resolver) Course(id string) (models.Course, bool) {
	c, ok := r.courses[id]
	return c, ok
}

func (r *Resolver) Professor(id string) (models.Professor, bool) {
	p, ok := r.professors[id]
	return p, ok
}

// StudentName returns "First Last" or models.UnknownStudent
func (r *Resolver) StudentName(id string) string {
	if st, ok := r.students[id]; ok {
		return st.FullName()
	}
	return models.UnknownStudent
}

// CourseName returns the course name or models.UnknownCourse
func (r *Resolver) CourseName(id string) string {
	if c, ok := r.courses[id]; ok {
		return c.Name
	}
	return models.UnknownCourse
}

// ProfessorName returns "First Last" or models.UnknownProfessor
func (r *Resolver) ProfessorName(id string) string {
	if p, ok := r.professors[id]; ok {
		return p.FullName()
	}
	return models.UnknownProfessor
}
