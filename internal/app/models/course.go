package models

// Course represents a course offered in a semester.
type Course struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Code        string         `json:"code"`
	Description string         `json:"description"`
	Credits     int            `json:"credits"`
	Duration    int            `json:"duration"` // Weeks
	Semester    string         `json:"semester"` // Free text label, e.g. "Fall 2023"
	Status      ActivityStatus `json:"status"`
}

// CoursePatch is a partial course update.
type CoursePatch struct {
	Name        *string         `json:"name,omitempty"`
	Code        *string         `json:"code,omitempty"`
	Description *string         `json:"description,omitempty"`
	Credits     *int            `json:"credits,omitempty"`
	Duration    *int            `json:"duration,omitempty"`
	Semester    *string         `json:"semester,omitempty"`
	Status      *ActivityStatus `json:"status,omitempty"`
}

// Apply returns a copy of c with the patch merged in.
func (p CoursePatch) Apply(c Course) Course {
	applyString(&c.Name, p.Name)
	applyString(&c.Code, p.Code)
	applyString(&c.Description, p.Description)
	applyInt(&c.Credits, p.Credits)
	applyInt(&c.Duration, p.Duration)
	applyString(&c.Semester, p.Semester)
	if p.Status != nil {
		c.Status = *p.Status
	}
	return c
}
