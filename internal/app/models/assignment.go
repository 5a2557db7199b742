package models

// TeachingAssignment records a professor teaching a course
type TeachingAssignment struct {
	ID          string           `json:"id" example:"ta-001"`
	ProfessorID string           `json:"professorId" example:"prof-001"`
	CourseID    string           `json:"courseId" example:"cs-101"`
	StartDate   string           `json:"startDate" example:"2023-09-01"`
	EndDate     *string          `json:"endDate"` // Nullable, open-ended when nil
	Status      AssignmentStatus `json:"status" example:"Active" enums:"Active,Completed,Cancelled"`
}

// AssignmentPatch is a partial assignment update.
// ClearEndDate resets EndDate to null; it wins over EndDate.
type AssignmentPatch struct {
	ProfessorID  *string           `json:"professorId,omitempty"`
	CourseID     *string           `json:"courseId,omitempty"`
	StartDate    *string           `json:"startDate,omitempty"`
	EndDate      *string           `json:"endDate,omitempty"`
	ClearEndDate bool              `json:"clearEndDate,omitempty"`
	Status       *AssignmentStatus `json:"status,omitempty"`
}

// Apply returns a copy of a with the patch merged in
func (p AssignmentPatch) Apply(a TeachingAssignment) TeachingAssignment {
	applyString(&a.ProfessorID, p.ProfessorID)
	applyString(&a.CourseID, p.CourseID)
	applyString(&a.StartDate, p.StartDate)
	switch {
	case p.ClearEndDate:
		a.EndDate = nil
	case p.EndDate != nil:
		end := *p.EndDate
		a.EndDate = &end
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	return a
}
