package models

// Professor defines a teaching staff record
type Professor struct {
	ID             string         `json:"id" example:"prof-001"`
	FirstName      string         `json:"firstName" example:"Robert"`
	LastName       string         `json:"lastName" example:"Johnson"`
	Email          string         `json:"email" example:"robert.johnson@university.edu"`
	Phone          string         `json:"phone"`
	Department     string         `json:"department" example:"Computer Science"`
	Specialization string         `json:"specialization" example:"Artificial Intelligence"`
	JoinDate       string         `json:"joinDate" example:"2015-08-15"`
	Status         ActivityStatus `json:"status" example:"Active" enums:"Active,Inactive"`
}

// FullName returns "First Last"
func (p Professor) FullName() string {
	return p.FirstName + " " + p.LastName
}

// ProfessorPatch is a partial professor update
type ProfessorPatch struct {
	FirstName      *string         `json:"firstName,omitempty"`
	LastName       *string         `json:"lastName,omitempty"`
	Email          *string         `json:"email,omitempty"`
	Phone          *string         `json:"phone,omitempty"`
	Department     *string         `json:"department,omitempty"`
	Specialization *string         `json:"specialization,omitempty"`
	JoinDate       *string         `json:"joinDate,omitempty"`
	Status         *ActivityStatus `json:"status,omitempty"`
}

// Apply returns a copy of prof with the patch merged in
func (p ProfessorPatch) Apply(prof Professor) Professor {
	applyString(&prof.FirstName, p.FirstName)
	applyString(&prof.LastName, p.LastName)
	applyString(&prof.Email, p.Email)
	applyString(&prof.Phone, p.Phone)
	applyString(&prof.Department, p.Department)
	applyString(&prof.Specialization, p.Specialization)
	applyString(&prof.JoinDate, p.JoinDate)
	if p.Status != nil {
		prof.Status = *p.Status
	}
	return prof
}
