package models

// Student defines a student record
type Student struct {
	ID             string        `json:"id" example:"st-001"`                    // Unique identifier, assigned by the store
	FirstName      string        `json:"firstName" example:"John"`               // Student's first name
	LastName       string        `json:"lastName" example:"Smith"`               // Student's last name
	Email          string        `json:"email" example:"john.smith@example.com"` // Contact email
	Phone          string        `json:"phone" example:"(555) 123-4567"`         // Contact phone
	DateOfBirth    string        `json:"dateOfBirth" example:"1998-05-12"`       // ISO date
	Address        string        `json:"address" example:"123 Campus Drive"`     // Postal address
	EnrollmentDate string        `json:"enrollmentDate" example:"2022-09-01"`    // ISO date the student joined
	Status         StudentStatus `json:"status" example:"Active" enums:"Active,Inactive,Graduated"`
}

// FullName returns "First Last"
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// StudentPatch carries the fields of a partial student update; nil fields are left untouched
type StudentPatch struct {
	FirstName      *string        `json:"firstName,omitempty"`
	LastName       *string        `json:"lastName,omitempty"`
	Email          *string        `json:"email,omitempty"`
	Phone          *string        `json:"phone,omitempty"`
	DateOfBirth    *string        `json:"dateOfBirth,omitempty"`
	Address        *string        `json:"address,omitempty"`
	EnrollmentDate *string        `json:"enrollmentDate,omitempty"`
	Status         *StudentStatus `json:"status,omitempty"`
}

// Apply returns a copy of s with the patch merged in
func (p StudentPatch) Apply(s Student) Student {
	applyString(&s.FirstName, p.FirstName)
	applyString(&s.LastName, p.LastName)
	applyString(&s.Email, p.Email)
	applyString(&s.Phone, p.Phone)
	applyString(&s.DateOfBirth, p.DateOfBirth)
	applyString(&s.Address, p.Address)
	applyString(&s.EnrollmentDate, p.EnrollmentDate)
	if p.Status != nil {
		s.Status = *p.Status
	}
	return s
}
