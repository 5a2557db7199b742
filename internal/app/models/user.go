package models

// User is the single signed-in user of the dashboard
type User struct {
	ID     string   `json:"id" example:"user-001"`
	Name   string   `json:"name" example:"Admin User"`
	Email  string   `json:"email" example:"admin@studentforce.edu"`
	Role   RoleType `json:"role" example:"Admin" enums:"Admin,Instructor,Student,Registrar"`
	Avatar string   `json:"avatar,omitempty"` // Optional avatar URL
}

// UserPatch is a partial update of the current user. The role is not editable.
type UserPatch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// Apply returns a copy of u with the patch merged in
func (p UserPatch) Apply(u User) User {
	applyString(&u.Name, p.Name)
	applyString(&u.Email, p.Email)
	applyString(&u.Avatar, p.Avatar)
	return u
}
