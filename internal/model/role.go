package model

// Role is the audience the assistant speaks to.
type Role string

const (
	RoleSeeker     Role = "seeker"
	RoleCompany    Role = "company"
	RoleUniversity Role = "university"
)

// Roles lists the accepted roles.
func Roles() []Role {
	return []Role{RoleSeeker, RoleCompany, RoleUniversity}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSeeker, RoleCompany, RoleUniversity:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Turn is one message of prior conversation, oldest first.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
