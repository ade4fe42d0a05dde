package models

import "fmt"

// Role is the closed set of account types. It is stored as text in the
// users table and carried in the auth token.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleOrganizer Role = "ORGANIZER"
	RoleAttendee  Role = "ATTENDEE"
)

var dashboardLabels = map[Role]string{
	RoleAdmin:     "Admin Dashboard",
	RoleOrganizer: "Organizer Dashboard",
	RoleAttendee:  "Attendee Dashboard",
}

// ParseRole normalizes and validates a role name coming from a request.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleOrganizer, RoleAttendee:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// DashboardLabel returns the heading the presentation layer shows for the
// role. Unknown roles fall back to the attendee label.
func (r Role) DashboardLabel() string {
	if l, ok := dashboardLabels[r]; ok {
		return l
	}
	return dashboardLabels[RoleAttendee]
}

type User struct {
	ID                 int64  `json:"id"`
	Username           string `json:"username"`
	PasswordHash       string `json:"-"`
	Role               Role   `json:"role"`
	EmailNotifications bool   `json:"emailNotifications"`
}
