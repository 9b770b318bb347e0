package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, user management
	RoleHR       Role = "hr"       // Can approve leave, manage payroll
	RoleEmployee Role = "employee" // Regular employee, own records only
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID           string
	EmployeeID   string
	Email        string
	PasswordHash string
	Role         Role
	FirstName    string
	LastName     string
	Phone        *string
	JobTitle     *string
	Department   *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the display name used in listings and notifications.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsPrivileged checks if user can see records beyond their own
func (u *User) IsPrivileged() bool {
	return u.Role == RoleHR || u.Role == RoleAdmin
}
