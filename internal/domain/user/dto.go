package user

import "time"

// ============= Request DTOs =============

// CreateUserRequest is submitted by an admin to provision a new account.
// The employee ID is generated server side (EMP-YYYY-NNNN).
type CreateUserRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       Role    `json:"role"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Phone      *string `json:"phone,omitempty"`
	JobTitle   *string `json:"jobTitle,omitempty"`
	Department *string `json:"department,omitempty"`
}

// ============= Response DTOs =============

// UserResponse is the directory/profile representation of a user.
type UserResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Phone      *string   `json:"phone,omitempty"`
	JobTitle   *string   `json:"jobTitle,omitempty"`
	Department *string   `json:"department,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DisplayFields is the minimal user projection joined onto other entities.
type DisplayFields struct {
	ID         string  `json:"id"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email"`
	EmployeeID *string `json:"employeeId"`
}

// ToResponse converts a User entity to its API representation.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		EmployeeID: u.EmployeeID,
		Email:      u.Email,
		Role:       u.Role,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Phone:      u.Phone,
		JobTitle:   u.JobTitle,
		Department: u.Department,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
	}
}
