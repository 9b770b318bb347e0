package user

import "context"

// UserService covers the user directory operations.
type UserService interface {
	// List returns active users excluding the caller. Requires user.view_all.
	List(ctx context.Context) ([]UserResponse, error)
	// Create provisions a new account with a generated employee ID. Admin only.
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
}
