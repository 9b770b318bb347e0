package user

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, newUser User) (User, error)
	// ListActive returns active users excluding the given user.
	ListActive(ctx context.Context, excludeUserID string) ([]User, error)
	// NextEmployeeSequence returns the next serial for EMP-<year>-NNNN ids.
	NextEmployeeSequence(ctx context.Context, year int) (int, error)
}
