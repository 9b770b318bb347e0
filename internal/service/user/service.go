package user

import (
	"context"
	"fmt"
	"time"

	"github.com/gcet-hr/hr-backend-go/internal/domain/auth"
	"github.com/gcet-hr/hr-backend-go/internal/domain/user"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/database"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db       *database.DB
	userRepo user.UserRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		db:       db,
		userRepo: userRepo,
	}
}

// List implements user.UserService.
// Active users excluding the caller; route-level policy restricts this to
// hr/admin.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListActive(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}

	return responses, nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidEmail(req.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if len(req.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if !user.ValidRole(req.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee, hr, or admin"})
	}
	if validator.IsEmpty(req.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "first name is required"})
	}
	if len(errs) > 0 {
		return user.UserResponse{}, errs
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	employeeID, err := s.generateEmployeeID(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	created, err := s.userRepo.Create(ctx, user.User{
		EmployeeID:   employeeID,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		JobTitle:     req.JobTitle,
		Department:   req.Department,
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return created.ToResponse(), nil
}

// generateEmployeeID produces the next sequential EMP-YYYY-NNNN id.
func (s *UserServiceImpl) generateEmployeeID(ctx context.Context) (string, error) {
	year := time.Now().Year()

	serial, err := s.userRepo.NextEmployeeSequence(ctx, year)
	if err != nil {
		return "", fmt.Errorf("failed to generate employee id: %w", err)
	}

	return fmt.Sprintf("EMP-%d-%04d", year, serial), nil
}
