package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gcet-hr/hr-backend-go/internal/domain/auth"
	"github.com/gcet-hr/hr-backend-go/internal/domain/user"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/database"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, req auth.LoginRequest) (resp auth.LoginResponse, token string, expiresAt int64, err error)
	// Me returns the current user's stored profile.
	Me(ctx context.Context) (user.UserResponse, error)
}

type authService struct {
	db         *database.DB
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, jwtService jwt.Service) AuthService {
	return &authService{
		db:         db,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements AuthService.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidEmail(req.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if validator.IsEmpty(req.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	if len(errs) > 0 {
		return auth.LoginResponse{}, "", 0, errs
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("login lookup failed: %w", err)
	}

	if !u.IsActive {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateSessionToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to generate session token: %w", err)
	}

	return auth.LoginResponse{
		User:      u.ToResponse(),
		ExpiresAt: expiresAt,
	}, token, expiresAt, nil
}

// Me implements AuthService.
func (s *authService) Me(ctx context.Context) (user.UserResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, auth.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to load profile: %w", err)
	}

	return u.ToResponse(), nil
}
