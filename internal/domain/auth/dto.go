package auth

import (
	"context"
	"fmt"

	"github.com/gcet-hr/hr-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// Principal is the authenticated identity derived from a verified session token.
type Principal struct {
	UserID string
	Email  string
	Role   user.Role
}

// PrincipalFromContext extracts the principal from verified JWT claims.
// Authorization is claim-based throughout: the role is read from the token,
// not re-fetched from storage, so role changes take effect at next login.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Principal{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Principal{}, ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Principal{}, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return Principal{
		UserID: userID,
		Email:  email,
		Role:   user.Role(role),
	}, nil
}

// Can reports whether the principal's role grants the permission.
func (p Principal) Can(permission user.Permission) bool {
	return user.HasPermission(p.Role, permission)
}

// ============= Request DTOs =============

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ============= Response DTOs =============

type LoginResponse struct {
	User      user.UserResponse `json:"user"`
	ExpiresAt int64             `json:"expiresAt"`
}
