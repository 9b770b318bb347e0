package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gcet-hr/hr-backend-go/internal/domain/user"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	active       []user.User
	excludedID   string
	created      user.User
	nextSequence int
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepo) Exists(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	newUser.ID = "user-new"
	s.created = newUser
	return newUser, nil
}

func (s *stubUserRepo) ListActive(ctx context.Context, excludeUserID string) ([]user.User, error) {
	s.excludedID = excludeUserID
	return s.active, nil
}

func (s *stubUserRepo) NextEmployeeSequence(ctx context.Context, year int) (int, error) {
	return s.nextSequence, nil
}

func callerCtx(t *testing.T, userID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   "caller@example.com",
		"role":    role,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestListExcludesCaller(t *testing.T) {
	repo := &stubUserRepo{
		active: []user.User{{ID: "user-2", FirstName: "Sam", IsActive: true}},
	}
	svc := NewUserService(nil, repo)

	users, err := svc.List(callerCtx(t, "hr-1", "hr"))
	require.NoError(t, err)
	assert.Equal(t, "hr-1", repo.excludedID)
	require.Len(t, users, 1)
	assert.Equal(t, "user-2", users[0].ID)
}

func TestCreateUser(t *testing.T) {
	repo := &stubUserRepo{nextSequence: 42}
	svc := NewUserService(nil, repo)

	resp, err := svc.Create(callerCtx(t, "admin-1", "admin"), user.CreateUserRequest{
		Email:     "new@example.com",
		Password:  "long-enough-password",
		Role:      user.RoleEmployee,
		FirstName: "New",
		LastName:  "Hire",
	})
	require.NoError(t, err)

	wantEmployeeID := "EMP-" + validator.Itoa(time.Now().Year()) + "-0042"
	assert.Equal(t, wantEmployeeID, resp.EmployeeID)
	assert.True(t, validator.IsValidEmployeeID(resp.EmployeeID))
	assert.True(t, resp.IsActive)

	// stored hash must verify against the submitted password
	err = bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("long-enough-password"))
	assert.NoError(t, err)
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewUserService(nil, &stubUserRepo{nextSequence: 1})

	_, err := svc.Create(callerCtx(t, "admin-1", "admin"), user.CreateUserRequest{
		Email:    "not-an-email",
		Password: "short",
		Role:     user.Role("superuser"),
	})
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	m := errs.ToMap()
	for _, field := range []string{"email", "password", "role", "firstName"} {
		assert.Contains(t, m, field)
	}
}
