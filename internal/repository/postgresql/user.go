package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gcet-hr/hr-backend-go/internal/domain/user"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, employee_id, email, password_hash, role, first_name, last_name,
	phone, job_title, department, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.EmployeeID, &u.Email, &u.PasswordHash, &u.Role,
		&u.FirstName, &u.LastName, &u.Phone, &u.JobTitle, &u.Department,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 LIMIT 1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

// Exists implements user.UserRepository.
func (r *userRepository) Exists(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if newUser.ID == "" {
		newUser.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (
			id, employee_id, email, password_hash, role, first_name, last_name,
			phone, job_title, department, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.ID,
		newUser.EmployeeID,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.FirstName,
		newUser.LastName,
		newUser.Phone,
		newUser.JobTitle,
		newUser.Department,
		newUser.IsActive,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// ListActive implements user.UserRepository.
func (r *userRepository) ListActive(ctx context.Context, excludeUserID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE is_active = TRUE AND id <> $1
		ORDER BY created_at ASC
	`, userColumns)

	rows, err := q.Query(ctx, query, excludeUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// NextEmployeeSequence implements user.UserRepository.
// Serials restart at 1 each year; EMP-2024-0007 is the 7th hire of 2024.
func (r *userRepository) NextEmployeeSequence(ctx context.Context, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	prefix := fmt.Sprintf("EMP-%d-", year)

	query := `
		SELECT COALESCE(MAX(CAST(RIGHT(employee_id, 4) AS INTEGER)), 0)
		FROM users
		WHERE employee_id LIKE $1 || '%'
	`

	var maxSerial int
	if err := q.QueryRow(ctx, query, prefix).Scan(&maxSerial); err != nil {
		return 0, fmt.Errorf("failed to get max employee serial: %w", err)
	}

	return maxSerial + 1, nil
}
