package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gcet-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in, check_out, status, notes, created_at, updated_at
		FROM attendance
		WHERE user_id = $1 AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// UpsertCheckIn implements attendance.AttendanceRepository.
// A leave-backfill row may already exist for the date; in that case only the
// check-in timestamp and status are set. The conflict key is (user_id, date).
func (r *attendanceRepository) UpsertCheckIn(ctx context.Context, userID string, date string, checkIn time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, user_id, date, check_in, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, user_id, date, check_in, check_out, status, notes, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query,
		uuid.New().String(), userID, date, checkIn, attendance.StatusPresent,
	).Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert check-in: %w", err)
	}

	return att, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendance SET check_out = $2, updated_at = NOW() WHERE id = $1
	`, id, checkOut)
	if err != nil {
		return fmt.Errorf("failed to set check-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// UpsertLeaveDay implements attendance.AttendanceRepository.
// Re-running an approval hits the same (user_id, date) keys and rewrites the
// same status/notes, so the backfill is idempotent. Existing check-in/out
// timestamps are left untouched.
func (r *attendanceRepository) UpsertLeaveDay(ctx context.Context, userID string, date string, notes string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, user_id, date, check_in, check_out, status, notes)
		VALUES ($1, $2, $3, NULL, NULL, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE
		SET status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, uuid.New().String(), userID, date, attendance.StatusLeave, notes)
	if err != nil {
		return fmt.Errorf("failed to upsert leave day: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND a.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.DateFrom != nil && *filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil && *filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT
			a.id, a.user_id, a.date, a.check_in, a.check_out, a.status, a.notes,
			a.created_at, a.updated_at,
			u.id, u.first_name, u.last_name, u.email, u.employee_id
		FROM attendance a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE %s
		ORDER BY a.date ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var info attendance.UserInfo
		var userID *string
		err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.Status, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
			&userID, &info.FirstName, &info.LastName, &info.Email, &info.EmployeeID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		if userID != nil {
			info.ID = *userID
			att.User = &info
		}
		records = append(records, att)
	}

	return records, rows.Err()
}
