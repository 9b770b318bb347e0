package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gcet-hr/hr-backend-go/internal/domain/leave"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Requester name is joined in the listing queries instead of a per-row user
// lookup.
const leaveSelect = `
	SELECT
		l.id, l.user_id, l.leave_type, l.start_date, l.end_date, l.days_count,
		l.reason, l.status, l.approver_id, l.approver_comments, l.created_at, l.updated_at,
		COALESCE(u.first_name, 'Unknown') || ' ' || COALESCE(u.last_name, '')
	FROM leaves l
	LEFT JOIN users u ON u.id = l.user_id
`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID, &l.UserID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.DaysCount,
		&l.Reason, &l.Status, &l.ApproverID, &l.ApproverComments, &l.CreatedAt, &l.UpdatedAt,
		&l.RequesterName,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leaves (id, user_id, leave_type, start_date, end_date, days_count, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.UserID, req.LeaveType, req.StartDate, req.EndDate,
		req.DaysCount, req.Reason, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, leaveSelect+` WHERE l.id = $1 LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return l, nil
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	return r.list(ctx, leaveSelect+` WHERE l.user_id = $1 ORDER BY l.created_at DESC`, userID)
}

// ListAll implements leave.LeaveRepository.
func (r *leaveRepository) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(ctx, leaveSelect+` ORDER BY l.created_at DESC`)
}

func (r *leaveRepository) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, approverID string, comments *string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $2, approver_id = $3, approver_comments = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, leave_type, start_date, end_date, days_count,
			reason, status, approver_id, approver_comments, created_at, updated_at
	`

	var l leave.LeaveRequest
	err := q.QueryRow(ctx, query, id, status, approverID, comments).Scan(
		&l.ID, &l.UserID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.DaysCount,
		&l.Reason, &l.Status, &l.ApproverID, &l.ApproverComments, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return l, nil
}
