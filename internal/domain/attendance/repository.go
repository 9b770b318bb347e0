package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetByUserAndDate returns nil, nil when no row exists.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*Attendance, error)
	// UpsertCheckIn inserts today's row with the check-in timestamp, or sets
	// check_in on an existing row that has none (leave backfill rows).
	UpsertCheckIn(ctx context.Context, userID string, date string, checkIn time.Time) (Attendance, error)
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) error
	// UpsertLeaveDay writes a leave row for (userID, date), overwriting only
	// status/notes/updated_at when the row already exists.
	UpsertLeaveDay(ctx context.Context, userID string, date string, notes string) error
	// List returns records joined with user display fields, date ascending.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
}
