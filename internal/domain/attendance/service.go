package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context) (CheckInResponse, error)
	CheckOut(ctx context.Context) (CheckOutResponse, error)
	// List returns any user's records. Requires attendance.view_all.
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
	// ListMine returns the caller's records regardless of role.
	ListMine(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
}
