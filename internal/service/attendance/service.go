package attendance

import (
	"context"
	"time"

	"github.com/gcet-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gcet-hr/hr-backend-go/internal/domain/auth"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.CheckInResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, principal.UserID, today)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}
	if existing != nil && existing.CheckIn != nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	// A leave-backfill row without a check-in is overwritten by the upsert,
	// keyed on (user_id, date).
	if _, err := s.attendanceRepo.UpsertCheckIn(ctx, principal.UserID, today, now); err != nil {
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{
		Message:     "Check-in successful",
		CheckInTime: now,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.CheckOutResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, principal.UserID, today)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}
	if existing == nil || existing.CheckIn == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNoCheckInToday
	}
	if existing.CheckOut != nil {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	if err := s.attendanceRepo.SetCheckOut(ctx, existing.ID, now); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	return attendance.CheckOutResponse{
		Message:      "Check-out successful",
		CheckOutTime: now,
	}, nil
}

// List implements attendance.AttendanceService. Route-level policy restricts
// this to attendance.view_all holders; the filter passes through unchanged.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// ListMine implements attendance.AttendanceService. The caller's own records
// only: the user filter is pinned to the principal regardless of input.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter.UserID = &principal.UserID

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, records[i].ToResponse())
	}
	return responses
}
