package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/gcet-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gcet-hr/hr-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	existing *attendance.Attendance
	getErr   error

	upsertedUserID string
	upsertedDate   string
	checkedOutID   string
	listFilter     attendance.ListFilter
	listResult     []attendance.Attendance
}

func (s *stubAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Attendance, error) {
	return s.existing, s.getErr
}

func (s *stubAttendanceRepo) UpsertCheckIn(ctx context.Context, userID string, date string, checkIn time.Time) (attendance.Attendance, error) {
	s.upsertedUserID = userID
	s.upsertedDate = date
	return attendance.Attendance{ID: "att-1", UserID: userID, CheckIn: &checkIn}, nil
}

func (s *stubAttendanceRepo) SetCheckOut(ctx context.Context, id string, checkOut time.Time) error {
	s.checkedOutID = id
	return nil
}

func (s *stubAttendanceRepo) UpsertLeaveDay(ctx context.Context, userID string, date string, notes string) error {
	return nil
}

func (s *stubAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	s.listFilter = filter
	return s.listResult, nil
}

func principalCtx(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   "test@example.com",
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCheckInFirstOfTheDay(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := NewAttendanceService(nil, repo)
	ctx := principalCtx(t, "user-1", user.RoleEmployee)

	resp, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Check-in successful", resp.Message)
	assert.Equal(t, "user-1", repo.upsertedUserID)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), repo.upsertedDate)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	checkIn := time.Now().UTC()
	repo := &stubAttendanceRepo{
		existing: &attendance.Attendance{ID: "att-1", UserID: "user-1", CheckIn: &checkIn},
	}
	svc := NewAttendanceService(nil, repo)
	ctx := principalCtx(t, "user-1", user.RoleEmployee)

	_, err := svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.Empty(t, repo.upsertedUserID)
}

func TestCheckInOverLeaveBackfillRow(t *testing.T) {
	// a leave-approval row exists for today but carries no check-in
	repo := &stubAttendanceRepo{
		existing: &attendance.Attendance{ID: "att-1", UserID: "user-1", Status: attendance.StatusLeave},
	}
	svc := NewAttendanceService(nil, repo)
	ctx := principalCtx(t, "user-1", user.RoleEmployee)

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", repo.upsertedUserID)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := NewAttendanceService(nil, repo)
	ctx := principalCtx(t, "user-1", user.RoleEmployee)

	_, err := svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrNoCheckInToday)
}

func TestCheckOut(t *testing.T) {
	checkIn := time.Now().UTC().Add(-8 * time.Hour)
	repo := &stubAttendanceRepo{
		existing: &attendance.Attendance{ID: "att-7", UserID: "user-1", CheckIn: &checkIn},
	}
	svc := NewAttendanceService(nil, repo)
	ctx := principalCtx(t, "user-1", user.RoleEmployee)

	resp, err := svc.CheckOut(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Check-out successful", resp.Message)
	assert.Equal(t, "att-7", repo.checkedOutID)
}

func TestCheckOutTwice(t *testing.T) {
	checkIn := time.Now().UTC().Add(-9 * time.Hour)
	checkOut := time.Now().UTC()
	repo := &stubAttendanceRepo{
		existing: &attendance.Attendance{ID: "att-7", UserID: "user-1", CheckIn: &checkIn, CheckOut: &checkOut},
	}
	svc := NewAttendanceService(nil, repo)
	ctx := principalCtx(t, "user-1", user.RoleEmployee)

	_, err := svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	assert.Empty(t, repo.checkedOutID)
}

func TestListMinePinsCallerID(t *testing.T) {
	otherID := "someone-else"
	repo := &stubAttendanceRepo{}
	svc := NewAttendanceService(nil, repo)
	ctx := principalCtx(t, "user-1", user.RoleEmployee)

	_, err := svc.ListMine(ctx, attendance.ListFilter{UserID: &otherID})
	require.NoError(t, err)
	require.NotNil(t, repo.listFilter.UserID)
	assert.Equal(t, "user-1", *repo.listFilter.UserID)
}

func TestCheckInRequiresPrincipal(t *testing.T) {
	svc := NewAttendanceService(nil, &stubAttendanceRepo{})

	_, err := svc.CheckIn(context.Background())
	assert.Error(t, err)
}
