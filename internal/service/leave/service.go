package leave

import (
	"context"
	"fmt"

	"github.com/gcet-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gcet-hr/hr-backend-go/internal/domain/auth"
	"github.com/gcet-hr/hr-backend-go/internal/domain/leave"
	"github.com/gcet-hr/hr-backend-go/internal/domain/notification"
	"github.com/gcet-hr/hr-backend-go/internal/domain/user"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/database"
	"github.com/gcet-hr/hr-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db               *database.DB
	leaveRepo        leave.LeaveRepository
	attendanceRepo   attendance.AttendanceRepository
	notificationRepo notification.Repository
	userRepo         user.UserRepository
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRepository,
	attendanceRepo attendance.AttendanceRepository,
	notificationRepo notification.Repository,
	userRepo user.UserRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:               db,
		leaveRepo:        leaveRepo,
		attendanceRepo:   attendanceRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, end, err := req.Validate()
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID:    principal.UserID,
		LeaveType: req.LeaveType,
		StartDate: start,
		EndDate:   end,
		DaysCount: leave.DaysCount(start, end),
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return created.ToResponse(), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var leaves []leave.LeaveRequest
	if principal.Can(user.PermissionLeaveViewAll) {
		leaves, err = s.leaveRepo.ListAll(ctx)
	} else {
		leaves, err = s.leaveRepo.ListByUser(ctx, principal.UserID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		responses = append(responses, leaves[i].ToResponse())
	}

	return responses, nil
}

// Approve implements leave.LeaveService.
// The status update, the owner's notification, and the attendance backfill
// commit or roll back together: a crash mid-sequence must not leave an
// approved leave without its ledger days.
func (s *LeaveServiceImpl) Approve(ctx context.Context, leaveID string, req leave.DecideLeaveRequest) (leave.DecisionResponse, error) {
	principal, approverName, err := s.approverFromContext(ctx)
	if err != nil {
		return leave.DecisionResponse{}, err
	}

	l, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return leave.DecisionResponse{}, err
	}
	if l.Status != leave.StatusPending {
		return leave.DecisionResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	startStr := l.StartDate.Format("2006-01-02")
	endStr := l.EndDate.Format("2006-01-02")
	link := "/leave"

	var updated leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		updated, err = s.leaveRepo.UpdateStatus(txCtx, leaveID, leave.StatusApproved, principal.UserID, req.ApproverComments)
		if err != nil {
			return err
		}

		n := &notification.Notification{
			UserID:  l.UserID,
			Title:   "Leave Approved",
			Message: fmt.Sprintf("Your leave from %s to %s has been approved by %s.", startStr, endStr, approverName),
			Type:    notification.TypeLeaveStatus,
			Link:    &link,
			Payload: map[string]interface{}{
				"leaveId":  l.ID,
				"action":   "approved",
				"approver": approverName,
			},
		}
		if err := s.notificationRepo.Create(txCtx, n); err != nil {
			return err
		}

		// Backfill one ledger row per calendar day, inclusive. The
		// (user_id, date) upsert keeps this idempotent on re-run.
		notes := fmt.Sprintf("Leave approved: %s", l.LeaveType)
		for d := l.StartDate; !d.After(l.EndDate); d = d.AddDate(0, 0, 1) {
			if err := s.attendanceRepo.UpsertLeaveDay(txCtx, l.UserID, d.Format("2006-01-02"), notes); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return leave.DecisionResponse{}, err
	}

	updated.RequesterName = l.RequesterName

	return leave.DecisionResponse{
		Message: "Leave approved successfully",
		Leave:   updated.ToResponse(),
		Toast: leave.ToastPayload{
			UserID:  l.UserID,
			Title:   "Leave Approved",
			Message: fmt.Sprintf("Your leave from %s to %s has been approved.", startStr, endStr),
			Type:    "success",
		},
	}, nil
}

// Reject implements leave.LeaveService. Same state rules as Approve, no
// attendance backfill.
func (s *LeaveServiceImpl) Reject(ctx context.Context, leaveID string, req leave.DecideLeaveRequest) (leave.DecisionResponse, error) {
	principal, approverName, err := s.approverFromContext(ctx)
	if err != nil {
		return leave.DecisionResponse{}, err
	}

	l, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return leave.DecisionResponse{}, err
	}
	if l.Status != leave.StatusPending {
		return leave.DecisionResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	startStr := l.StartDate.Format("2006-01-02")
	endStr := l.EndDate.Format("2006-01-02")
	link := "/leave"

	var updated leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		updated, err = s.leaveRepo.UpdateStatus(txCtx, leaveID, leave.StatusRejected, principal.UserID, req.ApproverComments)
		if err != nil {
			return err
		}

		n := &notification.Notification{
			UserID:  l.UserID,
			Title:   "Leave Rejected",
			Message: fmt.Sprintf("Your leave from %s to %s has been rejected by %s.", startStr, endStr, approverName),
			Type:    notification.TypeLeaveStatus,
			Link:    &link,
			Payload: map[string]interface{}{
				"leaveId":  l.ID,
				"action":   "rejected",
				"approver": approverName,
			},
		}
		return s.notificationRepo.Create(txCtx, n)
	})
	if err != nil {
		return leave.DecisionResponse{}, err
	}

	updated.RequesterName = l.RequesterName

	return leave.DecisionResponse{
		Message: "Leave rejected",
		Leave:   updated.ToResponse(),
		Toast: leave.ToastPayload{
			UserID:  l.UserID,
			Title:   "Leave Rejected",
			Message: fmt.Sprintf("Your leave from %s to %s has been rejected.", startStr, endStr),
			Type:    "info",
		},
	}, nil
}

// approverFromContext resolves the acting principal and their display name
// for notification messages.
func (s *LeaveServiceImpl) approverFromContext(ctx context.Context) (auth.Principal, string, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return auth.Principal{}, "", err
	}

	approver, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return auth.Principal{}, "", fmt.Errorf("failed to load approver: %w", err)
	}

	return principal, approver.FullName(), nil
}
