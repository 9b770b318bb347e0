package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	// List is role-scoped: employees see their own requests, hr/admin see all.
	List(ctx context.Context) ([]LeaveResponse, error)
	// Approve transitions pending→approved, notifies the owner, and backfills
	// the attendance ledger over the leave's date range, atomically.
	Approve(ctx context.Context, leaveID string, req DecideLeaveRequest) (DecisionResponse, error)
	// Reject mirrors Approve without the attendance backfill.
	Reject(ctx context.Context, leaveID string, req DecideLeaveRequest) (DecisionResponse, error)
}
