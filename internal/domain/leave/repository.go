package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// ListByUser and ListAll join the requester's display name in a single
	// query rather than a per-row lookup. Ordered by created_at descending.
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	// UpdateStatus records the decision; callers check the pending state first.
	UpdateStatus(ctx context.Context, id string, status Status, approverID string, comments *string) (LeaveRequest, error)
}
