package leave

import (
	"math"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest transitions out of pending exactly once; approved and
// rejected are terminal.
type LeaveRequest struct {
	ID               string
	UserID           string
	LeaveType        string
	StartDate        time.Time
	EndDate          time.Time
	DaysCount        int
	Reason           *string
	Status           Status
	ApproverID       *string
	ApproverComments *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined requester display name
	RequesterName string
}

// DaysCount computes the inclusive day span of a leave:
// ceil((end-start)/24h) + 1, so a single-day leave counts as 1.
func DaysCount(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}
