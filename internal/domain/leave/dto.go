package leave

import (
	"time"

	"github.com/gcet-hr/hr-backend-go/internal/pkg/validator"
)

// ============= Request DTOs =============

type CreateLeaveRequest struct {
	LeaveType string  `json:"leave_type"`
	StartDate string  `json:"start_date"` // YYYY-MM-DD
	EndDate   string  `json:"end_date"`   // YYYY-MM-DD
	Reason    *string `json:"reason,omitempty"`
}

// Validate checks required fields and date formats.
func (r *CreateLeaveRequest) Validate() (start, end time.Time, err error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave type is required"})
	}

	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date is required in YYYY-MM-DD format"})
	}
	end, ok = validator.IsValidDate(r.EndDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date is required in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	if end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must not be before start date"})
		return time.Time{}, time.Time{}, errs
	}

	return start, end, nil
}

type DecideLeaveRequest struct {
	ApproverComments *string `json:"approver_comments,omitempty"`
}

// ============= Response DTOs =============

// LeaveResponse is a leave row enriched with the requester's display name.
type LeaveResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	LeaveType        string    `json:"leaveType"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	DaysCount        int       `json:"daysCount"`
	Reason           *string   `json:"reason,omitempty"`
	Status           Status    `json:"status"`
	ApproverComments *string   `json:"approverComments,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToastPayload mirrors the notification so the caller's UI can show an
// immediate toast without a second fetch.
type ToastPayload struct {
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type DecisionResponse struct {
	Message string        `json:"message"`
	Leave   LeaveResponse `json:"leave"`
	Toast   ToastPayload  `json:"toast"`
}

// ToResponse converts a LeaveRequest entity to its API representation.
func (l *LeaveRequest) ToResponse() LeaveResponse {
	return LeaveResponse{
		ID:               l.ID,
		Name:             l.RequesterName,
		LeaveType:        l.LeaveType,
		StartDate:        l.StartDate.Format("2006-01-02"),
		EndDate:          l.EndDate.Format("2006-01-02"),
		DaysCount:        l.DaysCount,
		Reason:           l.Reason,
		Status:           l.Status,
		ApproverComments: l.ApproverComments,
		CreatedAt:        l.CreatedAt,
	}
}
