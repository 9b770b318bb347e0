package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrMissingRequiredFields        = errors.New("leave type, start date, and end date are required")
	ErrInvalidDateRange             = errors.New("end date must not be before start date")
)
