package payroll

import "errors"

var (
	ErrTargetUserNotFound    = errors.New("payroll target user not found")
	ErrMissingRequiredFields = errors.New("missing required fields")
)
