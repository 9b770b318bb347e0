package response

import (
	"errors"
	"net/http"

	"github.com/gcet-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gcet-hr/hr-backend-go/internal/domain/auth"
	"github.com/gcet-hr/hr-backend-go/internal/domain/leave"
	"github.com/gcet-hr/hr-backend-go/internal/domain/notification"
	"github.com/gcet-hr/hr-backend-go/internal/domain/payroll"
	"github.com/gcet-hr/hr-backend-go/internal/domain/user"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Validation errors carry a field map
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrMissingToken):
		Unauthorized(w, "No authentication token found")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNoCheckInToday):
		BadRequest(w, "No check-in record found for today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		BadRequest(w, "Leave request already processed", nil)
	case errors.Is(err, leave.ErrMissingRequiredFields):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrTargetUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, payroll.ErrMissingRequiredFields):
		BadRequest(w, "Missing required fields", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrInvalidIDList):
		BadRequest(w, "Invalid notification IDs", nil)

	// Default: log-worthy unexpected failure, generic message to caller
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
