package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sunfocus/erp-backend-go/internal/domain/auth"
	"github.com/sunfocus/erp-backend-go/internal/domain/employee"
	"github.com/sunfocus/erp-backend-go/internal/domain/leave"
	"github.com/sunfocus/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Balance errors carry the remaining days
	var balanceErr *leave.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		BadRequestWithCode(w, "INSUFFICIENT_BALANCE", balanceErr.Error(), map[string]string{
			"leave_type":     string(balanceErr.LeaveType),
			"remaining_days": strconv.Itoa(balanceErr.Remaining),
			"requested_days": strconv.Itoa(balanceErr.Requested),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrMissingIdentity):
		Unauthorized(w, "Authentication required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrManagerNotFound):
		BadRequestWithCode(w, "MANAGER_NOT_FOUND", "Reporting manager not found", nil)
	case errors.Is(err, employee.ErrManagerRole):
		BadRequestWithCode(w, "INVALID_MANAGER", "Reporting manager must have the manager role", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrNoManagerAssigned):
		BadRequestWithCode(w, "NO_MANAGER_ASSIGNED", "No reporting manager assigned", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequestWithCode(w, "INVALID_DATE_RANGE", "End date cannot be before start date", nil)
	case errors.Is(err, leave.ErrUnknownLeaveType):
		BadRequestWithCode(w, "UNKNOWN_LEAVE_TYPE", "Unknown leave type", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequestWithCode(w, "INSUFFICIENT_BALANCE", "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrInvalidRequestData):
		BadRequestWithCode(w, "INVALID_REQUEST_DATA", "Leave request is missing dates or leave type", nil)
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequestWithCode(w, "INVALID_DECISION", "Decision must be Approved or Rejected", nil)
	case errors.Is(err, leave.ErrInvalidStatusFilter):
		BadRequestWithCode(w, "INVALID_STATUS", "Status must be Pending, Approved or Rejected", nil)
	case errors.Is(err, leave.ErrNotAuthorized):
		Forbidden(w, "Not authorized to decide this leave request")
	case errors.Is(err, leave.ErrNotEligible):
		Forbidden(w, "Role is not allowed to apply for leave")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
