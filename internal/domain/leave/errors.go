package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrNoManagerAssigned            = errors.New("no reporting manager assigned")
	ErrInvalidDateRange             = errors.New("end date cannot be before start date")
	ErrUnknownLeaveType             = errors.New("unknown leave type")
	ErrInsufficientBalance          = errors.New("insufficient leave balance")
	ErrNotAuthorized                = errors.New("not authorized to decide this leave request")
	ErrInvalidRequestData           = errors.New("leave request is missing dates or leave type")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidDecision              = errors.New("decision must be Approved or Rejected")
	ErrNotEligible                  = errors.New("role is not allowed to apply for leave")
	ErrInvalidStatusFilter          = errors.New("status must be Pending, Approved or Rejected")
)

// InsufficientBalanceError carries the remaining days of the requested type.
// It matches ErrInsufficientBalance under errors.Is.
type InsufficientBalanceError struct {
	LeaveType LeaveType
	Remaining int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s leave balance: %d days remaining, %d requested",
		e.LeaveType.Key(), e.Remaining, e.Requested)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
