package leave

import (
	"context"
	"time"

	"github.com/sunfocus/erp-backend-go/internal/domain/employee"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	// UpdateDecision moves a Pending request to status. It returns
	// ErrLeaveRequestAlreadyProcessed when the row is no longer Pending.
	UpdateDecision(ctx context.Context, id string, status LeaveRequestStatus, approvedBy string, approvedAt time.Time, remarks *string) error
	// DeletePending removes the request only if it belongs to employeeID and is still Pending.
	DeletePending(ctx context.Context, id, employeeID string) (bool, error)
}

// LeaveBalanceRepository - interface for leave_balances table
type LeaveBalanceRepository interface {
	// GetForUpdate locks the balance row; a missing row yields a zero balance.
	GetForUpdate(ctx context.Context, employeeID string, leaveType LeaveType) (employee.Balance, error)
	IncrementUsed(ctx context.Context, employeeID string, leaveType LeaveType, days int) error
}
