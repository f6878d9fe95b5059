package leave

import (
	"context"

	"github.com/sunfocus/erp-backend-go/internal/domain/auth"
)

type LeaveService interface {
	// Workflow
	Submit(ctx context.Context, caller auth.Identity, req SubmitRequest) (LeaveRequest, error)
	Cancel(ctx context.Context, caller auth.Identity, leaveID string) (bool, error)
	Decide(ctx context.Context, caller auth.Identity, leaveID string, req DecisionRequest) (LeaveRequest, error)
	// Queries
	GetLeaveRequest(ctx context.Context, leaveID string) (LeaveRequest, error)
	ListMyLeaveRequests(ctx context.Context, caller auth.Identity) ([]LeaveRequest, error)
	ListTeamLeaveRequests(ctx context.Context, caller auth.Identity, status *LeaveRequestStatus) ([]LeaveRequest, error)
	ListLeaveRequests(ctx context.Context, status *LeaveRequestStatus) ([]LeaveRequest, error)
	// Balances
	GetMyBalance(ctx context.Context, caller auth.Identity) (EmployeeBalanceResponse, error)
	GetEmployeeBalance(ctx context.Context, employeeID string) (EmployeeBalanceResponse, error)
}
