package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sunfocus/erp-backend-go/internal/domain/auth"
	"github.com/sunfocus/erp-backend-go/internal/domain/employee"
	"github.com/sunfocus/erp-backend-go/internal/domain/leave"
	"github.com/sunfocus/erp-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	tx database.Transactor
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
	employee.EmployeeRepository
	publisher leave.EventPublisher
	now       func() time.Time
}

func NewLeaveService(
	tx database.Transactor,
	leaveRequestRepository leave.LeaveRequestRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	employeeRepository employee.EmployeeRepository,
	publisher leave.EventPublisher,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		tx:                     tx,
		LeaveRequestRepository: leaveRequestRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		EmployeeRepository:     employeeRepository,
		publisher:              publisher,
		now:                    time.Now,
	}
}

// Submit implements leave.LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, caller auth.Identity, req leave.SubmitRequest) (leave.LeaveRequest, error) {
	if !caller.Role.CanApplyForLeave() {
		return leave.LeaveRequest{}, leave.ErrNotEligible
	}
	if req.EndDate.Before(req.StartDate) {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}

	var created leave.LeaveRequest
	err := l.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		emp, err := l.EmployeeRepository.GetByID(txCtx, caller.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		if !req.LeaveType.IsValid() {
			return leave.ErrUnknownLeaveType
		}

		if !emp.HasManager() {
			return leave.ErrNoManagerAssigned
		}

		days := leave.DaysBetween(req.StartDate, req.EndDate)
		balance := emp.BalanceFor(req.LeaveType.Key())
		if !balance.CanCover(days) {
			return &leave.InsufficientBalanceError{
				LeaveType: req.LeaveType,
				Remaining: balance.Remaining(),
				Requested: days,
			}
		}

		managerID := *emp.ReportingManagerID
		created, err = l.LeaveRequestRepository.Create(txCtx, leave.LeaveRequest{
			EmployeeID:    emp.ID,
			ManagerID:     &managerID,
			LeaveType:     req.LeaveType,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			Reason:        req.Reason,
			Status:        leave.LeaveRequestStatusPending,
			DaysRequested: days,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	slog.Info("leave request submitted",
		"leave_id", created.ID,
		"employee_id", created.EmployeeID,
		"leave_type", created.LeaveType,
		"days", created.DaysRequested,
	)
	return created, nil
}

// Cancel implements leave.LeaveService.
// Only the owner's Pending requests are deleted; anything else reports false.
func (l *LeaveServiceImpl) Cancel(ctx context.Context, caller auth.Identity, leaveID string) (bool, error) {
	deleted, err := l.LeaveRequestRepository.DeletePending(ctx, leaveID, caller.EmployeeID)
	if err != nil {
		return false, fmt.Errorf("failed to cancel leave request: %w", err)
	}
	if deleted {
		slog.Info("leave request cancelled", "leave_id", leaveID, "employee_id", caller.EmployeeID)
	}
	return deleted, nil
}

// Decide implements leave.LeaveService.
func (l *LeaveServiceImpl) Decide(ctx context.Context, caller auth.Identity, leaveID string, req leave.DecisionRequest) (leave.LeaveRequest, error) {
	status := leave.LeaveRequestStatus(req.Status)
	if status != leave.LeaveRequestStatusApproved && status != leave.LeaveRequestStatusRejected {
		return leave.LeaveRequest{}, leave.ErrInvalidDecision
	}

	var decided leave.LeaveRequest
	err := l.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := l.LeaveRequestRepository.GetByIDForUpdate(txCtx, leaveID)
		if err != nil {
			return err
		}

		if request.ManagerID != nil && *request.ManagerID != caller.EmployeeID {
			return leave.ErrNotAuthorized
		}

		if !request.IsPending() {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		if status == leave.LeaveRequestStatusApproved {
			if !request.HasCompleteData() {
				return leave.ErrInvalidRequestData
			}
			days := leave.DaysBetween(request.StartDate, request.EndDate)

			balance, err := l.LeaveBalanceRepository.GetForUpdate(txCtx, request.EmployeeID, request.LeaveType)
			if err != nil {
				return err
			}
			if !balance.CanCover(days) {
				return &leave.InsufficientBalanceError{
					LeaveType: request.LeaveType,
					Remaining: balance.Remaining(),
					Requested: days,
				}
			}
			request.DaysRequested = days
		}

		decidedAt := l.now().UTC()
		if err := l.LeaveRequestRepository.UpdateDecision(txCtx, request.ID, status, caller.EmployeeID, decidedAt, req.Remarks); err != nil {
			return err
		}

		if status == leave.LeaveRequestStatusApproved {
			if err := l.LeaveBalanceRepository.IncrementUsed(txCtx, request.EmployeeID, request.LeaveType, request.DaysRequested); err != nil {
				return err
			}
		}

		approver := caller.EmployeeID
		request.Status = status
		request.ApprovedBy = &approver
		request.ApprovedAt = &decidedAt
		request.Remarks = req.Remarks
		decided = request
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	slog.Info("leave request decided",
		"leave_id", decided.ID,
		"employee_id", decided.EmployeeID,
		"status", decided.Status,
		"decided_by", caller.EmployeeID,
	)

	if l.publisher != nil {
		if err := l.publisher.PublishLeaveDecided(ctx, leave.NewLeaveDecidedEvent(decided)); err != nil {
			slog.Error("failed to publish leave decision", "leave_id", decided.ID, "error", err)
		}
	}

	return decided, nil
}

// GetLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, leaveID string) (leave.LeaveRequest, error) {
	return l.LeaveRequestRepository.GetByID(ctx, leaveID)
}

// ListMyLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyLeaveRequests(ctx context.Context, caller auth.Identity) ([]leave.LeaveRequest, error) {
	employeeID := caller.EmployeeID
	return l.LeaveRequestRepository.List(ctx, leave.LeaveRequestFilter{EmployeeID: &employeeID})
}

// ListTeamLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListTeamLeaveRequests(ctx context.Context, caller auth.Identity, status *leave.LeaveRequestStatus) ([]leave.LeaveRequest, error) {
	if err := validateStatusFilter(status); err != nil {
		return nil, err
	}
	managerID := caller.EmployeeID
	return l.LeaveRequestRepository.List(ctx, leave.LeaveRequestFilter{ManagerID: &managerID, Status: status})
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, status *leave.LeaveRequestStatus) ([]leave.LeaveRequest, error) {
	if err := validateStatusFilter(status); err != nil {
		return nil, err
	}
	return l.LeaveRequestRepository.List(ctx, leave.LeaveRequestFilter{Status: status})
}

// GetMyBalance implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyBalance(ctx context.Context, caller auth.Identity) (leave.EmployeeBalanceResponse, error) {
	return l.GetEmployeeBalance(ctx, caller.EmployeeID)
}

// GetEmployeeBalance implements leave.LeaveService.
func (l *LeaveServiceImpl) GetEmployeeBalance(ctx context.Context, employeeID string) (leave.EmployeeBalanceResponse, error) {
	emp, err := l.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.EmployeeBalanceResponse{}, err
		}
		return leave.EmployeeBalanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return leave.NewEmployeeBalanceResponse(emp), nil
}

func validateStatusFilter(status *leave.LeaveRequestStatus) error {
	if status != nil && !status.IsValid() {
		return leave.ErrInvalidStatusFilter
	}
	return nil
}
