package leave

import (
	"time"

	"github.com/sunfocus/erp-backend-go/internal/domain/employee"
	"github.com/sunfocus/erp-backend-go/internal/pkg/validator"
)

const maxReasonLength = 1000

type CreateLeaveRequestRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	// Leave type
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	// Dates
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	// Reason
	if !validator.MaxLength(r.Reason, maxReasonLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToSubmitRequest converts a validated request body into workflow input.
func (r *CreateLeaveRequestRequest) ToSubmitRequest() SubmitRequest {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return SubmitRequest{
		LeaveType: LeaveType(r.LeaveType),
		StartDate: start,
		EndDate:   end,
		Reason:    r.Reason,
	}
}

// SubmitRequest is the workflow input for a new leave request.
type SubmitRequest struct {
	LeaveType LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

type DecisionRequest struct {
	Status  string  `json:"status"`
	Remarks *string `json:"remarks,omitempty"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}
	if r.Remarks != nil && !validator.MaxLength(*r.Remarks, maxReasonLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "remarks",
			Message: "remarks must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	EmployeeName  *string    `json:"employee_name,omitempty"`
	EmployeeEmail *string    `json:"email,omitempty"`
	ManagerID     *string    `json:"manager_id"`
	LeaveType     string     `json:"leave_type"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	DaysRequested int        `json:"days_requested"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status"`
	ApprovedBy    *string    `json:"approved_by"`
	ApprovedAt    *time.Time `json:"approved_at"`
	Remarks       *string    `json:"remarks"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		EmployeeEmail: r.EmployeeEmail,
		ManagerID:     r.ManagerID,
		LeaveType:     string(r.LeaveType),
		StartDate:     formatDate(r.StartDate),
		EndDate:       formatDate(r.EndDate),
		DaysRequested: r.DaysRequested,
		Reason:        r.Reason,
		Status:        string(r.Status),
		ApprovedBy:    r.ApprovedBy,
		ApprovedAt:    r.ApprovedAt,
		Remarks:       r.Remarks,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type ListLeaveRequestResponse struct {
	TotalCount int                    `json:"total_count"`
	Requests   []LeaveRequestResponse `json:"requests"`
}

func NewListLeaveRequestResponse(requests []LeaveRequest) ListLeaveRequestResponse {
	responses := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, NewLeaveRequestResponse(r))
	}
	return ListLeaveRequestResponse{
		TotalCount: len(responses),
		Requests:   responses,
	}
}

type LeaveBalanceResponse struct {
	LeaveType string `json:"leave_type"`
	Allotted  int    `json:"allotted"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
}

type EmployeeBalanceResponse struct {
	EmployeeID   string                 `json:"employee_id"`
	EmployeeName string                 `json:"employee_name"`
	Balances     []LeaveBalanceResponse `json:"balances"`
}

// NewEmployeeBalanceResponse lists every leave type, zero-filled where the employee has no allotment.
func NewEmployeeBalanceResponse(emp employee.Employee) EmployeeBalanceResponse {
	balances := make([]LeaveBalanceResponse, 0, len(LeaveTypes))
	for _, lt := range LeaveTypes {
		b := emp.BalanceFor(lt.Key())
		balances = append(balances, LeaveBalanceResponse{
			LeaveType: string(lt),
			Allotted:  b.Allotted,
			Used:      b.Used,
			Remaining: b.Remaining(),
		})
	}
	return EmployeeBalanceResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		Balances:     balances,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(validator.DateLayout)
}
