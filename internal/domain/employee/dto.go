package employee

import (
	"strings"
	"time"

	"github.com/sunfocus/erp-backend-go/internal/domain/user"
	"github.com/sunfocus/erp-backend-go/internal/pkg/validator"
)

var registrableRoles = []string{string(user.RoleEmployee), string(user.RoleManager), string(user.RoleHR)}

type RegisterEmployeeRequest struct {
	Email              string  `json:"email"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Role               string  `json:"role"`
	ReportingManagerID *string `json:"reporting_manager_id,omitempty"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.TrimSpace(r.Email)
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if !validator.IsInSlice(r.Role, registrableRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of employee, manager, HR",
		})
	}

	if r.ReportingManagerID != nil && !validator.IsValidUUID(*r.ReportingManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "reporting_manager_id",
			Message: "reporting_manager_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEmployee converts a validated request into a new active directory entry.
func (r *RegisterEmployeeRequest) ToEmployee() Employee {
	return Employee{
		Email:              r.Email,
		FirstName:          strings.TrimSpace(r.FirstName),
		LastName:           strings.TrimSpace(r.LastName),
		Role:               user.Role(r.Role),
		ReportingManagerID: r.ReportingManagerID,
		Status:             StatusActive,
	}
}

type BalanceResponse struct {
	Allotted  int `json:"allotted"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

type EmployeeResponse struct {
	ID                 string                     `json:"id"`
	Email              string                     `json:"email"`
	FullName           string                     `json:"full_name"`
	Role               string                     `json:"role"`
	ReportingManagerID *string                    `json:"reporting_manager_id,omitempty"`
	Status             string                     `json:"status"`
	LeaveBalance       map[string]BalanceResponse `json:"leave_balance"`
	CreatedAt          time.Time                  `json:"created_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	balances := make(map[string]BalanceResponse, len(e.LeaveBalance))
	for key, b := range e.LeaveBalance {
		balances[key] = BalanceResponse{Allotted: b.Allotted, Used: b.Used, Remaining: b.Remaining()}
	}
	return EmployeeResponse{
		ID:                 e.ID,
		Email:              e.Email,
		FullName:           e.FullName(),
		Role:               string(e.Role),
		ReportingManagerID: e.ReportingManagerID,
		Status:             string(e.Status),
		LeaveBalance:       balances,
		CreatedAt:          e.CreatedAt,
	}
}
