package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sunfocus/erp-backend-go/internal/domain/employee"
	"github.com/sunfocus/erp-backend-go/internal/domain/user"
	"github.com/sunfocus/erp-backend-go/internal/fixtures"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Register implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	_, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return employee.Employee{}, employee.ErrEmailExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to check email: %w", err)
	}

	if req.ReportingManagerID != nil {
		manager, err := s.employeeRepo.GetByID(ctx, *req.ReportingManagerID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.Employee{}, employee.ErrManagerNotFound
			}
			return employee.Employee{}, fmt.Errorf("failed to get reporting manager: %w", err)
		}
		if manager.Role != user.RoleManager {
			return employee.Employee{}, employee.ErrManagerRole
		}
	}

	newEmployee := req.ToEmployee()
	newEmployee.LeaveBalance = fixtures.DefaultLeaveBalance()

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("employee registered", "employee_id", created.ID, "role", created.Role)
	return created, nil
}
