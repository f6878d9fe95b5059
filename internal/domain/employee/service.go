package employee

import "context"

// EmployeeService defines directory operations exposed to HR
type EmployeeService interface {
	// Register creates an employee with the default leave allotment
	Register(ctx context.Context, req RegisterEmployeeRequest) (Employee, error)
}
