package employee

import "context"

// EmployeeRepository is the read side of the employee directory plus the
// registration insert that seeds default leave balances.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
}
