package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sunfocus/erp-backend-go/internal/domain/employee"
	"github.com/sunfocus/erp-backend-go/internal/fixtures"
	"github.com/sunfocus/erp-backend-go/internal/pkg/database"
)

const employeeColumns = `id, email, first_name, last_name, role, reporting_manager_id, status, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return e.getOne(ctx, query, id)
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE LOWER(email) = LOWER($1)`
	return e.getOne(ctx, query, email)
}

func (e *employeeRepositoryImpl) getOne(ctx context.Context, query string, arg string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	var emp employee.Employee
	err := q.QueryRow(ctx, query, arg).Scan(
		&emp.ID, &emp.Email, &emp.FirstName, &emp.LastName, &emp.Role,
		&emp.ReportingManagerID, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	balances, err := loadBalances(ctx, q, emp.ID)
	if err != nil {
		return employee.Employee{}, err
	}
	emp.LeaveBalance = balances

	return emp, nil
}

// Create implements employee.EmployeeRepository.
// A nil LeaveBalance is seeded with the default allotments.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if newEmployee.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
		}
		newEmployee.ID = id.String()
	}
	if newEmployee.Status == "" {
		newEmployee.Status = employee.StatusActive
	}
	if newEmployee.LeaveBalance == nil {
		newEmployee.LeaveBalance = fixtures.DefaultLeaveBalance()
	}

	err := NewTransactor(e.db).WithinTransaction(ctx, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, e.db)

		query := `
			INSERT INTO employees (id, email, first_name, last_name, role, reporting_manager_id, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at, updated_at
		`
		err := q.QueryRow(txCtx, query,
			newEmployee.ID, newEmployee.Email, newEmployee.FirstName, newEmployee.LastName,
			newEmployee.Role, newEmployee.ReportingManagerID, newEmployee.Status,
		).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return employee.ErrEmailExists
			}
			return fmt.Errorf("failed to insert employee: %w", err)
		}

		for key, b := range newEmployee.LeaveBalance {
			_, err := q.Exec(txCtx, `
				INSERT INTO leave_balances (employee_id, leave_type, allotted, used)
				VALUES ($1, $2, $3, $4)
			`, newEmployee.ID, key, b.Allotted, b.Used)
			if err != nil {
				return fmt.Errorf("failed to insert %s balance: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return newEmployee, nil
}

func loadBalances(ctx context.Context, q database.Querier, employeeID string) (map[string]employee.Balance, error) {
	rows, err := q.Query(ctx, `SELECT leave_type, allotted, used FROM leave_balances WHERE employee_id = $1`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[string]employee.Balance)
	for rows.Next() {
		var key string
		var b employee.Balance
		if err := rows.Scan(&key, &b.Allotted, &b.Used); err != nil {
			return nil, err
		}
		balances[key] = b
	}
	return balances, rows.Err()
}
