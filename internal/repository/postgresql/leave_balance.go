package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sunfocus/erp-backend-go/internal/domain/employee"
	"github.com/sunfocus/erp-backend-go/internal/domain/leave"
	"github.com/sunfocus/erp-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// GetForUpdate implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetForUpdate(ctx context.Context, employeeID string, leaveType leave.LeaveType) (employee.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT allotted, used
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type = $2
		FOR UPDATE
	`

	var b employee.Balance
	err := q.QueryRow(ctx, query, employeeID, leaveType.Key()).Scan(&b.Allotted, &b.Used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Balance{}, nil
		}
		return employee.Balance{}, fmt.Errorf("failed to lock %s balance: %w", leaveType.Key(), err)
	}
	return b, nil
}

// IncrementUsed implements leave.LeaveBalanceRepository.
// A missing row is created with a zero allotment so the debit is never lost.
func (r *leaveBalanceRepositoryImpl) IncrementUsed(ctx context.Context, employeeID string, leaveType leave.LeaveType, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (employee_id, leave_type, allotted, used)
		VALUES ($1, $2, 0, $3)
		ON CONFLICT (employee_id, leave_type)
		DO UPDATE SET used = leave_balances.used + EXCLUDED.used, updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, employeeID, leaveType.Key(), days); err != nil {
		return fmt.Errorf("failed to increment %s used: %w", leaveType.Key(), err)
	}
	return nil
}
