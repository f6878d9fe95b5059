package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sunfocus/erp-backend-go/internal/domain/leave"
	"github.com/sunfocus/erp-backend-go/internal/pkg/database"
)

const leaveRequestSelect = `
	SELECT lr.id, lr.employee_id, lr.manager_id, lr.leave_type, lr.start_date, lr.end_date,
		lr.reason, lr.status, lr.days_requested, lr.approved_by, lr.approved_at, lr.remarks,
		lr.created_at, lr.updated_at,
		NULLIF(TRIM(e.first_name || ' ' || e.last_name), ''), e.email
	FROM leave_requests lr
	LEFT JOIN employees e ON lr.employee_id = e.id
`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to generate leave request id: %w", err)
	}
	request.ID = id.String()

	query := `
		INSERT INTO leave_requests (
			id, employee_id, manager_id, leave_type,
			start_date, end_date, reason, status, days_requested
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9
		)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.ManagerID, string(request.LeaveType),
		request.StartDate, request.EndDate, request.Reason, string(request.Status), request.DaysRequested,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to insert leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getOne(ctx, leaveRequestSelect+` WHERE lr.id = $1`, id)
}

// GetByIDForUpdate implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getOne(ctx, leaveRequestSelect+` WHERE lr.id = $1 FOR UPDATE OF lr`, id)
}

func (r *leaveRequestRepositoryImpl) getOne(ctx context.Context, query, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.ManagerID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.manager_id = $%d", argPos))
		args = append(args, *filter.ManagerID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argPos))
		args = append(args, string(*filter.Status))
		argPos++
	}

	query := leaveRequestSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY lr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// UpdateDecision implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateDecision(ctx context.Context, id string, status leave.LeaveRequestStatus, approvedBy string, approvedAt time.Time, remarks *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = $3, remarks = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6
	`
	tag, err := q.Exec(ctx, query, string(status), approvedBy, approvedAt, remarks, id, string(leave.LeaveRequestStatusPending))
	if err != nil {
		return fmt.Errorf("failed to update leave request decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	return nil
}

// DeletePending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) DeletePending(ctx context.Context, id, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leave_requests
		WHERE id = $1 AND employee_id = $2 AND status = $3
	`
	tag, err := q.Exec(ctx, query, id, employeeID, string(leave.LeaveRequestStatusPending))
	if err != nil {
		return false, fmt.Errorf("failed to delete leave request: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	var leaveType *string
	var startDate, endDate *time.Time

	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.ManagerID, &leaveType, &startDate, &endDate,
		&lr.Reason, &lr.Status, &lr.DaysRequested, &lr.ApprovedBy, &lr.ApprovedAt, &lr.Remarks,
		&lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName, &lr.EmployeeEmail,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if leaveType != nil {
		lr.LeaveType = leave.LeaveType(*leaveType)
	}
	if startDate != nil {
		lr.StartDate = *startDate
	}
	if endDate != nil {
		lr.EndDate = *endDate
	}
	return lr, nil
}
