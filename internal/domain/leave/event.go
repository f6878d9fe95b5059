package leave

import (
	"context"
	"time"
)

const EventLeaveDecided = "leave.decided"

// LeaveDecidedEvent is emitted once a decision has been committed.
type LeaveDecidedEvent struct {
	EventType     string    `json:"event_type"`
	LeaveID       string    `json:"leave_id"`
	EmployeeID    string    `json:"employee_id"`
	LeaveType     LeaveType `json:"leave_type"`
	Status        string    `json:"status"`
	DaysRequested int       `json:"days_requested"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	DecidedBy     string    `json:"decided_by"`
	DecidedAt     time.Time `json:"decided_at"`
}

func NewLeaveDecidedEvent(r LeaveRequest) LeaveDecidedEvent {
	e := LeaveDecidedEvent{
		EventType:     EventLeaveDecided,
		LeaveID:       r.ID,
		EmployeeID:    r.EmployeeID,
		LeaveType:     r.LeaveType,
		Status:        string(r.Status),
		DaysRequested: r.DaysRequested,
		StartDate:     formatDate(r.StartDate),
		EndDate:       formatDate(r.EndDate),
	}
	if r.ApprovedBy != nil {
		e.DecidedBy = *r.ApprovedBy
	}
	if r.ApprovedAt != nil {
		e.DecidedAt = *r.ApprovedAt
	}
	return e
}

type EventPublisher interface {
	PublishLeaveDecided(ctx context.Context, event LeaveDecidedEvent) error
}
