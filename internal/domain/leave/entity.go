package leave

import (
	"strings"
	"time"
)

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "Annual"
	LeaveTypeSick      LeaveType = "Sick"
	LeaveTypePersonal  LeaveType = "Personal"
	LeaveTypeEmergency LeaveType = "Emergency"
	LeaveTypeMaternity LeaveType = "Maternity"
	LeaveTypePaternity LeaveType = "Paternity"
)

// LeaveTypes lists every leave type in display order.
var LeaveTypes = []LeaveType{
	LeaveTypeAnnual,
	LeaveTypeSick,
	LeaveTypePersonal,
	LeaveTypeEmergency,
	LeaveTypeMaternity,
	LeaveTypePaternity,
}

func (t LeaveType) IsValid() bool {
	for _, lt := range LeaveTypes {
		if t == lt {
			return true
		}
	}
	return false
}

// Key is the balance key used by the employee directory ("annual", "sick", ...).
func (t LeaveType) Key() string {
	return strings.ToLower(string(t))
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "Rejected"
)

func (s LeaveRequestStatus) IsValid() bool {
	switch s {
	case LeaveRequestStatusPending, LeaveRequestStatusApproved, LeaveRequestStatusRejected:
		return true
	}
	return false
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	// ManagerID is the employee's reporting manager at submission time.
	ManagerID *string
	LeaveType LeaveType

	// Inclusive calendar dates, midnight UTC. Zero when the stored row lacks them.
	StartDate time.Time
	EndDate   time.Time

	Reason        string
	Status        LeaveRequestStatus
	DaysRequested int

	ApprovedBy *string
	ApprovedAt *time.Time
	Remarks    *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeName  *string
	EmployeeEmail *string
}

func (r LeaveRequest) IsPending() bool {
	return r.Status == LeaveRequestStatusPending
}

// HasCompleteData reports whether the request carries the fields needed to debit a balance:
// a known leave type and an ordered date range.
func (r LeaveRequest) HasCompleteData() bool {
	if !r.LeaveType.IsValid() || r.StartDate.IsZero() || r.EndDate.IsZero() {
		return false
	}
	return !r.EndDate.Before(r.StartDate)
}

// DaysBetween returns the inclusive calendar-day count from start to end.
// Both dates are truncated to their calendar day first, so time of day and
// DST shifts do not affect the result. Negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// LeaveRequestFilter selects requests for listing. Nil fields are not filtered.
type LeaveRequestFilter struct {
	EmployeeID *string
	ManagerID  *string
	Status     *LeaveRequestStatus
}
