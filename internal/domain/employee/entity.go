package employee

import (
	"strings"
	"time"

	"github.com/sunfocus/erp-backend-go/internal/domain/user"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Balance is the allotment and consumption of one leave type, in whole days.
type Balance struct {
	Allotted int
	Used     int
}

func (b Balance) Remaining() int {
	return b.Allotted - b.Used
}

// CanCover reports whether days more can be consumed without exceeding the allotment.
func (b Balance) CanCover(days int) bool {
	return b.Used+days <= b.Allotted
}

type Employee struct {
	ID                 string
	Email              string
	FirstName          string
	LastName           string
	Role               user.Role
	ReportingManagerID *string
	Status             Status
	// LeaveBalance is keyed by lowercase leave type name ("annual", "sick", ...).
	LeaveBalance map[string]Balance
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// HasManager reports whether a reporting manager is assigned.
func (e Employee) HasManager() bool {
	return e.ReportingManagerID != nil && *e.ReportingManagerID != ""
}

// BalanceFor returns the balance for key, or a zero balance when the type was never allotted.
func (e Employee) BalanceFor(key string) Balance {
	if b, ok := e.LeaveBalance[strings.ToLower(key)]; ok {
		return b
	}
	return Balance{}
}
