package fixtures

import (
	"github.com/sunfocus/erp-backend-go/internal/domain/employee"
	"github.com/sunfocus/erp-backend-go/internal/domain/leave"
)

// ==========================================
// DEFAULT LEAVE ALLOTMENTS
// ==========================================

// DefaultLeaveAllotment is the number of days granted per leave type when an
// employee is registered. Types not listed start at zero until HR grants them.
var DefaultLeaveAllotment = map[leave.LeaveType]int{
	leave.LeaveTypeAnnual:    12,
	leave.LeaveTypeSick:      6,
	leave.LeaveTypePersonal:  3,
	leave.LeaveTypeEmergency: 2,
}

// DefaultLeaveBalance returns a fresh balance map with nothing used yet.
func DefaultLeaveBalance() map[string]employee.Balance {
	balances := make(map[string]employee.Balance, len(DefaultLeaveAllotment))
	for lt, days := range DefaultLeaveAllotment {
		balances[lt.Key()] = employee.Balance{Allotted: days}
	}
	return balances
}
