package user

type Permission string

const (
	// Self service
	PermissionLeaveViewOwn    Permission = "leave.view_own"
	PermissionLeaveCreate     Permission = "leave.create"
	PermissionLeaveBalanceOwn Permission = "leave.balance_own"

	// Team
	PermissionLeaveViewTeam Permission = "leave.view_team"
	PermissionLeaveApprove  Permission = "leave.approve"

	// Organisation
	PermissionLeaveViewAll    Permission = "leave.view_all"
	PermissionLeaveBalanceAll Permission = "leave.balance_all"
	PermissionEmployeeCreate  Permission = "employee.create"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleEmployee: {
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveBalanceOwn,
	},
	RoleManager: {
		// Managers apply for leave themselves and decide for their reports
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveBalanceOwn,
		PermissionLeaveViewTeam,
		PermissionLeaveApprove,
	},
	RoleHR: {
		PermissionLeaveViewAll,
		PermissionLeaveBalanceAll,
		PermissionEmployeeCreate,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
