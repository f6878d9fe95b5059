package user

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleManager  Role = "manager"  // Approves leave for direct reports
	RoleHR       Role = "HR"       // Organisation-wide read access
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHR:
		return true
	}
	return false
}

// CanApplyForLeave reports whether the role may submit its own leave requests.
// HR staff go through the same directory but file leave elsewhere.
func (r Role) CanApplyForLeave() bool {
	return r == RoleEmployee || r == RoleManager
}
