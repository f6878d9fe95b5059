package postgresqltest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunfocus/erp-backend-go/internal/domain/employee"
	"github.com/sunfocus/erp-backend-go/internal/domain/user"
	"github.com/sunfocus/erp-backend-go/internal/repository/postgresql"
)

func createEmployee(t *testing.T, repo employee.EmployeeRepository, email string, role user.Role, managerID *string) employee.Employee {
	t.Helper()
	emp, err := repo.Create(context.Background(), employee.Employee{
		Email:              email,
		FirstName:          "Test",
		LastName:           email,
		Role:               role,
		ReportingManagerID: managerID,
	})
	require.NoError(t, err)
	return emp
}

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	ctx := context.Background()

	manager := createEmployee(t, repo, "manager@sunfocus.io", user.RoleManager, nil)
	emp := createEmployee(t, repo, "staff@sunfocus.io", user.RoleEmployee, &manager.ID)

	got, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "staff@sunfocus.io", got.Email)
	assert.Equal(t, employee.StatusActive, got.Status)
	require.NotNil(t, got.ReportingManagerID)
	assert.Equal(t, manager.ID, *got.ReportingManagerID)
	assert.Equal(t, employee.Balance{Allotted: 12}, got.BalanceFor("annual"))
	assert.Equal(t, employee.Balance{Allotted: 6}, got.BalanceFor("sick"))
	assert.Equal(t, employee.Balance{}, got.BalanceFor("maternity"))

	byEmail, err := repo.GetByEmail(ctx, "STAFF@sunfocus.io")
	require.NoError(t, err)
	assert.Equal(t, emp.ID, byEmail.ID)
}

func TestEmployeeRepository_Errors(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "0190f5d4-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	createEmployee(t, repo, "dup@sunfocus.io", user.RoleEmployee, nil)
	_, err = repo.Create(ctx, employee.Employee{Email: "dup@sunfocus.io", FirstName: "Dup", Role: user.RoleEmployee})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}
