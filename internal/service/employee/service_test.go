package employee

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunfocus/erp-backend-go/internal/domain/employee"
	"github.com/sunfocus/erp-backend-go/internal/domain/user"
	"github.com/sunfocus/erp-backend-go/internal/pkg/validator"
)

const (
	managerID  = "0190f5d4-3333-7000-8000-000000000003"
	employeeID = "0190f5d4-2222-7000-8000-000000000002"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	created   []employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]employee.Employee{
		managerID:  {ID: managerID, Email: "lead@sunfocus.io", FirstName: "Maya", Role: user.RoleManager},
		employeeID: {ID: employeeID, Email: "dev@sunfocus.io", FirstName: "Dewi", Role: user.RoleEmployee},
	}}
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range f.employees {
		if strings.EqualFold(e.Email, email) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = "0190f5d4-4444-7000-8000-000000000004"
	f.employees[e.ID] = e
	f.created = append(f.created, e)
	return e, nil
}

func strPtr(s string) *string { return &s }

func TestRegister_SeedsDefaultAllotment(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	created, err := svc.Register(context.Background(), employee.RegisterEmployeeRequest{
		Email:              "new.hire@sunfocus.io",
		FirstName:          "Andi",
		LastName:           "Saputra",
		Role:               "employee",
		ReportingManagerID: strPtr(managerID),
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	assert.Equal(t, employee.StatusActive, created.Status)
	assert.Equal(t, managerID, *created.ReportingManagerID)
	assert.Equal(t, employee.Balance{Allotted: 12}, created.BalanceFor("annual"))
	assert.Equal(t, employee.Balance{Allotted: 6}, created.BalanceFor("sick"))
	assert.Equal(t, employee.Balance{Allotted: 3}, created.BalanceFor("personal"))
	assert.Equal(t, employee.Balance{Allotted: 2}, created.BalanceFor("emergency"))
	assert.Equal(t, employee.Balance{}, created.BalanceFor("maternity"))
}

func TestRegister_Errors(t *testing.T) {
	cases := []struct {
		name    string
		req     employee.RegisterEmployeeRequest
		wantErr error
	}{
		{
			name:    "duplicate email ignores case",
			req:     employee.RegisterEmployeeRequest{Email: "DEV@sunfocus.io", FirstName: "Dup", Role: "employee"},
			wantErr: employee.ErrEmailExists,
		},
		{
			name: "unknown manager",
			req: employee.RegisterEmployeeRequest{
				Email: "a@sunfocus.io", FirstName: "A", Role: "employee",
				ReportingManagerID: strPtr("0190f5d4-9999-7000-8000-000000000009"),
			},
			wantErr: employee.ErrManagerNotFound,
		},
		{
			name: "manager without manager role",
			req: employee.RegisterEmployeeRequest{
				Email: "b@sunfocus.io", FirstName: "B", Role: "employee",
				ReportingManagerID: strPtr(employeeID),
			},
			wantErr: employee.ErrManagerRole,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			repo := newFakeEmployeeRepo()
			_, err := NewEmployeeService(repo).Register(context.Background(), c.req)
			assert.ErrorIs(t, err, c.wantErr)
			assert.Empty(t, repo.created)
		})
	}
}

func TestRegister_Validation(t *testing.T) {
	repo := newFakeEmployeeRepo()

	_, err := NewEmployeeService(repo).Register(context.Background(), employee.RegisterEmployeeRequest{
		Email: "not-an-email",
		Role:  "owner",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	fields := validationErrs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "role")
	assert.Empty(t, repo.created)
}
