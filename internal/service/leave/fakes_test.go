package leave

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/sunfocus/erp-backend-go/internal/domain/employee"
	"github.com/sunfocus/erp-backend-go/internal/domain/leave"
)

// store backs the in-memory repositories used by the workflow tests.
type store struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
	requests  map[string]leave.LeaveRequest
	seq       int
}

func newStore() *store {
	return &store{
		employees: make(map[string]employee.Employee),
		requests:  make(map[string]leave.LeaveRequest),
	}
}

func (s *store) addEmployee(e employee.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.LeaveBalance == nil {
		e.LeaveBalance = map[string]employee.Balance{}
	}
	s.employees[e.ID] = e
}

func (s *store) balance(employeeID string, lt leave.LeaveType) employee.Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.employees[employeeID].BalanceFor(lt.Key())
}

func (s *store) request(id string) (leave.LeaveRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	return r, ok
}

type fakeTransactor struct{ calls int }

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeEmployeeRepo struct{ *store }

func (f fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.addEmployee(e)
	return e, nil
}

type fakeRequestRepo struct{ *store }

func (f fakeRequestRepo) Create(_ context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	r.ID = "leave-" + strconv.Itoa(f.seq)
	r.CreatedAt = time.Date(2024, 1, 1, 0, 0, f.seq, 0, time.UTC)
	r.UpdatedAt = r.CreatedAt
	f.requests[r.ID] = r
	return r, nil
}

func (f fakeRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r, ok := f.request(id)
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r, nil
}

func (f fakeRequestRepo) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return f.GetByID(ctx, id)
}

func (f fakeRequestRepo) List(_ context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []leave.LeaveRequest{}
	for _, r := range f.requests {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.ManagerID != nil && (r.ManagerID == nil || *r.ManagerID != *filter.ManagerID) {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f fakeRequestRepo) UpdateDecision(_ context.Context, id string, status leave.LeaveRequestStatus, approvedBy string, approvedAt time.Time, remarks *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	if !ok || r.Status != leave.LeaveRequestStatusPending {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	r.Status = status
	r.ApprovedBy = &approvedBy
	r.ApprovedAt = &approvedAt
	r.Remarks = remarks
	f.requests[id] = r
	return nil
}

func (f fakeRequestRepo) DeletePending(_ context.Context, id, employeeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	if !ok || r.EmployeeID != employeeID || r.Status != leave.LeaveRequestStatusPending {
		return false, nil
	}
	delete(f.requests, id)
	return true, nil
}

type fakeBalanceRepo struct{ *store }

func (f fakeBalanceRepo) GetForUpdate(_ context.Context, employeeID string, lt leave.LeaveType) (employee.Balance, error) {
	return f.balance(employeeID, lt), nil
}

func (f fakeBalanceRepo) IncrementUsed(_ context.Context, employeeID string, lt leave.LeaveType, days int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := f.employees[employeeID]
	b := e.LeaveBalance[lt.Key()]
	b.Used += days
	e.LeaveBalance[lt.Key()] = b
	f.employees[employeeID] = e
	return nil
}

type recordingPublisher struct {
	events []leave.LeaveDecidedEvent
	err    error
}

func (p *recordingPublisher) PublishLeaveDecided(_ context.Context, e leave.LeaveDecidedEvent) error {
	p.events = append(p.events, e)
	return p.err
}
