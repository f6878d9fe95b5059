package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalance(t *testing.T) {
	b := Balance{Allotted: 12, Used: 10}

	assert.Equal(t, 2, b.Remaining())
	assert.True(t, b.CanCover(2))
	assert.False(t, b.CanCover(3))
	assert.True(t, Balance{}.CanCover(0))
	assert.False(t, Balance{}.CanCover(1))
}

func TestEmployee_BalanceFor(t *testing.T) {
	e := Employee{LeaveBalance: map[string]Balance{
		"annual": {Allotted: 12, Used: 4},
	}}

	assert.Equal(t, Balance{Allotted: 12, Used: 4}, e.BalanceFor("annual"))
	assert.Equal(t, Balance{Allotted: 12, Used: 4}, e.BalanceFor("Annual"))
	assert.Equal(t, Balance{}, e.BalanceFor("maternity"))
	assert.Equal(t, Balance{}, Employee{}.BalanceFor("sick"))
}

func TestEmployee_HasManager(t *testing.T) {
	manager := "mgr-1"
	empty := ""

	assert.True(t, Employee{ReportingManagerID: &manager}.HasManager())
	assert.False(t, Employee{ReportingManagerID: &empty}.HasManager())
	assert.False(t, Employee{}.HasManager())
}

func TestEmployee_FullName(t *testing.T) {
	assert.Equal(t, "Siti Rahma", Employee{FirstName: "Siti", LastName: "Rahma"}.FullName())
	assert.Equal(t, "Budi", Employee{FirstName: "Budi"}.FullName())
}
