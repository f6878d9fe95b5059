package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunfocus/erp-backend-go/internal/domain/employee"
)

func TestDefaultLeaveBalance(t *testing.T) {
	got := DefaultLeaveBalance()

	assert.Equal(t, map[string]employee.Balance{
		"annual":    {Allotted: 12},
		"sick":      {Allotted: 6},
		"personal":  {Allotted: 3},
		"emergency": {Allotted: 2},
	}, got)

	got["annual"] = employee.Balance{Allotted: 1}
	assert.Equal(t, 12, DefaultLeaveBalance()["annual"].Allotted)
}
