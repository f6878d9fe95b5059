package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsEmpty(c.input), "IsEmpty(%q)", c.input)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // v7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // v7 uppercase
		"123e4567-e89b-42d3-a456-426614174000", // v4
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"123e4567-e89b-42d3-c456-426614174000", // bad variant
		"",
	}
	for _, id := range valid {
		assert.True(t, IsValidUUID(id), id)
	}
	for _, id := range invalid {
		assert.False(t, IsValidUUID(id), id)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), date)

	for _, s := range []string{"2023-02-29", "2024/01/01", "01-01-2024", "", "2024-1-1"} {
		_, ok := IsValidDate(s)
		assert.False(t, ok, s)
	}
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("Sick", []string{"Annual", "Sick"}))
	assert.False(t, IsInSlice("sick", []string{"Annual", "Sick"}))
	assert.False(t, IsInSlice("Annual", nil))
}

func TestMaxLength(t *testing.T) {
	assert.True(t, MaxLength("cuti", 4))
	assert.True(t, MaxLength("ééé", 3))
	assert.False(t, MaxLength("abcde", 4))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "leave_type", Message: "leave_type is invalid"},
	}

	assert.Equal(t, "start_date: start_date is required; leave_type: leave_type is invalid", errs.Error())
	assert.Equal(t, map[string]string{
		"start_date": "start_date is required",
		"leave_type": "leave_type is invalid",
	}, errs.ToMap())
}
