package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-12-25")
	assert.True(t, ok)

	_, ok = IsValidDate("25-12-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	_, ok := IsValidClockTime("07:00")
	assert.True(t, ok)

	_, ok = IsValidClockTime("23:59")
	assert.True(t, ok)

	_, ok = IsValidClockTime("7am")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date_from", Message: "date_from is required"},
		{Field: "date_to", Message: "date_to is required"},
	}
	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "date_from is required", m["date_from"])
	assert.Contains(t, errs.Error(), "date_to")
}
