package domain

import (
	"testing"
	"time"

	financeErrors "github.com/finware/FinanceTracker/internal/finance/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("2024-01")
	assert.NoError(t, err)
	assert.Equal(t, 2024, month.Year)
	assert.Equal(t, time.January, month.Month)
	assert.Equal(t, "2024-01", month.String())
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, input := range []string{"", "2024", "2024-13", "2024-1", "01-2024", "2024-01-15", "garbage"} {
		_, err := ParseMonth(input)
		assert.Error(t, err, input)
		assert.True(t, financeErrors.IsValidationError(err), input)
	}
}

func TestMonthWindow_HalfOpen(t *testing.T) {
	january, _ := ParseMonth("2024-01")

	assert.True(t, january.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	// The last calendar day belongs to the month.
	assert.True(t, january.Contains(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))
	// The first day of the next month does not.
	assert.False(t, january.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, january.Contains(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestMonthWindow_YearRollover(t *testing.T) {
	december, _ := ParseMonth("2023-12")

	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), december.Start())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), december.End())
	assert.True(t, december.Contains(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, december.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthWindow_LeapFebruary(t *testing.T) {
	february, _ := ParseMonth("2024-02")

	assert.True(t, february.Contains(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), february.End())
}
