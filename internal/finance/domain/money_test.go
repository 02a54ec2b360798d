package domain

import (
	"testing"

	financeErrors "github.com/finware/FinanceTracker/internal/finance/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseAmountToCents(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"12.34", 1234},
		{"12,34", 1234},
		{"12", 1200},
		{"0.01", 1},
		{".50", 50},
		{"12.344", 1234},
		{"12.345", 1235},
		{"12.346", 1235},
		{"1000", 100000},
		{" 7.5 ", 750},
	}
	for _, tt := range tests {
		got, err := ParseAmountToCents(tt.input)
		assert.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseAmountToCents_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"0",
		"0.00",
		"-5",
		"+5",
		"abc",
		"1.2.3",
		"1e5",
		"NaN",
		"92233720368547758.08",
	}
	for _, input := range invalid {
		_, err := ParseAmountToCents(input)
		assert.Error(t, err, input)
		assert.True(t, financeErrors.IsValidationError(err), input)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "12.34", FormatCents(1234))
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "-0.05", FormatCents(-5))
	assert.Equal(t, "-750.00", FormatCents(-75000))
	assert.Equal(t, "1000.00", FormatCents(100000))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"0.01", "12.34", "750.00", "99999.99"} {
		cents, err := ParseAmountToCents(s)
		assert.NoError(t, err)
		assert.Equal(t, s, FormatCents(cents))
	}
}
