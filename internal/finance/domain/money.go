package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	financeErrors "github.com/finware/FinanceTracker/internal/finance/errors"
)

// ParseAmountToCents converts a decimal string to cents with half-up rounding
// on the third decimal place. Amounts are currency-agnostic and must be
// strictly positive; signs, exponents and binary floats are rejected so that
// summation never drifts at cent level.
//
// Examples:
//
//	ParseAmountToCents("12.34")  -> 1234
//	ParseAmountToCents("12,34")  -> 1234
//	ParseAmountToCents("12.344") -> 1234 (rounds down)
//	ParseAmountToCents("12.345") -> 1235 (rounds up)
func ParseAmountToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, financeErrors.NewValidationError("Amount must not be empty")
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, financeErrors.NewValidationError("Amount must be a positive decimal")
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, financeErrors.NewValidationError("Amount must be a positive decimal")
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, financeErrors.NewValidationError("Amount must be a positive decimal")
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, financeErrors.NewValidationError("Amount is out of range")
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, financeErrors.NewValidationError("Amount is out of range")
	}
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := iv*100 + fracCents
	if cents <= 0 {
		return 0, financeErrors.NewValidationError("Amount must be greater than zero")
	}
	return cents, nil
}

// FormatCents renders cents as a plain decimal string, e.g. 1234 -> "12.34",
// -5 -> "-0.05". Used at the API boundary; arithmetic stays in cents.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
