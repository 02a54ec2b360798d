package domain

import (
	"strings"
	"testing"
	"time"

	financeErrors "github.com/finware/FinanceTracker/internal/finance/errors"
	"github.com/stretchr/testify/assert"
)

func validTransaction() Transaction {
	return Transaction{
		Title:       "Groceries",
		AmountCents: 2599,
		Type:        "expense",
		Date:        time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		AccountID:   1,
		CategoryID:  2,
	}
}

func TestTransactionValidate(t *testing.T) {
	transaction := validTransaction()
	assert.NoError(t, transaction.Validate())
}

func TestTransactionValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"empty title", func(tr *Transaction) { tr.Title = "" }},
		{"title too long", func(tr *Transaction) { tr.Title = strings.Repeat("x", 201) }},
		{"zero amount", func(tr *Transaction) { tr.AmountCents = 0 }},
		{"negative amount", func(tr *Transaction) { tr.AmountCents = -1 }},
		{"bad type", func(tr *Transaction) { tr.Type = "transfer" }},
		{"zero date", func(tr *Transaction) { tr.Date = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transaction := validTransaction()
			tt.mutate(&transaction)
			err := transaction.Validate()
			assert.True(t, financeErrors.IsValidationError(err))
		})
	}
}
