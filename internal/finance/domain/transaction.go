package domain

import (
	"time"

	financeErrors "github.com/finware/FinanceTracker/internal/finance/errors"
)

// Transaction is an immutable ledger entry. Amount is always stored positive
// in cents; polarity comes from Type, never from the amount's sign.
type Transaction struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	AmountCents int64     `json:"-"`
	Type        string    `json:"type"` // "income" or "expense"
	Date        time.Time `json:"date"`
	AccountID   int       `json:"financial_account_id"`
	CategoryID  int       `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionWithCategory is the read-time join used for display listings and
// category grouping. The category fields reflect the category's current state.
type TransactionWithCategory struct {
	Transaction
	CategoryName string
	CategoryType string
}

type TransactionRepository interface {
	Save(transaction Transaction) (Transaction, error)
	// FindForAccounts returns the transactions of the given accounts, newest
	// date first, optionally restricted to the half-open window [from, to).
	FindForAccounts(accountIDs []int, from, to *time.Time) ([]Transaction, error)
	FindWithCategoryForAccounts(accountIDs []int, from, to *time.Time) ([]TransactionWithCategory, error)
}

func (t *Transaction) Validate() error {
	if t.Title == "" {
		return financeErrors.NewValidationError("Title must not be empty")
	}
	if t.AmountCents <= 0 {
		return financeErrors.NewValidationError("Amount must be greater than zero")
	}
	if !IsValidCategoryType(t.Type) {
		return financeErrors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if len(t.Title) > 200 {
		return financeErrors.NewValidationError("Title must be of length less than 200")
	}
	if t.Date.IsZero() {
		return financeErrors.NewValidationError("Date is required")
	}
	return nil
}
