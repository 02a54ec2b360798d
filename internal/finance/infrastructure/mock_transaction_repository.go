package infrastructure

import (
	"sort"
	"time"

	"github.com/finware/FinanceTracker/internal/finance/domain"
)

// MockTransactionRepository is an in-memory ledger for service tests.
// CategoriesByID backs the read-time category join.
type MockTransactionRepository struct {
	Transactions   []domain.Transaction
	CategoriesByID map[int]domain.Category
	Err            error
	nextID         int
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) (domain.Transaction, error) {
	if m.Err != nil {
		return domain.Transaction{}, m.Err
	}
	for _, existing := range m.Transactions {
		if existing.ID > m.nextID {
			m.nextID = existing.ID
		}
	}
	m.nextID++
	transaction.ID = m.nextID
	transaction.CreatedAt = time.Now().UTC()
	m.Transactions = append(m.Transactions, transaction)
	return transaction, nil
}

func (m *MockTransactionRepository) FindForAccounts(accountIDs []int, from, to *time.Time) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	owned := make(map[int]bool, len(accountIDs))
	for _, id := range accountIDs {
		owned[id] = true
	}
	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if !owned[transaction.AccountID] {
			continue
		}
		if from != nil && transaction.Date.Before(*from) {
			continue
		}
		if to != nil && !transaction.Date.Before(*to) {
			continue
		}
		filtered = append(filtered, transaction)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].Date.Equal(filtered[j].Date) {
			return filtered[i].Date.After(filtered[j].Date)
		}
		return filtered[i].ID > filtered[j].ID
	})
	return filtered, nil
}

func (m *MockTransactionRepository) FindWithCategoryForAccounts(accountIDs []int, from, to *time.Time) ([]domain.TransactionWithCategory, error) {
	transactions, err := m.FindForAccounts(accountIDs, from, to)
	if err != nil {
		return nil, err
	}
	var joined []domain.TransactionWithCategory
	for _, transaction := range transactions {
		category := m.CategoriesByID[transaction.CategoryID]
		joined = append(joined, domain.TransactionWithCategory{
			Transaction:  transaction,
			CategoryName: category.Name,
			CategoryType: category.Type,
		})
	}
	return joined, nil
}
