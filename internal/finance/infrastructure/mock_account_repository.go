package infrastructure

import (
	"sort"
	"time"

	"github.com/finware/FinanceTracker/internal/finance/domain"
)

// MockAccountRepository is an in-memory AccountRepository for service tests.
type MockAccountRepository struct {
	Accounts []domain.Account
	Err      error
	nextID   int
}

func (m *MockAccountRepository) FindByUser(userID string) ([]domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var accounts []domain.Account
	for _, account := range m.Accounts {
		if account.UserID == userID {
			accounts = append(accounts, account)
		}
	}
	sort.SliceStable(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })
	return accounts, nil
}

func (m *MockAccountRepository) FindByID(accountID int) (*domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, account := range m.Accounts {
		if account.ID == accountID {
			found := account
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockAccountRepository) Save(account domain.Account) (domain.Account, error) {
	if m.Err != nil {
		return domain.Account{}, m.Err
	}
	m.nextID++
	account.ID = m.nextID
	account.CreatedAt = time.Now().UTC()
	m.Accounts = append(m.Accounts, account)
	return account, nil
}

func (m *MockAccountRepository) Delete(accountID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i, account := range m.Accounts {
		if account.ID == accountID {
			m.Accounts = append(m.Accounts[:i], m.Accounts[i+1:]...)
			return nil
		}
	}
	return nil
}
