package application

import (
	"github.com/finware/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/finware/FinanceTracker/internal/finance/errors"
)

type AccountService struct {
	repo domain.AccountRepository
}

func NewAccountService(repo domain.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) GetUserAccounts(userID string) ([]domain.Account, error) {
	accounts, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, financeErrors.NewStoreError("find accounts", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *AccountService) CreateAccount(userID, name string) (domain.Account, error) {
	if name == "" {
		return domain.Account{}, financeErrors.NewValidationError("Account name must not be empty")
	}
	account, err := s.repo.Save(domain.Account{Name: name, UserID: userID})
	if err != nil {
		return domain.Account{}, financeErrors.NewStoreError("save account", err)
	}
	return account, nil
}

// AssertOwnership is the access boundary for account-scoped reads and writes.
// A missing account and a foreign account fail with distinct error types.
func (s *AccountService) AssertOwnership(userID string, accountID int) (*domain.Account, error) {
	account, err := s.repo.FindByID(accountID)
	if err != nil {
		return nil, financeErrors.NewStoreError("find account", err)
	}
	if account == nil {
		return nil, financeErrors.NewNotFoundError("Financial account")
	}
	if account.UserID != userID {
		return nil, financeErrors.NewAuthorizationError("Financial account belongs to another user")
	}
	return account, nil
}

func (s *AccountService) OwnedAccountIDs(userID string) ([]int, error) {
	accounts, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, financeErrors.NewStoreError("find accounts", err)
	}
	ids := make([]int, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.ID)
	}
	return ids, nil
}

// DeleteAccount removes an owned, non-default account together with all of
// its transactions. Default accounts are rejected for every caller.
func (s *AccountService) DeleteAccount(userID string, accountID int) error {
	account, err := s.AssertOwnership(userID, accountID)
	if err != nil {
		return err
	}
	if account.IsDefault {
		return financeErrors.NewProtectedResourceError("Cannot delete default financial accounts")
	}
	if err := s.repo.Delete(accountID); err != nil {
		return financeErrors.NewStoreError("delete account", err)
	}
	return nil
}
