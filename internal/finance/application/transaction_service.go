package application

import (
	"time"

	"github.com/finware/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/finware/FinanceTracker/internal/finance/errors"
)

type AccountServiceInterface interface {
	AssertOwnership(userID string, accountID int) (*domain.Account, error)
	OwnedAccountIDs(userID string) ([]int, error)
}

type CategoryServiceInterface interface {
	DoesCategoryExist(categoryID int) (bool, error)
}

// TransactionService turns the raw ledger into balances, monthly summaries
// and per-category breakdowns. Every operation takes the resolved user id and
// only ever reads transactions of accounts that user owns.
type TransactionService struct {
	repo            domain.TransactionRepository
	accountService  AccountServiceInterface
	categoryService CategoryServiceInterface
}

func NewTransactionService(repo domain.TransactionRepository, accountService AccountServiceInterface, categoryService CategoryServiceInterface) *TransactionService {
	return &TransactionService{repo: repo, accountService: accountService, categoryService: categoryService}
}

// MonthlySummary aggregates one calendar month across all of a user's
// accounts. Amounts are cents.
type MonthlySummary struct {
	TotalIncome   int64
	TotalExpenses int64
	Net           int64
}

// CategorySpending is one group of the per-category breakdown, keyed by the
// category's current id, name and type.
type CategorySpending struct {
	CategoryID   int
	CategoryName string
	Type         string
	Amount       int64
}

func (s *TransactionService) CreateTransaction(userID string, transaction *domain.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}
	if _, err := s.accountService.AssertOwnership(userID, transaction.AccountID); err != nil {
		return err
	}
	exists, err := s.categoryService.DoesCategoryExist(transaction.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.ErrInvalidCategory
	}
	saved, err := s.repo.Save(*transaction)
	if err != nil {
		return financeErrors.NewStoreError("save transaction", err)
	}
	*transaction = saved
	return nil
}

// GetUserTransactions lists the user's transactions newest first, with the
// category joined in for display. accountID narrows to one owned account,
// month to the half-open month window; both are optional.
func (s *TransactionService) GetUserTransactions(userID string, accountID *int, month *domain.Month) ([]domain.TransactionWithCategory, error) {
	accountIDs, err := s.scopeAccounts(userID, accountID)
	if err != nil {
		return nil, err
	}
	from, to := monthWindow(month)
	transactions, err := s.repo.FindWithCategoryForAccounts(accountIDs, from, to)
	if err != nil {
		return nil, financeErrors.NewStoreError("find transactions", err)
	}
	if transactions == nil {
		return []domain.TransactionWithCategory{}, nil
	}
	return transactions, nil
}

// GetAccountBalance is the lifetime balance of one owned account:
// sum(income) - sum(expense) over every transaction ever recorded for it.
func (s *TransactionService) GetAccountBalance(userID string, accountID int) (int64, error) {
	if _, err := s.accountService.AssertOwnership(userID, accountID); err != nil {
		return 0, err
	}
	transactions, err := s.repo.FindForAccounts([]int{accountID}, nil, nil)
	if err != nil {
		return 0, financeErrors.NewStoreError("find transactions", err)
	}
	return sumLedger(transactions), nil
}

// GetTotalBalance sums the lifetime balance over every account the user owns.
func (s *TransactionService) GetTotalBalance(userID string) (int64, error) {
	accountIDs, err := s.accountService.OwnedAccountIDs(userID)
	if err != nil {
		return 0, err
	}
	if len(accountIDs) == 0 {
		return 0, nil
	}
	transactions, err := s.repo.FindForAccounts(accountIDs, nil, nil)
	if err != nil {
		return 0, financeErrors.NewStoreError("find transactions", err)
	}
	return sumLedger(transactions), nil
}

func (s *TransactionService) GetMonthlySummary(userID string, month domain.Month) (MonthlySummary, error) {
	accountIDs, err := s.accountService.OwnedAccountIDs(userID)
	if err != nil {
		return MonthlySummary{}, err
	}
	if len(accountIDs) == 0 {
		return MonthlySummary{}, nil
	}
	from, to := monthWindow(&month)
	transactions, err := s.repo.FindForAccounts(accountIDs, from, to)
	if err != nil {
		return MonthlySummary{}, financeErrors.NewStoreError("find transactions", err)
	}

	var summary MonthlySummary
	for _, transaction := range transactions {
		switch transaction.Type {
		case "income":
			summary.TotalIncome += transaction.AmountCents
		case "expense":
			summary.TotalExpenses += transaction.AmountCents
		}
	}
	summary.Net = summary.TotalIncome - summary.TotalExpenses
	return summary, nil
}

// GetCategorySpending groups one month's transactions by the category's
// current id, name and type. Group order follows first appearance in the
// ledger and is not part of the contract.
func (s *TransactionService) GetCategorySpending(userID string, month domain.Month, accountID *int) ([]CategorySpending, error) {
	accountIDs, err := s.scopeAccounts(userID, accountID)
	if err != nil {
		return nil, err
	}
	from, to := monthWindow(&month)
	transactions, err := s.repo.FindWithCategoryForAccounts(accountIDs, from, to)
	if err != nil {
		return nil, financeErrors.NewStoreError("find transactions", err)
	}

	type groupKey struct {
		id           int
		name         string
		categoryType string
	}
	groups := make(map[groupKey]int)
	spending := []CategorySpending{}
	for _, transaction := range transactions {
		key := groupKey{id: transaction.CategoryID, name: transaction.CategoryName, categoryType: transaction.CategoryType}
		if i, ok := groups[key]; ok {
			spending[i].Amount += transaction.AmountCents
			continue
		}
		groups[key] = len(spending)
		spending = append(spending, CategorySpending{
			CategoryID:   transaction.CategoryID,
			CategoryName: transaction.CategoryName,
			Type:         transaction.CategoryType,
			Amount:       transaction.AmountCents,
		})
	}
	return spending, nil
}

// scopeAccounts resolves the account filter: one owned account when given,
// otherwise everything the user owns. An empty result means no ledger reads.
func (s *TransactionService) scopeAccounts(userID string, accountID *int) ([]int, error) {
	if accountID != nil {
		if _, err := s.accountService.AssertOwnership(userID, *accountID); err != nil {
			return nil, err
		}
		return []int{*accountID}, nil
	}
	return s.accountService.OwnedAccountIDs(userID)
}

func monthWindow(month *domain.Month) (from, to *time.Time) {
	if month == nil {
		return nil, nil
	}
	start, end := month.Start(), month.End()
	return &start, &end
}

func sumLedger(transactions []domain.Transaction) int64 {
	var balance int64
	for _, transaction := range transactions {
		switch transaction.Type {
		case "income":
			balance += transaction.AmountCents
		case "expense":
			balance -= transaction.AmountCents
		}
	}
	return balance
}
