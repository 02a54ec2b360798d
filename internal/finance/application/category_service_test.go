package application

import (
	"testing"
	"time"

	"github.com/finware/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/finware/FinanceTracker/internal/finance/errors"
	"github.com/finware/FinanceTracker/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
)

func seededCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Salary", Type: "income"},
		{ID: 2, Name: "Food", Type: "expense"},
		{ID: 6, Name: "Other", Type: "expense", IsFallback: true},
		{ID: 7, Name: "Other Income", Type: "income", IsFallback: true},
	}
}

func TestGetAllCategories_SortedByName(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{Categories: seededCategories()})

	categories, err := service.GetAllCategories()
	assert.NoError(t, err)
	assert.Len(t, categories, 4)
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, "Other", categories[1].Name)
	assert.Equal(t, "Other Income", categories[2].Name)
	assert.Equal(t, "Salary", categories[3].Name)
}

func TestCreateCategory_Validation(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	_, err := service.CreateCategory("", "expense")
	assert.True(t, financeErrors.IsValidationError(err))

	_, err = service.CreateCategory("Gadgets", "luxury")
	assert.True(t, financeErrors.IsValidationError(err))

	category, err := service.CreateCategory("Gadgets", "expense")
	assert.NoError(t, err)
	assert.False(t, category.IsFallback)
}

func TestDeleteCategory_FallbackProtected(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{Categories: seededCategories()}
	service := NewCategoryService(repo)

	for _, fallbackID := range []int{6, 7} {
		err := service.DeleteCategory(fallbackID)
		assert.True(t, financeErrors.IsProtectedResourceError(err))
	}
	assert.Len(t, repo.Categories, 4)
}

func TestDeleteCategory_Missing(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{Categories: seededCategories()})

	err := service.DeleteCategory(99)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestDeleteCategory_ReassignsToMatchingFallback(t *testing.T) {
	ledger := &infrastructure.MockTransactionRepository{Transactions: []domain.Transaction{
		{ID: 1, Title: "Groceries", AmountCents: 30000, Type: "expense", Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), AccountID: 1, CategoryID: 2},
		{ID: 2, Title: "Paycheck", AmountCents: 500000, Type: "income", Date: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), AccountID: 1, CategoryID: 1},
	}}
	repo := &infrastructure.MockCategoryRepository{Categories: seededCategories(), Ledger: ledger}
	service := NewCategoryService(repo)

	// Expense category goes to "Other".
	assert.NoError(t, service.DeleteCategory(2))
	assert.Equal(t, 6, ledger.Transactions[0].CategoryID)

	// Income category goes to "Other Income".
	assert.NoError(t, service.DeleteCategory(1))
	assert.Equal(t, 7, ledger.Transactions[1].CategoryID)

	for _, transaction := range ledger.Transactions {
		category, err := repo.FindByID(transaction.CategoryID)
		assert.NoError(t, err)
		assert.NotNil(t, category)
	}
}
