package application

import (
	"fmt"

	"github.com/finware/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/finware/FinanceTracker/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetAllCategories() ([]domain.Category, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		return nil, financeErrors.NewStoreError("find categories", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(name, categoryType string) (domain.Category, error) {
	if name == "" {
		return domain.Category{}, financeErrors.NewValidationError("Category name must not be empty")
	}
	if !domain.IsValidCategoryType(categoryType) {
		return domain.Category{}, financeErrors.NewValidationError("Type must be 'income' or 'expense'")
	}
	category, err := s.repo.Save(domain.Category{Name: name, Type: categoryType})
	if err != nil {
		return domain.Category{}, financeErrors.NewStoreError("save category", err)
	}
	return category, nil
}

func (s *CategoryService) DoesCategoryExist(categoryID int) (bool, error) {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return false, financeErrors.NewStoreError("find category", err)
	}
	return category != nil, nil
}

// DeleteCategory removes a non-fallback category. Its transactions are first
// reassigned to the fallback of the same type; both steps run in one store
// transaction so a crash can never leave the ledger pointing at a dead id.
func (s *CategoryService) DeleteCategory(categoryID int) error {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return financeErrors.NewStoreError("find category", err)
	}
	if category == nil {
		return financeErrors.NewNotFoundError("Category")
	}
	if category.IsFallback {
		return financeErrors.NewProtectedResourceError("Cannot delete 'Other' categories")
	}
	fallback, err := s.repo.FindFallback(category.Type)
	if err != nil {
		return financeErrors.NewStoreError("find fallback category", err)
	}
	if fallback == nil {
		return financeErrors.NewStoreError("find fallback category",
			fmt.Errorf("no fallback category for type %q", category.Type))
	}
	if err := s.repo.DeleteAndReassign(categoryID, fallback.ID); err != nil {
		return financeErrors.NewStoreError("delete category", err)
	}
	return nil
}
