package infrastructure

import (
	"sort"
	"time"

	"github.com/finware/FinanceTracker/internal/finance/domain"
)

// MockCategoryRepository is an in-memory CategoryRepository. When Ledger is
// set, DeleteAndReassign rewrites its transactions the way the SQL
// implementation does.
type MockCategoryRepository struct {
	Categories []domain.Category
	Ledger     *MockTransactionRepository
	Err        error
	nextID     int
}

func (m *MockCategoryRepository) FindAll() ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	categories := append([]domain.Category(nil), m.Categories...)
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID {
			found := category
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) FindFallback(categoryType string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, category := range m.Categories {
		if category.IsFallback && category.Type == categoryType {
			found := category
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) Save(category domain.Category) (domain.Category, error) {
	if m.Err != nil {
		return domain.Category{}, m.Err
	}
	for _, existing := range m.Categories {
		if existing.ID > m.nextID {
			m.nextID = existing.ID
		}
	}
	m.nextID++
	category.ID = m.nextID
	category.CreatedAt = time.Now().UTC()
	m.Categories = append(m.Categories, category)
	return category, nil
}

func (m *MockCategoryRepository) DeleteAndReassign(categoryID, fallbackID int) error {
	if m.Err != nil {
		return m.Err
	}
	if m.Ledger != nil {
		for i := range m.Ledger.Transactions {
			if m.Ledger.Transactions[i].CategoryID == categoryID {
				m.Ledger.Transactions[i].CategoryID = fallbackID
			}
		}
	}
	for i, category := range m.Categories {
		if category.ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			break
		}
	}
	return nil
}
