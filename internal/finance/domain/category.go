package domain

import "time"

// Category is a global label with a fixed polarity. The two fallback
// categories ("Other" for expense, "Other Income" for income) absorb
// transactions of deleted categories and cannot themselves be deleted.
type Category struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"` // "income" or "expense"
	IsFallback bool      `json:"is_fallback"`
	CreatedAt  time.Time `json:"created_at"`
}

type CategoryRepository interface {
	FindAll() ([]Category, error)
	FindByID(categoryID int) (*Category, error)
	FindFallback(categoryType string) (*Category, error)
	Save(category Category) (Category, error)
	// DeleteAndReassign moves every transaction of categoryID to fallbackID
	// and removes the category row in a single database transaction.
	DeleteAndReassign(categoryID, fallbackID int) error
}

func IsValidCategoryType(categoryType string) bool {
	return categoryType == "income" || categoryType == "expense"
}
