package domain

import "time"

// Account is a user-owned container of transactions. Default accounts are
// seeded at registration and cannot be deleted.
type Account struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

type AccountRepository interface {
	FindByUser(userID string) ([]Account, error)
	FindByID(accountID int) (*Account, error)
	Save(account Account) (Account, error)
	// Delete removes the account and, through the store's cascade, every
	// transaction recorded against it.
	Delete(accountID int) error
}
