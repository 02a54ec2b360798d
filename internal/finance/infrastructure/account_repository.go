package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/finware/FinanceTracker/internal/finance/domain"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByUser(userID string) ([]domain.Account, error) {
	rows, err := r.db.Query(
		`SELECT id, name, user_id, is_default, created_at
         FROM financial_accounts WHERE user_id = $1 ORDER BY name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.Name, &account.UserID, &account.IsDefault, &account.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) FindByID(accountID int) (*domain.Account, error) {
	var account domain.Account
	err := r.db.QueryRow(
		`SELECT id, name, user_id, is_default, created_at
         FROM financial_accounts WHERE id = $1`, accountID).
		Scan(&account.ID, &account.Name, &account.UserID, &account.IsDefault, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) Save(account domain.Account) (domain.Account, error) {
	err := r.db.QueryRow(
		`INSERT INTO financial_accounts (name, user_id, is_default)
         VALUES ($1, $2, $3) RETURNING id, created_at`,
		account.Name, account.UserID, account.IsDefault).
		Scan(&account.ID, &account.CreatedAt)
	return account, err
}

// Delete removes the account row; its transactions go with it through the
// ON DELETE CASCADE constraint on transactions.financial_account_id.
func (r *AccountRepository) Delete(accountID int) error {
	_, err := r.db.Exec(`DELETE FROM financial_accounts WHERE id = $1`, accountID)
	return err
}
