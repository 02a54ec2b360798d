package infrastructure

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/finware/FinanceTracker/internal/finance/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction domain.Transaction) (domain.Transaction, error) {
	err := r.db.QueryRow(
		`INSERT INTO transactions (title, amount_cents, type, date, financial_account_id, category_id)
         VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`,
		transaction.Title, transaction.AmountCents, transaction.Type, transaction.Date,
		transaction.AccountID, transaction.CategoryID).
		Scan(&transaction.ID, &transaction.CreatedAt)
	return transaction, err
}

func (r *TransactionRepository) FindForAccounts(accountIDs []int, from, to *time.Time) ([]domain.Transaction, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}
	where, args := ledgerFilter("", accountIDs, from, to)
	query := `SELECT id, title, amount_cents, type, date, financial_account_id, category_id, created_at
        FROM transactions ` + where + ` ORDER BY date DESC, id DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.Title, &transaction.AmountCents,
			&transaction.Type, &transaction.Date, &transaction.AccountID,
			&transaction.CategoryID, &transaction.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

// FindWithCategoryForAccounts joins the category's current name and type into
// each row, so groupings always see renames done after the fact.
func (r *TransactionRepository) FindWithCategoryForAccounts(accountIDs []int, from, to *time.Time) ([]domain.TransactionWithCategory, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}
	where, args := ledgerFilter("t.", accountIDs, from, to)
	query := `SELECT t.id, t.title, t.amount_cents, t.type, t.date, t.financial_account_id,
            t.category_id, t.created_at, c.name, c.type
        FROM transactions t
        JOIN categories c ON c.id = t.category_id ` + where + ` ORDER BY t.date DESC, t.id DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.TransactionWithCategory
	for rows.Next() {
		var transaction domain.TransactionWithCategory
		if err := rows.Scan(&transaction.ID, &transaction.Title, &transaction.AmountCents,
			&transaction.Type, &transaction.Date, &transaction.AccountID,
			&transaction.CategoryID, &transaction.CreatedAt,
			&transaction.CategoryName, &transaction.CategoryType); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

// ledgerFilter builds the WHERE clause for an account set and an optional
// half-open [from, to) date window.
func ledgerFilter(prefix string, accountIDs []int, from, to *time.Time) (string, []interface{}) {
	placeholders := make([]string, len(accountIDs))
	args := make([]interface{}, 0, len(accountIDs)+2)
	for i, id := range accountIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args = append(args, id)
	}
	where := "WHERE " + prefix + "financial_account_id IN (" + strings.Join(placeholders, ", ") + ")"
	if from != nil {
		args = append(args, *from)
		where += fmt.Sprintf(" AND %sdate >= $%d", prefix, len(args))
	}
	if to != nil {
		args = append(args, *to)
		where += fmt.Sprintf(" AND %sdate < $%d", prefix, len(args))
	}
	return where, args
}
