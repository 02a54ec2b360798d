package infrastructure

import (
	"database/sql"
	"errors"
	"log"

	"github.com/finware/FinanceTracker/internal/finance/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll() ([]domain.Category, error) {
	rows, err := r.db.Query(
		`SELECT id, name, type, is_fallback, created_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Type, &category.IsFallback, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(
		`SELECT id, name, type, is_fallback, created_at FROM categories WHERE id = $1`, categoryID).
		Scan(&category.ID, &category.Name, &category.Type, &category.IsFallback, &category.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindFallback(categoryType string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(
		`SELECT id, name, type, is_fallback, created_at
         FROM categories WHERE is_fallback AND type = $1`, categoryType).
		Scan(&category.ID, &category.Name, &category.Type, &category.IsFallback, &category.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Save(category domain.Category) (domain.Category, error) {
	err := r.db.QueryRow(
		`INSERT INTO categories (name, type, is_fallback)
         VALUES ($1, $2, $3) RETURNING id, created_at`,
		category.Name, category.Type, category.IsFallback).
		Scan(&category.ID, &category.CreatedAt)
	return category, err
}

// DeleteAndReassign runs the reassignment and the removal in one database
// transaction: after it returns, no ledger row references the deleted id.
func (r *CategoryRepository) DeleteAndReassign(categoryID, fallbackID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(
		`UPDATE transactions SET category_id = $1 WHERE category_id = $2`,
		fallbackID, categoryID); err != nil {
		safeRollback(tx)
		return err
	}
	if _, err := tx.Exec(`DELETE FROM categories WHERE id = $1`, categoryID); err != nil {
		safeRollback(tx)
		return err
	}
	return tx.Commit()
}

func safeRollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("Error during transaction rollback: %v", err)
	}
}
