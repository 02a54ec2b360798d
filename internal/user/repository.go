package user

import (
	"database/sql"
	"errors"
	"log"
)

type Repository interface {
	Create(user User, defaultAccountNames []string) error
	FindByID(userID string) (*User, error)
	FindByEmail(email string) (*User, error)
	EmailExists(email string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create inserts the user row and the user's default financial accounts in a
// single database transaction, so a registered user always has their
// protected starter accounts.
func (r *repository) Create(user User, defaultAccountNames []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(
		`INSERT INTO users (id, email, full_name, password_hash) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.FullName, user.PasswordHash); err != nil {
		safeRollback(tx)
		return err
	}

	for _, name := range defaultAccountNames {
		if _, err := tx.Exec(
			`INSERT INTO financial_accounts (name, user_id, is_default) VALUES ($1, $2, TRUE)`,
			name, user.ID); err != nil {
			safeRollback(tx)
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) FindByID(userID string) (*User, error) {
	return r.findBy(`SELECT id, email, full_name, password_hash, created_at FROM users WHERE id = $1`, userID)
}

func (r *repository) FindByEmail(email string) (*User, error) {
	return r.findBy(`SELECT id, email, full_name, password_hash, created_at FROM users WHERE email = $1`, email)
}

func (r *repository) findBy(query string, arg interface{}) (*User, error) {
	var user User
	err := r.db.QueryRow(query, arg).
		Scan(&user.ID, &user.Email, &user.FullName, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func safeRollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("Error during transaction rollback: %v", err)
	}
}
