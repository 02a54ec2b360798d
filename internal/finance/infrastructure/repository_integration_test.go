package infrastructure

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	database "github.com/finware/FinanceTracker/db"
	"github.com/finware/FinanceTracker/internal/finance/domain"
	"github.com/finware/FinanceTracker/internal/user"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("finance_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}

func registerTestUser(t *testing.T, db *sql.DB) user.User {
	t.Helper()
	newUser := user.User{
		ID:           uuid.NewString(),
		Email:        uuid.NewString() + "@example.com",
		FullName:     "Integration Test",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, user.NewUserRepository(db).Create(newUser, user.DefaultAccountNames))
	return newUser
}

func TestRepositories_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container-backed test in short mode")
	}
	db := setupTestDB(t)

	accounts := NewAccountRepository(db)
	categories := NewCategoryRepository(db)
	transactions := NewTransactionRepository(db)

	t.Run("migrations seed the category set", func(t *testing.T) {
		all, err := categories.FindAll()
		require.NoError(t, err)
		assert.Len(t, all, 7)

		expenseFallback, err := categories.FindFallback("expense")
		require.NoError(t, err)
		require.NotNil(t, expenseFallback)
		assert.Equal(t, "Other", expenseFallback.Name)

		incomeFallback, err := categories.FindFallback("income")
		require.NoError(t, err)
		require.NotNil(t, incomeFallback)
		assert.Equal(t, "Other Income", incomeFallback.Name)
	})

	t.Run("registration seeds default accounts", func(t *testing.T) {
		owner := registerTestUser(t, db)

		owned, err := accounts.FindByUser(owner.ID)
		require.NoError(t, err)
		require.Len(t, owned, 3)
		// Sorted by name, all protected.
		assert.Equal(t, "Bank", owned[0].Name)
		assert.Equal(t, "Cash", owned[1].Name)
		assert.Equal(t, "Savings", owned[2].Name)
		for _, account := range owned {
			assert.True(t, account.IsDefault)
		}
	})

	t.Run("ledger window and ordering", func(t *testing.T) {
		owner := registerTestUser(t, db)
		account, err := accounts.Save(domain.Account{Name: "Ledger", UserID: owner.ID})
		require.NoError(t, err)

		seeded, err := categories.FindAll()
		require.NoError(t, err)
		categoryID := seeded[0].ID

		dates := []time.Time{
			time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		}
		for i, date := range dates {
			_, err := transactions.Save(domain.Transaction{
				Title: "Entry", AmountCents: int64(100 * (i + 1)), Type: "expense",
				Date: date, AccountID: account.ID, CategoryID: categoryID,
			})
			require.NoError(t, err)
		}

		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		january, err := transactions.FindForAccounts([]int{account.ID}, &from, &to)
		require.NoError(t, err)
		require.Len(t, january, 2)
		// Newest first; Feb 1 excluded by the half-open window.
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), january[0].Date)
		assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), january[1].Date)

		withCategory, err := transactions.FindWithCategoryForAccounts([]int{account.ID}, nil, nil)
		require.NoError(t, err)
		require.Len(t, withCategory, 3)
		assert.Equal(t, seeded[0].Name, withCategory[0].CategoryName)
	})

	t.Run("category delete reassigns ledger rows", func(t *testing.T) {
		owner := registerTestUser(t, db)
		account, err := accounts.Save(domain.Account{Name: "Reassign", UserID: owner.ID})
		require.NoError(t, err)

		doomed, err := categories.Save(domain.Category{Name: "Doomed", Type: "expense"})
		require.NoError(t, err)
		fallback, err := categories.FindFallback("expense")
		require.NoError(t, err)

		saved, err := transactions.Save(domain.Transaction{
			Title: "Orphan candidate", AmountCents: 500, Type: "expense",
			Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), AccountID: account.ID, CategoryID: doomed.ID,
		})
		require.NoError(t, err)

		require.NoError(t, categories.DeleteAndReassign(doomed.ID, fallback.ID))

		gone, err := categories.FindByID(doomed.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		rows, err := transactions.FindForAccounts([]int{account.ID}, nil, nil)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, saved.ID, rows[0].ID)
		assert.Equal(t, fallback.ID, rows[0].CategoryID)
	})

	t.Run("account delete cascades to transactions", func(t *testing.T) {
		owner := registerTestUser(t, db)
		account, err := accounts.Save(domain.Account{Name: "Doomed", UserID: owner.ID})
		require.NoError(t, err)

		fallback, err := categories.FindFallback("expense")
		require.NoError(t, err)
		_, err = transactions.Save(domain.Transaction{
			Title: "Goes with the account", AmountCents: 500, Type: "expense",
			Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), AccountID: account.ID, CategoryID: fallback.ID,
		})
		require.NoError(t, err)

		require.NoError(t, accounts.Delete(account.ID))

		gone, err := accounts.FindByID(account.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		rows, err := transactions.FindForAccounts([]int{account.ID}, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		owner := registerTestUser(t, db)
		users := user.NewUserRepository(db)

		exists, err := users.EmailExists(owner.Email)
		require.NoError(t, err)
		assert.True(t, exists)

		err = users.Create(user.User{
			ID: uuid.NewString(), Email: owner.Email, FullName: "Dup", PasswordHash: "x",
		}, nil)
		assert.Error(t, err)
	})
}
