package repository

import (
	"database/sql"
	"oft-transacts/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_GetAccountByID(t *testing.T) {
	columns := []string{"account_id", "user_id", "account_name", "currency", "checkpoint_balance", "checkpoint_timestamp", "created_at"}
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewAccountRepository(db)
		dbMock.ExpectQuery(`FROM accounts WHERE account_id`).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(10, 1, "Checking", "USD", int64(1000), now, now))

		account, err := repo.GetAccountByID(10)
		assert.NoError(t, err)
		assert.Equal(t, 1, account.UserID)
		assert.Equal(t, int64(1000), account.CheckpointBalance)
	})

	t.Run("not found", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewAccountRepository(db)
		dbMock.ExpectQuery(`FROM accounts WHERE account_id`).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err = repo.GetAccountByID(99)
		assert.Equal(t, sql.ErrNoRows, err)
	})
}

func TestAccountRepository_GetAccountBalancesByUserID(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAccountRepository(db)

	dbMock.ExpectQuery(`FROM account_balances WHERE user_id`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "account_name", "currency", "balance"}).
			AddRow(1, "Checking", "USD", int64(1500)).
			AddRow(2, "Savings", "USD", int64(700)))

	balances, err := repo.GetAccountBalancesByUserID(1)
	assert.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, &model.AccountBalance{AccountID: 1, AccountName: "Checking", Currency: "USD", Balance: 1500}, balances[0])
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
