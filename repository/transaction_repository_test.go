package repository

import (
	"errors"
	"oft-transacts/logger"
	"oft-transacts/model"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestTransactionRepository_CreateTransaction(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)
	now := time.Now()

	transaction := &model.Transaction{
		AccountID:   10,
		OccurredAt:  now,
		AmountCents: 500,
		Direction:   model.DirectionCredit,
		Status:      model.StatusPosted,
		Notes:       "paycheck",
	}

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`INSERT INTO transacts`).
		WithArgs(10, now, int64(500), model.DirectionCredit, model.StatusPosted, "paycheck").
		WillReturnRows(sqlmock.NewRows([]string{"trans_id", "created_at"}).AddRow(42, now))
	dbMock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	err = repo.CreateTransaction(tx, transaction)
	assert.NoError(t, err)
	assert.Equal(t, 42, transaction.ID)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTransactionRepository_ListByAccountID(t *testing.T) {
	columns := []string{"trans_id", "account_id", "occurred_at", "amount_cents", "direction", "trans_status", "notes", "created_at"}
	now := time.Now()

	t.Run("returns rows most recent first", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewTransactionRepository(db)

		dbMock.ExpectQuery(`ORDER BY occurred_at DESC, trans_id DESC`).
			WithArgs(10, 10, 0).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(3, 10, now, int64(200), model.DirectionDebit, model.StatusPosted, "", now).
				AddRow(2, 10, now.Add(-time.Hour), int64(900), model.DirectionCredit, model.StatusDeleted, "void", now).
				AddRow(1, 10, now.Add(-2*time.Hour), int64(500), model.DirectionCredit, model.StatusPosted, "", now))

		transactions, err := repo.ListByAccountID(10, 10, 0)

		assert.NoError(t, err)
		require.Len(t, transactions, 3)
		assert.Equal(t, 3, transactions[0].ID)
		// Soft-deleted rows are part of the history.
		assert.Equal(t, model.StatusDeleted, transactions[1].Status)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("query error surfaces", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewTransactionRepository(db)
		dbMock.ExpectQuery(`FROM transacts`).WithArgs(10, 10, 0).WillReturnError(errors.New("db down"))

		_, err = repo.ListByAccountID(10, 10, 0)
		assert.Error(t, err)
	})
}

func TestTransactionRepository_CountByAccountID(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)

	dbMock.ExpectQuery(`SELECT COUNT\(\*\) FROM transacts`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	total, err := repo.CountByAccountID(10)
	assert.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
