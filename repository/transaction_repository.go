package repository

import (
	"database/sql"
	"oft-transacts/logger"
	"oft-transacts/model"

	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for transaction database operations.
type ITransactionRepository interface {
	CreateTransaction(tx *sql.Tx, transaction *model.Transaction) error
	ListByAccountID(accountID, limit, offset int) ([]*model.Transaction, error)
	CountByAccountID(accountID int) (int, error)
}

// TransactionRepository implements ITransactionRepository.
type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) CreateTransaction(tx *sql.Tx, transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":   transaction.AccountID,
		"amount_cents": transaction.AmountCents,
		"direction":    transaction.Direction,
	})
	log.Info("Executing query to create a new transaction")

	query := `INSERT INTO transacts (account_id, occurred_at, amount_cents, direction, trans_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING trans_id, created_at`
	err := tx.QueryRow(query,
		transaction.AccountID, transaction.OccurredAt, transaction.AmountCents,
		transaction.Direction, transaction.Status, transaction.Notes,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create transaction query")
		return err
	}
	return nil
}

// ListByAccountID retrieves one page of an account's history, both
// posted and deleted rows, most recent first. Ties on occurred_at are
// broken by descending trans_id so pages stay deterministic.
func (r *TransactionRepository) ListByAccountID(accountID, limit, offset int) ([]*model.Transaction, error) {
	log := logger.Log.WithField("account_id", accountID)
	log.Info("Executing query to list transactions by account ID")

	query := `
		SELECT trans_id, account_id, occurred_at, amount_cents, direction, trans_status, notes, created_at
		FROM transacts
		WHERE account_id = $1
		ORDER BY occurred_at DESC, trans_id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.DB.Query(query, accountID, limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for transactions by account ID")
		return nil, err
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.OccurredAt, &t.AmountCents,
			&t.Direction, &t.Status, &t.Notes, &t.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		transactions = append(transactions, &t)
	}

	return transactions, rows.Err()
}

// CountByAccountID returns the total number of ledger rows for the account.
func (r *TransactionRepository) CountByAccountID(accountID int) (int, error) {
	var total int
	query := `SELECT COUNT(*) FROM transacts WHERE account_id = $1`
	if err := r.DB.QueryRow(query, accountID).Scan(&total); err != nil {
		logger.Log.WithError(err).WithField("account_id", accountID).Error("Failed to execute count transactions query")
		return 0, err
	}
	return total, nil
}
