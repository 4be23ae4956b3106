package repository

import (
	"database/sql"
	"oft-transacts/logger"
	"oft-transacts/model"
)

// IAccountRepository defines the contract for account database operations.
type IAccountRepository interface {
	GetAccountByID(accountID int) (*model.Account, error)
	GetAccountBalancesByUserID(userID int) ([]*model.AccountBalance, error)
}

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// GetAccountByID retrieves a single account. Returns sql.ErrNoRows when
// the account does not exist; ownership is checked by the caller.
func (r *AccountRepository) GetAccountByID(accountID int) (*model.Account, error) {
	account := &model.Account{}
	query := `SELECT account_id, user_id, account_name, currency, checkpoint_balance, checkpoint_timestamp, created_at
		FROM accounts WHERE account_id = $1`
	err := r.DB.QueryRow(query, accountID).Scan(
		&account.ID, &account.UserID, &account.AccountName, &account.Currency,
		&account.CheckpointBalance, &account.CheckpointTimestamp, &account.CreatedAt,
	)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("account_id", accountID).Error("Failed to execute get account query")
		}
		return nil, err
	}
	return account, nil
}

// GetAccountBalancesByUserID reads the account_balances projection for
// all of a user's accounts. The view folds the checkpoint balance with
// every posted transaction after the checkpoint timestamp.
func (r *AccountRepository) GetAccountBalancesByUserID(userID int) ([]*model.AccountBalance, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to get account balances by user ID")

	query := `SELECT account_id, account_name, currency, balance
		FROM account_balances WHERE user_id = $1 ORDER BY account_id`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for account balances by user ID")
		return nil, err
	}
	defer rows.Close()

	var balances []*model.AccountBalance
	for rows.Next() {
		var b model.AccountBalance
		if err := rows.Scan(&b.AccountID, &b.AccountName, &b.Currency, &b.Balance); err != nil {
			log.WithError(err).Error("Failed to scan account balance row")
			return nil, err
		}
		balances = append(balances, &b)
	}
	return balances, rows.Err()
}
