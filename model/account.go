package model

import "time"

type Account struct {
	ID                  int       `json:"account_id"`
	UserID              int       `json:"user_id"`
	AccountName         string    `json:"account_name"`
	Currency            string    `json:"currency"`
	CheckpointBalance   int64     `json:"checkpoint_balance"`
	CheckpointTimestamp time.Time `json:"checkpoint_timestamp"`
	CreatedAt           time.Time `json:"created_at"`
}

// AccountBalance is a row of the account_balances projection: the
// checkpoint balance plus all posted activity after the checkpoint.
type AccountBalance struct {
	AccountID   int    `json:"account_id"`
	AccountName string `json:"account_name"`
	Currency    string `json:"currency"`
	Balance     int64  `json:"balance"`
}
