package model

import (
	"time"
)

// Ledger entry direction and lifecycle values. A deleted row is a
// terminal soft-delete marker kept for audit; it never affects balance.
const (
	DirectionCredit = "credit"
	DirectionDebit  = "debit"

	StatusPosted  = "posted"
	StatusDeleted = "deleted"
)

type Transaction struct {
	ID          int       `json:"trans_id"`
	AccountID   int       `json:"account_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	AmountCents int64     `json:"amount_cents"`
	Direction   string    `json:"direction"`
	Status      string    `json:"trans_status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactsPage is one page of an account's history, most recent first.
type TransactsPage struct {
	Items    []*Transaction `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	HasMore  bool           `json:"has_more"`
}
