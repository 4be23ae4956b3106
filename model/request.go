// file: model/request.go

package model

// CreateTransactRequest defines the payload for appending a ledger entry.
// It includes validation tags to ensure data integrity at the entry point.
type CreateTransactRequest struct {
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	Direction   string `json:"direction" validate:"required,oneof=credit debit"`
	Notes       string `json:"notes"`
}

// UserProfile is the response shape for GET /users/me.
type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
