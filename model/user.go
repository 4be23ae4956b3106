package model

import "time"

// User is the internal identity record. Rows are provisioned on first
// successful authentication and are never deleted by the API.
type User struct {
	ID        int       `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
