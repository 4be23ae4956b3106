package model

import "github.com/golang-jwt/jwt/v5"

// IDPClaims is the verified claim set produced by token verification.
// Subject is mandatory (enforced by the verifier); email and name are
// optional and absence falls back deterministically during resolution.
type IDPClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
