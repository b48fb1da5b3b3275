package service

import (
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying identity tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token carrying the account id as
	// its subject claim.
	Issue(accountID uuid.UUID) (string, error)

	// Verify checks signature and expiry and returns the account id the token
	// was issued for. Any failure (bad signature, malformed token, expired)
	// is reported as an error, never a partial success.
	Verify(token string) (uuid.UUID, error)
}
