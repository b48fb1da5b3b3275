// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered user of the service. The ID is assigned at
// creation and never mutated or reused. PasswordHash is the only persisted
// form of the account's secret; the plaintext never leaves the registration
// or login request that carried it.
type Account struct {
	ID           uuid.UUID // Unique identifier, assigned at creation.
	Name         string    // Display name, at least 6 characters.
	Email        string    // Login identifier, unique across all accounts.
	PasswordHash string    // bcrypt digest of the account's secret.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
