// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when no account matches a lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateFields merge-applies the given column values to the matching
	// account, leaving unspecified fields untouched. It returns the number of
	// rows modified; zero means no account matched the id.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error)

	// Delete removes the matching account. It returns the number of rows
	// deleted; zero means no account matched the id.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
