// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// The validate tags mirror the registration schema: every field required,
// minimum six characters, plausible email syntax.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,min=6,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,min=6,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateInput carries a partial account update. Nil fields are left untouched.
type UpdateInput struct {
	Name     *string `json:"name" validate:"omitempty,min=6"`
	Email    *string `json:"email" validate:"omitempty,min=6,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// --- Output DTOs ---

// AccountView is the client-facing projection of an account. The password
// hash deliberately never appears here.
type AccountView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateOutput acknowledges a partial update with the number of records modified.
type UpdateOutput struct {
	Modified int64 `json:"modified"`
}

// DeleteOutput acknowledges a deletion with the number of records removed.
type DeleteOutput struct {
	Deleted int64 `json:"deleted"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register validates the input, rejects duplicate emails, hashes the
	// password and persists a new account.
	Register(ctx context.Context, input *RegisterInput) (*AccountView, error)

	// Login verifies the credentials and issues a signed identity token.
	Login(ctx context.Context, input *LoginInput) (string, error)

	// GetAccount fetches the {id, name, email} projection of an account.
	// A missing account is not an error; it yields a nil view.
	GetAccount(ctx context.Context, rawID string) (*AccountView, error)

	// UpdateAccount merge-applies the provided fields to the matching account.
	UpdateAccount(ctx context.Context, rawID string, input *UpdateInput) (*UpdateOutput, error)

	// DeleteAccount removes the matching account.
	DeleteAccount(ctx context.Context, rawID string) (*DeleteOutput, error)
}
