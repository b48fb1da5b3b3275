// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the payload, rejects duplicate emails, hashes the
// password and persists a new account. The returned view carries only
// {id, name, email}; the stored hash never reaches the caller.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountView, error) {
	if verr := usecase.ValidateRegistration(input); verr != nil {
		return nil, verr
	}

	// The existence check and the insert are not atomic; the unique index on
	// email catches the loser of a concurrent duplicate registration.
	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrEmailExists)
	case !errors.Is(err, repository.ErrAccountNotFound):
		srv.log(ctx).Error("Failed to check email existence", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to check email existence")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to hash password")
	}

	account := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to create account", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.String("accountID", account.ID.String()))

	return toAccountView(account), nil
}

// Login verifies the credentials and issues a signed identity token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (string, error) {
	if verr := usecase.ValidateLogin(input); verr != nil {
		return "", verr
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", errors.WithStack(domainerrors.ErrEmailNotFound)
		}
		srv.log(ctx).Error("Failed to look up account for login", slog.Any("error", err))

		return "", domainerrors.ErrInternal.WrapMessage("failed to look up account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("accountID", account.ID.String()))

		return "", domainerrors.NewValidationError("password", "Invalid Password!")
	}

	token, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("error", err))

		return "", domainerrors.ErrInternal.WrapMessage("failed to issue token")
	}

	return token, nil
}

// GetAccount fetches the {id, name, email} projection of an account.
// A missing account passes through as a nil view, not an error.
func (srv *accountService) GetAccount(ctx context.Context, rawID string) (*usecase.AccountView, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidAccountID)
	}

	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil
		}
		srv.log(ctx).Error("Failed to fetch account", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to fetch account")
	}

	return toAccountView(account), nil
}

// UpdateAccount merge-applies the provided fields, re-hashing a new password
// before it is stored.
func (srv *accountService) UpdateAccount(ctx context.Context, rawID string, input *usecase.UpdateInput) (*usecase.UpdateOutput, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidAccountID)
	}

	if verr := usecase.ValidateUpdate(input); verr != nil {
		return nil, verr
	}

	fields := make(map[string]any)
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Password != nil {
		passwordHash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password for update", slog.Any("error", err))

			return nil, domainerrors.ErrInternal.WrapMessage("failed to hash password")
		}
		fields["password_hash"] = passwordHash
	}

	modified, err := srv.accountRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to update account", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to update account")
	}

	return &usecase.UpdateOutput{Modified: modified}, nil
}

// DeleteAccount removes the matching account.
func (srv *accountService) DeleteAccount(ctx context.Context, rawID string) (*usecase.DeleteOutput, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidAccountID)
	}

	deleted, err := srv.accountRepo.Delete(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to delete account")
	}

	if deleted > 0 {
		srv.log(ctx).Info("Account deleted", slog.String("accountID", id.String()))
	}

	return &usecase.DeleteOutput{Deleted: deleted}, nil
}

// toAccountView projects an account entity for the delivery layer.
func toAccountView(account *entity.Account) *usecase.AccountView {
	return &usecase.AccountView{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
	}
}
