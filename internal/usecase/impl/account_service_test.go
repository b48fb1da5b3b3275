package impl

import (
	"context"
	"log/slog"
	"testing"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAccountRepo is an in-memory AccountRepository for usecase tests.
type fakeAccountRepo struct {
	byEmail map[string]*entity.Account
	byID    map[uuid.UUID]*entity.Account

	createErr     error
	findErr       error
	lastFields    map[string]any
	updateRows    int64
	updateErr     error
	deleteRows    int64
	deleteErr     error
	createdInputs []*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byEmail: make(map[string]*entity.Account),
		byID:    make(map[uuid.UUID]*entity.Account),
	}
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	account, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	account, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if r.createErr != nil {
		return r.createErr
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.byEmail[account.Email] = account
	r.byID[account.ID] = account
	r.createdInputs = append(r.createdInputs, account)

	return nil
}

func (r *fakeAccountRepo) UpdateFields(_ context.Context, _ uuid.UUID, fields map[string]any) (int64, error) {
	r.lastFields = fields

	return r.updateRows, r.updateErr
}

func (r *fakeAccountRepo) Delete(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.deleteRows, r.deleteErr
}

// fakePasswordHasher hashes by prefixing, which keeps assertions readable.
type fakePasswordHasher struct {
	hashErr error
}

func (h *fakePasswordHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakePasswordHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	issueErr error
}

func (s *fakeTokenService) Issue(id uuid.UUID) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token-for-" + id.String(), nil
}

func (s *fakeTokenService) Verify(token string) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not implemented")
}

func newTestService(repo *fakeAccountRepo, hasher *fakePasswordHasher, tokens *fakeTokenService) usecase.AccountUsecase {
	return NewAccountService(AccountServiceParams{
		AccountRepo:  repo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       slog.Default(),
	})
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:     "Jordan Example",
		Email:    "jordan@example.com",
		Password: "hunter22",
	}
}

func TestRegister(t *testing.T) {
	t.Run("creates account and returns the projection", func(t *testing.T) {
		repo := newFakeAccountRepo()
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{})

		view, err := srv.Register(context.Background(), validRegisterInput())
		require.NoError(t, err)
		require.NotNil(t, view)

		assert.Equal(t, "Jordan Example", view.Name)
		assert.Equal(t, "jordan@example.com", view.Email)
		assert.NotEmpty(t, view.ID)

		require.Len(t, repo.createdInputs, 1)
		assert.Equal(t, "hashed:hunter22", repo.createdInputs[0].PasswordHash)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeAccountRepo()
		repo.byEmail["jordan@example.com"] = &entity.Account{ID: uuid.New(), Email: "jordan@example.com"}
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{})

		view, err := srv.Register(context.Background(), validRegisterInput())
		require.Error(t, err)
		assert.Nil(t, view)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.HTTPCode())
		assert.Equal(t, "Email already exists!", appErr.Message())
	})

	t.Run("rejects invalid payload before touching storage", func(t *testing.T) {
		repo := newFakeAccountRepo()
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{})

		input := validRegisterInput()
		input.Password = "short"

		view, err := srv.Register(context.Background(), input)
		require.Error(t, err)
		assert.Nil(t, view)
		assert.Empty(t, repo.createdInputs)

		var verr *domainerrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "registration", verr.Key)
	})

	t.Run("passes through storage conflict errors", func(t *testing.T) {
		repo := newFakeAccountRepo()
		repo.createErr = domainerrors.ErrEmailExists.WrapMessage("duplicate key")
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{})

		_, err := srv.Register(context.Background(), validRegisterInput())
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Email already exists!", appErr.Message())
	})

	t.Run("maps unexpected storage failures to an internal error", func(t *testing.T) {
		repo := newFakeAccountRepo()
		repo.createErr = errors.New("connection reset")
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{})

		_, err := srv.Register(context.Background(), validRegisterInput())
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}

func TestLogin(t *testing.T) {
	seed := func(repo *fakeAccountRepo) uuid.UUID {
		id := uuid.New()
		repo.byEmail["jordan@example.com"] = &entity.Account{
			ID:           id,
			Email:        "jordan@example.com",
			PasswordHash: "hashed:hunter22",
		}

		return id
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		repo := newFakeAccountRepo()
		id := seed(repo)
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{})

		token, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "jordan@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)
		assert.Equal(t, "token-for-"+id.String(), token)
	})

	t.Run("unknown email yields a not-found error", func(t *testing.T) {
		srv := newTestService(newFakeAccountRepo(), &fakePasswordHasher{}, &fakeTokenService{})

		_, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "nobody@example.com",
			Password: "hunter22",
		})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.HTTPCode())
		assert.Equal(t, "Email does not exist!", appErr.Message())
	})

	t.Run("wrong password yields a validation error", func(t *testing.T) {
		repo := newFakeAccountRepo()
		seed(repo)
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{})

		_, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "jordan@example.com",
			Password: "wrong-password",
		})
		require.Error(t, err)

		var verr *domainerrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{"password": "Invalid Password!"}, verr.Errors())
	})

	t.Run("token issuance failure maps to an internal error", func(t *testing.T) {
		repo := newFakeAccountRepo()
		seed(repo)
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{issueErr: errors.New("no key")})

		_, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "jordan@example.com",
			Password: "hunter22",
		})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}

func TestGetAccount(t *testing.T) {
	t.Run("returns the projection without the password hash", func(t *testing.T) {
		repo := newFakeAccountRepo()
		id := uuid.New()
		repo.byID[id] = &entity.Account{
			ID:           id,
			Name:         "Jordan Example",
			Email:        "jordan@example.com",
			PasswordHash: "hashed:hunter22",
		}
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{})

		view, err := srv.GetAccount(context.Background(), id.String())
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, id.String(), view.ID)
		assert.Equal(t, "jordan@example.com", view.Email)
	})

	t.Run("missing account yields a nil view and no error", func(t *testing.T) {
		srv := newTestService(newFakeAccountRepo(), &fakePasswordHasher{}, &fakeTokenService{})

		view, err := srv.GetAccount(context.Background(), uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, view)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		srv := newTestService(newFakeAccountRepo(), &fakePasswordHasher{}, &fakeTokenService{})

		_, err := srv.GetAccount(context.Background(), "not-a-uuid")
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.HTTPCode())
	})
}

func TestUpdateAccount(t *testing.T) {
	name := "Jordan Updated"
	password := "new-password"

	t.Run("re-hashes a new password and reports modified rows", func(t *testing.T) {
		repo := newFakeAccountRepo()
		repo.updateRows = 1
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{})

		ack, err := srv.UpdateAccount(context.Background(), uuid.NewString(), &usecase.UpdateInput{
			Name:     &name,
			Password: &password,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), ack.Modified)

		assert.Equal(t, map[string]any{
			"name":          name,
			"password_hash": "hashed:" + password,
		}, repo.lastFields)
	})

	t.Run("unknown id reports zero modified rows", func(t *testing.T) {
		repo := newFakeAccountRepo()
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{})

		ack, err := srv.UpdateAccount(context.Background(), uuid.NewString(), &usecase.UpdateInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, int64(0), ack.Modified)
	})

	t.Run("rejects a short replacement field", func(t *testing.T) {
		short := "abc"
		srv := newTestService(newFakeAccountRepo(), &fakePasswordHasher{}, &fakeTokenService{})

		_, err := srv.UpdateAccount(context.Background(), uuid.NewString(), &usecase.UpdateInput{Name: &short})
		require.Error(t, err)

		var verr *domainerrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "update", verr.Key)
	})

	t.Run("malformed id is rejected before validation", func(t *testing.T) {
		srv := newTestService(newFakeAccountRepo(), &fakePasswordHasher{}, &fakeTokenService{})

		_, err := srv.UpdateAccount(context.Background(), "42", &usecase.UpdateInput{Name: &name})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Invalid account id!", appErr.Message())
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("reports deleted rows", func(t *testing.T) {
		repo := newFakeAccountRepo()
		repo.deleteRows = 1
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{})

		ack, err := srv.DeleteAccount(context.Background(), uuid.NewString())
		require.NoError(t, err)
		assert.Equal(t, int64(1), ack.Deleted)
	})

	t.Run("unknown id reports zero deleted rows", func(t *testing.T) {
		srv := newTestService(newFakeAccountRepo(), &fakePasswordHasher{}, &fakeTokenService{})

		ack, err := srv.DeleteAccount(context.Background(), uuid.NewString())
		require.NoError(t, err)
		assert.Equal(t, int64(0), ack.Deleted)
	})

	t.Run("storage failure maps to an internal error", func(t *testing.T) {
		repo := newFakeAccountRepo()
		repo.deleteErr = errors.New("connection reset")
		srv := newTestService(repo, &fakePasswordHasher{}, &fakeTokenService{})

		_, err := srv.DeleteAccount(context.Background(), uuid.NewString())
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}
