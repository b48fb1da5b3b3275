package auth

import (
	"testing"
	"time"

	"accounts/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret: "test_jwt_secret_key_very_long_for_testing",
			TokenTTL:  ttl,
		},
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, tokenService)

	accountID := uuid.New()

	token, err := tokenService.Issue(accountID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	verifiedID, err := tokenService.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, accountID, verifiedID)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(nil)
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	verifiedID, err := tokenService.Verify("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, verifiedID)
}

func TestJWTService_WrongSecret(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := newTestConfig(time.Hour)
	otherCfg.Auth.JWTSecret = "a_completely_different_secret_key"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := otherService.Issue(uuid.New())
	require.NoError(t, err)

	_, err = tokenService.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative TTL issues tokens that are already past their expiry.
	tokenService, err := NewJWTService(newTestConfig(-time.Minute))
	require.NoError(t, err)

	token, err := tokenService.Issue(uuid.New())
	require.NoError(t, err)

	_, err = tokenService.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNonHMACSigning(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	// alg=none style tokens must not verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokenService.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_NonUUIDSubject(t *testing.T) {
	cfg := newTestConfig(time.Hour)
	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	claims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := claims.SignedString([]byte(cfg.Auth.JWTSecret))
	require.NoError(t, err)

	_, err = tokenService.Verify(token)
	assert.Error(t, err)
}
