package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"shopchat/internal/model"
	"shopchat/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService() (*AuthService, *TokenService) {
	tokens := NewTokenService("test-secret", time.Hour, "shopchat-test")
	svc := NewAuthService(newFakeUserStore(), tokens, zerolog.Nop())
	svc.cost = bcrypt.MinCost
	return svc, tokens
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, tokens := newTestAuthService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, model.CredentialsRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", reg.Username)

	_, err = svc.Register(ctx, model.CredentialsRequest{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)

	login, err := svc.Login(ctx, model.CredentialsRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, login.UserID)

	claims, err := tokens.Validate(login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, model.CredentialsRequest{Username: "bob", Password: "right"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, model.CredentialsRequest{Username: "bob", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, model.CredentialsRequest{Username: "nobody", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, model.CredentialsRequest{Username: "bob"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, model.CredentialsRequest{Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthService_RegisterPasswordLength(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, model.CredentialsRequest{Username: "long", Password: strings.Repeat("a", 80)})
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = svc.Register(ctx, model.CredentialsRequest{Username: "edge", Password: strings.Repeat("a", 72)})
	require.NoError(t, err)

	_, err = svc.Login(ctx, model.CredentialsRequest{Username: "edge", Password: strings.Repeat("a", 72)})
	require.NoError(t, err)
}

func TestTokenService_Validate(t *testing.T) {
	tokens := NewTokenService("secret", time.Minute, "shopchat")
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return now }

	token, err := tokens.Issue(42, "carol")
	require.NoError(t, err)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)

	_, err = NewTokenService("other-secret", time.Minute, "shopchat").Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	now = now.Add(2 * time.Minute)
	_, err = tokens.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
