package identity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bid-market/internal/aucerrors"
	"bid-market/internal/repository"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	return NewProvider(repository.NewMemoryRepo(), "test-secret", 20*time.Minute)
}

// Tests Register
func TestProvider_Register(t *testing.T) {
	t.Parallel()

	provider := newTestProvider(t)

	t.Run("valid_registration", func(t *testing.T) {
		user, err := provider.Register("alice", "s3cret")
		require.NoError(t, err)

		_, parseErr := uuid.Parse(user.UserID)
		require.NoError(t, parseErr, "UserID should be a valid UUID")
		require.Equal(t, "alice", user.Username)
		require.NotEqual(t, "s3cret", user.PasswordHash, "password must never be stored in the clear")
	})

	t.Run("duplicate_username", func(t *testing.T) {
		_, err := provider.Register("alice", "other")
		require.True(t, errors.Is(err, aucerrors.ErrUsernameTaken))
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, err := provider.Register("", "pw")
		require.True(t, errors.Is(err, aucerrors.ErrAuthFailure))
		_, err = provider.Register("bob", "")
		require.True(t, errors.Is(err, aucerrors.ErrAuthFailure))
	})
}

// Tests the full register -> login -> authenticate round trip
func TestProvider_TokenRoundTrip(t *testing.T) {
	t.Parallel()

	provider := newTestProvider(t)
	user, err := provider.Register("alice", "s3cret")
	require.NoError(t, err)

	token, err := provider.Login("alice", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "bearer", token.TokenType)
	require.Equal(t, user.UserID, token.UserID)
	require.NotEmpty(t, token.AccessToken)

	identity, err := provider.Authenticate(token.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.UserID, identity.UserID)
	require.Equal(t, "alice", identity.Username)
}

// Tests Login failure modes
func TestProvider_Login(t *testing.T) {
	t.Parallel()

	provider := newTestProvider(t)
	_, err := provider.Register("alice", "s3cret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong_password", username: "alice", password: "nope"},
		{name: "unknown_user", username: "mallory", password: "s3cret"},
		{name: "empty_password", username: "alice", password: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := provider.Login(tc.username, tc.password)
			require.True(t, errors.Is(err, aucerrors.ErrAuthFailure), "expected auth failure, got: %v", err)
		})
	}
}

// Tests Authenticate rejection paths
func TestProvider_Authenticate(t *testing.T) {
	t.Parallel()

	provider := newTestProvider(t)
	_, err := provider.Register("alice", "s3cret")
	require.NoError(t, err)
	token, err := provider.Login("alice", "s3cret")
	require.NoError(t, err)

	t.Run("garbage_token", func(t *testing.T) {
		_, err := provider.Authenticate("not-a-jwt")
		require.True(t, errors.Is(err, aucerrors.ErrAuthFailure))
	})

	t.Run("wrong_secret", func(t *testing.T) {
		other := NewProvider(repository.NewMemoryRepo(), "different-secret", 20*time.Minute)
		_, err := other.Authenticate(token.AccessToken)
		require.True(t, errors.Is(err, aucerrors.ErrAuthFailure))
	})

	t.Run("expired_token", func(t *testing.T) {
		// shift the provider clock past the token TTL
		provider.now = func() time.Time { return time.Now().UTC().Add(21 * time.Minute) }
		defer func() { provider.now = func() time.Time { return time.Now().UTC() } }()

		_, err := provider.Authenticate(token.AccessToken)
		require.True(t, errors.Is(err, aucerrors.ErrAuthFailure))
	})
}
