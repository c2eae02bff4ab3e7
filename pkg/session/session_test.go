package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenapay/walletflow/internal/types"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()

	live := &Session{Token: signedToken(t, now.Add(time.Hour))}
	assert.False(t, live.Expired(now))

	expired := &Session{Token: signedToken(t, now.Add(-time.Hour))}
	assert.True(t, expired.Expired(now))

	// Opaque tokens carry no exp claim and are passed through
	opaque := &Session{Token: "not-a-jwt"}
	assert.False(t, opaque.Expired(now))

	var nilSession *Session
	assert.True(t, nilSession.Expired(now))
}

func TestProviderCurrent(t *testing.T) {
	p := NewProvider(&Session{Token: signedToken(t, time.Now().Add(time.Hour)), UserID: "user-1"})

	s, err := p.Current()
	require.NoError(t, err)
	assert.Equal(t, "user-1", s.UserID)
}

func TestProviderExpiredToken(t *testing.T) {
	p := NewProvider(&Session{Token: signedToken(t, time.Now().Add(-time.Minute))})

	_, err := p.Current()
	assert.True(t, types.IsWalletError(err, types.ErrSessionExpired))
}

func TestProviderSignOut(t *testing.T) {
	p := NewProvider(&Session{Token: "opaque-token"})

	fired := 0
	p.OnSignOut(func() { fired++ })

	p.SignOut()
	p.SignOut() // second call must not re-notify

	_, err := p.Current()
	assert.True(t, types.IsWalletError(err, types.ErrSignedOut))
	assert.Equal(t, 1, fired)
}

func TestProviderReplace(t *testing.T) {
	p := NewProvider(nil)

	_, err := p.Current()
	assert.True(t, types.IsWalletError(err, types.ErrSignedOut))

	p.Replace(&Session{Token: "opaque-token", UserID: "user-2"})
	s, err := p.Current()
	assert.NoError(t, err)
	assert.Equal(t, "user-2", s.UserID)
}
