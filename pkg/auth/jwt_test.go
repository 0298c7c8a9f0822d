package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *TokenService {
	svc, err := NewTokenService("test-secret", "portfolio-api")
	require.NoError(t, err)
	return svc
}

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	_, err := NewTokenService("", "portfolio-api")
	assert.Error(t, err)
}

func TestIssueAndVerifyPair(t *testing.T) {
	svc := newTestService(t)

	pair, err := svc.IssuePair("admin@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, 900, pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	claims, err = svc.Verify(pair.RefreshToken, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestVerifyWrongTokenType(t *testing.T) {
	svc := newTestService(t)

	pair, err := svc.IssuePair("admin@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(pair.RefreshToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = svc.Verify(pair.AccessToken, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := newTestService(t)

	issued := time.Now()
	svc.now = func() time.Time { return issued }

	pair, err := svc.IssuePair("admin@example.com")
	require.NoError(t, err)

	// Past the access TTL but inside the refresh TTL.
	svc.now = func() time.Time { return issued.Add(16 * time.Minute) }

	_, err = svc.Verify(pair.AccessToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrExpiredToken)

	_, err = svc.Verify(pair.RefreshToken, TokenTypeRefresh)
	assert.NoError(t, err)

	// Past the refresh TTL as well.
	svc.now = func() time.Time { return issued.Add(8 * 24 * time.Hour) }
	_, err = svc.Verify(pair.RefreshToken, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	svc := newTestService(t)
	other, err := NewTokenService("different-secret", "portfolio-api")
	require.NoError(t, err)

	pair, err := other.IssuePair("admin@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken, TokenTypeAccess)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyWrongIssuer(t *testing.T) {
	svc := newTestService(t)
	other, err := NewTokenService("test-secret", "someone-else")
	require.NoError(t, err)

	pair, err := other.IssuePair("admin@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken, TokenTypeAccess)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Verify("", TokenTypeAccess)
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = svc.Verify("not.a.token", TokenTypeAccess)
	assert.Error(t, err)
}
