package service

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/neatify/neatify-api/pkg/errors"
)

func newSigningKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func staticKeyfunc(key *rsa.PrivateKey) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	}
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims ClerkClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims() ClerkClaims {
	return ClerkClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		PublicMetadata: ClerkMetadata{Email: "user@x", Name: "A User"},
	}
}

func TestAuthServiceVerify(t *testing.T) {
	key := newSigningKey(t)
	svc := NewAuthService(staticKeyfunc(key), 0, nil)

	identity, err := svc.Verify(signToken(t, key, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "user_1", identity.Subject)
	assert.Equal(t, "user@x", identity.Email)
	assert.Equal(t, "A User", identity.Name)
}

func TestAuthServiceVerifyExpired(t *testing.T) {
	key := newSigningKey(t)
	svc := NewAuthService(staticKeyfunc(key), 0, nil)

	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	_, err := svc.Verify(signToken(t, key, claims))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceVerifyMissingExpiry(t *testing.T) {
	key := newSigningKey(t)
	svc := NewAuthService(staticKeyfunc(key), 0, nil)

	claims := validClaims()
	claims.ExpiresAt = nil

	_, err := svc.Verify(signToken(t, key, claims))
	assert.Error(t, err)
}

func TestAuthServiceVerifyMissingEmail(t *testing.T) {
	key := newSigningKey(t)
	svc := NewAuthService(staticKeyfunc(key), 0, nil)

	claims := validClaims()
	claims.PublicMetadata.Email = ""

	_, err := svc.Verify(signToken(t, key, claims))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceVerifyMissingSubject(t *testing.T) {
	key := newSigningKey(t)
	svc := NewAuthService(staticKeyfunc(key), 0, nil)

	claims := validClaims()
	claims.Subject = ""

	_, err := svc.Verify(signToken(t, key, claims))
	assert.Error(t, err)
}

func TestAuthServiceVerifyRejectsHMAC(t *testing.T) {
	key := newSigningKey(t)
	svc := NewAuthService(staticKeyfunc(key), 0, nil)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims())
	signed, err := token.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceVerifyGarbage(t *testing.T) {
	key := newSigningKey(t)
	svc := NewAuthService(staticKeyfunc(key), 0, nil)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}
