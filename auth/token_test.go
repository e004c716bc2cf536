package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("super-secret")

	token, err := svc.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenService_Expired(t *testing.T) {
	secret := "super-secret"
	svc := NewTokenService(secret)

	// Sign an already-expired token with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: "user-123",
	})
	tokenString, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("right-secret").Issue("user-123")
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret").Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("super-secret")

	for _, tokenString := range []string{"not.a.jwt", "garbage", ""} {
		_, err := svc.Verify(tokenString)
		assert.ErrorIs(t, err, ErrTokenInvalid, tokenString)
	}
}

func TestTokenService_MissingUserID(t *testing.T) {
	secret := "super-secret"
	empty := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := empty.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenService(secret).Verify(tokenString)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
