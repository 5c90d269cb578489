package auth

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := GenerateToken("42", "ana@example.com", RolePatient)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := ParseToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.ID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, RolePatient, claims.Role)
}

func TestTokenCarriesRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := GenerateToken("7", "root@example.com", RoleAdmin)
	assert.NoError(t, err)

	claims, err := ParseToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    "42",
		"email": "ana@example.com",
		"role":  RolePatient,
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBadSignatureRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "42",
		"role": RolePatient,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte("some-other-secret"))
	assert.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
