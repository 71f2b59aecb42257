package auth

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)

	return token
}

func TestJWTDecoder_DecodeValidToken(t *testing.T) {
	decoder := NewJWTDecoder()
	expiry := time.Now().Add(time.Hour)
	token := mintToken(t, jwt.MapClaims{
		"username": "budi",
		"name":     "Budi Santoso",
		"role":     "admin",
		"exp":      expiry.Unix(),
	})

	session, err := decoder.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, token, session.Token)
	assert.Equal(t, "budi", session.Username)
	assert.Equal(t, "Budi Santoso", session.Name)
	assert.Equal(t, entity.RoleAdmin, session.Role)
	assert.Equal(t, expiry.Unix(), session.ExpiresAt.Unix())
}

func TestJWTDecoder_UnknownRoleFallsBackToUser(t *testing.T) {
	decoder := NewJWTDecoder()
	token := mintToken(t, jwt.MapClaims{
		"username": "budi",
		"role":     "superuser",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	session, err := decoder.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, session.Role)
}

func TestJWTDecoder_ExpiredTokenStillDecodes(t *testing.T) {
	// Expiry policy belongs to the caller; the decoder only reports it.
	decoder := NewJWTDecoder()
	token := mintToken(t, jwt.MapClaims{
		"username": "budi",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	session, err := decoder.Decode(token)
	require.NoError(t, err)
	assert.True(t, session.ExpiredAt(time.Now()))
}

func TestJWTDecoder_MissingExpiryIsError(t *testing.T) {
	decoder := NewJWTDecoder()
	token := mintToken(t, jwt.MapClaims{"username": "budi"})

	_, err := decoder.Decode(token)
	assert.Error(t, err)
}

func TestJWTDecoder_GarbageIsError(t *testing.T) {
	decoder := NewJWTDecoder()

	_, err := decoder.Decode("not-a-jwt")
	assert.Error(t, err)
}
