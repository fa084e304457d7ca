// file: utils/jwt_test.go
package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	user := models.User{ID: 42, Username: "dancer"}

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, uint32(42), claims.UserID)
	require.Equal(t, "dancer", claims.Username)
	require.NotEmpty(t, claims.ID, "jti should be set")
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	require.Error(t, err)
}

func TestParseTokenTampered(t *testing.T) {
	user := models.User{ID: 1, Username: "x"}
	token, err := GenerateToken(user)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = ParseToken(tampered)
	require.Error(t, err)
}

func TestParseTokenWrongKey(t *testing.T) {
	claims := Claims{
		UserID:   1,
		Username: "x",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	require.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	claims := Claims{
		UserID:   1,
		Username: "x",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	require.NoError(t, err)

	_, err = ParseToken(signed)
	require.Error(t, err)
}
