package jwt

import (
	"FoodHub/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTServiceWithSecret("secret")

	token, err := svc.GenerateTokenUser("user-1")
	require.NoError(t, err)

	id, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTServiceWithSecret("a").GenerateTokenUser("user-1")
	require.NoError(t, err)

	_, err = NewJWTServiceWithSecret("b").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_Expired(t *testing.T) {
	svc := &jwtService{secretKey: "secret", issuer: "FOODHUB", ttl: -time.Minute}
	token, err := svc.GenerateTokenUser("user-1")
	require.NoError(t, err)

	_, err = svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTService_Garbage(t *testing.T) {
	_, err := NewJWTServiceWithSecret("secret").GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_RejectsUnsignedAndAnonymous(t *testing.T) {
	svc := &jwtService{secretKey: "secret", issuer: "FOODHUB", ttl: time.Hour}
	claims := jwtUserClaim{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.validateToken(unsigned)
	assert.Error(t, err)
	_, err = svc.GetUserIDByToken(unsigned)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	claims.UserID = ""
	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	token, err := svc.validateToken(anonymous)
	require.NoError(t, err)
	assert.True(t, token.Valid)
	_, err = svc.GetUserIDByToken(anonymous)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
