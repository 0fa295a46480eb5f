package token

import (
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	accessToken, payload, err := maker.CreateToken(42, "alice@example.com", model.RoleCustomer, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotNil(t, payload)

	got, err := maker.VerifyToken(accessToken)
	require.NoError(t, err)
	require.Equal(t, uint(42), got.UserID)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, model.RoleCustomer, got.Role)
}

func TestJWTMakerShortKey(t *testing.T) {
	_, err := NewJWTMaker("too-short")
	require.Error(t, err)
}

func TestExpiredJWT(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	accessToken, _, err := maker.CreateToken(42, "alice@example.com", model.RoleCustomer, -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(accessToken)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTWrongKey(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	otherMaker, err := NewJWTMaker("ffffffffffffffffffffffffffffffff")
	require.NoError(t, err)

	accessToken, _, err := maker.CreateToken(42, "alice@example.com", model.RoleCustomer, time.Minute)
	require.NoError(t, err)

	_, err = otherMaker.VerifyToken(accessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}
