package utils_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, utils.CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-pass", hash))
	assert.False(t, utils.CheckPasswordHash("s3cret-pass", ""))
}

func TestHashPassword_TooLong(t *testing.T) {
	// 40 two-byte runes: within 72 characters but over bcrypt's 72 bytes.
	_, err := utils.HashPassword(strings.Repeat("é", 40))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "secret", time.Hour, "shop-management-app")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "shop-management-app", claims.Issuer)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	again, err := utils.GenerateJWT("user-1", "secret", time.Hour, "shop-management-app")
	require.NoError(t, err)
	againClaims, err := utils.ParseAndValidateJWT(again, "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	assert.NotEqual(t, claims.ID, againClaims.ID)
}

func TestParseJWT_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(hs512, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseJWT_RequiresExpiry(t *testing.T) {
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-1"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(noExpiry, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "secret", -time.Minute, "shop")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestPosthogClientWrapper_NoKeyIsNoop(t *testing.T) {
	w := utils.InitializePosthogClient("", "https://eu.i.posthog.com", slogDiscard())
	assert.False(t, w.IsInitialized())

	w.Enqueue("user-1", "api_v1_customers", nil)
	w.Close()
}

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
