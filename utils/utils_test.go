package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, role string, exp time.Time) string {
	claims := utils.TokenClaims{
		UserID: 7,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "chef.anna",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return tok
}

func TestDecodeTokenClaims(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	claims, err := utils.DecodeTokenClaims(signedToken(t, "ROLE_chef", now.Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "CHEF", claims.Role)
	assert.Equal(t, "chef.anna", claims.Subject)
	assert.False(t, claims.Expired(now))
	assert.True(t, claims.Expired(now.Add(time.Hour)))

	_, err = utils.DecodeTokenClaims("not-a-token")
	assert.ErrorIs(t, err, utils.ErrMalformedToken)
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{-3.456, "-$3.46"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.FormatMoney(tt.amount))
	}
}
