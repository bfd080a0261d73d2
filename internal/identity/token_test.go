package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret"

func mintToken(t *testing.T, secret, email string, expiresIn time.Duration) string {
	t.Helper()
	claims := accessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseAccessToken_Valid(t *testing.T) {
	token := mintToken(t, testSecret, "alice@wave.com", time.Hour)

	id, err := parseAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice@wave.com", id.Email)
	assert.Equal(t, "user-123", id.Subject)
}

func TestParseAccessToken_Expired(t *testing.T) {
	token := mintToken(t, testSecret, "alice@wave.com", -time.Minute)

	_, err := parseAccessToken(token, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	token := mintToken(t, "some-other-secret", "alice@wave.com", time.Hour)

	_, err := parseAccessToken(token, testSecret)
	assert.Error(t, err)
}

func TestParseAccessToken_MissingEmailClaim(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = parseAccessToken(token, testSecret)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no email claim")
}

func TestParseAccessToken_RejectsUnsignedToken(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: "user-123",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = parseAccessToken(token, testSecret)
	assert.Error(t, err)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	_, err := parseAccessToken("not-a-jwt", testSecret)
	assert.Error(t, err)
}
