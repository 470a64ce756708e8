// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/taskora/internal/platform/sec"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	testIssuer = "taskora.app"
)

func newTestTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, testIssuer)
	require.NoError(t, err)
	return service
}

/*
TestNewTokenService rejects secrets that are too short to resist brute force.
*/
func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		isValid bool
	}{
		{"min_length", testSecret, true},
		{"long_secret", testSecret + testSecret, true},
		{"too_short", "short-secret", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := sec.NewTokenService(tt.secret, testIssuer)
			if tt.isValid {
				require.NoError(t, err)
				assert.NotNil(t, service)
			} else {
				require.Error(t, err)
				assert.Nil(t, service)
			}
		})
	}
}

/*
TestTokenService_RoundTrip verifies a generated token parses back to the
identity it was issued for.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestTokenService(t)

	token, err := service.GenerateAccessToken("user-123", "taibv", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "taibv", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "taibv", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

/*
TestTokenService_Expired verifies an aged-out token maps to ErrTokenExpired.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTestTokenService(t)

	token, err := service.GenerateAccessToken("user-123", "taibv", "user", -time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_TamperedSignature verifies that any bit flip in the
signature segment is rejected as a signature failure.
*/
func TestTokenService_TamperedSignature(t *testing.T) {
	service := newTestTokenService(t)

	token, err := service.GenerateAccessToken("user-123", "taibv", "user", time.Hour)
	require.NoError(t, err)

	// Flip the last signature character to a different value.
	last := token[len(token)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)

	claims, err := service.VerifyToken(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, sec.ErrTokenSignatureInvalid)
}

/*
TestTokenService_WrongSecret verifies tokens signed with a different key
never validate.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	service := newTestTokenService(t)

	other, err := sec.NewTokenService(strings.Repeat("x", 32), testIssuer)
	require.NoError(t, err)

	token, err := other.GenerateAccessToken("user-123", "taibv", "user", time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, sec.ErrTokenSignatureInvalid)
}

/*
TestTokenService_NoneAlgorithm verifies an unsigned token is rejected even
when its payload is otherwise well formed.
*/
func TestTokenService_NoneAlgorithm(t *testing.T) {
	service := newTestTokenService(t)

	claims := sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "taibv",
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:   "user-123",
		Username: "taibv",
		Role:     "user",
	}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parsed, err := service.VerifyToken(token)
	assert.Nil(t, parsed)
	require.Error(t, err)
}

/*
TestTokenService_Malformed verifies garbage input maps to ErrTokenMalformed.
*/
func TestTokenService_Malformed(t *testing.T) {
	service := newTestTokenService(t)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not_a_jwt", "definitely-not-a-jwt"},
		{"two_segments", "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.VerifyToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, sec.ErrTokenMalformed)
		})
	}
}

/*
TestTokenService_MissingIdentityClaims verifies a validly signed token
without the custom identity claims is rejected.
*/
func TestTokenService_MissingIdentityClaims(t *testing.T) {
	service := newTestTokenService(t)

	claims := jwt.RegisteredClaims{
		Subject:   "taibv",
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	parsed, err := service.VerifyToken(signed)
	assert.Nil(t, parsed)
	assert.ErrorIs(t, err, sec.ErrTokenMalformed)
}
