// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/taskora/internal/platform/sec"
)

/*
TestHashPassword verifies hashing is salted and verification round-trips.
*/
func TestHashPassword(t *testing.T) {
	const password = "correct horse battery"

	first, err := sec.HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, first)

	second, err := sec.HashPassword(password)
	require.NoError(t, err)

	// Random salt: same input, different stored hashes, both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, sec.CheckPasswordHash(password, first))
	assert.True(t, sec.CheckPasswordHash(password, second))
}

/*
TestCheckPasswordHash covers mismatches and corrupt stored hashes.
*/
func TestCheckPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		matches  bool
	}{
		{"match", "correct horse battery", hash, true},
		{"wrong_password", "wrong password", hash, false},
		{"empty_password", "", hash, false},
		{"corrupt_hash", "correct horse battery", "not-a-bcrypt-hash", false},
		{"empty_hash", "correct horse battery", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, sec.CheckPasswordHash(tt.password, tt.hash))
		})
	}
}

/*
TestGenerateSecureToken verifies entropy tokens are unique and URL-safe.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "+")
	assert.NotContains(t, first, "/")
	assert.NotContains(t, first, "=")
}

/*
TestHashToken verifies digests are deterministic and irreversible-looking.
*/
func TestHashToken(t *testing.T) {
	digest := sec.HashToken("some-opaque-token")

	assert.Len(t, digest, 64) // hex-encoded SHA-256
	assert.Equal(t, digest, sec.HashToken("some-opaque-token"))
	assert.NotEqual(t, digest, sec.HashToken("another-token"))
}

/*
TestUserRole_AtLeast verifies the role hierarchy comparisons.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name    string
		role    sec.UserRole
		target  sec.UserRole
		atLeast bool
	}{
		{"admin_over_user", sec.RoleAdmin, sec.RoleUser, true},
		{"admin_over_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"user_below_admin", sec.RoleUser, sec.RoleAdmin, false},
		{"user_over_user", sec.RoleUser, sec.RoleUser, true},
		{"unknown_below_user", sec.UserRole("ghost"), sec.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.atLeast, tt.role.AtLeast(tt.target))
		})
	}
}

/*
TestUserRole_IsValid verifies only enumerated roles are accepted.
*/
func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, sec.RoleAdmin.IsValid())
	assert.True(t, sec.RoleUser.IsValid())
	assert.False(t, sec.UserRole("moderator").IsValid())
	assert.False(t, sec.UserRole("").IsValid())
}
