// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// DefaultAccessTokenTTL is the fallback validity window for JWT access
	// tokens when no deployment override is configured. Kept short (20m)
	// because tokens are stateless and can never be revoked before expiry.
	DefaultAccessTokenTTL = 20 * time.Minute

	// ResetTokenTTL is the duration a password reset token remains valid.
	// Short-lived (1 hour) for security.
	ResetTokenTTL = 1 * time.Hour

	// ResetTokenLength is the byte length of the random password reset token.
	ResetTokenLength = 32
)
