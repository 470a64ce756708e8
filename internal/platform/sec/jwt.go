// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the [TokenProvider] interface defined by consumers.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Verification Errors

// Sentinel errors returned by [TokenService.VerifyToken]. The HTTP boundary
// collapses all of them into a single 401 so a caller can never probe which
// check failed; the distinction exists for logging and tests.
var (
	// ErrTokenExpired means the signature was valid but 'exp' has passed.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenSignatureInvalid means the signature does not match the secret.
	ErrTokenSignatureInvalid = errors.New("sec: token signature invalid")

	// ErrTokenMalformed means the token or its claims could not be parsed,
	// or a required claim is missing.
	ErrTokenMalformed = errors.New("sec: token malformed")
)

// AuthClaims represents the payload embedded inside a JWT Access Token.
//
// # Why custom claims?
//
// By embedding the UserID, Username, and Role directly inside the JWT,
// the [middleware.Authenticate] can reconstruct the active user context
// WITHOUT querying the database on every single API request. The claims
// reflect the identity at issuance time; they are never re-validated
// against the store (stateless token model, no revocation).
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID   string `json:"uid"`
	Username string `json:"unm"`
	Role     string `json:"rol"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// The signing secret is immutable process-wide state, initialized once at
// startup and shared read-only across all requests.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService with the given HMAC secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("sec: signing secret must be at least 32 bytes, got %d", len(secret))
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// GenerateAccessToken creates a new JWT access token for a user.
//
// The Subject claim carries the username; the user's stable ID and role are
// embedded as custom claims.
func (service *TokenService) GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID:   userID,
		Username: username,
		Role:     role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// # Flow
//  1. Reject any signing method other than HMAC (this also rejects "none").
//  2. Verify signature and the 'exp' registered claim.
//  3. Reject structurally valid tokens whose required claims are absent.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			// Unverifiable tokens (unknown alg, missing exp) are treated as
			// tampering attempts rather than plain parse failures.
			return nil, ErrTokenSignatureInvalid
		}
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	// Strongly-typed claims: absence of identity fields is a hard reject,
	// never a partially-populated context downstream.
	if claims.UserID == "" || claims.Username == "" || claims.Role == "" {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
