// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/taskora/internal/platform/middleware"
	"github.com/taibuivan/taskora/internal/platform/sec"
)

// stubVerifier maps literal token strings to claims for middleware tests.
type stubVerifier struct {
	claims map[string]*sec.AuthClaims
}

func (verifier stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if claims, ok := verifier.claims[tokenStr]; ok {
		return claims, nil
	}
	return nil, sec.ErrTokenSignatureInvalid
}

func newStubVerifier() stubVerifier {
	return stubVerifier{claims: map[string]*sec.AuthClaims{
		"member-token": {UserID: "user-1", Username: "taibv", Role: "user"},
		"admin-token":  {UserID: "user-2", Username: "root", Role: "admin"},
	}}
}

// echoUser terminates the chain and records the claims it observed.
func echoUser(observed **sec.AuthClaims) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*observed = middleware.GetUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAuthenticate covers anonymous passthrough, header format rejection,
and claim injection for valid tokens.
*/
func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{"anonymous", "", http.StatusOK, ""},
		{"valid_token", "Bearer member-token", http.StatusOK, "user-1"},
		{"lowercase_scheme", "bearer member-token", http.StatusOK, "user-1"},
		{"invalid_token", "Bearer forged-token", http.StatusUnauthorized, ""},
		{"missing_scheme", "member-token", http.StatusUnauthorized, ""},
		{"wrong_scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var observed *sec.AuthClaims
			handler := middleware.Authenticate(newStubVerifier())(echoUser(&observed))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantUser != "" {
				require.NotNil(t, observed)
				assert.Equal(t, tt.wantUser, observed.UserID)
			} else {
				assert.Nil(t, observed)
			}
		})
	}
}

/*
TestRequireAuth verifies anonymous requests are blocked behind the gate.
*/
func TestRequireAuth(t *testing.T) {
	var observed *sec.AuthClaims
	chain := middleware.Authenticate(newStubVerifier())(middleware.RequireAuth(echoUser(&observed)))

	// Anonymous request: Authenticate passes it through, RequireAuth blocks.
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Authenticated request reaches the handler.
	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer member-token")
	recorder = httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, observed)
	assert.Equal(t, "taibv", observed.Username)
}

/*
TestRequireRole verifies the role gate distinguishes 401 from 403.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"member_blocked", "Bearer member-token", http.StatusForbidden},
		{"admin_allowed", "Bearer admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var observed *sec.AuthClaims
			chain := middleware.Authenticate(newStubVerifier())(
				middleware.RequireRole(sec.RoleAdmin)(echoUser(&observed)),
			)

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			chain.ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
