// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/taskora/internal/platform/apperr"
	"github.com/taibuivan/taskora/internal/users/account"
	"github.com/taibuivan/taskora/internal/users/auth"
)

// memoryAccountRepository is an in-memory AccountRepository for service tests.
type memoryAccountRepository struct {
	users map[string]*auth.User
}

func newMemoryAccountRepository() *memoryAccountRepository {
	return &memoryAccountRepository{users: make(map[string]*auth.User)}
}

func (repository *memoryAccountRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := repository.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("Account")
}

func (repository *memoryAccountRepository) Update(_ context.Context, user *auth.User) error {
	if _, ok := repository.users[user.ID]; !ok {
		return apperr.NotFound("Account")
	}
	copied := *user
	repository.users[user.ID] = &copied
	return nil
}

func (repository *memoryAccountRepository) Deactivate(_ context.Context, id string) error {
	user, ok := repository.users[id]
	if !ok {
		return apperr.NotFound("Account")
	}
	user.IsActive = false
	return nil
}

func newTestService() (*account.Service, *memoryAccountRepository) {
	repo := newMemoryAccountRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return account.NewService(repo, logger), repo
}

func seedUser(repo *memoryAccountRepository) *auth.User {
	user := &auth.User{
		ID:          "0192aaaa-bbbb-7ccc-8ddd-eeeeffff0001",
		Username:    "taibv",
		Email:       "tai@taskora.app",
		FirstName:   "Tai",
		LastName:    "Bui",
		PhoneNumber: "(111)-111-1111",
		IsActive:    true,
	}
	repo.users[user.ID] = user
	return user
}

/*
TestService_GetProfile verifies profile lookup by owner ID.
*/
func TestService_GetProfile(t *testing.T) {
	service, repo := newTestService()
	user := seedUser(repo)

	profile, err := service.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "taibv", profile.Username)

	_, err = service.GetProfile(context.Background(), "missing-id")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_UpdateProfile verifies partial name updates leave other fields intact.
*/
func TestService_UpdateProfile(t *testing.T) {
	service, repo := newTestService()
	user := seedUser(repo)

	first := "Taidan"
	updated, err := service.UpdateProfile(context.Background(), user.ID, account.UpdateProfileInput{
		FirstName: &first,
	})
	require.NoError(t, err)

	assert.Equal(t, "Taidan", updated.FirstName)
	assert.Equal(t, "Bui", updated.LastName)
	assert.Equal(t, "Taidan", repo.users[user.ID].FirstName)
}

/*
TestService_UpdatePhoneNumber verifies format validation and persistence.
*/
func TestService_UpdatePhoneNumber(t *testing.T) {
	service, repo := newTestService()
	user := seedUser(repo)

	tests := []struct {
		name    string
		phone   string
		isValid bool
	}{
		{"us_dashed", "(222)-222-2222", true},
		{"international", "+81 90 1234 5678", true},
		{"too_short", "12", false},
		{"letters", "phone-me-maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.UpdatePhoneNumber(context.Background(), user.ID, tt.phone)
			if tt.isValid {
				require.NoError(t, err)
				assert.Equal(t, tt.phone, repo.users[user.ID].PhoneNumber)
			} else {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			}
		})
	}
}

/*
TestService_DeactivateAccount verifies the flag flips and the call is idempotent.
*/
func TestService_DeactivateAccount(t *testing.T) {
	service, repo := newTestService()
	user := seedUser(repo)

	require.NoError(t, service.DeactivateAccount(context.Background(), user.ID))
	assert.False(t, repo.users[user.ID].IsActive)

	// Second deactivation succeeds as well.
	require.NoError(t, service.DeactivateAccount(context.Background(), user.ID))
}
