// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/taskora/internal/platform/validate"
	"github.com/taibuivan/taskora/internal/users/auth"
)

// # Service Layer

// Service orchestrates business logic for user accounts.
//
// It ensures that profile updates and account deactivation follow
// established business constraints.
type Service struct {
	accountRepository AccountRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependencies.
func NewService(accountRepo AccountRepository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		logger:            logger,
	}
}

// # Profile Management

/*
GetProfile retrieves the full private identity of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_profile_failed: %w", err)
	}
	return user, nil
}

// UpdateProfileInput defines the mutable subset of user profile fields.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
}

/*
UpdateProfile applies a partial set of changes to a user's account metadata.

Description: Fetches the existing user state, overrides provided fields, and
synchronizes the change to persistent storage.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated user profile
  - error: Update or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {

	// Business: Ensure the account exists
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_lookup_failed: %w", err)
	}

	// Apply delta updates
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}

	// Apply delta updates
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	// Persist changes
	if err := service.accountRepository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", userID))

	return user, nil
}

/*
UpdatePhoneNumber replaces the contact phone number on the account.

Parameters:
  - context: context.Context
  - userID: string
  - phoneNumber: string

Returns:
  - error: Validation or storage failures
*/
func (service *Service) UpdatePhoneNumber(context context.Context, userID, phoneNumber string) error {

	// Business: Ensure the account exists
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return fmt.Errorf("account_service_phone_lookup_failed: %w", err)
	}

	// Validate the new contact number format
	v := &validate.Validator{}
	if err := v.Phone(auth.FieldPhoneNumber, phoneNumber).Err(); err != nil {
		return err
	}

	user.PhoneNumber = phoneNumber
	if err := service.accountRepository.Update(context, user); err != nil {
		return fmt.Errorf("account_service_phone_update_failed: %w", err)
	}

	service.logger.Info("user_phone_updated", slog.String("user_id", userID))

	return nil
}

/*
DeactivateAccount performs an idempotent deactivation of a user account.

Description: Flags the account as inactive. Outstanding access tokens are
not revoked; they age out at their natural expiry, but the owner can no
longer log in to obtain new ones.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Execution failures
*/
func (service *Service) DeactivateAccount(context context.Context, userID string) error {

	if err := service.accountRepository.Deactivate(context, userID); err != nil {
		return fmt.Errorf("account_service_deactivate_failed: %w", err)
	}

	service.logger.Warn("user_account_deactivated", slog.String("user_id", userID))

	return nil
}
