// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles user profile management and account lifecycle.

It provides functionalities for users to view their private identity data,
update contact details, and deactivate their own account.

# Architecture

  - Domain: This package depends on the auth package for the User entity.
  - Security: Every operation is scoped to the authenticated user's own ID.
*/
package account

import (
	"context"

	"github.com/taibuivan/taskora/internal/users/auth"
)

// # Repository Contracts

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		Update modifies the mutable profile fields of an existing user.

		Parameters:
		  - context: context.Context
		  - user: *User (Hydrated entity with changes)

		Returns:
		  - error: Storage or constraint failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		Deactivate flags an account as inactive, blocking future logins.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Execution failures
	*/
	Deactivate(context context.Context, id string) error
}
