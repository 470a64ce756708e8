// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package todo implements the task-tracking core of the platform.

Every task belongs to exactly one owner. Ordinary users can only see and
mutate their own tasks; administrators get a platform-wide view through
dedicated operations.

# Architecture

  - Entities: Todo.
  - Service: Ownership-enforcing business logic.
  - Repository: Abstracted persistence contract backed by Postgres.
*/
package todo

import (
	"context"
	"time"
)

// # Domain Entities

// Priority bounds for a task. Priority 1 is the lowest urgency, 5 the highest.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Todo represents a single task owned by a user.
type Todo struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	Complete    bool      `json:"complete"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// # Field Identifiers

// Field name constants shared across validation and transport layers.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPriority    = "priority"
	FieldComplete    = "complete"
)

// # Repository Contract

// TodoRepository defines the persistence contract for tasks.
type TodoRepository interface {
	/*
		FindByID retrieves a single task by its unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Todo: Hydrated task entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*Todo, error)

	/*
		ListByOwner retrieves a paginated slice of tasks for one owner.

		Parameters:
		  - context: context.Context
		  - ownerID: string
		  - limit: int (Max records to return)
		  - offset: int (Pagination cursor)

		Returns:
		  - []*Todo: Matching tasks, newest first
		  - int: Total count of the owner's tasks
		  - error: Storage failures
	*/
	ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Todo, int, error)

	/*
		ListAll retrieves a paginated slice of every task on the platform.

		Description: Reserved for administrative surfaces.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*Todo: Matching tasks, newest first
		  - int: Total task count
		  - error: Storage failures
	*/
	ListAll(context context.Context, limit, offset int) ([]*Todo, int, error)

	/*
		Create persists a brand new task.

		Parameters:
		  - context: context.Context
		  - todo: *Todo (Fully populated entity)

		Returns:
		  - error: Storage or constraint failures
	*/
	Create(context context.Context, todo *Todo) error

	/*
		Update overwrites the mutable fields of an existing task.

		Parameters:
		  - context: context.Context
		  - todo: *Todo (Hydrated entity with changes)

		Returns:
		  - error: apperr.NotFound or storage failures
	*/
	Update(context context.Context, todo *Todo) error

	/*
		Delete permanently removes a task.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound or storage failures
	*/
	Delete(context context.Context, id string) error
}
