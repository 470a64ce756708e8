// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package todo

import (
	"context"
	"fmt"
	"time"

	"github.com/taibuivan/taskora/internal/platform/apperr"
	"github.com/taibuivan/taskora/internal/platform/validate"
	"github.com/taibuivan/taskora/pkg/uuid"
)

// # Service Layer

// Service orchestrates the business logic for task management.
//
// Ownership is the central invariant: every read and write on a single
// task first resolves the record, then compares its OwnerID against the
// caller. A task owned by someone else is reported as absent, never as
// forbidden, so task IDs cannot be probed across accounts.
type Service struct {
	todoRepository TodoRepository
}

// NewService constructs a new [Service] with its required repository.
func NewService(todoRepo TodoRepository) *Service {
	return &Service{todoRepository: todoRepo}
}

// # Task Lookups

/*
ListTodos retrieves a paginated collection of the caller's own tasks.

Parameters:
  - context: context.Context
  - ownerID: string (The authenticated caller)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*Todo: Slice of the caller's tasks
  - int: Total count of the caller's tasks (for pagination metadata)
  - error: Storage failures
*/
func (service *Service) ListTodos(context context.Context, ownerID string, limit, offset int) ([]*Todo, int, error) {
	return service.todoRepository.ListByOwner(context, ownerID, limit, offset)
}

/*
GetTodo fetches a single task, enforcing ownership.

Description: A task that exists but belongs to another user yields the
same NotFound error as a task that does not exist at all.

Parameters:
  - context: context.Context
  - ownerID: string (The authenticated caller)
  - todoID: string

Returns:
  - *Todo: The hydrated task entity
  - error: apperr.NotFound or storage failures
*/
func (service *Service) GetTodo(context context.Context, ownerID, todoID string) (*Todo, error) {
	task, err := service.todoRepository.FindByID(context, todoID)
	if err != nil {
		return nil, err
	}

	// Ownership check. Foreign tasks are indistinguishable from absent ones.
	if task.OwnerID != ownerID {
		return nil, apperr.NotFound("Todo")
	}

	return task, nil
}

// # Task Management

// CreateInput holds the data required to open a new task.
type CreateInput struct {
	Title       string
	Description string
	Priority    int
}

/*
CreateTodo validates and persists a brand new task for the caller.

Parameters:
  - context: context.Context
  - ownerID: string (The authenticated caller)
  - input: CreateInput

Returns:
  - *Todo: The created task
  - error: Validation or persistence errors
*/
func (service *Service) CreateTodo(context context.Context, ownerID string, input CreateInput) (*Todo, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		MinLen(FieldTitle, input.Title, 3).
		MaxLen(FieldTitle, input.Title, 200).
		MaxLen(FieldDescription, input.Description, 2000).
		Range(FieldPriority, input.Priority, MinPriority, MaxPriority)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &Todo{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Complete:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := service.todoRepository.Create(context, task); err != nil {
		return nil, fmt.Errorf("todo_service_create_failed: %w", err)
	}

	return task, nil
}

// UpdateInput defines the mutable subset of task fields. Nil pointers
// leave the corresponding field untouched.
type UpdateInput struct {
	Title       *string
	Description *string
	Priority    *int
	Complete    *bool
}

/*
UpdateTodo applies a partial set of changes to an owned task.

Description: Resolves the task with the same ownership rule as GetTodo,
validates the incoming delta, and persists the merged entity.

Parameters:
  - context: context.Context
  - ownerID: string (The authenticated caller)
  - todoID: string
  - input: UpdateInput

Returns:
  - *Todo: The updated task
  - error: NotFound, validation, or persistence errors
*/
func (service *Service) UpdateTodo(context context.Context, ownerID, todoID string, input UpdateInput) (*Todo, error) {

	// Ownership-scoped resolution
	task, err := service.GetTodo(context, ownerID, todoID)
	if err != nil {
		return nil, err
	}

	// Validate only the provided fields
	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title).
			MinLen(FieldTitle, *input.Title, 3).
			MaxLen(FieldTitle, *input.Title, 200)
	}
	if input.Description != nil {
		validator.MaxLen(FieldDescription, *input.Description, 2000)
	}
	if input.Priority != nil {
		validator.Range(FieldPriority, *input.Priority, MinPriority, MaxPriority)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Complete != nil {
		task.Complete = *input.Complete
	}

	task.UpdatedAt = time.Now().UTC()

	if err := service.todoRepository.Update(context, task); err != nil {
		return nil, fmt.Errorf("todo_service_update_failed: %w", err)
	}

	return task, nil
}

/*
DeleteTodo permanently removes an owned task.

Parameters:
  - context: context.Context
  - ownerID: string (The authenticated caller)
  - todoID: string

Returns:
  - error: apperr.NotFound or persistence errors
*/
func (service *Service) DeleteTodo(context context.Context, ownerID, todoID string) error {

	// Ownership-scoped resolution
	if _, err := service.GetTodo(context, ownerID, todoID); err != nil {
		return err
	}

	if err := service.todoRepository.Delete(context, todoID); err != nil {
		return fmt.Errorf("todo_service_delete_failed: %w", err)
	}

	return nil
}

// # Administrative Surface

/*
ListAllTodos retrieves a paginated view across every account.

Description: Callers must already hold the admin role; the HTTP layer
enforces that with RequireRole before this method runs.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*Todo: Platform-wide task slice
  - int: Total task count
  - error: Storage failures
*/
func (service *Service) ListAllTodos(context context.Context, limit, offset int) ([]*Todo, int, error) {
	return service.todoRepository.ListAll(context, limit, offset)
}

/*
AdminDeleteTodo removes any task regardless of owner.

Parameters:
  - context: context.Context
  - todoID: string

Returns:
  - error: apperr.NotFound or persistence errors
*/
func (service *Service) AdminDeleteTodo(context context.Context, todoID string) error {
	if err := service.todoRepository.Delete(context, todoID); err != nil {
		return err
	}
	return nil
}
