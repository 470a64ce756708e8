// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package todo (Postgres) implements the storage layer for tasks.

# Schema Table Mapping
  - todo.task: One row per task, owner foreign key into users.account.
*/
package todo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/taskora/internal/platform/apperr"
)

// # Repository Implementation

// PostgresTodoRepository implements [TodoRepository] using pgx.
type PostgresTodoRepository struct {
	pool *pgxpool.Pool
}

// NewTodoRepository creates a new Postgres implementation for task storage.
func NewTodoRepository(pool *pgxpool.Pool) *PostgresTodoRepository {
	return &PostgresTodoRepository{pool: pool}
}

/*
FindByID retrieves a single task row by primary key.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Todo: Hydrated task entity
  - error: apperr.NotFound or database execution failure
*/
func (repository *PostgresTodoRepository) FindByID(context context.Context, id string) (*Todo, error) {
	const query = `
		SELECT id, ownerid, title, description, priority, complete, createdat, updatedat
		FROM todo.task
		WHERE id = $1`

	task := &Todo{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&task.Complete,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Todo")
		}
		return nil, fmt.Errorf("postgres_todo_repo_find_by_id_failed: %w", err)
	}

	return task, nil
}

/*
ListByOwner retrieves a paginated slice of one owner's tasks.

Description: Ordered newest first by the time-sortable primary key.

Parameters:
  - context: context.Context
  - ownerID: string
  - limit: int
  - offset: int

Returns:
  - []*Todo: Task slice
  - int: Total count for the owner
  - error: Database execution failures
*/
func (repository *PostgresTodoRepository) ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Todo, int, error) {
	const countQuery = `SELECT COUNT(*) FROM todo.task WHERE ownerid = $1`

	var total int
	if err := repository.pool.QueryRow(context, countQuery, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_todo_repo_count_failed: %w", err)
	}

	const query = `
		SELECT id, ownerid, title, description, priority, complete, createdat, updatedat
		FROM todo.task
		WHERE ownerid = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.pool.Query(context, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_todo_repo_list_failed: %w", err)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

/*
ListAll retrieves a paginated slice of every task on the platform.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*Todo: Task slice
  - int: Total platform task count
  - error: Database execution failures
*/
func (repository *PostgresTodoRepository) ListAll(context context.Context, limit, offset int) ([]*Todo, int, error) {
	const countQuery = `SELECT COUNT(*) FROM todo.task`

	var total int
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_todo_repo_count_all_failed: %w", err)
	}

	const query = `
		SELECT id, ownerid, title, description, priority, complete, createdat, updatedat
		FROM todo.task
		ORDER BY id DESC
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_todo_repo_list_all_failed: %w", err)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

/*
Create inserts a brand new task row.

Parameters:
  - context: context.Context
  - todo: *Todo

Returns:
  - error: Constraint or execution failures
*/
func (repository *PostgresTodoRepository) Create(context context.Context, todo *Todo) error {
	const query = `
		INSERT INTO todo.task (id, ownerid, title, description, priority, complete, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := repository.pool.Exec(context, query,
		todo.ID,
		todo.OwnerID,
		todo.Title,
		todo.Description,
		todo.Priority,
		todo.Complete,
		todo.CreatedAt,
		todo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_todo_repo_create_failed: %w", err)
	}

	return nil
}

/*
Update overwrites the mutable columns of an existing task row.

Parameters:
  - context: context.Context
  - todo: *Todo

Returns:
  - error: apperr.NotFound or execution failures
*/
func (repository *PostgresTodoRepository) Update(context context.Context, todo *Todo) error {
	const query = `
		UPDATE todo.task
		SET title = $2, description = $3, priority = $4, complete = $5, updatedat = $6
		WHERE id = $1`

	tag, err := repository.pool.Exec(context, query,
		todo.ID,
		todo.Title,
		todo.Description,
		todo.Priority,
		todo.Complete,
		todo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_todo_repo_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Todo")
	}

	return nil
}

/*
Delete permanently removes a task row.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound or execution failures
*/
func (repository *PostgresTodoRepository) Delete(context context.Context, id string) error {
	const query = `DELETE FROM todo.task WHERE id = $1`

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_todo_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Todo")
	}

	return nil
}

// scanTasks drains a row set into task entities.
func scanTasks(rows pgx.Rows) ([]*Todo, error) {
	tasks := make([]*Todo, 0)

	for rows.Next() {
		task := &Todo{}
		if err := rows.Scan(
			&task.ID,
			&task.OwnerID,
			&task.Title,
			&task.Description,
			&task.Priority,
			&task.Complete,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_todo_repo_scan_failed: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_todo_repo_rows_failed: %w", err)
	}

	return tasks, nil
}
