// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package todo_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/taskora/internal/platform/apperr"
	"github.com/taibuivan/taskora/internal/todo"
)

// memoryTodoRepository is an in-memory TodoRepository for service tests.
type memoryTodoRepository struct {
	tasks map[string]*todo.Todo
}

func newMemoryTodoRepository() *memoryTodoRepository {
	return &memoryTodoRepository{tasks: make(map[string]*todo.Todo)}
}

func (repository *memoryTodoRepository) FindByID(_ context.Context, id string) (*todo.Todo, error) {
	if task, ok := repository.tasks[id]; ok {
		copied := *task
		return &copied, nil
	}
	return nil, apperr.NotFound("Todo")
}

func (repository *memoryTodoRepository) sorted(filter func(*todo.Todo) bool) []*todo.Todo {
	matched := make([]*todo.Todo, 0)
	for _, task := range repository.tasks {
		if filter(task) {
			copied := *task
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return matched
}

func page(tasks []*todo.Todo, limit, offset int) []*todo.Todo {
	if offset >= len(tasks) {
		return []*todo.Todo{}
	}
	end := offset + limit
	if end > len(tasks) {
		end = len(tasks)
	}
	return tasks[offset:end]
}

func (repository *memoryTodoRepository) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]*todo.Todo, int, error) {
	matched := repository.sorted(func(task *todo.Todo) bool { return task.OwnerID == ownerID })
	return page(matched, limit, offset), len(matched), nil
}

func (repository *memoryTodoRepository) ListAll(_ context.Context, limit, offset int) ([]*todo.Todo, int, error) {
	matched := repository.sorted(func(*todo.Todo) bool { return true })
	return page(matched, limit, offset), len(matched), nil
}

func (repository *memoryTodoRepository) Create(_ context.Context, task *todo.Todo) error {
	copied := *task
	repository.tasks[task.ID] = &copied
	return nil
}

func (repository *memoryTodoRepository) Update(_ context.Context, task *todo.Todo) error {
	if _, ok := repository.tasks[task.ID]; !ok {
		return apperr.NotFound("Todo")
	}
	copied := *task
	repository.tasks[task.ID] = &copied
	return nil
}

func (repository *memoryTodoRepository) Delete(_ context.Context, id string) error {
	if _, ok := repository.tasks[id]; !ok {
		return apperr.NotFound("Todo")
	}
	delete(repository.tasks, id)
	return nil
}

const (
	ownerAlice = "0192aaaa-0000-7000-8000-000000000001"
	ownerBob   = "0192aaaa-0000-7000-8000-000000000002"
)

func newTestService() (*todo.Service, *memoryTodoRepository) {
	repo := newMemoryTodoRepository()
	return todo.NewService(repo), repo
}

// # Creation and Validation

/*
TestService_CreateTodo verifies task creation with attribute validation.
*/
func TestService_CreateTodo(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	task, err := service.CreateTodo(ctx, ownerAlice, todo.CreateInput{
		Title:       "Ship the release",
		Description: "Cut the tag and push artifacts",
		Priority:    4,
	})
	require.NoError(t, err)
	require.NotNil(t, task)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, ownerAlice, task.OwnerID)
	assert.False(t, task.Complete)
	assert.Len(t, repo.tasks, 1)
}

/*
TestService_CreateTodo_Validation rejects out-of-range attributes.
*/
func TestService_CreateTodo_Validation(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input todo.CreateInput
	}{
		{"empty_title", todo.CreateInput{Title: "", Priority: 3}},
		{"short_title", todo.CreateInput{Title: "ab", Priority: 3}},
		{"priority_too_low", todo.CreateInput{Title: "Valid title", Priority: 0}},
		{"priority_too_high", todo.CreateInput{Title: "Valid title", Priority: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateTodo(ctx, ownerAlice, tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

// # Ownership

/*
TestService_Ownership verifies that another user's task behaves exactly
like a missing one for get, update, and delete.
*/
func TestService_Ownership(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	task, err := service.CreateTodo(ctx, ownerAlice, todo.CreateInput{Title: "Private task", Priority: 2})
	require.NoError(t, err)

	// Owner sees the task.
	found, err := service.GetTodo(ctx, ownerAlice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, found.ID)

	// Any other caller gets NotFound on every operation.
	_, err = service.GetTodo(ctx, ownerBob, task.ID)
	assert.True(t, apperr.IsNotFound(err))

	title := "Hijacked"
	_, err = service.UpdateTodo(ctx, ownerBob, task.ID, todo.UpdateInput{Title: &title})
	assert.True(t, apperr.IsNotFound(err))

	err = service.DeleteTodo(ctx, ownerBob, task.ID)
	assert.True(t, apperr.IsNotFound(err))

	// The task survives the foreign attempts untouched.
	found, err = service.GetTodo(ctx, ownerAlice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private task", found.Title)
}

// # Updates

/*
TestService_UpdateTodo verifies partial updates merge onto current state.
*/
func TestService_UpdateTodo(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	task, err := service.CreateTodo(ctx, ownerAlice, todo.CreateInput{
		Title:       "Write migration",
		Description: "Initial schema",
		Priority:    3,
	})
	require.NoError(t, err)

	complete := true
	priority := 5
	updated, err := service.UpdateTodo(ctx, ownerAlice, task.ID, todo.UpdateInput{
		Priority: &priority,
		Complete: &complete,
	})
	require.NoError(t, err)

	assert.Equal(t, "Write migration", updated.Title)
	assert.Equal(t, "Initial schema", updated.Description)
	assert.Equal(t, 5, updated.Priority)
	assert.True(t, updated.Complete)
}

// # Listing

/*
TestService_ListTodos verifies the member listing is scoped to the caller.
*/
func TestService_ListTodos(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.CreateTodo(ctx, ownerAlice, todo.CreateInput{Title: "Alice task", Priority: 1})
		require.NoError(t, err)
	}
	_, err := service.CreateTodo(ctx, ownerBob, todo.CreateInput{Title: "Bob task", Priority: 1})
	require.NoError(t, err)

	tasks, total, err := service.ListTodos(ctx, ownerAlice, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.Equal(t, ownerAlice, task.OwnerID)
	}
}

// # Admin Surface

/*
TestService_AdminOperations verifies the platform-wide list and delete.
*/
func TestService_AdminOperations(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	aliceTask, err := service.CreateTodo(ctx, ownerAlice, todo.CreateInput{Title: "Alice task", Priority: 1})
	require.NoError(t, err)
	_, err = service.CreateTodo(ctx, ownerBob, todo.CreateInput{Title: "Bob task", Priority: 1})
	require.NoError(t, err)

	tasks, total, err := service.ListAllTodos(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, tasks, 2)

	// Admin removal crosses ownership boundaries.
	require.NoError(t, service.AdminDeleteTodo(ctx, aliceTask.ID))
	assert.Len(t, repo.tasks, 1)

	err = service.AdminDeleteTodo(ctx, aliceTask.ID)
	assert.True(t, apperr.IsNotFound(err))
}
