// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package todo

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/taskora/internal/platform/apperr"
	requestutil "github.com/taibuivan/taskora/internal/platform/request"
	"github.com/taibuivan/taskora/internal/platform/respond"
	"github.com/taibuivan/taskora/pkg/pagination"
)

// Handler implements the HTTP layer for task management.
//
// All endpoints require an active authentication session provided by the
// RequireAuth middleware; the admin surface additionally requires the
// admin role via RequireRole.
type Handler struct {
	todoService *Service
}

// NewHandler constructs a new todo [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{todoService: service}
}

// Routes returns a [chi.Router] configured with the member-facing endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTodos)
	router.Post("/", handler.createTodo)
	router.Get("/{id}", handler.getTodo)
	router.Put("/{id}", handler.updateTodo)
	router.Delete("/{id}", handler.deleteTodo)

	return router
}

// AdminRoutes returns a [chi.Router] with the platform-wide admin endpoints.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/todos", handler.adminListTodos)
	router.Delete("/todos/{id}", handler.adminDeleteTodo)

	return router
}

// # Member Endpoints

/*
GET /api/v1/todos.

Description: Lists the authenticated user's tasks, newest first.

Request:
  - page: int (Query, optional)
  - limit: int (Query, optional)

Response:
  - 200: []Todo: Paginated task collection
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) listTodos(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)

	tasks, total, err := handler.todoService.ListTodos(request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, tasks, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/todos/{id}.

Description: Retrieves a single task owned by the authenticated user.

Request:
  - id: string (UUID)

Response:
  - 200: Todo: The hydrated task
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Task absent or owned by another user
*/
func (handler *Handler) getTodo(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	todoID := chi.URLParam(request, "id")
	if todoID == "" {
		respond.Error(writer, request, apperr.NotFound("Todo"))
		return
	}

	task, err := handler.todoService.GetTodo(request.Context(), userID, todoID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, task)
}

// createTodoRequest defines the expected JSON payload for task creation.
type createTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

/*
POST /api/v1/todos.

Description: Opens a new task owned by the authenticated user.

Request:
  - body: createTodoRequest

Response:
  - 201: Todo: The created task
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) createTodo(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createTodoRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	task, err := handler.todoService.CreateTodo(request.Context(), userID, CreateInput{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, task)
}

// updateTodoRequest defines the expected JSON payload for partial updates.
type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
	Complete    *bool   `json:"complete"`
}

/*
PUT /api/v1/todos/{id}.

Description: Applies updates to a task owned by the authenticated user.
Omitted fields keep their current values.

Request:
  - id: string (UUID)
  - body: updateTodoRequest (Partial JSON)

Response:
  - 200: Todo: The updated task
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Task absent or owned by another user
*/
func (handler *Handler) updateTodo(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	todoID := chi.URLParam(request, "id")

	var input updateTodoRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	task, err := handler.todoService.UpdateTodo(request.Context(), userID, todoID, UpdateInput{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Complete:    input.Complete,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, task)
}

/*
DELETE /api/v1/todos/{id}.

Description: Permanently removes a task owned by the authenticated user.

Request:
  - id: string (UUID)

Response:
  - 204: No Content: Task deleted
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Task absent or owned by another user
*/
func (handler *Handler) deleteTodo(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	todoID := chi.URLParam(request, "id")

	if err := handler.todoService.DeleteTodo(request.Context(), userID, todoID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Admin Endpoints

/*
GET /api/v1/admin/todos.

Description: Lists every task on the platform regardless of owner.

Request:
  - page: int (Query, optional)
  - limit: int (Query, optional)

Response:
  - 200: []Todo: Paginated platform-wide task collection
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Admin role required
*/
func (handler *Handler) adminListTodos(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	tasks, total, err := handler.todoService.ListAllTodos(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, tasks, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
DELETE /api/v1/admin/todos/{id}.

Description: Removes any task regardless of owner.

Request:
  - id: string (UUID)

Response:
  - 204: No Content: Task deleted
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Admin role required
  - 404: ErrNotFound: Task not found
*/
func (handler *Handler) adminDeleteTodo(writer http.ResponseWriter, request *http.Request) {
	todoID := chi.URLParam(request, "id")
	if todoID == "" {
		respond.Error(writer, request, apperr.NotFound("Todo"))
		return
	}

	if err := handler.todoService.AdminDeleteTodo(request.Context(), todoID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
