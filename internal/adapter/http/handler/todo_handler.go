package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/internal/core/util"
	"todoapi/pkg/telemetry"
)

// Query keys GET /todos understands. Anything else is rejected so typos in
// filter names fail loudly instead of silently returning everything.
var allowedListParams = map[string]bool{
	"status": true,
	"title":  true,
	"from":   true,
	"to":     true,
	"sortBy": true,
	"order":  true,
}

type TodoHandler struct {
	svc     port.TodoService
	metrics *telemetry.AppMetrics
}

func NewTodoHandler(svc port.TodoService, metrics *telemetry.AppMetrics) *TodoHandler {
	return &TodoHandler{svc: svc, metrics: metrics}
}

func (t *TodoHandler) CreateTodo(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetInt("x-user-id")

	params, err := util.ParamsToMap[request.CreateTodoRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	todo, err := t.svc.Create(ctx, userID, params)

	if err != nil {
		slog.Error("Todo#CreateTodo", "error", err)
		helper.SendDomainError(c, err)
		return
	}

	t.recordOperation("create")

	helper.SendSuccess(c, http.StatusCreated, toTodoResponse(todo), "Todo successfully created")
}

func (t *TodoHandler) ListTodos(c *gin.Context) {
	ctx, span := telemetry.CreateChildSpan(c.Request.Context(), "handler.todo.ListTodos", []attribute.KeyValue{
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})

	defer span.End()

	userID := c.GetInt("x-user-id")

	for key := range c.Request.URL.Query() {
		if !allowedListParams[key] {
			helper.SendBadRequestError(c, key, "Unsupported filter parameter")
			return
		}
	}

	var params request.ListTodosQuery

	if err := c.ShouldBindQuery(&params); err != nil {
		helper.SendBadRequestError(c, "request", "Invalid query parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	span.SetAttributes(attribute.Int("user.id", userID))

	todos, err := t.svc.List(ctx, userID, params)

	if err != nil {
		telemetry.AddSpanError(span, err)
		helper.SendDomainError(c, err)
		return
	}

	t.recordOperation("list")

	data := make([]response.TodoResponse, 0, len(todos))

	for _, todo := range todos {
		data = append(data, toTodoResponse(todo))
	}

	helper.SendSuccess(c, http.StatusOK, data)
}

func (t *TodoHandler) GetTodo(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetInt("x-user-id")

	todo, err := t.svc.GetOne(ctx, userID, c.Param("uuid"))

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, toTodoResponse(todo))
}

func (t *TodoHandler) UpdateTodo(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetInt("x-user-id")

	params, err := util.ParamsToMap[request.UpdateTodoRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	todo, err := t.svc.Update(ctx, userID, c.Param("uuid"), params)

	if err != nil {
		slog.Error("Todo#UpdateTodo", "error", err, "uuid", c.Param("uuid"))
		helper.SendDomainError(c, err)
		return
	}

	t.recordOperation("update")

	helper.SendSuccess(c, http.StatusOK, toTodoResponse(todo), "Todo successfully updated")
}

func (t *TodoHandler) DeleteTodo(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetInt("x-user-id")

	if err := t.svc.Delete(ctx, userID, c.Param("uuid")); err != nil {
		helper.SendDomainError(c, err)
		return
	}

	t.recordOperation("delete")

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo successfully deleted",
	})
}

func (t *TodoHandler) recordOperation(operation string) {
	if t.metrics != nil {
		t.metrics.RecordTodoOperation(operation)
	}
}

func toTodoResponse(todo domain.Todo) response.TodoResponse {
	return response.TodoResponse{
		UUID:        todo.UUID,
		Title:       todo.Title,
		Description: todo.Description,
		DueDate:     todo.DueDate,
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}
