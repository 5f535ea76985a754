package port

import (
	"context"
	"time"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
)

type SortColumn string

const (
	SortByCreatedAt SortColumn = "created_at"
	SortByDueDate   SortColumn = "due_date"
	SortByTitle     SortColumn = "title"
)

// TodoQuery is the resolved, typed predicate the service hands to the
// repository. Owner scoping is implicit: every query carries the user id.
type TodoQuery struct {
	Completed     *bool
	TitleContains string
	DueFrom       *time.Time
	DueTo         *time.Time
	OrderBy       SortColumn
	Descending    bool
}

type TodoRepository interface {
	GetByOwnerAndTitle(ctx context.Context, userID int, title string) (domain.Todo, error)
	GetByUUID(ctx context.Context, userID int, uid string) (domain.Todo, error)
	Query(ctx context.Context, userID int, q TodoQuery) ([]domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	UpdateByUUID(ctx context.Context, userID int, uid string, fields map[string]any) (domain.Todo, error)
	DeleteByUUID(ctx context.Context, userID int, uid string) error
}

type TodoService interface {
	Create(ctx context.Context, userID int, req request.CreateTodoRequest) (domain.Todo, error)
	List(ctx context.Context, userID int, q request.ListTodosQuery) ([]domain.Todo, error)
	GetOne(ctx context.Context, userID int, uid string) (domain.Todo, error)
	Update(ctx context.Context, userID int, uid string, req request.UpdateTodoRequest) (domain.Todo, error)
	Delete(ctx context.Context, userID int, uid string) error
}
