package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	"todoapi/internal/core/util"
)

// TodoService enforces owner scoping, per-user title uniqueness and due-date
// validity on top of the repository. The service-level duplicate check gives
// the precise error ordering; the storage UNIQUE constraint stays the
// authoritative guard under concurrent creates.
type TodoService struct {
	repo port.TodoRepository
}

func NewTodoService(repo port.TodoRepository) *TodoService {
	return &TodoService{repo}
}

func (ts *TodoService) Create(ctx context.Context, userID int, req request.CreateTodoRequest) (domain.Todo, error) {
	_, err := ts.repo.GetByOwnerAndTitle(ctx, userID, req.Title)

	if err == nil {
		return domain.Todo{}, fmt.Errorf("create %q: %w", req.Title, domain.ErrDuplicateTitle)
	}

	if !errors.Is(err, domain.ErrTodoNotFound) {
		return domain.Todo{}, err
	}

	var dueDate *time.Time

	if req.DueDate != "" {
		parsed, err := util.ParseDueDate(req.DueDate)

		if err != nil {
			return domain.Todo{}, fmt.Errorf("create %q: %w", req.Title, domain.ErrInvalidDueDate)
		}

		dueDate = &parsed
	}

	now := time.Now()

	todo := domain.Todo{
		UUID:        uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Completed:   false,
		UserId:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := ts.repo.Create(ctx, todo)

	if err != nil {
		slog.Error("Todo#Create", "error", err, "title", todo.Title)
		return domain.Todo{}, err
	}

	return saved, nil
}

// List returns the owner's todos matching the filter, ordered per the sort
// request. An empty result is surfaced as ErrNoMatch rather than an empty
// slice; clients depend on the not-found semantics.
func (ts *TodoService) List(ctx context.Context, userID int, req request.ListTodosQuery) ([]domain.Todo, error) {
	query, err := buildTodoQuery(req)

	if err != nil {
		return nil, err
	}

	todos, err := ts.repo.Query(ctx, userID, query)

	if err != nil {
		return nil, err
	}

	if len(todos) == 0 {
		return nil, domain.ErrNoMatch
	}

	return todos, nil
}

func (ts *TodoService) GetOne(ctx context.Context, userID int, uid string) (domain.Todo, error) {
	return ts.repo.GetByUUID(ctx, userID, uid)
}

func (ts *TodoService) Update(ctx context.Context, userID int, uid string, req request.UpdateTodoRequest) (domain.Todo, error) {
	current, err := ts.GetOne(ctx, userID, uid)

	if err != nil {
		return domain.Todo{}, err
	}

	if req.Title != nil && *req.Title != current.Title {
		_, err := ts.repo.GetByOwnerAndTitle(ctx, userID, *req.Title)

		if err == nil {
			return domain.Todo{}, fmt.Errorf("update %q: %w", uid, domain.ErrDuplicateTitle)
		}

		if !errors.Is(err, domain.ErrTodoNotFound) {
			return domain.Todo{}, err
		}
	}

	fields := map[string]any{}

	if req.Title != nil {
		fields["title"] = *req.Title
	}

	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if req.Completed != nil {
		fields["completed"] = *req.Completed
	}

	if req.DueDate != nil {
		if *req.DueDate == "" {
			fields["due_date"] = nil
		} else {
			parsed, err := util.ParseDueDate(*req.DueDate)

			if err != nil {
				return domain.Todo{}, fmt.Errorf("update %q: %w", uid, domain.ErrInvalidDueDate)
			}

			fields["due_date"] = parsed
		}
	}

	fields["updated_at"] = time.Now()

	updated, err := ts.repo.UpdateByUUID(ctx, userID, uid, fields)

	if err != nil {
		slog.Error("Todo#Update", "error", err, "uuid", uid)
		return domain.Todo{}, err
	}

	return updated, nil
}

func (ts *TodoService) Delete(ctx context.Context, userID int, uid string) error {
	if _, err := ts.GetOne(ctx, userID, uid); err != nil {
		return err
	}

	return ts.repo.DeleteByUUID(ctx, userID, uid)
}

// buildTodoQuery turns the loose query-string filter into the typed predicate
// the repositories understand. Range bounds are validated independently so a
// bad "from" and a bad "to" report distinct errors.
func buildTodoQuery(req request.ListTodosQuery) (port.TodoQuery, error) {
	query := port.TodoQuery{
		TitleContains: req.Title,
	}

	switch req.Status {
	case "completed":
		completed := true
		query.Completed = &completed
	case "pending":
		completed := false
		query.Completed = &completed
	}

	if req.From != "" {
		from, err := util.ParseDueDate(req.From)

		if err != nil {
			return port.TodoQuery{}, domain.ErrInvalidFromDate
		}

		query.DueFrom = &from
	}

	if req.To != "" {
		to, err := util.ParseDueDate(req.To)

		if err != nil {
			return port.TodoQuery{}, domain.ErrInvalidToDate
		}

		query.DueTo = &to
	}

	switch req.SortBy {
	case "created":
		query.OrderBy = port.SortByCreatedAt
		query.Descending = req.Order == "desc"
	case "dueDate":
		query.OrderBy = port.SortByDueDate
		query.Descending = req.Order == "desc"
	case "title":
		query.OrderBy = port.SortByTitle
		query.Descending = req.Order == "desc"
	default:
		// Absent or unrecognized sort key: newest first.
		query.OrderBy = port.SortByCreatedAt
		query.Descending = true
	}

	return query, nil
}
