package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

var todoColumns = []string{
	"id", "uuid", "title", "description", "due_date",
	"completed", "user_id", "created_at", "updated_at",
}

type TodoRepository struct {
	db *sqlite.DB
}

func NewTodoRepository(db *sqlite.DB) port.TodoRepository {
	return &TodoRepository{db: db}
}

func (tr *TodoRepository) GetByOwnerAndTitle(ctx context.Context, userID int, title string) (domain.Todo, error) {
	query := tr.db.QueryBuilder.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"user_id": userID, "title": title}).
		Limit(1)

	return tr.getOne(ctx, query)
}

func (tr *TodoRepository) GetByUUID(ctx context.Context, userID int, uid string) (domain.Todo, error) {
	query := tr.db.QueryBuilder.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"user_id": userID, "uuid": uid}).
		Limit(1)

	return tr.getOne(ctx, query)
}

func (tr *TodoRepository) Query(ctx context.Context, userID int, q port.TodoQuery) ([]domain.Todo, error) {
	query := tr.db.QueryBuilder.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"user_id": userID})

	if q.Completed != nil {
		query = query.Where(sq.Eq{"completed": *q.Completed})
	}

	if q.TitleContains != "" {
		query = query.Where(sq.Like{"title": "%" + q.TitleContains + "%"})
	}

	if q.DueFrom != nil {
		query = query.Where(sq.GtOrEq{"due_date": *q.DueFrom})
	}

	if q.DueTo != nil {
		query = query.Where(sq.LtOrEq{"due_date": *q.DueTo})
	}

	direction := "ASC"

	if q.Descending {
		direction = "DESC"
	}

	query = query.OrderBy(fmt.Sprintf("%s %s", q.OrderBy, direction))

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	todos := []domain.Todo{}

	for rows.Next() {
		todo, err := scanTodo(rows)

		if err != nil {
			return nil, err
		}

		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	stmt, args, err := tr.db.QueryBuilder.Insert("todos").
		Columns("uuid", "title", "description", "due_date", "completed", "user_id", "created_at", "updated_at").
		Values(todo.UUID.String(), todo.Title, todo.Description, nullableTime(todo.DueDate), todo.Completed, todo.UserId, todo.CreatedAt, todo.UpdatedAt).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	if _, err := tr.db.ExecContext(ctx, stmt, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.Todo{}, domain.ErrDuplicateTitle
		}

		slog.Error("Insert failed", "error", err, "uuid", todo.UUID.String())

		return domain.Todo{}, err
	}

	return tr.GetByUUID(ctx, todo.UserId, todo.UUID.String())
}

func (tr *TodoRepository) UpdateByUUID(ctx context.Context, userID int, uid string, fields map[string]any) (domain.Todo, error) {
	stmt, args, err := tr.db.QueryBuilder.Update("todos").
		SetMap(fields).
		Where(sq.Eq{"user_id": userID, "uuid": uid}).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.Todo{}, domain.ErrDuplicateTitle
		}

		return domain.Todo{}, err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.Todo{}, domain.ErrTodoNotFound
	}

	return tr.GetByUUID(ctx, userID, uid)
}

func (tr *TodoRepository) DeleteByUUID(ctx context.Context, userID int, uid string) error {
	stmt, args, err := tr.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"user_id": userID, "uuid": uid}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		return err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.ErrTodoNotFound
	}

	return nil
}

func (tr *TodoRepository) getOne(ctx context.Context, query sq.SelectBuilder) (domain.Todo, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return domain.Todo{}, err
	}

	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Todo{}, err
		}

		return domain.Todo{}, domain.ErrTodoNotFound
	}

	return scanTodo(rows)
}

func scanTodo(rows *sql.Rows) (domain.Todo, error) {
	var todo domain.Todo
	var uid string
	var dueDate sql.NullTime

	err := rows.Scan(
		&todo.ID, &uid, &todo.Title, &todo.Description, &dueDate,
		&todo.Completed, &todo.UserId, &todo.CreatedAt, &todo.UpdatedAt,
	)

	if err != nil {
		return domain.Todo{}, err
	}

	todo.UUID, err = uuid.Parse(uid)

	if err != nil {
		return domain.Todo{}, err
	}

	if dueDate.Valid {
		todo.DueDate = &dueDate.Time
	}

	return todo, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}

	return *t
}
