package repository

import (
	"context"
	"database/sql"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

var userColumns = []string{
	"id", "uuid", "name", "email", "encrypted_password", "created_at", "updated_at",
}

type UserRepository struct {
	db *sqlite.DB
}

func NewUserRepository(db *sqlite.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	rows, err := ur.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return domain.User{}, err
	}

	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.User{}, err
		}

		return domain.User{}, domain.ErrUserNotFound
	}

	return scanUser(rows)
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	stmt, args, err := ur.db.QueryBuilder.Insert("users").
		Columns("uuid", "name", "email", "encrypted_password", "created_at", "updated_at").
		Values(user.UUID.String(), user.Name, user.Email, user.EncryptedPassword, user.CreatedAt, user.UpdatedAt).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	if _, err := ur.db.ExecContext(ctx, stmt, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrDuplicateEmail
		}

		slog.Error("Insert failed", "error", err, "email", user.Email)

		return domain.User{}, err
	}

	return ur.GetByEmail(ctx, user.Email)
}

func scanUser(rows *sql.Rows) (domain.User, error) {
	var user domain.User
	var uid string

	err := rows.Scan(
		&user.ID, &uid, &user.Name, &user.Email,
		&user.EncryptedPassword, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return domain.User{}, err
	}

	user.UUID, err = uuid.Parse(uid)

	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}
