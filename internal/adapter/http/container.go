package http

import (
	"context"

	"todoapi/internal/adapter/database/postgres"
	pgrepository "todoapi/internal/adapter/database/postgres/repository"
	"todoapi/internal/adapter/database/sqlite"
	sqliterepository "todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/pkg/auth"
	"todoapi/pkg/config"
	"todoapi/pkg/telemetry"
)

type Container struct {
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository

	AuthService port.AuthService
	TodoService port.TodoService

	AuthHandler *handler.AuthHandler
	TodoHandler *handler.TodoHandler

	JWT *auth.JWT

	closeDB func()
}

// NewContainer wires repositories, services and handlers for the configured
// database backend. DATABASE_URL selects postgres, otherwise sqlite.
func NewContainer(ctx context.Context, cfg *config.AppConfig, metrics *telemetry.AppMetrics) (*Container, error) {
	var userRepo port.UserRepository
	var todoRepo port.TodoRepository
	var closeDB func()

	if cfg.UsePostgres() {
		db, err := postgres.NewDB(ctx, cfg.DatabaseURL, cfg.MigrationsPath)

		if err != nil {
			return nil, err
		}

		userRepo = pgrepository.NewUserRepository(db)
		todoRepo = pgrepository.NewTodoRepository(db)
		closeDB = db.Close
	} else {
		db, err := sqlite.NewDB(cfg.DatabasePath, cfg.MigrationsPath)

		if err != nil {
			return nil, err
		}

		userRepo = sqliterepository.NewUserRepository(db)
		todoRepo = sqliterepository.NewTodoRepository(db)
		closeDB = func() { db.Close() }
	}

	jwt := &auth.JWT{Secret: cfg.JWTSecret}

	authSvc := service.NewAuthService(userRepo, jwt)
	todoSvc := service.NewTodoService(todoRepo)

	return &Container{
		UserRepo: userRepo,
		TodoRepo: todoRepo,

		AuthService: authSvc,
		TodoService: todoSvc,

		AuthHandler: handler.NewAuthHandler(authSvc),
		TodoHandler: handler.NewTodoHandler(todoSvc, metrics),

		JWT: jwt,

		closeDB: closeDB,
	}, nil
}

func (c *Container) Close() {
	if c.closeDB != nil {
		c.closeDB()
	}
}
