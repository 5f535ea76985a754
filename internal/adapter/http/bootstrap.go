package http

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"todoapi/internal/adapter/http/routes"
	"todoapi/pkg/config"
	"todoapi/pkg/logger"
	"todoapi/pkg/telemetry"
)

// StartServer builds the container and serves until ctx is cancelled, then
// shuts the listener down gracefully.
func StartServer(ctx context.Context, cfg *config.AppConfig, metrics *telemetry.AppMetrics, log *logger.Logger) error {
	container, err := NewContainer(ctx, cfg, metrics)

	if err != nil {
		return err
	}

	defer container.Close()

	router := routes.SetupRouter(routes.HandlersConfig{
		AuthHandler: container.AuthHandler,
		TodoHandler: container.TodoHandler,
		JWT:         container.JWT,
	}, cfg.ServiceName, metrics, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Logger.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
