package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"foome-hcm/internal/app"

	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Serve runs the API with graceful shutdown on SIGINT/SIGTERM. In-flight
// requests get shutdownTimeout to finish before the listener is torn down.
func Serve(a *app.App) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    ":" + a.Config.HTTPPort,
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("http server listening", zap.String("port", a.Config.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("http server shutdown failed", zap.Error(err))
		return err
	}

	a.Logger.Info("http server stopped")
	return nil
}
