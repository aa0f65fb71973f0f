package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dutchhelper-backend/internal/adapter/provider/openrouter"
	"github.com/heartmarshall/dutchhelper-backend/internal/config"
	"github.com/heartmarshall/dutchhelper-backend/internal/service/analyzer"
	"github.com/heartmarshall/dutchhelper-backend/internal/transport/middleware"
	"github.com/heartmarshall/dutchhelper-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the analysis service to its upstream provider, and
// serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	llm := openrouter.NewClient(cfg.LLM, logger)
	svc := analyzer.NewService(logger, llm)

	router := rest.NewRouter(
		rest.NewAnalyzeHandler(svc, logger),
		rest.NewHealthHandler(BuildVersion()),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
