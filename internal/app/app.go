package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/weeklycontents/backend/internal/adapter/clock"
	"github.com/weeklycontents/backend/internal/adapter/line"
	"github.com/weeklycontents/backend/internal/adapter/postgres"
	contentrepo "github.com/weeklycontents/backend/internal/adapter/postgres/content"
	entryrepo "github.com/weeklycontents/backend/internal/adapter/postgres/entry"
	"github.com/weeklycontents/backend/internal/adapter/storage"
	"github.com/weeklycontents/backend/internal/config"
	"github.com/weeklycontents/backend/internal/domain"
	contentsvc "github.com/weeklycontents/backend/internal/service/content"
	entrysvc "github.com/weeklycontents/backend/internal/service/entry"
	systemsvc "github.com/weeklycontents/backend/internal/service/system"
	"github.com/weeklycontents/backend/internal/transport/middleware"
	"github.com/weeklycontents/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// adapters and services together, and serves HTTP until the context is
// canceled or a termination signal arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	entries := entryrepo.New(pool, txManager)
	contents := contentrepo.New(pool, txManager)

	var broadcaster interface {
		BroadcastEntry(ctx context.Context, entry domain.EntryDTO) error
	}
	if cfg.Line.Mock {
		broadcaster = line.NewMockBroadcaster(cfg.Line.LinkBaseURL, logger)
	} else {
		broadcaster = line.NewBroadcaster(cfg.Line.APIBaseURL, cfg.Line.LinkBaseURL, cfg.Line.ChannelToken, logger)
	}

	uploader, err := storage.New(ctx, storage.Options{
		Endpoint:      cfg.Storage.Endpoint,
		Region:        cfg.Storage.Region,
		AccessKeyID:   cfg.Storage.AccessKeyID,
		SecretKey:     cfg.Storage.SecretKey,
		Bucket:        cfg.Storage.Bucket,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	}, logger)
	if err != nil {
		return fmt.Errorf("init object storage: %w", err)
	}

	sysClock := clock.NewSystem()

	entryService := entrysvc.NewService(logger, entries, broadcaster, sysClock)
	contentService := contentsvc.NewService(logger, contents, sysClock)
	systemService := systemsvc.NewService(logger, uploader)

	router := rest.NewRouter(
		rest.NewHealthHandler(pool, BuildVersion()),
		rest.NewEntryHandler(entryService, logger),
		rest.NewContentHandler(contentService, logger),
		rest.NewUploadHandler(systemService, cfg.Storage.MaxUploadSize, logger),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
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

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
