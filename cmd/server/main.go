package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voiceorder/internal/bootstrap"
	"voiceorder/internal/config"
	"voiceorder/internal/handler"
	"voiceorder/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)

	logrus.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("Voice Order Assistant")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize services: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logrus.WithError(err).Error("Failed to release resources")
		}
	}()

	logrus.WithFields(logrus.Fields{
		"faq_entries":   app.FAQ.Len(),
		"faq_mode":      app.FAQ.Mode(),
		"context_store": cfg.ContextStore.Driver,
		"sink":          cfg.InteractionLog.Sink,
	}).Info("Services initialized")

	router := handler.NewRouter(cfg.Server, app.Assistant, handler.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := serve(ctx, srv); err != nil {
		logrus.WithError(err).Error("Server stopped with error")
		return 1
	}
	logrus.Info("Server stopped")
	return 0
}

// serve runs srv until ctx is done, then shuts it down gracefully. A listener
// failure is returned to the caller rather than exiting, so deferred cleanup
// in main still runs.
func serve(ctx context.Context, srv *http.Server) error {
	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		logrus.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
