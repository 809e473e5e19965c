package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/snackashi/portfolio/internal/analytics"
	"github.com/snackashi/portfolio/internal/config"
	"github.com/snackashi/portfolio/internal/content"
	"github.com/snackashi/portfolio/internal/resume"
	"github.com/snackashi/portfolio/internal/session"
	"github.com/snackashi/portfolio/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := content.LoadDir(cfg.Content.Dir)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	stats, err := analytics.Open(ctx, cfg.DB.Path, logger)
	if err != nil {
		return fmt.Errorf("open analytics: %w", err)
	}
	defer stats.Close()

	source, err := resume.NewSource(store.Links().ResumeURL, "/static/", web.Static())
	if err != nil {
		return err
	}
	loader := resume.NewCachedLoader(resume.SourceLoader{Source: source, Counter: resume.PDF{}})

	sessions := session.NewManager(loader, cfg.Session.TTL, logger)
	go sessions.Run(ctx, time.Minute)
	go runCleanup(ctx, stats, logger)

	var mailer Mailer
	if cfg.SMTP.Enabled() {
		mailer = smtpMailer{cfg: cfg.SMTP}
	} else {
		logger.Info("SMTP not configured, contact messages will only be stored")
	}

	admin, err := newAdminAuth(cfg.Admin, logger)
	if err != nil {
		return err
	}

	engine, err := newServer(serverDeps{
		Store:    store,
		Sessions: sessions,
		Source:   source,
		Stats:    stats,
		Mailer:   mailer,
		Admin:    admin,
		Logger:   logger,
	}).routes()
	if err != nil {
		return err
	}
	if cfg.Content.ImagesDir != "" {
		engine.Static("/images", cfg.Content.ImagesDir)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("portfolio listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// runCleanup applies the visitor retention window once a day.
func runCleanup(ctx context.Context, stats *analytics.Store, logger *slog.Logger) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		if _, err := stats.Cleanup(ctx); err != nil && ctx.Err() == nil {
			logger.Error("error cleaning up old visitor data", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

