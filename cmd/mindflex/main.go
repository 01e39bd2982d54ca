package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lorenzovitale/mindflex/internal/agent"
	"github.com/lorenzovitale/mindflex/internal/config"
	"github.com/lorenzovitale/mindflex/internal/conversation"
	"github.com/lorenzovitale/mindflex/internal/httpapi"
	"github.com/lorenzovitale/mindflex/internal/observability"
	"github.com/lorenzovitale/mindflex/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	for _, dir := range []string{cfg.ConversationsDir, cfg.RecommendationsDir, cfg.LogsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("creating %s failed: %v", dir, err)
		}
	}

	logPath := filepath.Join(cfg.LogsDir, "app.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("opening log file %s failed: %v", logPath, err)
	}
	defer logFile.Close()
	log.SetOutput(io.MultiWriter(os.Stderr, logFile))

	metrics := observability.NewMetrics(cfg.MetricsNamespace)

	store := conversation.NewFileStore(cfg.ConversationsDir)

	ctx := context.Background()
	archive, err := conversation.NewArchive(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("conversation archive init failed: %v", err)
	}
	defer archive.Close()

	sessions := session.NewManager(cfg.SessionInactivityTimeout)
	sessions.SetExpireHook(func(_ *session.Session) {
		metrics.SessionEvents.WithLabelValues("expired").Inc()
		metrics.ActiveSessions.Set(float64(sessions.ActiveCount()))
	})

	orchestrator := agent.New(sessions, store, archive, metrics)

	api := httpapi.New(cfg, sessions, orchestrator, metrics)
	httpServer := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: api.Router(),
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()
	sessions.StartJanitor(runCtx, 5*time.Second)

	go func() {
		log.Printf("server listening on %s", cfg.BindAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Printf("shutdown signal received")

	runCancel()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		_ = httpServer.Close()
	}

	log.Printf("shutdown complete")
}
