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

	"github.com/josinaldojr/medicinebot-rag/internal/config"
	"github.com/josinaldojr/medicinebot-rag/internal/db"
	apphttp "github.com/josinaldojr/medicinebot-rag/internal/http"
	"github.com/josinaldojr/medicinebot-rag/internal/llm"
	"github.com/josinaldojr/medicinebot-rag/internal/logger"
	"github.com/josinaldojr/medicinebot-rag/internal/rag"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()

	if err != nil {
		log.Error("API exited", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

// run wires the long-lived clients once and serves until ctx is done.
// Every deferred cleanup runs before it returns.
func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	geminiClient, err := llm.NewGeminiClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init Gemini client: %w", err)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("init vector index: %w", err)
	}
	defer pool.Close()

	index := rag.NewPgRepository(pool, cfg.IndexName)

	retriever := rag.NewRetriever(geminiClient, index)
	ragService := rag.NewService(retriever, geminiClient, log)

	h := apphttp.NewHandler(ragService, log)
	router := apphttp.NewRouter(h, log, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("API listening",
			zap.String("addr", srv.Addr),
			zap.String("index", cfg.IndexName),
			zap.String("chat_model", cfg.ChatModel),
		)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info("API stopped")
	return nil
}
