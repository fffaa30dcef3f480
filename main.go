package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bassam-order-service/internal/auth"
	"bassam-order-service/internal/config"
	httpapi "bassam-order-service/internal/http"
	"bassam-order-service/internal/ledger"
	"bassam-order-service/internal/logger"
	"bassam-order-service/internal/store"
	"bassam-order-service/internal/ws"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	var kv store.KV
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("database connection failed", zap.Error(err))
		}
		defer pool.Close()
		pg, err := store.NewPostgresKV(ctx, pool)
		if err != nil {
			log.Fatal("slot table setup failed", zap.Error(err))
		}
		kv = pg
		log.Info("ledger backend", zap.String("kind", "postgres"))
	} else {
		fileKV, err := store.NewFileKV(cfg.DataDir)
		if err != nil {
			log.Fatal("data directory setup failed", zap.Error(err), zap.String("dir", cfg.DataDir))
		}
		kv = fileKV
		log.Info("ledger backend", zap.String("kind", "file"), zap.String("dir", cfg.DataDir))
	}

	book := ledger.New(kv)
	provider := auth.StaticProvider{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	}
	hub := ws.NewHub(log, cfg.WSHeartbeatInterval)

	apiServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(book, provider, log, cfg, hub),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("order api ready", zap.String("base", "/api"))
		log.Info("admin ws ready", zap.String("base", "/ws"))
		log.Info("order service listening", zap.String("addr", cfg.HTTPAddr))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxShutdown); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
}
