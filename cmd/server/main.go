package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/diewo77/portfolio-app/internal/auth"
	"github.com/diewo77/portfolio-app/internal/config"
	"github.com/diewo77/portfolio-app/internal/db"
	"github.com/diewo77/portfolio-app/internal/logger"
	"github.com/diewo77/portfolio-app/internal/mailer"
	"github.com/diewo77/portfolio-app/internal/server"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	conn, err := db.ConnectAndMigrate(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalw("database init failed", "error", err)
	}
	if *migrateOnlyFlag {
		log.Infow("migrations completed; exiting as requested")
		return
	}

	sessions := auth.New(cfg.SessionSecret)
	mail := mailer.NewSMTP(cfg.SMTP)
	handler := server.New(conn, sessions, mail, log)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: handler}
	go func() {
		log.Infow("server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infow("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("error during shutdown", "error", err)
	}
	log.Infow("server gracefully stopped")
}
