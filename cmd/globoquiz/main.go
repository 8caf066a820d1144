package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	api "github.com/mind-engage/globoquiz/internal/api/http"
	auth "github.com/mind-engage/globoquiz/internal/auth/middleware"
	"github.com/mind-engage/globoquiz/internal/config"
	"github.com/mind-engage/globoquiz/internal/db"
	"github.com/mind-engage/globoquiz/internal/logger"
	"github.com/mind-engage/globoquiz/internal/player"
	"github.com/mind-engage/globoquiz/internal/quiz"
	"github.com/mind-engage/globoquiz/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log, err := logger.New(cfg)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- DB ---
	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	dbh, err := db.Open(openCtx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	cancel()
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}
	defer dbh.Close()
	store := quiz.NewSQLStore(dbh)

	flags, err := storage.NewFSStore(cfg.FlagsDir)
	if err != nil {
		log.Fatal("flag store", zap.Error(err))
	}

	r := api.NewRouter(api.Deps{
		Store:       store,
		Users:       store,
		Plays:       store,
		Flags:       flags,
		Auth:        auth.NewAuthService(cfg.AuthSecret),
		Loader:      player.NewLoader(cfg.PublicURL),
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
	}()

	log.Info("listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("env", cfg.Env),
		zap.String("db", cfg.DBDriver),
		zap.String("public_url", cfg.PublicURL))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("serve", zap.Error(err))
	}
}
