package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"studentsathi/internal/auth"
	"studentsathi/internal/server"
	"studentsathi/internal/storage/kv"
	"studentsathi/internal/storage/sqlite"
	"studentsathi/internal/util"
)

func main() {
	// .env is optional; real environment variables and flags win below.
	_ = godotenv.Load()

	addrFlag := flag.String("addr", util.EnvOrDefault("SATHI_ADDR", ":8080"), "HTTP listen address")
	dbFlag := flag.String("db", util.EnvOrDefault("SATHI_DB_PATH", "data/studentsathi.db"), "Path to sqlite database file")
	localFlag := flag.String("local", util.EnvOrDefault("SATHI_LOCAL_PATH", "data/local.json"), "Path to guest/preference store file")
	staticFlag := flag.String("static", util.EnvOrDefault("SATHI_STATIC_DIR", "web/dist"), "Directory with built frontend")
	secretFlag := flag.String("secret", util.EnvOrDefault("SATHI_JWT_SECRET", ""), "JWT signing secret")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger.Info("StudentSathi backend starting")

	store, err := sqlite.Open(*dbFlag, logger)
	if err != nil {
		logger.Error("unable to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	local, err := kv.OpenFile(*localFlag)
	if err != nil {
		logger.Error("unable to open local store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tokenConfig := auth.DefaultConfig()
	if *secretFlag != "" {
		tokenConfig.SecretKey = *secretFlag
	} else {
		logger.Warn("using development JWT secret; set SATHI_JWT_SECRET in production")
	}

	srv := server.New(store, local, auth.NewTokenManager(tokenConfig), logger, *staticFlag)

	httpServer := &http.Server{
		Addr:    *addrFlag,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("starting server", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}
