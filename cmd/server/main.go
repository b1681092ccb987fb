package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/authdemo/internal/auth"
	"github.com/iudanet/authdemo/internal/config"
	"github.com/iudanet/authdemo/internal/server"
	"github.com/iudanet/authdemo/internal/server/storage/memory"
	"github.com/iudanet/authdemo/internal/session"
	"github.com/iudanet/authdemo/internal/token"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Show version and exit if requested
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" {
			printVersion()
			return
		}
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	// Директория пользователей и реестр сессий создаются один раз
	// на старте и живут до завершения процесса
	users := memory.NewStorage(memory.DemoAccounts())
	sessions := session.NewRegistry()
	codec := token.NewCodec(cfg.SecretKey)

	authService := auth.NewService(logger, users, sessions, codec, auth.Config{
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL,
	})

	srv := server.New(logger, cfg, authService, Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func printVersion() {
	fmt.Printf("Auth Demo Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
