// Package main initializes and starts the bookkeeping API server,
// setting up configuration, logging, the database, repositories,
// services, and handlers.
package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"duitku/internal/config"
	"duitku/internal/db"
	"duitku/internal/logger"
	"duitku/internal/repository"
	"duitku/internal/server/handler/http"
	"duitku/internal/service"
	"duitku/internal/token"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	buildVersion := version
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	fmt.Printf("Build version: %s\n", buildVersion)
	buildDateStr := buildDate
	if buildDateStr == "" {
		buildDateStr = "N/A"
	}
	fmt.Printf("Build date: %s\n", buildDateStr)

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Open the SQLite database and run migrations.
	sqliteDB, err := db.InitSQLite(options.DatabasePath)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer func() { _ = sqliteDB.Close() }()

	// Initialize repositories.
	userRepo := repository.NewSQLiteUserRepository(sqliteDB)
	transactionRepo := repository.NewSQLiteTransactionRepository(sqliteDB)
	categoryRepo := repository.NewSQLiteCategoryRepository(sqliteDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo)
	transactionService := service.NewTransactionService(transactionRepo)
	categoryService := service.NewCategoryService(categoryRepo)

	// Token manager signs and verifies bearer tokens.
	tokens := token.NewManager(options.JWTSecret, options.TokenTTL)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService, Tokens: tokens}
	transactionHandler := &http.TransactionHandler{TransactionService: transactionService}
	categoryHandler := &http.CategoryHandler{CategoryService: categoryService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, transactionHandler, categoryHandler, tokens, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	// Shut down cleanly on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zapLogger.Fatal("server error", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
