// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"net/http"
	"oft-transacts/config"
	"oft-transacts/db"
	"oft-transacts/handler"
	"oft-transacts/logger"
	"oft-transacts/repository"
	"oft-transacts/router"
	"oft-transacts/service"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error applying migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	cfg := config.AppConfig

	// --- Wiring All Layers Together ---
	// Repositories, services and handlers are created here and injected
	// downwards; nothing below this block reads global state.

	authService := service.NewAuthService(cfg.OIDC.Issuer, cfg.OIDC.Audience, service.NewTTLCache())

	userRepo := repository.NewUserRepository(database)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler()

	accountRepo := repository.NewAccountRepository(database)
	accountService := service.NewAccountService(accountRepo, redisClient)
	accountHandler := handler.NewAccountHandler(accountService)

	transactionRepo := repository.NewTransactionRepository(database)
	transactionService := service.NewTransactionService(database, accountService, transactionRepo,
		cfg.Transacts.PageSize, cfg.Transacts.MaxPageSize)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	healthHandler := handler.NewHealthHandler(database)

	authMiddleware := handler.AuthMiddleware(authService, userService)
	r := router.NewRouter(authMiddleware, cfg.AllowedOriginList(), cfg.OIDC.Issuer,
		userHandler, accountHandler, transactionHandler, healthHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := cfg.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// TestApp bundles the wired router with its database handle so tests can
// exercise the full HTTP surface with injected auth collaborators.
type TestApp struct {
	DB     *sql.DB
	Router http.Handler
}

func NewTestApp(database *sql.DB, cacheClient service.ICacheClient, verifier handler.TokenVerifier, resolver handler.UserResolver) *TestApp {
	cfg := config.AppConfig

	userHandler := handler.NewUserHandler()

	accountRepo := repository.NewAccountRepository(database)
	accountService := service.NewAccountService(accountRepo, cacheClient)
	accountHandler := handler.NewAccountHandler(accountService)

	transactionRepo := repository.NewTransactionRepository(database)
	transactionService := service.NewTransactionService(database, accountService, transactionRepo,
		cfg.Transacts.PageSize, cfg.Transacts.MaxPageSize)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	healthHandler := handler.NewHealthHandler(database)

	authMiddleware := handler.AuthMiddleware(verifier, resolver)
	r := router.NewRouter(authMiddleware, cfg.AllowedOriginList(), cfg.OIDC.Issuer,
		userHandler, accountHandler, transactionHandler, healthHandler)

	return &TestApp{DB: database, Router: r}
}
