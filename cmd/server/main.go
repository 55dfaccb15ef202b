package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chatbot_mcp/internal/config"
	"chatbot_mcp/internal/docs"
	"chatbot_mcp/internal/handler"
	"chatbot_mcp/internal/logging"
	"chatbot_mcp/internal/mcp"
	"chatbot_mcp/internal/repository"
	"chatbot_mcp/internal/server"
	"chatbot_mcp/internal/service"
	"chatbot_mcp/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dsn, err := cfg.Database.DSN()
	if err != nil {
		logger.Error("invalid database config", "error", err)
		os.Exit(1)
	}
	dbPool, err := config.ConnectDB(ctx, dsn, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// --- Migrations ---
	if err := config.Migrate(ctx, dbPool); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.Auth.JWTSecret, utils.DefaultTokenTTL)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	debtRepo := repository.NewDebtRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	userService := service.NewUserService(userRepo)
	debtService := service.NewDebtService(debtRepo)

	// --- MCP ---
	registry, err := mcp.NewRegistry(mcp.ChatbotTools(userService, debtService)...)
	if err != nil {
		logger.Error("failed to build tool registry", "error", err)
		os.Exit(1)
	}
	mcpServer, err := mcp.NewServer(mcp.Config{Registry: registry, Logger: logger})
	if err != nil {
		logger.Error("failed to create MCP server", "error", err)
		os.Exit(1)
	}

	// --- Initialize Handlers ---
	docsHTML, err := docs.RenderHTML()
	if err != nil {
		logger.Error("failed to render docs", "error", err)
		os.Exit(1)
	}

	router := server.NewRouter(server.Deps{
		Logger: logger,
		APIKey: cfg.Auth.APIKey,
		JWT:    jwtUtil,
		Health: handler.NewHealthHandler(dbPool),
		Auth:   handler.NewAuthHandler(authService),
		Docs:   handler.NewDocsHandler(docsHTML),
		MCP:    mcpServer,
	})

	// --- Start Server ---
	if err := server.Run(ctx, cfg.ListenAddr(), router, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
