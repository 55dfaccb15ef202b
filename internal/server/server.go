package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"chatbot_mcp/internal/handler"
	"chatbot_mcp/internal/mcp"
	"chatbot_mcp/internal/middleware"
	"chatbot_mcp/internal/utils"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Deps are the collaborators the router is built from
type Deps struct {
	Logger *slog.Logger
	APIKey string
	JWT    *utils.JWTUtil
	Health *handler.HealthHandler
	Auth   *handler.AuthHandler
	Docs   *handler.DocsHandler
	MCP    *mcp.Server
}

// NewRouter wires the REST routes and the MCP endpoint
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger),
		middleware.CORS(),
	)

	router.GET("/health", d.Health.Health)
	router.GET("/docs", d.Docs.Docs)

	d.Auth.RegisterAuthRoutes(&router.RouterGroup,
		middleware.APIKeyMiddleware(d.APIKey),
		middleware.JWTAuthMiddleware(d.JWT),
	)

	router.POST("/mcp", middleware.MCPAuthMiddleware(d.JWT), d.MCP.Handle)

	return router
}

// Run serves handler on addr until ctx is cancelled, then drains in-flight
// requests for up to five seconds.
func Run(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server exited")
	return nil
}
