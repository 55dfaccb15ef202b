package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"chatbot_mcp/internal/middleware"
	"chatbot_mcp/internal/model"

	"github.com/gin-gonic/gin"
)

// supportedProtocolVersions are the MCP revisions a client may ask for
var supportedProtocolVersions = map[string]bool{
	"2024-11-05": true,
	"2025-03-26": true,
	"2025-06-18": true,
}

// latestProtocolVersion is answered when the client asks for an unknown revision
const latestProtocolVersion = "2025-06-18"

// MaxRequestBodySize bounds a single JSON-RPC message (1MB)
const MaxRequestBodySize = 1 << 20

// ServerInfo identifies this server in the initialize result
type ServerInfo struct {
	Name    string `json:"name"`
	Title   string `json:"title,omitempty"`
	Version string `json:"version"`
}

// Config holds configuration for the MCP server
type Config struct {
	Registry *Registry
	Logger   *slog.Logger
	Info     ServerInfo
}

// Server dispatches JSON-RPC messages to registered tools
type Server struct {
	registry *Registry
	logger   *slog.Logger
	info     ServerInfo
}

// NewServer creates a new MCP server with the given configuration
func NewServer(cfg Config) (*Server, error) {
	if cfg.Registry == nil {
		return nil, errors.New("registry is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	info := cfg.Info
	if info.Name == "" {
		info = ServerInfo{Name: "chatbot-mcp", Title: "Chatbot MCP", Version: "1.0.0"}
	}

	return &Server{
		registry: cfg.Registry,
		logger:   logger,
		info:     info,
	}, nil
}

// Handle is the gin handler for POST /mcp. It expects the bearer gate to have
// run; requests it let through anonymously are dispatched with an empty AuthInfo.
func (s *Server) Handle(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		details := "failed to read request body"
		if errors.As(err, &tooLarge) {
			details = "request body too large"
		}
		c.JSON(http.StatusOK, errorResponse(nil, CodeInvalidRequest, "Invalid Request", gin.H{"details": details}))
		return
	}

	auth, _ := middleware.GetAuthInfo(c)
	resp := s.Dispatch(c.Request.Context(), body, auth)
	if resp == nil {
		c.Status(http.StatusAccepted)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Dispatch handles one JSON-RPC message. A nil response means the message was
// a notification and nothing should be written back.
func (s *Server) Dispatch(ctx context.Context, body []byte, auth model.AuthInfo) *Response {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return errorResponse(nil, CodeInvalidRequest, "Invalid Request", map[string]any{"details": "body is not a JSON-RPC object"})
	}
	if req.JSONRPC != jsonrpcVersion {
		return errorResponse(req.ID, CodeInvalidRequest, "Invalid Request", map[string]any{"details": `jsonrpc must be "2.0"`})
	}
	if req.Method == "" {
		return errorResponse(req.ID, CodeInvalidRequest, "Invalid Request", map[string]any{"details": "method is required"})
	}

	if req.IsNotification() {
		s.logger.Debug("accepted MCP notification", "method", req.Method)
		return nil
	}

	s.logger.Debug("MCP request", "method", req.Method, "client_id", auth.ClientID)

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "ping":
		return resultResponse(req.ID, map[string]any{})
	case "tools/list":
		return resultResponse(req.ID, ListToolsResult{Tools: s.registry.Tools()})
	case "tools/call":
		return s.handleToolsCall(ctx, req, auth)
	default:
		return errorResponse(req.ID, CodeMethodNotFound, "Method not found", map[string]any{
			"method":    req.Method,
			"available": s.registry.Names(),
		})
	}
}

func (s *Server) handleInitialize(req Request) *Response {
	var params struct {
		ProtocolVersion string `json:"protocolVersion"`
	}
	if len(req.Params) > 0 {
		// an unreadable params object still gets the latest version
		_ = json.Unmarshal(req.Params, &params)
	}

	version := latestProtocolVersion
	if supportedProtocolVersions[params.ProtocolVersion] {
		version = params.ProtocolVersion
	}

	return resultResponse(req.ID, map[string]any{
		"protocolVersion": version,
		"capabilities": map[string]any{
			"tools": map[string]any{"listChanged": false},
		},
		"serverInfo": s.info,
	})
}

func (s *Server) handleToolsCall(ctx context.Context, req Request, auth model.AuthInfo) *Response {
	var params CallToolParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResponse(req.ID, CodeInvalidParams, "Invalid params", map[string]any{
				"errors": map[string][]string{"params": {"must be an object with name and arguments"}},
			})
		}
	}
	if params.Name == "" {
		return errorResponse(req.ID, CodeInvalidParams, "Invalid params", map[string]any{
			"errors": map[string][]string{"name": {"is required"}},
		})
	}

	tool, ok := s.registry.Lookup(params.Name)
	if !ok {
		return errorResponse(req.ID, CodeMethodNotFound, "Method not found", map[string]any{
			"tool":      params.Name,
			"available": s.registry.Names(),
		})
	}

	out, err := tool.Call(ctx, params.Arguments, auth)
	if err != nil {
		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			return errorResponse(req.ID, CodeInvalidParams, "Invalid params", map[string]any{
				"tool":   tool.Name,
				"errors": argErr.Fields,
			})
		}
		s.logger.Error("tool execution failed",
			"tool_name", tool.Name,
			"client_id", auth.ClientID,
			"error", err,
		)
		return errorResponse(req.ID, CodeInternalError, "Internal error", map[string]any{"tool": tool.Name})
	}

	text, err := json.Marshal(out)
	if err != nil {
		s.logger.Error("failed to encode tool result", "tool_name", tool.Name, "error", err)
		return errorResponse(req.ID, CodeInternalError, "Internal error", map[string]any{"tool": tool.Name})
	}

	s.logger.Debug("tools/call complete", "tool_name", tool.Name, "client_id", auth.ClientID)

	return resultResponse(req.ID, CallToolResult{
		Content: []Content{{Type: "text", Text: string(text)}},
	})
}
