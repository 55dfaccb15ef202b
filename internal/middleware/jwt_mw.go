package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"chatbot_mcp/internal/model"

	"github.com/gin-gonic/gin"
)

const AuthInfoKey = "authInfo"

// maxPeekBytes bounds how much of an MCP body the gate reads to spot a handshake
const maxPeekBytes = 1 << 20

// TokenVerifier resolves a bearer token to its subject
type TokenVerifier interface {
	ValidateToken(tokenString string) (string, error)
}

// authenticate returns the AuthInfo for an Authorization header, or a client message
func authenticate(verifier TokenVerifier, authHeader string) (model.AuthInfo, string) {
	if authHeader == "" {
		return model.AuthInfo{}, "Authorization header required"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return model.AuthInfo{}, "Invalid authorization header format"
	}

	sub, err := verifier.ValidateToken(parts[1])
	if err != nil {
		return model.AuthInfo{}, "Invalid or expired token"
	}

	scopes := make([]string, len(model.DefaultScopes))
	copy(scopes, model.DefaultScopes)
	return model.AuthInfo{Token: parts[1], ClientID: sub, Scopes: scopes}, ""
}

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, msg := authenticate(verifier, c.GetHeader("Authorization"))
		if msg != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
			return
		}

		c.Set(AuthInfoKey, info)
		c.Next()
	}
}

// MCPAuthMiddleware guards the MCP endpoint. The initialize handshake and
// notifications may arrive without a token; every other message needs one.
func MCPAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, msg := authenticate(verifier, c.GetHeader("Authorization"))
		if msg == "" {
			c.Set(AuthInfoKey, info)
			c.Next()
			return
		}

		if c.GetHeader("Authorization") == "" && isHandshake(c) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
	}
}

// isHandshake reports whether the body is an initialize request or a notification.
// The body is restored for the next handler.
func isHandshake(c *gin.Context) bool {
	if c.Request.Body == nil {
		return false
	}
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPeekBytes+1))
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil || len(body) > maxPeekBytes {
		return false
	}

	var envelope struct {
		ID     json.RawMessage `json:"id"`
		Method string          `json:"method"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false
	}

	isNotification := len(envelope.ID) == 0 || string(envelope.ID) == "null"
	return envelope.Method == "initialize" || (isNotification && strings.HasPrefix(envelope.Method, "notifications/"))
}

// GetAuthInfo returns the identity stored by the auth middlewares
func GetAuthInfo(c *gin.Context) (model.AuthInfo, bool) {
	val, exists := c.Get(AuthInfoKey)
	if !exists {
		return model.AuthInfo{}, false
	}
	info, ok := val.(model.AuthInfo)
	return info, ok
}

// MustAuthInfo is GetAuthInfo for routes mounted behind JWTAuthMiddleware
func MustAuthInfo(c *gin.Context) model.AuthInfo {
	info, ok := GetAuthInfo(c)
	if !ok {
		panic("middleware: AuthInfo not found in context, ensure JWT middleware runs first")
	}
	return info
}
