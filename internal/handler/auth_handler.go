package handler

import (
	"errors"
	"net/http"

	"chatbot_mcp/internal/middleware"
	"chatbot_mcp/internal/model"
	"chatbot_mcp/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and profile requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Authenticate issues a token for the user owning the phone number
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phoneNumber" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials."})
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"phone": user.Phone,
		},
	})
}

// Me returns the profile of the token's subject
func (h *AuthHandler) Me(c *gin.Context) {
	auth := middleware.MustAuthInfo(c)

	user, err := h.service.Profile(c.Request.Context(), auth.ClientID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found."})
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"firstName": user.FirstName(),
			"fullName":  user.Name,
			"phone":     user.Phone,
			"createdAt": user.CreatedAt,
		},
	})
}

// RegisterAuthRoutes mounts POST /auth behind the API key and GET /me behind the bearer gate
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, apiKeyMW, jwtAuthMW gin.HandlerFunc) {
	rg.POST("/auth", apiKeyMW, h.Authenticate)
	rg.GET("/me", jwtAuthMW, middleware.RequireScopes(model.ScopeRead), h.Me)
}
