package handler

import (
	"net/http"

	"chatbot_mcp/internal/middleware"
	"chatbot_mcp/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// binding errors name fields the way clients send them
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.UseJSONFieldNames(v)
	}
}

// respondBindError answers a request body that failed to bind
func respondBindError(c *gin.Context, err error) {
	fields, ok := utils.FieldErrors(err)
	if !ok {
		fields = map[string][]string{"body": {"must be a valid JSON object"}}
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation error",
		"errors":  fields,
	})
}

// respondInternal logs err against the request and hides it from the client
func respondInternal(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"message":    "Internal server error",
		"request_id": c.GetString(middleware.RequestIDKey),
	})
}
