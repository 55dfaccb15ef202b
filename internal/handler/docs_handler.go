package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DocsHandler serves the pre-rendered API guide
type DocsHandler struct {
	html []byte
}

// NewDocsHandler creates a new DocsHandler from an already rendered page
func NewDocsHandler(html []byte) *DocsHandler {
	return &DocsHandler{html: html}
}

func (h *DocsHandler) Docs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.html)
}
