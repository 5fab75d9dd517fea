package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed console.html
var consoleHTML []byte

// ConsoleHandler serves the embedded QC console, a thin client of the
// validate and extract-validate endpoints.
type ConsoleHandler struct{}

// NewConsoleHandler creates a new ConsoleHandler.
func NewConsoleHandler() *ConsoleHandler {
	return &ConsoleHandler{}
}

// Console handles GET /console
func (h *ConsoleHandler) Console(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", consoleHTML)
}
