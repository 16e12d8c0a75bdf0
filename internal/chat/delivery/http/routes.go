package http

import (
	"github.com/gin-gonic/gin"

	"internship-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Only the answering routes are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat", mw.RateLimit())
	{
		chat.POST("", h.Chat)
		chat.POST("/classify", h.Classify)
	}
}
