package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	stats := rg.Group("/statistics")
	{
		stats.GET("/technologies", h.Technologies)
		stats.GET("/skills", h.Skills)
	}
	rg.GET("/rag/stats", h.IndexStats)
}
