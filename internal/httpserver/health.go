package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internship-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Internship assistant is up"
	HealthVersion = "1.0.0"
	ServiceName   = "internship-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Reports service identity plus database and semantic index counts. Unreachable backends are reported, not fatal.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	body := gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}

	if snapshot, err := srv.talentUC.Snapshot(ctx); err != nil {
		srv.l.Warnf(ctx, "health: snapshot failed: %v", err)
		body["status"] = "degraded"
		body["database"] = gin.H{"status": "unavailable"}
	} else {
		body["database"] = gin.H{"status": "ok", "counts": snapshot}
	}

	if stats, err := srv.talentUC.IndexStats(ctx); err != nil {
		srv.l.Warnf(ctx, "health: index stats failed: %v", err)
		body["status"] = "degraded"
		body["vector_index"] = gin.H{"status": "unavailable"}
	} else {
		body["vector_index"] = gin.H{"status": "ok", "counts": stats}
	}

	body["chat"] = srv.chatUC != nil
	response.OK(c, body)
}

// readyCheck reports ready once the database answers a ping.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Database unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.db.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "ready: database ping failed: %v", err)
		response.Error(c, response.NewHTTPError(http.StatusServiceUnavailable, "database unreachable"), nil)
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
