package public

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health 健康检查，直接输出 {status, database, redis, timestamp}
func (h *Handler) Health(c *gin.Context) {
	if h.MonitorService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, h.MonitorService.Health(c.Request.Context()))
}
