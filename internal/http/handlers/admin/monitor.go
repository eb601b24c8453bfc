package admin

import (
	"strconv"
	"time"

	"github.com/fanxi-showcase/internal/http/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultReportHours  = 24
	maxReportHours      = 24 * 30
	defaultReportLatest = 20
)

// GetMonitorReport 巡检报告：各服务可用率与平均响应时间
func (h *Handler) GetMonitorReport(c *gin.Context) {
	hours, err := strconv.Atoi(c.DefaultQuery("hours", strconv.Itoa(defaultReportHours)))
	if err != nil || hours <= 0 {
		hours = defaultReportHours
	}
	if hours > maxReportHours {
		hours = maxReportHours
	}
	latest, err := strconv.Atoi(c.DefaultQuery("latest", strconv.Itoa(defaultReportLatest)))
	if err != nil || latest < 0 {
		latest = defaultReportLatest
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	report, err := h.MonitorService.Report(since, latest)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, report)
}
