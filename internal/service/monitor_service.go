package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/fanxi-showcase/internal/cache"
	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"

	defaultMonitorTimeout  = 5 * time.Second
	defaultMonitorInterval = 60 * time.Second
	defaultMonitorRetain   = 7
)

// DBPinger 数据库连通性检查
type DBPinger func(ctx context.Context) error

// CheckResult 单次巡检结果
type CheckResult struct {
	Service    string    `json:"service"`
	Status     string    `json:"status"`
	ResponseMS int64     `json:"response_ms"`
	Details    string    `json:"details"`
	CheckedAt  time.Time `json:"checked_at"`
}

// MonitorReportItem 单个巡检对象的统计
type MonitorReportItem struct {
	Service       string  `json:"service"`
	Total         int64   `json:"total"`
	UpCount       int64   `json:"up_count"`
	Availability  float64 `json:"availability"`
	AvgResponseMS float64 `json:"avg_response_ms"`
}

// MonitorReport 巡检报告
type MonitorReport struct {
	Since  time.Time           `json:"since"`
	Items  []MonitorReportItem `json:"items"`
	Latest []CheckResult       `json:"latest"`
}

// MonitorService 服务巡检：API 健康检查、数据库、Redis 与页面探测
type MonitorService struct {
	cfg    config.MonitorConfig
	repo   repository.ServiceCheckRepository
	ping   DBPinger
	client *http.Client
}

// NewMonitorService 创建巡检服务
func NewMonitorService(cfg config.MonitorConfig, repo repository.ServiceCheckRepository, ping DBPinger) *MonitorService {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultMonitorTimeout
	}
	return &MonitorService{
		cfg:    cfg,
		repo:   repo,
		ping:   ping,
		client: &http.Client{Timeout: timeout},
	}
}

// Interval 巡检周期
func (s *MonitorService) Interval() time.Duration {
	if s.cfg.IntervalSeconds <= 0 {
		return defaultMonitorInterval
	}
	return time.Duration(s.cfg.IntervalSeconds) * time.Second
}

// CheckDatabase 检查数据库连通性
func (s *MonitorService) CheckDatabase(ctx context.Context) CheckResult {
	start := time.Now()
	result := CheckResult{Service: constants.ServiceCheckDatabase, CheckedAt: start}
	if s.ping == nil {
		result.Status = constants.ServiceStatusError
		result.Details = "database pinger not configured"
		return result
	}
	if err := s.ping(ctx); err != nil {
		result.Status = constants.ServiceStatusDown
		result.Details = err.Error()
		return result
	}
	result.Status = constants.ServiceStatusUp
	result.ResponseMS = time.Since(start).Milliseconds()
	return result
}

// CheckRedis 检查 Redis，未启用时视为正常
func (s *MonitorService) CheckRedis(ctx context.Context) CheckResult {
	start := time.Now()
	result := CheckResult{Service: constants.ServiceCheckRedis, CheckedAt: start, Status: constants.ServiceStatusUp}
	enabled, err := cache.Ping(ctx)
	switch {
	case err != nil:
		result.Status = constants.ServiceStatusDown
		result.Details = err.Error()
	case !enabled:
		result.Details = "disabled"
	default:
		result.ResponseMS = time.Since(start).Milliseconds()
	}
	return result
}

// CheckAPI 请求 /health，status=healthy 为 UP，其余为 DEGRADED
func (s *MonitorService) CheckAPI(ctx context.Context) CheckResult {
	result, resp := s.probe(ctx, constants.ServiceCheckAPI, "/health")
	if resp == nil {
		return result
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		result.Status = constants.ServiceStatusDown
		return result
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Status != healthStatusHealthy {
		result.Status = constants.ServiceStatusDegraded
		return result
	}
	result.Status = constants.ServiceStatusUp
	return result
}

// CheckPage 探测任意页面，HTTP 200 为 UP
func (s *MonitorService) CheckPage(ctx context.Context, pagePath string) CheckResult {
	result, resp := s.probe(ctx, "page:"+pagePath, pagePath)
	if resp == nil {
		return result
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		result.Status = constants.ServiceStatusUp
	} else {
		result.Status = constants.ServiceStatusDown
	}
	return result
}

func (s *MonitorService) probe(ctx context.Context, service, pagePath string) (CheckResult, *http.Response) {
	start := time.Now()
	result := CheckResult{Service: service, CheckedAt: start}
	target := strings.TrimRight(s.cfg.BaseURL, "/") + "/" + strings.TrimLeft(pagePath, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		result.Status = constants.ServiceStatusError
		result.Details = err.Error()
		return result, nil
	}
	resp, err := s.client.Do(req)
	if err != nil {
		result.Status = constants.ServiceStatusError
		result.Details = err.Error()
		return result, nil
	}
	result.ResponseMS = time.Since(start).Milliseconds()
	result.Details = fmt.Sprintf("HTTP %d", resp.StatusCode)
	return result, resp
}

// RunChecks 执行一轮完整巡检并记录结果
func (s *MonitorService) RunChecks(ctx context.Context) []CheckResult {
	results := []CheckResult{s.CheckDatabase(ctx), s.CheckRedis(ctx)}
	if strings.TrimSpace(s.cfg.BaseURL) != "" {
		results = append(results, s.CheckAPI(ctx))
		for _, page := range s.cfg.Pages {
			if strings.TrimSpace(page) == "" {
				continue
			}
			results = append(results, s.CheckPage(ctx, page))
		}
	}
	for _, result := range results {
		if err := s.Record(result); err != nil {
			logger.Warnw("service_check_record_failed", "service", result.Service, "error", err)
		}
		if result.Status != constants.ServiceStatusUp {
			logger.Warnw("service_check_unhealthy", "service", result.Service, "status", result.Status, "details", result.Details)
		}
	}
	return results
}

// Record 写入巡检记录
func (s *MonitorService) Record(result CheckResult) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Create(&models.ServiceCheck{
		Service:    result.Service,
		Status:     result.Status,
		ResponseMS: result.ResponseMS,
		Details:    result.Details,
		CheckedAt:  result.CheckedAt,
	})
}

// Report 汇总 since 以来的可用率与平均耗时
func (s *MonitorService) Report(since time.Time, latestLimit int) (*MonitorReport, error) {
	summaries, err := s.repo.SummarySince(since)
	if err != nil {
		return nil, err
	}
	items := make([]MonitorReportItem, 0, len(summaries))
	for _, summary := range summaries {
		item := MonitorReportItem{
			Service:       summary.Service,
			Total:         summary.Total,
			UpCount:       summary.UpCount,
			AvgResponseMS: summary.AvgResponseMS,
		}
		if summary.Total > 0 {
			item.Availability = float64(summary.UpCount) / float64(summary.Total)
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Service < items[j].Service })

	if latestLimit <= 0 {
		latestLimit = 20
	}
	rows, err := s.repo.Latest(latestLimit)
	if err != nil {
		return nil, err
	}
	latest := make([]CheckResult, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, CheckResult{
			Service:    row.Service,
			Status:     row.Status,
			ResponseMS: row.ResponseMS,
			Details:    row.Details,
			CheckedAt:  row.CheckedAt,
		})
	}
	return &MonitorReport{Since: since, Items: items, Latest: latest}, nil
}

// Purge 清理超过保留天数的巡检记录
func (s *MonitorService) Purge(now time.Time) (int64, error) {
	days := s.cfg.RetentionDays
	if days <= 0 {
		days = defaultMonitorRetain
	}
	return s.repo.PurgeBefore(now.AddDate(0, 0, -days))
}

// HealthStatus 根据依赖状态得出健康状态
func HealthStatus(dbErr error, redisErr error) string {
	if dbErr != nil || redisErr != nil {
		return healthStatusDegraded
	}
	return healthStatusHealthy
}

// HealthReport /health 接口输出
type HealthReport struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Redis     string    `json:"redis"`
	Timestamp time.Time `json:"timestamp"`
}

// Health 即时检查数据库与 Redis，不写入巡检记录
func (s *MonitorService) Health(ctx context.Context) HealthReport {
	db := s.CheckDatabase(ctx)
	redis := s.CheckRedis(ctx)
	var dbErr, redisErr error
	if db.Status != constants.ServiceStatusUp {
		dbErr = fmt.Errorf("database: %s", db.Details)
	}
	if redis.Status != constants.ServiceStatusUp {
		redisErr = fmt.Errorf("redis: %s", redis.Details)
	}
	redisState := strings.ToLower(redis.Status)
	if redis.Details == "disabled" {
		redisState = "disabled"
	}
	return HealthReport{
		Status:    HealthStatus(dbErr, redisErr),
		Database:  strings.ToLower(db.Status),
		Redis:     redisState,
		Timestamp: time.Now(),
	}
}
