package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/provider"
	"github.com/fanxi-showcase/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCatalogCacheWarm, c.handleCatalogCacheWarm)
	mux.HandleFunc(queue.TaskUploadCleanup, c.handleUploadCleanup)
}

func (c *Consumer) handleCatalogCacheWarm(ctx context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil || task == nil {
		logger.Debugw("worker_cache_warm_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CatalogCacheWarmPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_cache_warm_unmarshal_failed", "error", err)
		return err
	}
	scope := strings.TrimSpace(payload.Scope)
	switch scope {
	case constants.CacheScopeBoard:
		if c.FeaturedSlotService == nil {
			logger.Warnw("worker_cache_warm_skip_service_nil", "scope", scope)
			return nil
		}
		if err := c.FeaturedSlotService.WarmBoard(ctx); err != nil {
			logger.Warnw("worker_cache_warm_board_failed", "error", err)
			return err
		}
	case constants.CacheScopeContent:
		if c.ContentService == nil {
			logger.Warnw("worker_cache_warm_skip_service_nil", "scope", scope)
			return nil
		}
		if err := c.ContentService.WarmContent(ctx); err != nil {
			logger.Warnw("worker_cache_warm_content_failed", "error", err)
			return err
		}
	default:
		logger.Debugw("worker_cache_warm_skip_unknown_scope", "scope", scope)
	}
	return nil
}

func (c *Consumer) handleUploadCleanup(_ context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil || task == nil {
		logger.Debugw("worker_upload_cleanup_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.UploadCleanupPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_upload_cleanup_unmarshal_failed", "error", err)
		return err
	}
	url := strings.TrimSpace(payload.URL)
	if url == "" {
		logger.Debugw("worker_upload_cleanup_skip_empty_url")
		return nil
	}
	if c.UploadService == nil {
		logger.Warnw("worker_upload_cleanup_skip_service_nil", "url", url)
		return nil
	}
	if err := c.UploadService.Remove(url); err != nil {
		logger.Warnw("worker_upload_cleanup_failed", "url", url, "error", err)
		return err
	}
	return nil
}
