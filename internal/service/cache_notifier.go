package service

import (
	"context"

	"github.com/fanxi-showcase/internal/cache"
	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/queue"
)

// CacheNotifier 后台变更后同步清理缓存，并投递异步预热任务
type CacheNotifier struct {
	queue *queue.Client
}

// NewCacheNotifier 创建缓存通知器
func NewCacheNotifier(queueClient *queue.Client) *CacheNotifier {
	return &CacheNotifier{queue: queueClient}
}

// BoardChanged 精选面板相关数据变更
func (n *CacheNotifier) BoardChanged(ctx context.Context) {
	if err := cache.InvalidateFeaturedBoard(ctx); err != nil {
		logger.Warnw("cache_invalidate_board_failed", "error", err)
	}
	n.enqueueWarm(constants.CacheScopeBoard)
}

// ContentChanged 单例内容变更
func (n *CacheNotifier) ContentChanged(ctx context.Context, kind string) {
	if err := cache.InvalidateContent(ctx, kind); err != nil {
		logger.Warnw("cache_invalidate_content_failed", "kind", kind, "error", err)
	}
	n.enqueueWarm(constants.CacheScopeContent)
}

// UploadOrphaned 投递孤立上传文件清理任务
func (n *CacheNotifier) UploadOrphaned(urls ...string) {
	if n == nil || n.queue == nil {
		return
	}
	for _, url := range urls {
		if err := n.queue.EnqueueUploadCleanup(url, 0); err != nil {
			logger.Warnw("queue_enqueue_upload_cleanup_failed", "url", url, "error", err)
		}
	}
}

func (n *CacheNotifier) enqueueWarm(scope string) {
	if n == nil || n.queue == nil {
		return
	}
	if err := n.queue.EnqueueCatalogCacheWarm(scope); err != nil {
		logger.Warnw("queue_enqueue_cache_warm_failed", "scope", scope, "error", err)
	}
}
