package queue

import (
	"encoding/json"

	"github.com/fanxi-showcase/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCatalogCacheWarm 展示数据缓存预热任务
	TaskCatalogCacheWarm = constants.TaskCatalogCacheWarm
	// TaskUploadCleanup 孤立上传文件清理任务
	TaskUploadCleanup = constants.TaskUploadCleanup
)

// CatalogCacheWarmPayload 缓存预热任务载荷
type CatalogCacheWarmPayload struct {
	Scope string `json:"scope"` // board / content
}

// UploadCleanupPayload 上传文件清理任务载荷
type UploadCleanupPayload struct {
	URL string `json:"url"`
}

// NewCatalogCacheWarmTask 创建缓存预热任务
func NewCatalogCacheWarmTask(payload CatalogCacheWarmPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCatalogCacheWarm, body), nil
}

// NewUploadCleanupTask 创建上传文件清理任务
func NewUploadCleanupTask(payload UploadCleanupPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskUploadCleanup, body), nil
}
