package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/provider"
	"github.com/fanxi-showcase/internal/queue"
	"github.com/fanxi-showcase/internal/service"

	"github.com/hibiken/asynq"
)

func newUploadConsumer(t *testing.T) (*Consumer, string) {
	t.Helper()
	dir := t.TempDir()
	container := &provider.Container{
		UploadService: service.NewUploadService(config.UploadConfig{Dir: dir, URLPrefix: "/uploads"}),
	}
	return NewConsumer(container), dir
}

func TestHandleUploadCleanupRemovesLocalFile(t *testing.T) {
	consumer, dir := newUploadConsumer(t)
	target := filepath.Join(dir, "product", "2026", "01", "a.png")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(target, []byte("png"), 0o644); err != nil {
		t.Fatalf("write file failed: %v", err)
	}

	task, err := queue.NewUploadCleanupTask(queue.UploadCleanupPayload{URL: "/uploads/product/2026/01/a.png"})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := consumer.handleUploadCleanup(context.Background(), task); err != nil {
		t.Fatalf("handle upload cleanup failed: %v", err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err=%v", err)
	}
}

func TestHandleUploadCleanupIgnoresForeignAndMissing(t *testing.T) {
	consumer, _ := newUploadConsumer(t)
	for _, url := range []string{"https://cdn.example.com/a.png", "/uploads/missing.png", "   "} {
		task, err := queue.NewUploadCleanupTask(queue.UploadCleanupPayload{URL: url})
		if err != nil {
			t.Fatalf("new task failed: %v", err)
		}
		if err := consumer.handleUploadCleanup(context.Background(), task); err != nil {
			t.Fatalf("url %q should be ignored, got %v", url, err)
		}
	}
}

func TestHandlersRejectMalformedPayload(t *testing.T) {
	consumer, _ := newUploadConsumer(t)
	if err := consumer.handleUploadCleanup(context.Background(), asynq.NewTask(queue.TaskUploadCleanup, []byte("{"))); err == nil {
		t.Fatalf("expected unmarshal error for upload cleanup")
	}
	if err := consumer.handleCatalogCacheWarm(context.Background(), asynq.NewTask(queue.TaskCatalogCacheWarm, []byte("{"))); err == nil {
		t.Fatalf("expected unmarshal error for cache warm")
	}
}

func TestHandleCatalogCacheWarmSkipsMissingServices(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	for _, scope := range []string{constants.CacheScopeBoard, constants.CacheScopeContent, "unknown"} {
		task, err := queue.NewCatalogCacheWarmTask(queue.CatalogCacheWarmPayload{Scope: scope})
		if err != nil {
			t.Fatalf("new task failed: %v", err)
		}
		if err := consumer.handleCatalogCacheWarm(context.Background(), task); err != nil {
			t.Fatalf("scope %q should be skipped, got %v", scope, err)
		}
	}
}

func TestNilConsumerIsSafe(t *testing.T) {
	var consumer *Consumer
	consumer.Register(asynq.NewServeMux())
	if err := consumer.handleUploadCleanup(context.Background(), nil); err != nil {
		t.Fatalf("nil consumer should be noop, got %v", err)
	}
}

func TestNewServiceRequiresEnabledQueue(t *testing.T) {
	if _, err := NewService(&config.Config{}, NewConsumer(&provider.Container{})); err == nil {
		t.Fatalf("expected error when queue disabled")
	}
}
