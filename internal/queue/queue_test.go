package queue

import (
	"encoding/json"
	"testing"

	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/constants"
)

func TestDisabledClientIsNoop(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled")
	}
	if err := client.EnqueueCatalogCacheWarm(constants.CacheScopeBoard); err != nil {
		t.Fatalf("enqueue on disabled client should be noop, got %v", err)
	}
	if err := client.EnqueueUploadCleanup("/uploads/a.png", 0); err != nil {
		t.Fatalf("enqueue on disabled client should be noop, got %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestNewCatalogCacheWarmTaskPayload(t *testing.T) {
	task, err := NewCatalogCacheWarmTask(CatalogCacheWarmPayload{Scope: constants.CacheScopeContent})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if task.Type() != TaskCatalogCacheWarm {
		t.Fatalf("task type want %s got %s", TaskCatalogCacheWarm, task.Type())
	}
	var payload CatalogCacheWarmPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		t.Fatalf("decode payload failed: %v", err)
	}
	if payload.Scope != constants.CacheScopeContent {
		t.Fatalf("scope want content got %s", payload.Scope)
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(nil)
	if opt.Addr != "127.0.0.1:6379" {
		t.Fatalf("default addr unexpected: %s", opt.Addr)
	}
	if cfg.Concurrency != 10 || cfg.Queues[DefaultQueue] != 1 {
		t.Fatalf("default server config unexpected: %+v", cfg)
	}
}
