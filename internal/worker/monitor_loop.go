package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/service"
)

// MonitorLoop 周期性执行服务巡检并清理过期记录
type MonitorLoop struct {
	monitor *service.MonitorService
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

// NewMonitorLoop 创建巡检循环
func NewMonitorLoop(monitor *service.MonitorService) *MonitorLoop {
	return &MonitorLoop{
		monitor: monitor,
		now:     time.Now,
		done:    make(chan struct{}),
	}
}

// Name 服务名称
func (l *MonitorLoop) Name() string {
	return "monitor"
}

// Start 阻塞运行，直到 ctx 结束或 Stop 被调用
func (l *MonitorLoop) Start(ctx context.Context) error {
	if l == nil || l.monitor == nil {
		return errors.New("monitor not initialized")
	}
	l.RunOnce(ctx)

	ticker := time.NewTicker(l.monitor.Interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.done:
			return nil
		case <-ticker.C:
			l.RunOnce(ctx)
		}
	}
}

// Stop 停止循环
func (l *MonitorLoop) Stop(_ context.Context) error {
	if l == nil {
		return nil
	}
	l.once.Do(func() { close(l.done) })
	return nil
}

// RunOnce 执行一轮巡检
func (l *MonitorLoop) RunOnce(ctx context.Context) []service.CheckResult {
	results := l.monitor.RunChecks(ctx)
	if removed, err := l.monitor.Purge(l.now()); err != nil {
		logger.Warnw("monitor_purge_failed", "error", err)
	} else if removed > 0 {
		logger.Debugw("monitor_purged", "removed", removed)
	}
	return results
}
