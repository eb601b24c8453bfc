package app

import (
	"errors"

	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/provider"
	"github.com/fanxi-showcase/internal/router"
	"github.com/fanxi-showcase/internal/worker"
)

// BuildRunner 按运行模式组装服务
func BuildRunner(opts Options) (*Runner, error) {
	opts = normalizeOptions(opts)
	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if _, err := ParseMode(opts.Mode); err != nil {
		return nil, err
	}

	container := provider.NewContainer(cfg)
	var services []Service

	if opts.serves(ModeAll, ModeAPI) {
		engine := router.SetupRouter(cfg, container)
		services = append(services, NewHTTPService(cfg.Server.Addr(), engine))
	}

	if opts.serves(ModeAll, ModeWorker) {
		switch {
		case cfg.Queue.Enabled:
			workerService, err := worker.NewService(cfg, worker.NewConsumer(container))
			if err != nil {
				container.Close()
				return nil, err
			}
			services = append(services, workerService)
		case opts.Mode == ModeWorker:
			container.Close()
			return nil, errors.New("worker mode requires queue.enabled")
		default:
			logger.Infow("app_worker_skipped_queue_disabled")
		}
	}

	if cfg.Monitor.Enabled && opts.serves(ModeAll, ModeWorker, ModeMonitor) {
		services = append(services, worker.NewMonitorLoop(container.MonitorService))
	}

	if len(services) == 0 {
		container.Close()
		return nil, errors.New("no services initialized (check mode and config)")
	}

	runner := NewRunner(services...)
	runner.OnShutdown(container.Close)
	return runner, nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", opts.Config.Server.Addr(), "mode", opts.Mode, "services", runner.Names())
	return RunWithOptions(runner, opts)
}
