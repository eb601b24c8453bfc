package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/logger"

	"go.uber.org/zap"
)

// 运行模式
const (
	ModeAll     = "all"
	ModeAPI     = "api"
	ModeWorker  = "worker"
	ModeMonitor = "monitor"
)

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

// ParseMode 校验运行模式，空值视为 all
func ParseMode(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	switch mode {
	case "":
		return ModeAll, nil
	case ModeAll, ModeAPI, ModeWorker, ModeMonitor:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown mode %q", raw)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	if mode, err := ParseMode(opts.Mode); err == nil {
		opts.Mode = mode
	}
	return opts
}

func (o Options) serves(modes ...string) bool {
	for _, mode := range modes {
		if o.Mode == mode {
			return true
		}
	}
	return false
}
