package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"
)

// InitDatabase 按配置初始化全局数据库连接
func InitDatabase(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}
	if err := ensureSQLiteDir(cfg.Database.Driver, cfg.Database.DSN); err != nil {
		return err
	}
	gormLogger := logger.NewGormLogger(cfg.Server.Mode, time.Duration(cfg.Database.SlowThresholdMS)*time.Millisecond)
	return models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, gormLogger)
}

// sqlite 文件所在目录不存在时自动创建
func ensureSQLiteDir(driver, dsn string) error {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite":
	default:
		return nil
	}
	path := strings.TrimPrefix(strings.TrimSpace(dsn), "file:")
	if idx := strings.Index(path, "?"); idx >= 0 {
		path = path[:idx]
	}
	if path == "" || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sqlite dir failed: %w", err)
	}
	return nil
}
