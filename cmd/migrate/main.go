package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fanxi-showcase/internal/app"
	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"
)

func main() {
	status := flag.Bool("status", false, "仅列出迁移版本及执行状态")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())

	if err := app.InitDatabase(cfg); err != nil {
		logger.Errorw("migrate_db_init_failed", "error", err)
		os.Exit(1)
	}

	if !*status {
		if err := models.Migrate(models.DB); err != nil {
			logger.Errorw("migrate_failed", "error", err)
			os.Exit(1)
		}
	} else if err := models.DB.AutoMigrate(&models.SchemaMigration{}); err != nil {
		logger.Errorw("migrate_status_failed", "error", err)
		os.Exit(1)
	}

	applied, err := models.AppliedVersions(models.DB)
	if err != nil {
		logger.Errorw("migrate_status_failed", "error", err)
		os.Exit(1)
	}
	for _, m := range models.Migrations() {
		if at, ok := applied[m.Version]; ok {
			fmt.Printf("%s  %-36s applied  %s\n", m.Version, m.Name, at.Format("2006-01-02 15:04:05"))
			continue
		}
		fmt.Printf("%s  %-36s pending\n", m.Version, m.Name)
	}
}
