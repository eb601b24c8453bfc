package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/fanxi-showcase/internal/app"
	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/provider"
	"github.com/fanxi-showcase/internal/service"
	"github.com/fanxi-showcase/internal/worker"
)

func main() {
	loop := flag.Bool("loop", false, "按 monitor.interval_seconds 持续巡检，直到收到退出信号")
	baseURL := flag.String("base-url", "", "覆盖 monitor.base_url")
	hours := flag.Int("hours", 24, "报告统计的时间窗口（小时）")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	if trimmed := strings.TrimSpace(*baseURL); trimmed != "" {
		cfg.Monitor.BaseURL = trimmed
	}

	if err := app.InitDatabase(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "数据库初始化失败: %v\n", err)
		os.Exit(1)
	}
	if err := models.Migrate(models.DB); err != nil {
		fmt.Fprintf(os.Stderr, "数据库迁移失败: %v\n", err)
		os.Exit(1)
	}
	container := provider.NewContainer(cfg)
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	monitorLoop := worker.NewMonitorLoop(container.MonitorService)
	if *loop {
		logger.Infow("monitor_loop_start", "base_url", cfg.Monitor.BaseURL, "interval", container.MonitorService.Interval().String())
		if err := monitorLoop.Start(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "巡检失败: %v\n", err)
			os.Exit(1)
		}
	} else {
		printResults(monitorLoop.RunOnce(ctx))
	}

	report, err := container.MonitorService.Report(time.Now().Add(-time.Duration(*hours)*time.Hour), 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "生成报告失败: %v\n", err)
		os.Exit(1)
	}
	printReport(report)
}

func printResults(results []service.CheckResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tSTATUS\tRESPONSE(ms)\tDETAILS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.Service, r.Status, r.ResponseMS, r.Details)
	}
	_ = w.Flush()
	fmt.Println()
}

func printReport(report *service.MonitorReport) {
	fmt.Printf("report since %s\n", report.Since.Format(time.RFC3339))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tCHECKS\tUP\tAVAILABILITY\tAVG(ms)")
	for _, item := range report.Items {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f%%\t%.1f\n", item.Service, item.Total, item.UpCount, item.Availability*100, item.AvgResponseMS)
	}
	_ = w.Flush()
}
