package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fanxi-showcase/internal/app"
	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiGreen  = "\033[32m"
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[33m"
)

func main() {
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker, monitor")
	flag.Parse()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	printStartupBanner(cfg)

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.JWT.SecretKey) {
			stdLog.Fatalf("JWT secret 过弱或仍为默认值，请在生产环境中配置强随机密钥")
		}
	} else if isWeakSecret(cfg.JWT.SecretKey) {
		stdLog.Printf("警告: JWT secret 过弱或仍为默认值，建议在生产环境中更换")
	}

	// 初始化数据库
	if err := app.InitDatabase(cfg); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 执行版本化迁移
	if err := models.Migrate(models.DB); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 初始化默认管理员账号
	if cfg.Server.Mode == "release" && cfg.DefaultAdmin.Password == "" {
		stdLog.Printf("警告: 未设置 DEFAULT_ADMIN_PASSWORD，已跳过默认管理员初始化")
	} else if err := models.InitDefaultAdmin(models.DB, cfg.DefaultAdmin.Username, cfg.DefaultAdmin.Password, cfg.DefaultAdmin.Email); err != nil {
		stdLog.Printf("警告: 初始化默认管理员失败: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner(cfg *config.Config) {
	fmt.Println(ansiCyan + "███████╗ █████╗ ███╗   ██╗██╗  ██╗██╗" + ansiReset)
	fmt.Println(ansiCyan + "██╔════╝██╔══██╗████╗  ██║╚██╗██╔╝██║" + ansiReset)
	fmt.Println(ansiCyan + "█████╗  ███████║██╔██╗ ██║ ╚███╔╝ ██║" + ansiReset)
	fmt.Println(ansiCyan + "██╔══╝  ██╔══██║██║╚██╗██║ ██╔██╗ ██║" + ansiReset)
	fmt.Println(ansiCyan + "██║     ██║  ██║██║ ╚████║██╔╝ ██╗██║" + ansiReset)
	fmt.Println(ansiCyan + "╚═╝     ╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + cfg.Server.Title + " v" + cfg.Server.Version + ansiReset)
	fmt.Println(ansiYellow + "• API:     http://" + cfg.Server.Addr() + "/api/v1" + ansiReset)
	fmt.Println(ansiYellow + "• Health:  http://" + cfg.Server.Addr() + "/health" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
