package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fanxi-showcase/internal/app"
	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/provider"
	"github.com/fanxi-showcase/internal/service"
)

const usage = `用法: admin <command> [flags]

commands:
  list                                   列出管理员
  create  -username u -password p [-email e] [-full-name n] [-super]
  passwd  -username u -password p        重置密码（旧令牌全部失效）
  toggle  -username u                    启用 / 禁用账号
  verify  -username u -password p        校验账号密码
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := strings.ToLower(strings.TrimSpace(os.Args[1]))

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	username := fs.String("username", "", "管理员用户名")
	password := fs.String("password", "", "密码")
	email := fs.String("email", "", "邮箱")
	fullName := fs.String("full-name", "", "姓名")
	super := fs.Bool("super", false, "是否超级管理员")
	_ = fs.Parse(os.Args[2:])

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	if err := app.InitDatabase(cfg); err != nil {
		exitf("数据库初始化失败: %v", err)
	}
	if err := models.Migrate(models.DB); err != nil {
		exitf("数据库迁移失败: %v", err)
	}
	container := provider.NewContainer(cfg)
	defer container.Close()

	tool := &adminTool{accounts: container.AdminAccountService, actor: service.SystemActor()}
	ctx := context.Background()

	var err error
	switch command {
	case "list":
		err = tool.list()
	case "create":
		err = tool.create(ctx, *username, *password, *email, *fullName, *super)
	case "passwd":
		err = tool.passwd(ctx, *username, *password)
	case "toggle":
		err = tool.toggle(ctx, *username)
	case "verify":
		err = tool.verify(*username, *password)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		container.Close()
		exitf("%s 失败: %v", command, err)
	}
}

type adminTool struct {
	accounts *service.AdminAccountService
	actor    service.AdminActor
}

func (t *adminTool) list() error {
	admins, total, err := t.accounts.List(t.actor, "", 1, 100)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tACTIVE\tSUPER\tLAST LOGIN")
	for _, a := range admins {
		lastLogin := "-"
		if a.LastLoginAt != nil {
			lastLogin = a.LastLoginAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%t\t%s\n", a.ID, a.Username, deref(a.Email), a.IsActive, a.IsSuperuser, lastLogin)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("total: %d\n", total)
	return nil
}

func (t *adminTool) create(ctx context.Context, username, password, email, fullName string, super bool) error {
	input := service.AdminCreateInput{
		Username:    username,
		Password:    password,
		IsSuperuser: super,
	}
	if email = strings.TrimSpace(email); email != "" {
		input.Email = &email
	}
	if fullName = strings.TrimSpace(fullName); fullName != "" {
		input.FullName = &fullName
	}
	admin, err := t.accounts.Create(ctx, t.actor, input)
	if err != nil {
		return err
	}
	fmt.Printf("created admin %s (id=%d, super=%t)\n", admin.Username, admin.ID, admin.IsSuperuser)
	return nil
}

func (t *adminTool) passwd(ctx context.Context, username, password string) error {
	admin, err := t.find(username)
	if err != nil {
		return err
	}
	if _, err := t.accounts.Update(ctx, t.actor, admin.ID, service.AdminUpdateInput{Password: &password}); err != nil {
		return err
	}
	fmt.Printf("password updated for %s\n", admin.Username)
	return nil
}

func (t *adminTool) toggle(ctx context.Context, username string) error {
	admin, err := t.find(username)
	if err != nil {
		return err
	}
	next := !admin.IsActive
	updated, err := t.accounts.Update(ctx, t.actor, admin.ID, service.AdminUpdateInput{IsActive: &next})
	if err != nil {
		return err
	}
	fmt.Printf("admin %s active=%t\n", updated.Username, updated.IsActive)
	return nil
}

func (t *adminTool) verify(username, password string) error {
	admin, err := t.accounts.Verify(username, password)
	if err != nil {
		return err
	}
	fmt.Printf("credentials ok for %s (active=%t)\n", admin.Username, admin.IsActive)
	return nil
}

func (t *adminTool) find(username string) (*models.Admin, error) {
	return t.accounts.GetByUsername(username)
}

func deref(value *string) string {
	if value == nil {
		return "-"
	}
	return *value
}

func exitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
