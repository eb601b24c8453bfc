package models

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite" // 纯 Go SQLite 驱动（基于 modernc.org/sqlite）
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// DBPoolConfig 数据库连接池配置
type DBPoolConfig struct {
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSeconds int
	ConnMaxIdleTimeSeconds int
}

// NewDialector 根据驱动名称创建 GORM 方言
func NewDialector(driver, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite":
		return sqlite.Open(sqliteDSN(dsn)), nil
	case "postgres", "postgresql":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// sqliteDSN 为 SQLite 连接开启外键约束，并让事务以 IMMEDIATE 开始。
// SQLite 忽略 FOR UPDATE，写事务需在开始时取得写锁才能串行化检查与写入。
func sqliteDSN(dsn string) string {
	params := make([]string, 0, 2)
	if !strings.Contains(dsn, "foreign_keys") {
		params = append(params, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(dsn, "_txlock") {
		params = append(params, "_txlock=immediate")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// Open 打开数据库连接，不修改全局 DB
func Open(driver, dsn string, pool DBPoolConfig, gl gormlogger.Interface) (*gorm.DB, error) {
	dialector, err := NewDialector(driver, dsn)
	if err != nil {
		return nil, err
	}
	if gl == nil {
		gl = gormlogger.Default.LogMode(gormlogger.Warn)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gl,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	applyDBPool(sqlDB, pool)
	return db, nil
}

// InitDB 初始化全局数据库连接
func InitDB(driver, dsn string, pool DBPoolConfig, gl gormlogger.Interface) error {
	db, err := Open(driver, dsn, pool, gl)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Ping 检查数据库连通性
func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	return db.Exec("SELECT 1").Error
}

func applyDBPool(sqlDB *sql.DB, pool DBPoolConfig) {
	if sqlDB == nil {
		return
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetimeSeconds > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeSeconds) * time.Second)
	}
	if pool.ConnMaxIdleTimeSeconds > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleTimeSeconds) * time.Second)
	}
}

// AllModels 返回需要建表的全部模型
func AllModels() []interface{} {
	return []interface{}{
		&Admin{},
		&Category{},
		&Product{},
		&FeaturedProduct{},
		&BackgroundImage{},
		&AboutUs{},
		&FooterInfo{},
		&TopInfoBar{},
		&ServiceCheck{},
	}
}
