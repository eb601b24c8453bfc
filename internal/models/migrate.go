package models

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fanxi-showcase/internal/logger"

	"gorm.io/gorm"
)

// SchemaMigration 已执行的迁移版本
type SchemaMigration struct {
	Version   string    `gorm:"primarykey;type:varchar(64)" json:"version"` // 版本号
	AppliedAt time.Time `gorm:"not null" json:"applied_at"`                 // 执行时间
}

// TableName 指定表名
func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

// Migration 单个版本化迁移
type Migration struct {
	Version string
	Name    string
	Up      func(tx *gorm.DB) error
}

// Migrations 返回按版本排序的迁移列表
func Migrations() []Migration {
	list := []Migration{
		{Version: "001", Name: "create_tables", Up: migrateCreateTables},
		{Version: "002", Name: "featured_active_position_unique", Up: migrateFeaturedActivePosition},
		{Version: "003", Name: "catalog_query_indexes", Up: migrateCatalogIndexes},
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Version < list[j].Version })
	return list
}

// Migrate 执行尚未应用的迁移，每个版本在独立事务中执行
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("database not initialized")
	}
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations failed: %w", err)
	}
	applied, err := AppliedVersions(db)
	if err != nil {
		return err
	}
	for _, m := range Migrations() {
		if _, ok := applied[m.Version]; ok {
			continue
		}
		logger.Infow("migration_apply", "version", m.Version, "name", m.Name)
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{Version: m.Version, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			logger.Errorw("migration_apply_failed", "version", m.Version, "name", m.Name, "error", err)
			return fmt.Errorf("migration %s_%s failed: %w", m.Version, m.Name, err)
		}
	}
	return nil
}

// AppliedVersions 查询已执行的迁移版本
func AppliedVersions(db *gorm.DB) (map[string]time.Time, error) {
	var rows []SchemaMigration
	if err := db.Order("version asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load schema_migrations failed: %w", err)
	}
	result := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		result[row.Version] = row.AppliedAt
	}
	return result, nil
}

func migrateCreateTables(tx *gorm.DB) error {
	return tx.AutoMigrate(AllModels()...)
}

// 同一位置最多一个启用的精选位；MySQL 不支持部分索引，由事务内行锁保证
func migrateFeaturedActivePosition(tx *gorm.DB) error {
	switch tx.Dialector.Name() {
	case "sqlite", "postgres":
		return tx.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_featured_active_position ON featured_products (position) WHERE is_active = TRUE").Error
	default:
		logger.Warnw("migration_partial_index_unsupported", "dialect", tx.Dialector.Name(), "index", "idx_featured_active_position")
		return nil
	}
}

func migrateCatalogIndexes(tx *gorm.DB) error {
	if tx.Migrator().HasIndex(&Product{}, "idx_products_category_active") {
		return nil
	}
	return tx.Exec("CREATE INDEX idx_products_category_active ON products (category_id, is_active)").Error
}
