package service

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", ExpireMinutes: 30},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 8, RequireLower: true, RequireNumber: true},
		},
	}
}

func createServiceTestCategory(t *testing.T, db *gorm.DB, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Slug: slug, Name: slug, IsActive: true}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createServiceTestProduct(t *testing.T, db *gorm.DB, categoryID uint, slug string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID: categoryID,
		Slug:       slug,
		Name:       slug,
		Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
		Images:     models.StringArray{},
		Tags:       models.StringArray{},
		IsActive:   active,
	}
	if err := repository.NewProductRepository(db).Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func createServiceTestAdmin(t *testing.T, db *gorm.DB, username, password string, superuser, active bool) *models.Admin {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.Admin{Username: username, PasswordHash: hash, IsSuperuser: superuser, IsActive: active}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return admin
}

func strRef(v string) *string { return &v }

func boolRef(v bool) *bool { return &v }

func intRef(v int) *int { return &v }

func uintRef(v uint) *uint { return &v }

func uintString(v uint) string { return strconv.FormatUint(uint64(v), 10) }
