package models

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestSQLiteDSNDefaults(t *testing.T) {
	cases := map[string]string{
		"showcase.db":                         "showcase.db?_pragma=foreign_keys(1)&_txlock=immediate",
		"file:x?mode=memory":                  "file:x?mode=memory&_pragma=foreign_keys(1)&_txlock=immediate",
		"a.db?_pragma=foreign_keys(0)":        "a.db?_pragma=foreign_keys(0)&_txlock=immediate",
		"file:y?cache=shared&_txlock=deferred": "file:y?cache=shared&_txlock=deferred&_pragma=foreign_keys(1)",
	}
	for in, want := range cases {
		if got := sqliteDSN(in); got != want {
			t.Fatalf("sqliteDSN(%q) want %q got %q", in, want, got)
		}
	}
}

func TestOpenSQLiteEnforcesForeignKeys(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "fk.db")
	db, err := Open("sqlite", dsn, DBPoolConfig{}, gormlogger.Default.LogMode(gormlogger.Silent))
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	var enabled int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error; err != nil {
		t.Fatalf("read pragma failed: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("foreign_keys want 1 got %d", enabled)
	}

	category := Category{Slug: "lamps", Name: "Lamps", IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := Product{
		CategoryID: category.ID,
		Slug:       "desk-lamp",
		Name:       "Desk Lamp",
		Price:      NewMoneyFromDecimal(decimal.NewFromInt(50)),
		Images:     StringArray{},
		Tags:       StringArray{},
		IsActive:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	err = db.Delete(&Category{}, category.ID).Error
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		t.Fatalf("delete referenced category want ErrForeignKeyViolated got %v", err)
	}

	orphan := product
	orphan.ID = 0
	orphan.Slug = "orphan"
	orphan.CategoryID = category.ID + 100
	err = db.Create(&orphan).Error
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		t.Fatalf("insert with missing category want ErrForeignKeyViolated got %v", err)
	}
}
