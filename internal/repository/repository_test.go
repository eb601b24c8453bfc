package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
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

func createTestCategory(t *testing.T, db *gorm.DB, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Slug: slug, Name: slug, IsActive: true}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createTestProduct(t *testing.T, repo *GormProductRepository, categoryID uint, slug string, price int64, active bool, mutate func(*models.Product)) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID: categoryID,
		Slug:       slug,
		Name:       slug,
		Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		IsActive:   active,
	}
	if mutate != nil {
		mutate(product)
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductSearchFiltersAndSorting(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	phones := createTestCategory(t, db, "phones")
	laptops := createTestCategory(t, db, "laptops")

	nameEn := "Smart Phone"
	createTestProduct(t, repo, phones.ID, "phone-a", 100, true, func(p *models.Product) {
		p.NameEn = &nameEn
		p.SalesCount = 5
	})
	createTestProduct(t, repo, phones.ID, "phone-b", 300, true, func(p *models.Product) {
		p.Tags = models.StringArray{"flagship"}
		p.IsFeatured = true
		p.SalesCount = 50
	})
	createTestProduct(t, repo, laptops.ID, "laptop-a", 200, true, nil)
	createTestProduct(t, repo, laptops.ID, "laptop-hidden", 150, false, nil)

	rows, total, err := repo.Search(ProductSearchFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("search all failed: %v", err)
	}
	if total != 3 || len(rows) != 3 {
		t.Fatalf("inactive products must be excluded, got total=%d len=%d", total, len(rows))
	}

	categoryID := phones.ID
	_, total, _ = repo.Search(ProductSearchFilter{Page: 1, PageSize: 10, CategoryID: &categoryID})
	if total != 2 {
		t.Fatalf("category filter want 2 got %d", total)
	}

	_, total, _ = repo.Search(ProductSearchFilter{Page: 1, PageSize: 10, Query: "smart"})
	if total != 1 {
		t.Fatalf("english name search want 1 got %d", total)
	}
	_, total, _ = repo.Search(ProductSearchFilter{Page: 1, PageSize: 10, Query: "flagship"})
	if total != 1 {
		t.Fatalf("tag search want 1 got %d", total)
	}

	featured := true
	_, total, _ = repo.Search(ProductSearchFilter{Page: 1, PageSize: 10, IsFeatured: &featured})
	if total != 1 {
		t.Fatalf("featured filter want 1 got %d", total)
	}

	minPrice := decimal.NewFromInt(100)
	maxPrice := decimal.NewFromInt(200)
	rows, total, _ = repo.Search(ProductSearchFilter{Page: 1, PageSize: 10, MinPrice: &minPrice, MaxPrice: &maxPrice})
	if total != 2 || len(rows) != 2 {
		t.Fatalf("inclusive price range want 2 got %d", total)
	}

	rows, _, _ = repo.Search(ProductSearchFilter{Page: 1, PageSize: 10, SortBy: constants.ProductSortPrice, SortOrder: constants.SortOrderDesc})
	if rows[0].Slug != "phone-b" || rows[2].Slug != "phone-a" {
		t.Fatalf("price desc order unexpected: %s, %s, %s", rows[0].Slug, rows[1].Slug, rows[2].Slug)
	}

	rows, total, _ = repo.Search(ProductSearchFilter{Page: 2, PageSize: 2})
	if total != 3 || len(rows) != 1 {
		t.Fatalf("second page want total=3 len=1 got total=%d len=%d", total, len(rows))
	}
	rows, total, _ = repo.Search(ProductSearchFilter{Page: 5, PageSize: 2})
	if total != 3 || len(rows) != 0 {
		t.Fatalf("page past the end want empty got total=%d len=%d", total, len(rows))
	}
}

func TestProductIncrementViewCountConcurrent(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "views")
	product := createTestProduct(t, repo, category.ID, "viewed", 10, true, nil)

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.IncrementViewCount(product.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("increment failed: %v", err)
	}

	reloaded, err := repo.GetByID(product.ID)
	if err != nil || reloaded == nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.ViewCount != workers {
		t.Fatalf("view count want %d got %d", workers, reloaded.ViewCount)
	}
}

func TestFeaturedFindActiveByPositionExcludesSelf(t *testing.T) {
	db := setupRepositoryTestDB(t)
	productRepo := NewProductRepository(db)
	category := createTestCategory(t, db, "featured")
	product := createTestProduct(t, productRepo, category.ID, "featured-p", 10, true, nil)

	repo := NewFeaturedProductRepository(db)
	slot := &models.FeaturedProduct{ProductID: product.ID, Position: 3, IsActive: true}
	if err := repo.Create(slot); err != nil {
		t.Fatalf("create slot failed: %v", err)
	}

	found, err := repo.FindActiveByPosition(3, nil)
	if err != nil || found == nil || found.ID != slot.ID {
		t.Fatalf("expected slot at position 3, got %+v err=%v", found, err)
	}
	found, err = repo.FindActiveByPosition(3, &slot.ID)
	if err != nil || found != nil {
		t.Fatalf("self should be excluded, got %+v err=%v", found, err)
	}
}

func TestCategoryListOrderAndCountProducts(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewCategoryRepository(db)
	for _, item := range []models.Category{
		{Slug: "b", Name: "b", SortOrder: 2, IsActive: true},
		{Slug: "a", Name: "a", SortOrder: 1, IsActive: true},
		{Slug: "c", Name: "c", SortOrder: 1, IsActive: false},
	} {
		item := item
		if err := repo.Create(&item); err != nil {
			t.Fatalf("create category failed: %v", err)
		}
	}
	rows, total, err := repo.List(CategoryListFilter{OnlyActive: true})
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	if total != 2 || rows[0].Slug != "a" || rows[1].Slug != "b" {
		t.Fatalf("unexpected category order: %+v", rows)
	}

	products := NewProductRepository(db)
	createTestProduct(t, products, rows[0].ID, "in-a", 10, false, nil)
	count, err := repo.CountProducts(rows[0].ID)
	if err != nil || count != 1 {
		t.Fatalf("count products want 1 got %d err=%v", count, err)
	}
}

func TestServiceCheckSummaryAndPurge(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewServiceCheckRepository(db)
	now := time.Now()
	records := []models.ServiceCheck{
		{Service: constants.ServiceCheckDatabase, Status: constants.ServiceStatusUp, ResponseMS: 10, CheckedAt: now},
		{Service: constants.ServiceCheckDatabase, Status: constants.ServiceStatusDown, ResponseMS: 30, CheckedAt: now},
		{Service: constants.ServiceCheckAPI, Status: constants.ServiceStatusUp, ResponseMS: 5, CheckedAt: now.Add(-48 * time.Hour)},
	}
	for i := range records {
		if err := repo.Create(&records[i]); err != nil {
			t.Fatalf("create check failed: %v", err)
		}
	}

	summary, err := repo.SummarySince(now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary) != 1 || summary[0].Total != 2 || summary[0].UpCount != 1 || summary[0].AvgResponseMS != 20 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	purged, err := repo.PurgeBefore(now.Add(-24 * time.Hour))
	if err != nil || purged != 1 {
		t.Fatalf("purge want 1 got %d err=%v", purged, err)
	}
}

func TestAdminUniquenessAndLastLogin(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewAdminRepository(db)

	email := "ops@example.com"
	admin := &models.Admin{Username: "ops", Email: &email, PasswordHash: "x", IsActive: true}
	if err := repo.Create(admin); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	if taken, err := repo.UsernameTaken("ops", nil); err != nil || !taken {
		t.Fatalf("username should be taken, taken=%v err=%v", taken, err)
	}
	if taken, _ := repo.UsernameTaken("ops", &admin.ID); taken {
		t.Fatalf("own username should not count as taken")
	}
	if taken, _ := repo.EmailTaken("other@example.com", nil); taken {
		t.Fatalf("unused email reported as taken")
	}

	at := time.Now().Truncate(time.Second)
	if err := repo.TouchLastLogin(admin.ID, at); err != nil {
		t.Fatalf("touch last login failed: %v", err)
	}
	loaded, err := repo.GetByID(admin.ID)
	if err != nil || loaded == nil || loaded.LastLoginAt == nil || !loaded.LastLoginAt.Equal(at) {
		t.Fatalf("last login not persisted: %+v err=%v", loaded, err)
	}
	if missing, err := repo.GetByUsername("nobody"); err != nil || missing != nil {
		t.Fatalf("missing admin should be nil, got %+v err=%v", missing, err)
	}
}
