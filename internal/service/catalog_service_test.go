package service

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProductQuery(t *testing.T) {
	cases := []struct {
		name      string
		in        ProductQuery
		wantSort  string
		wantOrder string
		wantPage  int
		wantSize  int
	}{
		{name: "defaults", in: ProductQuery{}, wantSort: "id", wantOrder: "asc", wantPage: 1, wantSize: 10},
		{name: "unknown sort falls back", in: ProductQuery{SortBy: "drop table", SortOrder: "sideways"}, wantSort: "id", wantOrder: "asc", wantPage: 1, wantSize: 10},
		{name: "price desc", in: ProductQuery{SortBy: "PRICE", SortOrder: "DESC", Page: 3, Size: 5}, wantSort: "price", wantOrder: "desc", wantPage: 3, wantSize: 5},
		{name: "size clamp high", in: ProductQuery{Size: 500}, wantSort: "id", wantOrder: "asc", wantPage: 1, wantSize: 100},
		{name: "size negative", in: ProductQuery{Size: -4, Page: -2}, wantSort: "id", wantOrder: "asc", wantPage: 1, wantSize: 1},
		{name: "sales count", in: ProductQuery{SortBy: "sales_count"}, wantSort: "sales_count", wantOrder: "asc", wantPage: 1, wantSize: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeProductQuery(tc.in)
			assert.Equal(t, tc.wantSort, got.SortBy)
			assert.Equal(t, tc.wantOrder, got.SortOrder)
			assert.Equal(t, tc.wantPage, got.Page)
			assert.Equal(t, tc.wantSize, got.PageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestCatalogSearchEmptyPage(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db))

	page, err := svc.Search(ProductQuery{Page: 4})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, 0, page.Pages)
	assert.Equal(t, 4, page.Page)
}

func TestCatalogSearchHugePageIsEmpty(t *testing.T) {
	db := setupServiceTestDB(t)
	category := createServiceTestCategory(t, db, "tools")
	for _, slug := range []string{"saw", "drill", "level"} {
		createServiceTestProduct(t, db, category.ID, slug, true)
	}
	svc := NewCatalogService(repository.NewProductRepository(db))

	// (page-1)*size 超出 int 范围
	hugePage := math.MaxInt/8 + 2
	page, err := svc.Search(ProductQuery{Page: hugePage, Size: 8})
	require.NoError(t, err)
	assert.Len(t, page.Items, 0)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 1, page.Pages)
	assert.Equal(t, hugePage, page.Page)

	first, err := svc.Search(ProductQuery{Page: 1, Size: 8})
	require.NoError(t, err)
	assert.Len(t, first.Items, 3)
}

func TestCatalogGetIncrementsViewCount(t *testing.T) {
	db := setupServiceTestDB(t)
	category := createServiceTestCategory(t, db, "tools")
	product := createServiceTestProduct(t, db, category.ID, "hammer", true)
	svc := NewCatalogService(repository.NewProductRepository(db))

	got, err := svc.Get("hammer")
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)
	assert.Equal(t, 1, got.ViewCount)

	got, err = svc.Get(uintString(product.ID))
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)

	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Equal(t, 2, stored.ViewCount)
}

func TestCatalogGetConcurrentViews(t *testing.T) {
	db := setupServiceTestDB(t)
	category := createServiceTestCategory(t, db, "tools")
	product := createServiceTestProduct(t, db, category.ID, "wrench", true)
	svc := NewCatalogService(repository.NewProductRepository(db))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Get("wrench"); err != nil {
				t.Errorf("get failed: %v", err)
			}
		}()
	}
	wg.Wait()

	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Equal(t, 10, stored.ViewCount)
}

func TestCatalogGetInactiveIsNotFound(t *testing.T) {
	db := setupServiceTestDB(t)
	category := createServiceTestCategory(t, db, "tools")
	product := createServiceTestProduct(t, db, category.ID, "hidden", false)
	svc := NewCatalogService(repository.NewProductRepository(db))

	_, err := svc.Get(uintString(product.ID))
	assert.True(t, errors.Is(err, ErrProductNotFound))
	_, err = svc.Get("missing-slug")
	assert.True(t, errors.Is(err, ErrProductNotFound))

	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Equal(t, 0, stored.ViewCount)
}
