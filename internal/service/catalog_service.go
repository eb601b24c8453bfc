package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"

	"github.com/shopspring/decimal"
)

var allowedProductSorts = map[string]struct{}{
	constants.ProductSortID:         {},
	constants.ProductSortPrice:      {},
	constants.ProductSortSalesCount: {},
	constants.ProductSortCreatedAt:  {},
}

// ProductQuery 前台产品检索参数（未归一化）
type ProductQuery struct {
	CategoryID *uint
	Q          string
	IsFeatured *bool
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	SortBy     string
	SortOrder  string
	Page       int
	Size       int
}

// ProductPage 产品分页结果
type ProductPage struct {
	Items []models.Product
	Total int64
	Page  int
	Size  int
	Pages int
}

// CatalogService 前台产品目录服务
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// NormalizeProductQuery 归一化检索参数：排序白名单、方向、页码与每页数量
func NormalizeProductQuery(q ProductQuery) repository.ProductSearchFilter {
	sortBy := strings.ToLower(strings.TrimSpace(q.SortBy))
	if _, ok := allowedProductSorts[sortBy]; !ok {
		sortBy = constants.ProductSortID
	}
	sortOrder := constants.SortOrderAsc
	if strings.EqualFold(strings.TrimSpace(q.SortOrder), constants.SortOrderDesc) {
		sortOrder = constants.SortOrderDesc
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.Size
	switch {
	case size == 0:
		size = constants.CatalogDefaultPageSize
	case size < 1:
		size = 1
	case size > constants.CatalogMaxPageSize:
		size = constants.CatalogMaxPageSize
	}
	return repository.ProductSearchFilter{
		Page:       page,
		PageSize:   size,
		CategoryID: q.CategoryID,
		Query:      strings.TrimSpace(q.Q),
		IsFeatured: q.IsFeatured,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
	}
}

// TotalPages 计算总页数
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Search 检索上架产品
func (s *CatalogService) Search(q ProductQuery) (*ProductPage, error) {
	filter := NormalizeProductQuery(q)
	items, total, err := s.productRepo.Search(filter)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	if items == nil {
		items = []models.Product{}
	}
	return &ProductPage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Size:  filter.PageSize,
		Pages: TotalPages(total, filter.PageSize),
	}, nil
}

// Get 获取上架产品详情（支持 ID 或 slug），每次调用浏览量原子 +1
func (s *CatalogService) Get(idOrSlug string) (*models.Product, error) {
	key := strings.TrimSpace(idOrSlug)
	if key == "" {
		return nil, ErrProductNotFound
	}

	var (
		product *models.Product
		err     error
	)
	if id, parseErr := strconv.ParseUint(key, 10, 64); parseErr == nil {
		product, err = s.productRepo.GetActiveByID(uint(id))
	} else {
		product, err = s.productRepo.GetBySlug(key, true)
	}
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	affected, err := s.productRepo.IncrementViewCount(product.ID)
	if err != nil {
		return nil, fmt.Errorf("increment view count: %w", err)
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}
	product.ViewCount++
	return product, nil
}
