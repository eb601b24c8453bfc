package repository

import (
	"errors"
	"strings"

	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/models"

	"gorm.io/gorm"
)

var productSortColumns = map[string]string{
	constants.ProductSortID:         "id",
	constants.ProductSortPrice:      "price",
	constants.ProductSortSalesCount: "sales_count",
	constants.ProductSortCreatedAt:  "created_at",
}

var productSearchColumns = []string{
	"name", "name_en", "name_zh",
	"description", "description_en", "description_zh",
}

// ProductRepository 产品数据访问接口
type ProductRepository interface {
	Search(filter ProductSearchFilter) ([]models.Product, int64, error)
	ListAdmin(filter ProductAdminFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	GetActiveByID(id uint) (*models.Product, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	IncrementViewCount(id uint) (int64, error)
	CountBySlug(slug string, excludeID *uint) (int64, error)
	CountBySKU(sku string, excludeID *uint) (int64, error)
	CountByCategory(categoryID uint) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建产品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Search 前台检索，仅返回上架产品
func (r *GormProductRepository) Search(filter ProductSearchFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).Where("is_active = ?", true)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if keyword := strings.TrimSpace(filter.Query); keyword != "" {
		like := "%" + keyword + "%"
		condition, argCount := buildLikeCondition(r.db, productSearchColumns, []string{"tags"})
		query = query.Where("("+condition+")", repeatLikeArgs(like, argCount)...)
	}
	if filter.IsFeatured != nil {
		query = query.Where("is_featured = ?", *filter.IsFeatured)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := productSortColumns[filter.SortBy]
	if !ok {
		column = "id"
	}
	direction := "ASC"
	if filter.SortOrder == constants.SortOrderDesc {
		direction = "DESC"
	}
	query = query.Order(column + " " + direction)
	if column != "id" {
		query = query.Order("id ASC")
	}

	var products []models.Product
	if err := applyPagination(query, filter.Page, filter.PageSize).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ListAdmin 后台产品列表
func (r *GormProductRepository) ListAdmin(filter ProductAdminFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).Preload("Category")
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		condition, argCount := buildLikeCondition(r.db, append([]string{"slug", "sku"}, productSearchColumns...), nil)
		query = query.Where("("+condition+")", repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := applyPagination(query, filter.Page, filter.PageSize).
		Order("sort_order DESC, id DESC").
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID 根据 ID 获取产品（含下架）
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetActiveByID 根据 ID 获取上架产品
func (r *GormProductRepository) GetActiveByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").Where("is_active = ?", true).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlug 根据 slug 获取产品
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	query := r.db.Preload("Category").Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var product models.Product
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs 批量获取产品
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Preload("Category").Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create 创建产品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Omit("Category").Create(product).Error
}

// Update 更新产品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Omit("Category").Save(product).Error
}

// Delete 删除产品
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// IncrementViewCount 原子递增浏览量
func (r *GormProductRepository) IncrementViewCount(id uint) (int64, error) {
	result := r.db.Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountBySlug 统计 slug 数量
func (r *GormProductRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBySKU 统计 SKU 数量
func (r *GormProductRepository) CountBySKU(sku string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("sku = ?", sku)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCategory 统计分类下的产品数量
func (r *GormProductRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
