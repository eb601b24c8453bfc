package repository

import (
	"errors"

	"github.com/fanxi-showcase/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FeaturedProductRepository 精选位数据访问接口
type FeaturedProductRepository interface {
	ListAll() ([]models.FeaturedProduct, error)
	ListActive() ([]models.FeaturedProduct, error)
	GetByID(id uint) (*models.FeaturedProduct, error)
	FindActiveByPosition(position int, excludeID *uint) (*models.FeaturedProduct, error)
	Create(slot *models.FeaturedProduct) error
	Update(slot *models.FeaturedProduct) error
	Delete(id uint) error
	DeleteByProductID(productID uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) FeaturedProductRepository
}

// GormFeaturedProductRepository GORM 实现
type GormFeaturedProductRepository struct {
	db *gorm.DB
}

// NewFeaturedProductRepository 创建精选位仓库
func NewFeaturedProductRepository(db *gorm.DB) *GormFeaturedProductRepository {
	return &GormFeaturedProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormFeaturedProductRepository) WithTx(tx *gorm.DB) FeaturedProductRepository {
	if tx == nil {
		return r
	}
	return &GormFeaturedProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormFeaturedProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// ListAll 全部精选位（含停用），按位置排序
func (r *GormFeaturedProductRepository) ListAll() ([]models.FeaturedProduct, error) {
	var slots []models.FeaturedProduct
	if err := r.db.Preload("Product").Order("position ASC, id ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// ListActive 启用的精选位
func (r *GormFeaturedProductRepository) ListActive() ([]models.FeaturedProduct, error) {
	var slots []models.FeaturedProduct
	if err := r.db.Where("is_active = ?", true).Order("position ASC, id ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// GetByID 根据 ID 获取精选位
func (r *GormFeaturedProductRepository) GetByID(id uint) (*models.FeaturedProduct, error) {
	var slot models.FeaturedProduct
	if err := r.db.Preload("Product").First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

// FindActiveByPosition 查找指定位置上启用的精选位（加行锁）
func (r *GormFeaturedProductRepository) FindActiveByPosition(position int, excludeID *uint) (*models.FeaturedProduct, error) {
	query := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("position = ? AND is_active = ?", position, true)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var slot models.FeaturedProduct
	if err := query.Order("id ASC").First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

// Create 创建精选位
func (r *GormFeaturedProductRepository) Create(slot *models.FeaturedProduct) error {
	return r.db.Omit("Product").Create(slot).Error
}

// Update 更新精选位
func (r *GormFeaturedProductRepository) Update(slot *models.FeaturedProduct) error {
	return r.db.Omit("Product").Save(slot).Error
}

// Delete 删除精选位
func (r *GormFeaturedProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.FeaturedProduct{}, id).Error
}

// DeleteByProductID 删除产品关联的全部精选位
func (r *GormFeaturedProductRepository) DeleteByProductID(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&models.FeaturedProduct{}).Error
}
