package repository

import (
	"errors"

	"github.com/fanxi-showcase/internal/models"

	"gorm.io/gorm"
)

// BackgroundImageRepository 背景图数据访问接口
type BackgroundImageRepository interface {
	List(filter BackgroundImageListFilter) ([]models.BackgroundImage, int64, error)
	GetByID(id uint) (*models.BackgroundImage, error)
	Create(image *models.BackgroundImage) error
	Update(image *models.BackgroundImage) error
	Delete(id uint) error
}

// GormBackgroundImageRepository GORM 实现
type GormBackgroundImageRepository struct {
	db *gorm.DB
}

// NewBackgroundImageRepository 创建背景图仓库
func NewBackgroundImageRepository(db *gorm.DB) *GormBackgroundImageRepository {
	return &GormBackgroundImageRepository{db: db}
}

// List 背景图列表，按 sort_order 升序、created_at 降序
func (r *GormBackgroundImageRepository) List(filter BackgroundImageListFilter) ([]models.BackgroundImage, int64, error) {
	query := r.db.Model(&models.BackgroundImage{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []models.BackgroundImage
	if err := applyPagination(query, filter.Page, filter.PageSize).
		Order("sort_order ASC, created_at DESC, id DESC").
		Find(&images).Error; err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

// GetByID 根据 ID 获取背景图
func (r *GormBackgroundImageRepository) GetByID(id uint) (*models.BackgroundImage, error) {
	var image models.BackgroundImage
	if err := r.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// Create 创建背景图
func (r *GormBackgroundImageRepository) Create(image *models.BackgroundImage) error {
	return r.db.Create(image).Error
}

// Update 更新背景图
func (r *GormBackgroundImageRepository) Update(image *models.BackgroundImage) error {
	return r.db.Save(image).Error
}

// Delete 删除背景图
func (r *GormBackgroundImageRepository) Delete(id uint) error {
	return r.db.Delete(&models.BackgroundImage{}, id).Error
}
