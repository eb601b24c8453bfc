package repository

import (
	"errors"

	"github.com/fanxi-showcase/internal/models"

	"gorm.io/gorm"
)

// ContentRepository 单例内容（关于我们 / 页脚 / 顶部信息栏）数据访问接口
type ContentRepository interface {
	FirstAboutUs(onlyActive bool) (*models.AboutUs, error)
	SaveAboutUs(item *models.AboutUs) error
	FirstFooterInfo(onlyActive bool) (*models.FooterInfo, error)
	SaveFooterInfo(item *models.FooterInfo) error
	FirstTopInfoBar(onlyActive bool) (*models.TopInfoBar, error)
	SaveTopInfoBar(item *models.TopInfoBar) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ContentRepository
}

// GormContentRepository GORM 实现
type GormContentRepository struct {
	db *gorm.DB
}

// NewContentRepository 创建内容仓库
func NewContentRepository(db *gorm.DB) *GormContentRepository {
	return &GormContentRepository{db: db}
}

// WithTx 绑定事务
func (r *GormContentRepository) WithTx(tx *gorm.DB) ContentRepository {
	if tx == nil {
		return r
	}
	return &GormContentRepository{db: tx}
}

// Transaction 执行事务
func (r *GormContentRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// FirstAboutUs 获取关于我们（最早创建的一条）
func (r *GormContentRepository) FirstAboutUs(onlyActive bool) (*models.AboutUs, error) {
	return firstSingleton[models.AboutUs](r.db, onlyActive)
}

// SaveAboutUs 保存关于我们（ID 为 0 时创建）
func (r *GormContentRepository) SaveAboutUs(item *models.AboutUs) error {
	return r.db.Save(item).Error
}

// FirstFooterInfo 获取页脚信息
func (r *GormContentRepository) FirstFooterInfo(onlyActive bool) (*models.FooterInfo, error) {
	return firstSingleton[models.FooterInfo](r.db, onlyActive)
}

// SaveFooterInfo 保存页脚信息
func (r *GormContentRepository) SaveFooterInfo(item *models.FooterInfo) error {
	return r.db.Save(item).Error
}

// FirstTopInfoBar 获取顶部信息栏
func (r *GormContentRepository) FirstTopInfoBar(onlyActive bool) (*models.TopInfoBar, error) {
	return firstSingleton[models.TopInfoBar](r.db, onlyActive)
}

// SaveTopInfoBar 保存顶部信息栏
func (r *GormContentRepository) SaveTopInfoBar(item *models.TopInfoBar) error {
	return r.db.Save(item).Error
}

func firstSingleton[T any](db *gorm.DB, onlyActive bool) (*T, error) {
	var item T
	query := db.Model(&item)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("id ASC").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
