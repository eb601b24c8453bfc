package repository

import (
	"time"

	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/models"

	"gorm.io/gorm"
)

// ServiceCheckRepository 服务巡检记录数据访问接口
type ServiceCheckRepository interface {
	Create(check *models.ServiceCheck) error
	Latest(limit int) ([]models.ServiceCheck, error)
	SummarySince(since time.Time) ([]ServiceCheckSummary, error)
	PurgeBefore(before time.Time) (int64, error)
}

// GormServiceCheckRepository GORM 实现
type GormServiceCheckRepository struct {
	db *gorm.DB
}

// NewServiceCheckRepository 创建巡检记录仓库
func NewServiceCheckRepository(db *gorm.DB) *GormServiceCheckRepository {
	return &GormServiceCheckRepository{db: db}
}

// Create 写入巡检记录
func (r *GormServiceCheckRepository) Create(check *models.ServiceCheck) error {
	return r.db.Create(check).Error
}

// Latest 最近的巡检记录
func (r *GormServiceCheckRepository) Latest(limit int) ([]models.ServiceCheck, error) {
	if limit <= 0 {
		limit = 20
	}
	var checks []models.ServiceCheck
	if err := r.db.Order("checked_at DESC, id DESC").Limit(limit).Find(&checks).Error; err != nil {
		return nil, err
	}
	return checks, nil
}

// SummarySince 按巡检对象统计可用率与平均耗时
func (r *GormServiceCheckRepository) SummarySince(since time.Time) ([]ServiceCheckSummary, error) {
	var rows []ServiceCheckSummary
	err := r.db.Model(&models.ServiceCheck{}).
		Select(
			"service, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS up_count, AVG(response_ms) AS avg_response_ms",
			constants.ServiceStatusUp,
		).
		Where("checked_at >= ?", since).
		Group("service").
		Order("service ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// PurgeBefore 清理过期巡检记录
func (r *GormServiceCheckRepository) PurgeBefore(before time.Time) (int64, error) {
	result := r.db.Where("checked_at < ?", before).Delete(&models.ServiceCheck{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
