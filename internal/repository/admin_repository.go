package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/fanxi-showcase/internal/models"

	"gorm.io/gorm"
)

// AdminRepository 管理员数据访问接口
type AdminRepository interface {
	GetByUsername(username string) (*models.Admin, error)
	GetByID(id uint) (*models.Admin, error)
	List(filter AdminListFilter) ([]models.Admin, int64, error)
	UsernameTaken(username string, excludeID *uint) (bool, error)
	EmailTaken(email string, excludeID *uint) (bool, error)
	Create(admin *models.Admin) error
	Update(admin *models.Admin) error
	TouchLastLogin(id uint, at time.Time) error
	Delete(id uint) error
}

// GormAdminRepository GORM 实现
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建管理员仓库
func NewAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// GetByUsername 根据用户名获取管理员，不存在返回 nil
func (r *GormAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	return r.first(r.db.Where("username = ?", username))
}

// GetByID 根据 ID 获取管理员，不存在返回 nil
func (r *GormAdminRepository) GetByID(id uint) (*models.Admin, error) {
	if id == 0 {
		return nil, nil
	}
	return r.first(r.db.Where("id = ?", id))
}

func (r *GormAdminRepository) first(query *gorm.DB) (*models.Admin, error) {
	var admin models.Admin
	err := query.First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// List 管理员列表，关键字匹配用户名、邮箱、姓名
func (r *GormAdminRepository) List(filter AdminListFilter) ([]models.Admin, int64, error) {
	query := r.db.Model(&models.Admin{})
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		condition, argCount := buildLikeCondition(r.db, []string{"username", "email", "full_name"}, nil)
		query = query.Where("("+condition+")", repeatLikeArgs("%"+keyword+"%", argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	admins := make([]models.Admin, 0)
	if err := applyPagination(query, filter.Page, filter.PageSize).Order("id ASC").Find(&admins).Error; err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

// UsernameTaken 用户名是否已被其他管理员占用
func (r *GormAdminRepository) UsernameTaken(username string, excludeID *uint) (bool, error) {
	return r.taken("username", username, excludeID)
}

// EmailTaken 邮箱是否已被其他管理员占用
func (r *GormAdminRepository) EmailTaken(email string, excludeID *uint) (bool, error) {
	return r.taken("email", email, excludeID)
}

func (r *GormAdminRepository) taken(column, value string, excludeID *uint) (bool, error) {
	query := r.db.Model(&models.Admin{}).Where(column+" = ?", value)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建管理员
func (r *GormAdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// Update 保存管理员全部字段
func (r *GormAdminRepository) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

// TouchLastLogin 只更新最后登录时间，不覆盖并发修改的其他字段
func (r *GormAdminRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Admin{}).Where("id = ?", id).UpdateColumn("last_login_at", at).Error
}

// Delete 删除管理员
func (r *GormAdminRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Admin{}, id).Error
}
