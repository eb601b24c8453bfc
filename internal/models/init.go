package models

import (
	"strings"

	"github.com/fanxi-showcase/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const fallbackAdminPassword = "admin123"

// InitDefaultAdmin 初始化默认管理员账号（仅在管理员表为空时创建）
func InitDefaultAdmin(db *gorm.DB, username, password, email string) error {
	var count int64
	if err := db.Model(&Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = fallbackAdminPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := Admin{
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
		IsSuperuser:  true,
	}
	if trimmed := strings.TrimSpace(email); trimmed != "" {
		admin.Email = &trimmed
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	if password == fallbackAdminPassword {
		logger.Warnw("default_admin_created_with_default_password", "username", username)
		logger.Warnw("default_admin_password_change_required", "username", username)
	} else {
		logger.Warnw("default_admin_created", "username", username, "password_hidden", true)
	}
	return nil
}
