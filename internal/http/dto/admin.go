package dto

import (
	"time"

	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/service"
)

// Admin 管理员输出，不含密码与 token 状态
type Admin struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Email       *string    `json:"email"`
	FullName    *string    `json:"full_name"`
	IsActive    bool       `json:"is_active"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewAdmin 序列化管理员
func NewAdmin(a *models.Admin) *Admin {
	if a == nil {
		return nil
	}
	return &Admin{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		FullName:    a.FullName,
		IsActive:    a.IsActive,
		IsSuperuser: a.IsSuperuser,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// NewAdmins 批量序列化管理员
func NewAdmins(items []models.Admin) []*Admin {
	out := make([]*Admin, 0, len(items))
	for i := range items {
		out = append(out, NewAdmin(&items[i]))
	}
	return out
}

// Login 登录结果
type Login struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	ExpiresIn int64     `json:"expires_in"`
	Admin     *Admin    `json:"admin"`
}

// NewLogin 序列化登录结果
func NewLogin(result *service.LoginResult, now time.Time) *Login {
	if result == nil {
		return nil
	}
	expiresIn := int64(result.ExpiresAt.Sub(now).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}
	return &Login{
		Token:     result.Token,
		TokenType: "bearer",
		ExpiresAt: result.ExpiresAt,
		ExpiresIn: expiresIn,
		Admin:     NewAdmin(result.Admin),
	}
}
