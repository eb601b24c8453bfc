package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// 鉴权快照校验结果
var (
	ErrAdminInactive = errors.New("admin inactive")
	ErrTokenRevoked  = errors.New("token revoked")
)

// AdminAuthState 管理员鉴权快照，令牌校验只依赖这些字段
// TokenInvalidBefore 为 Unix 秒，0 表示未设置
type AdminAuthState struct {
	AdminID            uint   `json:"admin_id"`
	Username           string `json:"username"`
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
	IsActive           bool   `json:"is_active"`
	IsSuperuser        bool   `json:"is_superuser"`
}

func adminAuthStateKey(adminID uint) string {
	return "auth:admin:" + strconv.FormatUint(uint64(adminID), 10)
}

// BuildAdminAuthState 从管理员模型构建鉴权快照
func BuildAdminAuthState(admin *models.Admin) *AdminAuthState {
	if admin == nil {
		return nil
	}
	state := &AdminAuthState{
		AdminID:      admin.ID,
		Username:     admin.Username,
		TokenVersion: admin.TokenVersion,
		IsActive:     admin.IsActive,
		IsSuperuser:  admin.IsSuperuser,
	}
	if admin.TokenInvalidBefore != nil {
		state.TokenInvalidBefore = admin.TokenInvalidBefore.Unix()
	}
	return state
}

// Check 校验令牌版本与签发时间是否仍然有效
func (s *AdminAuthState) Check(tokenVersion uint64, issuedAt time.Time) error {
	if !s.IsActive {
		return ErrAdminInactive
	}
	if tokenVersion != s.TokenVersion {
		return ErrTokenRevoked
	}
	if s.TokenInvalidBefore > 0 && issuedAt.Unix() < s.TokenInvalidBefore {
		return ErrTokenRevoked
	}
	return nil
}

// LoadAdminAuthState 优先读取缓存快照，未命中时回源并回写；管理员不存在返回 nil
func LoadAdminAuthState(ctx context.Context, adminID uint, load func() (*models.Admin, error)) (*AdminAuthState, error) {
	if adminID == 0 {
		return nil, nil
	}
	var cached AdminAuthState
	hit, err := GetJSON(ctx, adminAuthStateKey(adminID), &cached)
	if err != nil {
		logger.Warnw("admin_auth_state_cache_get_failed", "admin_id", adminID, "error", err)
	}
	if hit && cached.AdminID == adminID {
		return &cached, nil
	}

	admin, err := load()
	if err != nil || admin == nil {
		return nil, err
	}
	state := BuildAdminAuthState(admin)
	if err := SetAdminAuthState(ctx, state); err != nil {
		logger.Warnw("admin_auth_state_cache_set_failed", "admin_id", adminID, "error", err)
	}
	return state, nil
}

// SetAdminAuthState 写入管理员鉴权快照
func SetAdminAuthState(ctx context.Context, state *AdminAuthState) error {
	if state == nil || state.AdminID == 0 {
		return nil
	}
	return SetJSON(ctx, adminAuthStateKey(state.AdminID), state, authStateCacheTTL)
}

// DelAdminAuthState 删除管理员鉴权快照
func DelAdminAuthState(ctx context.Context, adminID uint) error {
	if adminID == 0 {
		return nil
	}
	return Del(ctx, adminAuthStateKey(adminID))
}
