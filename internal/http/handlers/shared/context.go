package shared

import (
	"github.com/fanxi-showcase/internal/http/response"

	"github.com/gin-gonic/gin"
)

// 鉴权中间件写入的上下文 key。
const (
	ContextAdminID      = "admin_id"
	ContextAdminName    = "username"
	ContextAdminIsSuper = "admin_is_super"
)

// AdminIdentity 已通过令牌校验的管理员身份。
type AdminIdentity struct {
	ID          uint
	Username    string
	IsSuperuser bool
}

// SetAdminIdentity 鉴权通过后写入上下文。
func SetAdminIdentity(c *gin.Context, identity AdminIdentity) {
	c.Set(ContextAdminID, identity.ID)
	c.Set(ContextAdminName, identity.Username)
	c.Set(ContextAdminIsSuper, identity.IsSuperuser)
}

// CurrentAdmin 读取当前管理员身份，缺失或类型错误时直接写出错误响应。
func CurrentAdmin(c *gin.Context) (AdminIdentity, bool) {
	id, ok := GetContextUintWithKeys(c, ContextAdminID, "error.admin_id_invalid", "error.admin_id_type_invalid")
	if !ok {
		return AdminIdentity{}, false
	}
	return AdminIdentity{
		ID:          id,
		Username:    c.GetString(ContextAdminName),
		IsSuperuser: GetContextBool(c, ContextAdminIsSuper),
	}, true
}

// GetContextUintWithKeys 从上下文读取 uint 值并统一处理错误响应。
func GetContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}
	switch v := value.(type) {
	case uint:
		if v == 0 {
			RespondError(c, response.CodeUnauthorized, invalidKey, nil)
			return 0, false
		}
		return v, true
	case int:
		if v <= 0 {
			RespondError(c, response.CodeBadRequest, invalidKey, nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, response.CodeInternal, typeInvalidKey, nil)
		return 0, false
	}
}

// GetContextBool 读取布尔上下文值，缺失视为 false。
func GetContextBool(c *gin.Context, key string) bool {
	return c.GetBool(key)
}
