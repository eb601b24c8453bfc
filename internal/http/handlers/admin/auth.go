package admin

import (
	"time"

	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/http/dto"
	handlershared "github.com/fanxi-showcase/internal/http/handlers/shared"
	"github.com/fanxi-showcase/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username       string                              `json:"username" binding:"required"`
	Password       string                              `json:"password" binding:"required"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	if h.CaptchaService != nil {
		if err := h.CaptchaService.Verify(constants.CaptchaSceneAdminLogin, req.CaptchaPayload.ToServicePayload()); err != nil {
			handlershared.RespondMappedError(c, err, handlershared.CaptchaErrorRules, response.CodeInternal, "error.captcha_invalid")
			return
		}
	}

	result, err := h.AuthService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		requestLog(c).Infow("admin_login_rejected", "username", req.Username, "client_ip", c.ClientIP(), "reason", err.Error())
		respondAccountError(c, err)
		return
	}
	response.Success(c, dto.NewLogin(result, time.Now()))
}

// GetMe 当前管理员信息
func (h *Handler) GetMe(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	admin, err := h.AuthService.Me(adminID)
	if err != nil {
		respondAccountError(c, err)
		return
	}
	roles := []string{}
	if h.AuthzService != nil && !admin.IsSuperuser {
		if assigned, err := h.AuthzService.GetAdminRoles(admin.ID); err == nil {
			roles = assigned
		}
	}
	response.Success(c, gin.H{
		"admin": dto.NewAdmin(admin),
		"roles": roles,
	})
}

// AdminLogout 退出登录，已签发的令牌全部失效
func (h *Handler) AdminLogout(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	if err := h.AuthService.Logout(c.Request.Context(), adminID); err != nil {
		respondAccountError(c, err)
		return
	}
	response.Success(c, gin.H{"logged_out": true})
}

// UpdatePasswordRequest 修改密码请求
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateAdminPassword 修改当前管理员密码
func (h *Handler) UpdateAdminPassword(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var req UpdatePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.AuthService.ChangePassword(c.Request.Context(), adminID, req.OldPassword, req.NewPassword); err != nil {
		respondAccountError(c, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}
