package admin

import (
	"strings"

	"github.com/fanxi-showcase/internal/http/dto"
	handlershared "github.com/fanxi-showcase/internal/http/handlers/shared"
	"github.com/fanxi-showcase/internal/http/response"
	"github.com/fanxi-showcase/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminCreateRequest 创建管理员请求
type AdminCreateRequest struct {
	Username    string  `json:"username" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	Email       *string `json:"email"`
	FullName    *string `json:"full_name"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser bool    `json:"is_superuser"`
}

// AdminUpdateRequest 更新管理员请求
type AdminUpdateRequest struct {
	Email       *string `json:"email"`
	FullName    *string `json:"full_name"`
	Password    *string `json:"password"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

// GetAdmins 管理员列表（仅超级管理员）
func (h *Handler) GetAdmins(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	admins, total, err := h.AdminAccountService.List(actor, strings.TrimSpace(c.Query("keyword")), page, pageSize)
	if err != nil {
		respondAccountError(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewAdmins(admins), response.NewPagination(page, pageSize, total))
}

// GetAdmin 管理员详情（超级管理员或本人）
func (h *Handler) GetAdmin(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	admin, err := h.AdminAccountService.Get(actor, id)
	if err != nil {
		respondAccountError(c, err)
		return
	}
	response.Success(c, dto.NewAdmin(admin))
}

// CreateAdmin 创建管理员（仅超级管理员）
func (h *Handler) CreateAdmin(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	var req AdminCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	admin, err := h.AdminAccountService.Create(c.Request.Context(), actor, service.AdminCreateInput{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		FullName:    req.FullName,
		IsActive:    req.IsActive,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		respondAccountError(c, err)
		return
	}
	requestLog(c).Infow("admin_account_created", "operator_id", actor.ID, "admin_id", admin.ID, "username", admin.Username)
	response.Success(c, dto.NewAdmin(admin))
}

// UpdateAdmin 更新管理员；非超级管理员不能修改启用与超管标记
func (h *Handler) UpdateAdmin(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req AdminUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	admin, err := h.AdminAccountService.Update(c.Request.Context(), actor, id, service.AdminUpdateInput{
		Email:       req.Email,
		FullName:    req.FullName,
		Password:    req.Password,
		IsActive:    req.IsActive,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		respondAccountError(c, err)
		return
	}
	response.Success(c, dto.NewAdmin(admin))
}

// DeleteAdmin 删除管理员（仅超级管理员，不能删除自己）
func (h *Handler) DeleteAdmin(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.AdminAccountService.Delete(c.Request.Context(), actor, id); err != nil {
		respondAccountError(c, err)
		return
	}
	requestLog(c).Infow("admin_account_deleted", "operator_id", actor.ID, "admin_id", id)
	response.Success(c, gin.H{"deleted": true})
}
