package admin

import (
	"github.com/fanxi-showcase/internal/http/dto"
	"github.com/fanxi-showcase/internal/http/response"
	"github.com/fanxi-showcase/internal/service"

	"github.com/gin-gonic/gin"
)

// FeaturedSlotCreateRequest 分配精选位请求
type FeaturedSlotCreateRequest struct {
	ProductID uint  `json:"product_id" binding:"required"`
	Position  int   `json:"position"`
	IsActive  *bool `json:"is_active"`
}

// FeaturedSlotUpdateRequest 更新精选位请求
type FeaturedSlotUpdateRequest struct {
	ProductID *uint `json:"product_id"`
	Position  *int  `json:"position"`
	IsActive  *bool `json:"is_active"`
}

// GetAdminFeaturedSlots 全部精选位（含停用）
func (h *Handler) GetAdminFeaturedSlots(c *gin.Context) {
	slots, err := h.FeaturedSlotService.ListAdmin()
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewFeaturedSlots(slots, contentLang(c)))
}

// GetFeaturedPositions 1-6 号位置占用概览
func (h *Handler) GetFeaturedPositions(c *gin.Context) {
	positions, err := h.FeaturedSlotService.Positions()
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewPositions(positions, contentLang(c)))
}

// GetAdminFeaturedSlot 精选位详情
func (h *Handler) GetAdminFeaturedSlot(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	slot, err := h.FeaturedSlotService.GetSlot(id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewFeaturedSlot(slot, contentLang(c)))
}

// CreateFeaturedSlot 分配精选位
func (h *Handler) CreateFeaturedSlot(c *gin.Context) {
	var req FeaturedSlotCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	slot, err := h.FeaturedSlotService.AssignSlot(c.Request.Context(), req.ProductID, req.Position, active)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewFeaturedSlot(slot, contentLang(c)))
}

// UpdateFeaturedSlot 更新精选位（产品 / 位置 / 启用状态）
func (h *Handler) UpdateFeaturedSlot(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req FeaturedSlotUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	slot, err := h.FeaturedSlotService.UpdateSlot(c.Request.Context(), id, service.SlotInput{
		ProductID: req.ProductID,
		Position:  req.Position,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewFeaturedSlot(slot, contentLang(c)))
}

// DeleteFeaturedSlot 删除精选位
func (h *Handler) DeleteFeaturedSlot(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.FeaturedSlotService.DeleteSlot(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
