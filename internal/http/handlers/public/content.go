package public

import (
	"github.com/fanxi-showcase/internal/http/dto"
	handlershared "github.com/fanxi-showcase/internal/http/handlers/shared"
	"github.com/fanxi-showcase/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetBackgroundImages 背景图列表，可按 is_active 过滤
func (h *Handler) GetBackgroundImages(c *gin.Context) {
	isActive, err := handlershared.ParseOptionalBool(c, "is_active")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	images, total, err := h.BackgroundImageService.List(isActive, page, pageSize)
	if err != nil {
		respondCatalogError(c, err, "error.internal")
		return
	}
	response.SuccessWithPage(c, dto.NewBackgroundImages(images, contentLang(c)), response.NewPagination(page, pageSize, total))
}

// GetBackgroundImage 背景图详情
func (h *Handler) GetBackgroundImage(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.invalid_id", nil)
		return
	}
	image, err := h.BackgroundImageService.Get(id)
	if err != nil {
		respondCatalogError(c, err, "error.internal")
		return
	}
	response.Success(c, dto.NewBackgroundImage(image, contentLang(c)))
}

// GetAboutUs 关于我们
func (h *Handler) GetAboutUs(c *gin.Context) {
	about, err := h.ContentService.GetAboutUs(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err, "error.internal")
		return
	}
	response.Success(c, dto.NewAboutUs(about, contentLang(c)))
}

// GetFooterInfo 页脚信息
func (h *Handler) GetFooterInfo(c *gin.Context) {
	footer, err := h.ContentService.GetFooterInfo(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err, "error.internal")
		return
	}
	response.Success(c, dto.NewFooterInfo(footer, contentLang(c)))
}

// GetTopInfo 顶部信息栏
func (h *Handler) GetTopInfo(c *gin.Context) {
	top, err := h.ContentService.GetTopInfoBar(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err, "error.internal")
		return
	}
	response.Success(c, dto.NewTopInfoBar(top))
}
