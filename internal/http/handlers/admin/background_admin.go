package admin

import (
	"github.com/fanxi-showcase/internal/http/dto"
	handlershared "github.com/fanxi-showcase/internal/http/handlers/shared"
	"github.com/fanxi-showcase/internal/http/response"
	"github.com/fanxi-showcase/internal/service"

	"github.com/gin-gonic/gin"
)

// BackgroundImageRequest 背景图创建/更新请求
type BackgroundImageRequest struct {
	Title          *string `json:"title"`
	TitleEn        *string `json:"title_en"`
	TitleZh        *string `json:"title_zh"`
	Subtitle       *string `json:"subtitle"`
	SubtitleEn     *string `json:"subtitle_en"`
	SubtitleZh     *string `json:"subtitle_zh"`
	ImageURL       *string `json:"image_url"`
	ButtonText     *string `json:"button_text"`
	ButtonTextEn   *string `json:"button_text_en"`
	ButtonTextZh   *string `json:"button_text_zh"`
	ButtonLink     *string `json:"button_link"`
	SortOrder      *int    `json:"sort_order"`
	IsActive       *bool   `json:"is_active"`
	ShowContentBox *bool   `json:"show_content_box"`
}

func (r BackgroundImageRequest) toInput() service.BackgroundImageInput {
	return service.BackgroundImageInput{
		Title:          r.Title,
		TitleEn:        r.TitleEn,
		TitleZh:        r.TitleZh,
		Subtitle:       r.Subtitle,
		SubtitleEn:     r.SubtitleEn,
		SubtitleZh:     r.SubtitleZh,
		ImageURL:       r.ImageURL,
		ButtonText:     r.ButtonText,
		ButtonTextEn:   r.ButtonTextEn,
		ButtonTextZh:   r.ButtonTextZh,
		ButtonLink:     r.ButtonLink,
		SortOrder:      r.SortOrder,
		IsActive:       r.IsActive,
		ShowContentBox: r.ShowContentBox,
	}
}

// GetAdminBackgroundImages 后台背景图列表
func (h *Handler) GetAdminBackgroundImages(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	isActive, err := handlershared.ParseOptionalBool(c, "is_active")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	items, total, err := h.BackgroundImageService.List(isActive, page, pageSize)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewBackgroundImages(items, contentLang(c)), response.NewPagination(page, pageSize, total))
}

// GetAdminBackgroundImage 背景图详情
func (h *Handler) GetAdminBackgroundImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.BackgroundImageService.Get(id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewBackgroundImage(item, contentLang(c)))
}

// CreateBackgroundImage 创建背景图
func (h *Handler) CreateBackgroundImage(c *gin.Context) {
	var req BackgroundImageRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.BackgroundImageService.Create(req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewBackgroundImage(item, contentLang(c)))
}

// UpdateBackgroundImage 更新背景图
func (h *Handler) UpdateBackgroundImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req BackgroundImageRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.BackgroundImageService.Update(id, req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewBackgroundImage(item, contentLang(c)))
}

// DeleteBackgroundImage 删除背景图
func (h *Handler) DeleteBackgroundImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.BackgroundImageService.Delete(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
