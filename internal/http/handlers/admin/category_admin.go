package admin

import (
	"strings"

	"github.com/fanxi-showcase/internal/http/dto"
	handlershared "github.com/fanxi-showcase/internal/http/handlers/shared"
	"github.com/fanxi-showcase/internal/http/response"
	"github.com/fanxi-showcase/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest 分类创建/更新请求
type CategoryRequest struct {
	Slug          *string `json:"slug"`
	Name          *string `json:"name"`
	NameEn        *string `json:"name_en"`
	NameZh        *string `json:"name_zh"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"description_en"`
	DescriptionZh *string `json:"description_zh"`
	IconURL       *string `json:"icon_url"`
	SortOrder     *int    `json:"sort_order"`
	IsActive      *bool   `json:"is_active"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{
		Slug:          r.Slug,
		Name:          r.Name,
		NameEn:        r.NameEn,
		NameZh:        r.NameZh,
		Description:   r.Description,
		DescriptionEn: r.DescriptionEn,
		DescriptionZh: r.DescriptionZh,
		IconURL:       r.IconURL,
		SortOrder:     r.SortOrder,
		IsActive:      r.IsActive,
	}
}

// GetAdminCategories 后台分类列表
func (h *Handler) GetAdminCategories(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	categories, total, err := h.CategoryService.ListAdmin(strings.TrimSpace(c.Query("search")), page, pageSize)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewCategories(categories, contentLang(c)), response.NewPagination(page, pageSize, total))
}

// GetAdminCategory 后台分类详情
func (h *Handler) GetAdminCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	category, err := h.CategoryService.GetAdmin(id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewCategory(category, contentLang(c)))
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.CategoryService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewCategory(category, contentLang(c)))
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.CategoryService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewCategory(category, contentLang(c)))
}

// DeleteCategory 删除分类；仍有产品引用时返回冲突
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
