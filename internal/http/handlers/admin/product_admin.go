package admin

import (
	"strings"

	"github.com/fanxi-showcase/internal/http/dto"
	handlershared "github.com/fanxi-showcase/internal/http/handlers/shared"
	"github.com/fanxi-showcase/internal/http/response"
	"github.com/fanxi-showcase/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest 产品创建/更新请求，未传字段保持不变
type ProductRequest struct {
	CategoryID         *uint            `json:"category_id"`
	Slug               *string          `json:"slug"`
	SKU                *string          `json:"sku"`
	Name               *string          `json:"name"`
	NameEn             *string          `json:"name_en"`
	NameZh             *string          `json:"name_zh"`
	Description        *string          `json:"description"`
	DescriptionEn      *string          `json:"description_en"`
	DescriptionZh      *string          `json:"description_zh"`
	Price              *decimal.Decimal `json:"price"`
	OriginalPrice      *decimal.Decimal `json:"original_price"`
	ClearOriginalPrice bool             `json:"clear_original_price"`
	ImageURL           *string          `json:"image_url"`
	Images             *[]string        `json:"images"`
	Stock              *int             `json:"stock"`
	StockQuantity      *int             `json:"stock_quantity"`
	SalesCount         *int             `json:"sales_count"`
	Rating             *float64         `json:"rating"`
	Tags               *[]string        `json:"tags"`
	IsFeatured         *bool            `json:"is_featured"`
	IsActive           *bool            `json:"is_active"`
	SortOrder          *int             `json:"sort_order"`
}

func (r ProductRequest) toInput() service.ProductInput {
	stock := r.Stock
	if stock == nil {
		stock = r.StockQuantity
	}
	return service.ProductInput{
		CategoryID:         r.CategoryID,
		Slug:               r.Slug,
		SKU:                r.SKU,
		Name:               r.Name,
		NameEn:             r.NameEn,
		NameZh:             r.NameZh,
		Description:        r.Description,
		DescriptionEn:      r.DescriptionEn,
		DescriptionZh:      r.DescriptionZh,
		Price:              r.Price,
		OriginalPrice:      r.OriginalPrice,
		ClearOriginalPrice: r.ClearOriginalPrice,
		ImageURL:           r.ImageURL,
		Images:             r.Images,
		Stock:              stock,
		SalesCount:         r.SalesCount,
		Rating:             r.Rating,
		Tags:               r.Tags,
		IsFeatured:         r.IsFeatured,
		IsActive:           r.IsActive,
		SortOrder:          r.SortOrder,
	}
}

// GetAdminProducts 后台产品列表
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	categoryID, err := handlershared.ParseOptionalUint(c, "category_id")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	isActive, err := handlershared.ParseOptionalBool(c, "is_active")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	products, total, err := h.ProductService.ListAdmin(service.ProductAdminQuery{
		CategoryID: categoryID,
		Search:     strings.TrimSpace(c.Query("search")),
		IsActive:   isActive,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewProducts(products, contentLang(c)), response.NewPagination(page, pageSize, total))
}

// GetAdminProduct 后台产品详情
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.ProductService.GetAdmin(id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewProduct(product, contentLang(c)))
}

// CreateProduct 创建产品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.ProductService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewProduct(product, contentLang(c)))
}

// UpdateProduct 更新产品（部分字段）
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.ProductService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewProduct(product, contentLang(c)))
}

// ToggleActiveRequest 上下架请求
type ToggleActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ToggleProductActive 上架 / 下架产品
func (h *Handler) ToggleProductActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ToggleActiveRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.ProductService.ToggleActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewProduct(product, contentLang(c)))
}

// DeleteProduct 删除产品，同时删除其精选位
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
