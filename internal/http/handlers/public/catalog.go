package public

import (
	"strconv"
	"strings"

	"github.com/fanxi-showcase/internal/http/dto"
	handlershared "github.com/fanxi-showcase/internal/http/handlers/shared"
	"github.com/fanxi-showcase/internal/http/response"
	"github.com/fanxi-showcase/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetProducts 产品列表：筛选、排序、分页
func (h *Handler) GetProducts(c *gin.Context) {
	query, ok := parseProductQuery(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	result, err := h.CatalogService.Search(query)
	if err != nil {
		respondCatalogError(c, err, "error.internal")
		return
	}

	response.SuccessWithPage(c, dto.NewProducts(result.Items, contentLang(c)), response.Pagination{
		Page:      result.Page,
		PageSize:  result.Size,
		Total:     result.Total,
		TotalPage: int64(result.Pages),
	})
}

// GetProduct 产品详情，支持 ID 或 slug；每次访问浏览量 +1
func (h *Handler) GetProduct(c *gin.Context) {
	key := strings.TrimSpace(c.Param("id"))
	if key == "" {
		respondError(c, response.CodeBadRequest, "error.invalid_id", nil)
		return
	}
	product, err := h.CatalogService.Get(key)
	if err != nil {
		respondCatalogError(c, err, "error.internal")
		return
	}
	response.Success(c, dto.NewProduct(product, contentLang(c)))
}

// GetCategories 启用的分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListPublic()
	if err != nil {
		respondCatalogError(c, err, "error.internal")
		return
	}
	response.Success(c, dto.NewCategories(categories, contentLang(c)))
}

// GetCategory 分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.invalid_id", nil)
		return
	}
	category, err := h.CategoryService.GetPublic(id)
	if err != nil {
		respondCatalogError(c, err, "error.internal")
		return
	}
	response.Success(c, dto.NewCategory(category, contentLang(c)))
}

// GetFeaturedProducts 首页精选面板，固定 6 个位置
func (h *Handler) GetFeaturedProducts(c *gin.Context) {
	board, err := h.FeaturedSlotService.ListBoard(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err, "error.internal")
		return
	}
	response.Success(c, dto.NewBoard(board, contentLang(c)))
}

func parseProductQuery(c *gin.Context) (service.ProductQuery, bool) {
	var query service.ProductQuery
	categoryID, err := handlershared.ParseOptionalUint(c, "category_id")
	if err != nil {
		return query, false
	}
	isFeatured, err := handlershared.ParseOptionalBool(c, "is_featured")
	if err != nil {
		return query, false
	}
	minPrice, err := parseOptionalDecimal(c.Query("min_price"))
	if err != nil {
		return query, false
	}
	maxPrice, err := parseOptionalDecimal(c.Query("max_price"))
	if err != nil {
		return query, false
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.Query("size"))

	query.CategoryID = categoryID
	query.Q = strings.TrimSpace(c.Query("q"))
	query.IsFeatured = isFeatured
	query.MinPrice = minPrice
	query.MaxPrice = maxPrice
	query.SortBy = c.Query("sort_by")
	query.SortOrder = c.Query("sort_order")
	query.Page = page
	query.Size = size
	return query, true
}

func parseOptionalDecimal(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	if value.IsNegative() {
		return nil, service.ErrInvalidInput
	}
	return &value, nil
}
