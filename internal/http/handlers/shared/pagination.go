package shared

import (
	"strconv"
	"strings"

	"github.com/fanxi-showcase/internal/constants"

	"github.com/gin-gonic/gin"
)

// NormalizePagination 归一化分页参数。
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = constants.AdminDefaultPageSize
	}
	if pageSize > constants.CatalogMaxPageSize {
		pageSize = constants.CatalogMaxPageSize
	}
	return page, pageSize
}

// ParsePagination 读取 page / page_size（兼容 size）查询参数。
func ParsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	rawSize := c.Query("page_size")
	if rawSize == "" {
		rawSize = c.Query("size")
	}
	pageSize, _ := strconv.Atoi(rawSize)
	return NormalizePagination(page, pageSize)
}

// ParseUintParam 解析路径中的正整数 ID。
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// ParseOptionalBool 解析可选布尔查询参数，缺省返回 nil。
func ParseOptionalBool(c *gin.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// ParseOptionalUint 解析可选正整数查询参数，缺省返回 nil。
func ParseOptionalUint(c *gin.Context, name string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	id := uint(value)
	return &id, nil
}
