package repository

import (
	"math"

	"gorm.io/gorm"
)

// applyPagination 按页码截取结果，pageSize 非正时不分页（导出、种子等场景）。
// 偏移量溢出时页码必然越界，直接返回空结果。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	if page-1 > math.MaxInt/pageSize {
		return query.Where("1 = 0").Limit(pageSize)
	}
	return query.Offset((page - 1) * pageSize).Limit(pageSize)
}
