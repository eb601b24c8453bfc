package repository

import "github.com/shopspring/decimal"

// ProductSearchFilter 前台产品检索条件（已归一化）
type ProductSearchFilter struct {
	Page       int
	PageSize   int
	CategoryID *uint
	Query      string
	IsFeatured *bool
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	SortBy     string
	SortOrder  string
}

// ProductAdminFilter 后台产品列表条件
type ProductAdminFilter struct {
	Page       int
	PageSize   int
	CategoryID *uint
	Search     string
	IsActive   *bool
}

// CategoryListFilter 分类列表条件
type CategoryListFilter struct {
	Page       int
	PageSize   int
	OnlyActive bool
	Search     string
}

// BackgroundImageListFilter 背景图列表条件
type BackgroundImageListFilter struct {
	Page     int
	PageSize int
	IsActive *bool
}

// AdminListFilter 管理员列表条件
type AdminListFilter struct {
	Page     int
	PageSize int
	Keyword  string
}

// ServiceCheckSummary 单个巡检对象的汇总
type ServiceCheckSummary struct {
	Service       string
	Total         int64
	UpCount       int64
	AvgResponseMS float64
}
