package models

import "time"

// FeaturedProduct 首页精选位（1-6 号位）
type FeaturedProduct struct {
	ID        uint      `gorm:"primarykey" json:"id"`             // 主键
	ProductID uint      `gorm:"not null;index" json:"product_id"` // 产品ID
	Position  int       `gorm:"not null;index" json:"position"`   // 展示位置（1-6）
	IsActive  bool      `gorm:"not null;index" json:"is_active"`  // 是否启用
	CreatedAt time.Time `json:"created_at"`                       // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                       // 更新时间

	// 关联
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"` // 产品信息
}

// TableName 指定表名
func (FeaturedProduct) TableName() string {
	return "featured_products"
}
