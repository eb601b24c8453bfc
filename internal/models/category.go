package models

import "time"

// Category 产品分类表
type Category struct {
	ID            uint      `gorm:"primarykey" json:"id"`                               // 主键
	Slug          string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"` // 唯一标识
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`             // 名称
	NameEn        *string   `gorm:"type:varchar(100)" json:"name_en"`                   // 英文名称
	NameZh        *string   `gorm:"type:varchar(100)" json:"name_zh"`                   // 中文名称
	Description   *string   `gorm:"type:text" json:"description"`                       // 描述
	DescriptionEn *string   `gorm:"type:text" json:"description_en"`                    // 英文描述
	DescriptionZh *string   `gorm:"type:text" json:"description_zh"`                    // 中文描述
	IconURL       *string   `gorm:"type:varchar(500)" json:"icon_url"`                  // 分类图标
	SortOrder     int       `gorm:"default:0;index" json:"sort_order"`                  // 排序权重
	IsActive      bool      `gorm:"not null;index" json:"is_active"`                    // 是否启用
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                         // 更新时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
