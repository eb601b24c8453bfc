package models

import "time"

// Product 产品表
type Product struct {
	ID            uint        `gorm:"primarykey" json:"id"`                                // 主键
	CategoryID    uint        `gorm:"not null;index" json:"category_id"`                   // 分类ID
	Slug          string      `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`  // 唯一标识
	SKU           *string     `gorm:"column:sku;type:varchar(100);uniqueIndex" json:"sku"` // 商品编码（可空）
	Name          string      `gorm:"type:varchar(200);not null;index" json:"name"`        // 名称
	NameEn        *string     `gorm:"type:varchar(200)" json:"name_en"`                    // 英文名称
	NameZh        *string     `gorm:"type:varchar(200)" json:"name_zh"`                    // 中文名称
	Description   *string     `gorm:"type:text" json:"description"`                        // 描述
	DescriptionEn *string     `gorm:"type:text" json:"description_en"`                     // 英文描述
	DescriptionZh *string     `gorm:"type:text" json:"description_zh"`                     // 中文描述
	Price         Money       `gorm:"type:decimal(20,2);not null" json:"price"`            // 售价
	OriginalPrice *Money      `gorm:"type:decimal(20,2)" json:"original_price"`            // 原价（需高于售价）
	ImageURL      *string     `gorm:"type:varchar(500)" json:"image_url"`                  // 主图
	Images        StringArray `gorm:"type:json" json:"images"`                             // 图片数组
	Stock         int         `gorm:"not null;default:0" json:"stock"`                     // 库存
	SalesCount    int         `gorm:"not null;default:0;index" json:"sales_count"`         // 销量
	ViewCount     int         `gorm:"not null;default:0" json:"view_count"`                // 浏览量
	Rating        float64     `gorm:"not null;default:0" json:"rating"`                    // 评分（0-5）
	Tags          StringArray `gorm:"type:json" json:"tags"`                               // 标签数组
	IsFeatured    bool        `gorm:"default:false;index" json:"is_featured"`              // 是否推荐
	IsActive      bool        `gorm:"not null;index" json:"is_active"`                     // 是否上架
	SortOrder     int         `gorm:"default:0;index" json:"sort_order"`                   // 排序权重
	CreatedAt     time.Time   `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt     time.Time   `json:"updated_at"`                                          // 更新时间

	// 关联
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
