package models

import "time"

// BackgroundImage 首页背景图
type BackgroundImage struct {
	ID             uint      `gorm:"primarykey" json:"id"`                        // 主键
	Title          *string   `gorm:"type:varchar(200)" json:"title"`              // 标题
	TitleEn        *string   `gorm:"type:varchar(200)" json:"title_en"`           // 英文标题
	TitleZh        *string   `gorm:"type:varchar(200)" json:"title_zh"`           // 中文标题
	Subtitle       *string   `gorm:"type:varchar(500)" json:"subtitle"`           // 副标题
	SubtitleEn     *string   `gorm:"type:varchar(500)" json:"subtitle_en"`        // 英文副标题
	SubtitleZh     *string   `gorm:"type:varchar(500)" json:"subtitle_zh"`        // 中文副标题
	ImageURL       string    `gorm:"type:varchar(500);not null" json:"image_url"` // 图片地址
	ButtonText     *string   `gorm:"type:varchar(100)" json:"button_text"`        // 按钮文案
	ButtonTextEn   *string   `gorm:"type:varchar(100)" json:"button_text_en"`     // 英文按钮文案
	ButtonTextZh   *string   `gorm:"type:varchar(100)" json:"button_text_zh"`     // 中文按钮文案
	ButtonLink     *string   `gorm:"type:varchar(500)" json:"button_link"`        // 按钮链接
	SortOrder      int       `gorm:"default:0;index" json:"sort_order"`           // 排序
	IsActive       bool      `gorm:"not null;index" json:"is_active"`             // 是否启用
	ShowContentBox bool      `gorm:"not null" json:"show_content_box"`            // 是否显示内容框
	CreatedAt      time.Time `gorm:"index" json:"created_at"`                     // 创建时间
	UpdatedAt      time.Time `json:"updated_at"`                                  // 更新时间
}

// TableName 指定表名
func (BackgroundImage) TableName() string {
	return "background_images"
}
