package models

import "time"

// AboutUs 关于我们（单例内容）
type AboutUs struct {
	ID                 uint      `gorm:"primarykey" json:"id"`                                                                   // 主键
	Title              string    `gorm:"type:varchar(200);not null" json:"title"`                                                // 标题
	TitleEn            *string   `gorm:"type:varchar(200)" json:"title_en"`                                                      // 英文标题
	TitleZh            *string   `gorm:"type:varchar(200)" json:"title_zh"`                                                      // 中文标题
	Content            string    `gorm:"type:text;not null" json:"content"`                                                      // 正文（Markdown）
	ContentEn          *string   `gorm:"type:text" json:"content_en"`                                                            // 英文正文
	ContentZh          *string   `gorm:"type:text" json:"content_zh"`                                                            // 中文正文
	BackgroundImageURL *string   `gorm:"type:varchar(500)" json:"background_image_url"`                                          // 背景图
	TextColor          string    `gorm:"type:varchar(20);not null;default:'#333333'" json:"text_color"`                          // 文字颜色
	BackgroundOverlay  string    `gorm:"type:varchar(50);not null;default:'rgba(255, 255, 255, 0.8)'" json:"background_overlay"` // 背景遮罩
	IsActive           bool      `gorm:"not null;index" json:"is_active"`                                                        // 是否启用
	CreatedAt          time.Time `json:"created_at"`                                                                             // 创建时间
	UpdatedAt          time.Time `json:"updated_at"`                                                                             // 更新时间
}

// TableName 指定表名
func (AboutUs) TableName() string {
	return "about_us"
}

// FooterInfo 页脚信息（单例内容）
type FooterInfo struct {
	ID                uint      `gorm:"primarykey" json:"id"`                                // 主键
	AboutTitle        string    `gorm:"type:varchar(100);not null" json:"about_title"`       // 关于标题
	AboutTitleEn      *string   `gorm:"type:varchar(100)" json:"about_title_en"`             // 英文关于标题
	AboutContent      string    `gorm:"type:text;not null" json:"about_content"`             // 关于内容
	AboutContentEn    *string   `gorm:"type:text" json:"about_content_en"`                   // 英文关于内容
	ContactTitle      string    `gorm:"type:varchar(100);not null" json:"contact_title"`     // 联系标题
	ContactTitleEn    *string   `gorm:"type:varchar(100)" json:"contact_title_en"`           // 英文联系标题
	ContactEmail      *string   `gorm:"type:varchar(100)" json:"contact_email"`              // 联系邮箱
	ContactPhone      *string   `gorm:"type:varchar(50)" json:"contact_phone"`               // 联系电话
	ContactAddress    *string   `gorm:"type:varchar(200)" json:"contact_address"`            // 联系地址
	ContactAddressEn  *string   `gorm:"type:varchar(200)" json:"contact_address_en"`         // 英文联系地址
	SocialTitle       string    `gorm:"type:varchar(100);not null" json:"social_title"`      // 社交标题
	SocialTitleEn     *string   `gorm:"type:varchar(100)" json:"social_title_en"`            // 英文社交标题
	WechatURL         *string   `gorm:"type:varchar(500)" json:"wechat_url"`                 // 微信
	WeiboURL          *string   `gorm:"type:varchar(500)" json:"weibo_url"`                  // 微博
	GithubURL         *string   `gorm:"type:varchar(500)" json:"github_url"`                 // GitHub
	QuickLinksTitle   string    `gorm:"type:varchar(100);not null" json:"quick_links_title"` // 快速链接标题
	QuickLinksTitleEn *string   `gorm:"type:varchar(100)" json:"quick_links_title_en"`       // 英文快速链接标题
	CopyrightText     string    `gorm:"type:varchar(200);not null" json:"copyright_text"`    // 版权文字
	CopyrightTextEn   *string   `gorm:"type:varchar(200)" json:"copyright_text_en"`          // 英文版权文字
	IsActive          bool      `gorm:"not null;index" json:"is_active"`                     // 是否启用
	CreatedAt         time.Time `json:"created_at"`                                          // 创建时间
	UpdatedAt         time.Time `json:"updated_at"`                                          // 更新时间
}

// TableName 指定表名
func (FooterInfo) TableName() string {
	return "footer_info"
}

// TopInfoBar 顶部信息栏（单例内容）
type TopInfoBar struct {
	ID          uint      `gorm:"primarykey" json:"id"`                  // 主键
	Phone       *string   `gorm:"type:varchar(50)" json:"phone"`         // 电话
	Email       *string   `gorm:"type:varchar(100)" json:"email"`        // 邮箱
	WechatURL   *string   `gorm:"type:varchar(500)" json:"wechat_url"`   // 微信
	WechatQR    *string   `gorm:"type:varchar(500)" json:"wechat_qr"`    // 微信二维码
	WeiboURL    *string   `gorm:"type:varchar(500)" json:"weibo_url"`    // 微博
	QQURL       *string   `gorm:"type:varchar(500)" json:"qq_url"`       // QQ
	GithubURL   *string   `gorm:"type:varchar(500)" json:"github_url"`   // GitHub
	LinkedinURL *string   `gorm:"type:varchar(500)" json:"linkedin_url"` // LinkedIn
	IsActive    bool      `gorm:"not null;index" json:"is_active"`       // 是否启用
	CreatedAt   time.Time `json:"created_at"`                            // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                            // 更新时间
}

// TableName 指定表名
func (TopInfoBar) TableName() string {
	return "top_info_bar"
}
