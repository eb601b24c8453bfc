package dto

import (
	"time"

	"github.com/fanxi-showcase/internal/i18n"
	"github.com/fanxi-showcase/internal/markup"
	"github.com/fanxi-showcase/internal/models"
)

// BackgroundImage 背景图输出
type BackgroundImage struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	TitleEn        *string   `json:"title_en"`
	TitleZh        *string   `json:"title_zh"`
	Subtitle       string    `json:"subtitle"`
	SubtitleEn     *string   `json:"subtitle_en"`
	SubtitleZh     *string   `json:"subtitle_zh"`
	ImageURL       string    `json:"image_url"`
	ButtonText     string    `json:"button_text"`
	ButtonTextEn   *string   `json:"button_text_en"`
	ButtonTextZh   *string   `json:"button_text_zh"`
	ButtonLink     *string   `json:"button_link"`
	SortOrder      int       `json:"sort_order"`
	IsActive       bool      `json:"is_active"`
	ShowContentBox bool      `json:"show_content_box"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewBackgroundImage 序列化背景图
func NewBackgroundImage(b *models.BackgroundImage, lang i18n.Lang) *BackgroundImage {
	if b == nil {
		return nil
	}
	return &BackgroundImage{
		ID:             b.ID,
		Title:          i18n.NewText(b.Title, b.TitleEn, b.TitleZh).Resolve(lang),
		TitleEn:        b.TitleEn,
		TitleZh:        b.TitleZh,
		Subtitle:       i18n.NewText(b.Subtitle, b.SubtitleEn, b.SubtitleZh).Resolve(lang),
		SubtitleEn:     b.SubtitleEn,
		SubtitleZh:     b.SubtitleZh,
		ImageURL:       b.ImageURL,
		ButtonText:     i18n.NewText(b.ButtonText, b.ButtonTextEn, b.ButtonTextZh).Resolve(lang),
		ButtonTextEn:   b.ButtonTextEn,
		ButtonTextZh:   b.ButtonTextZh,
		ButtonLink:     b.ButtonLink,
		SortOrder:      b.SortOrder,
		IsActive:       b.IsActive,
		ShowContentBox: b.ShowContentBox,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// NewBackgroundImages 批量序列化背景图
func NewBackgroundImages(items []models.BackgroundImage, lang i18n.Lang) []*BackgroundImage {
	out := make([]*BackgroundImage, 0, len(items))
	for i := range items {
		out = append(out, NewBackgroundImage(&items[i], lang))
	}
	return out
}

// AboutUs 关于我们输出
type AboutUs struct {
	ID                 uint      `json:"id"`
	Title              string    `json:"title"`
	TitleEn            *string   `json:"title_en"`
	TitleZh            *string   `json:"title_zh"`
	Content            string    `json:"content"`
	ContentEn          *string   `json:"content_en"`
	ContentZh          *string   `json:"content_zh"`
	ContentHTML        string    `json:"content_html"`
	BackgroundImageURL *string   `json:"background_image_url"`
	TextColor          string    `json:"text_color"`
	BackgroundOverlay  string    `json:"background_overlay"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewAboutUs 序列化关于我们，正文渲染为 HTML
func NewAboutUs(a *models.AboutUs, lang i18n.Lang) *AboutUs {
	if a == nil {
		return nil
	}
	content := i18n.Resolve(a.Content, a.ContentEn, a.ContentZh, lang)
	return &AboutUs{
		ID:                 a.ID,
		Title:              i18n.Resolve(a.Title, a.TitleEn, a.TitleZh, lang),
		TitleEn:            a.TitleEn,
		TitleZh:            a.TitleZh,
		Content:            content,
		ContentEn:          a.ContentEn,
		ContentZh:          a.ContentZh,
		ContentHTML:        markup.RenderMarkdown(content),
		BackgroundImageURL: a.BackgroundImageURL,
		TextColor:          a.TextColor,
		BackgroundOverlay:  a.BackgroundOverlay,
		IsActive:           a.IsActive,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FooterInfo 页脚输出（仅有英文扩展列）
type FooterInfo struct {
	ID                uint      `json:"id"`
	AboutTitle        string    `json:"about_title"`
	AboutTitleEn      *string   `json:"about_title_en"`
	AboutContent      string    `json:"about_content"`
	AboutContentEn    *string   `json:"about_content_en"`
	ContactTitle      string    `json:"contact_title"`
	ContactTitleEn    *string   `json:"contact_title_en"`
	ContactEmail      *string   `json:"contact_email"`
	ContactPhone      *string   `json:"contact_phone"`
	ContactAddress    string    `json:"contact_address"`
	ContactAddressEn  *string   `json:"contact_address_en"`
	SocialTitle       string    `json:"social_title"`
	SocialTitleEn     *string   `json:"social_title_en"`
	WechatURL         *string   `json:"wechat_url"`
	WeiboURL          *string   `json:"weibo_url"`
	GithubURL         *string   `json:"github_url"`
	QuickLinksTitle   string    `json:"quick_links_title"`
	QuickLinksTitleEn *string   `json:"quick_links_title_en"`
	CopyrightText     string    `json:"copyright_text"`
	CopyrightTextEn   *string   `json:"copyright_text_en"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewFooterInfo 序列化页脚
func NewFooterInfo(f *models.FooterInfo, lang i18n.Lang) *FooterInfo {
	if f == nil {
		return nil
	}
	return &FooterInfo{
		ID:                f.ID,
		AboutTitle:        i18n.Resolve(f.AboutTitle, f.AboutTitleEn, nil, lang),
		AboutTitleEn:      f.AboutTitleEn,
		AboutContent:      i18n.Resolve(f.AboutContent, f.AboutContentEn, nil, lang),
		AboutContentEn:    f.AboutContentEn,
		ContactTitle:      i18n.Resolve(f.ContactTitle, f.ContactTitleEn, nil, lang),
		ContactTitleEn:    f.ContactTitleEn,
		ContactEmail:      f.ContactEmail,
		ContactPhone:      f.ContactPhone,
		ContactAddress:    i18n.NewText(f.ContactAddress, f.ContactAddressEn, nil).Resolve(lang),
		ContactAddressEn:  f.ContactAddressEn,
		SocialTitle:       i18n.Resolve(f.SocialTitle, f.SocialTitleEn, nil, lang),
		SocialTitleEn:     f.SocialTitleEn,
		WechatURL:         f.WechatURL,
		WeiboURL:          f.WeiboURL,
		GithubURL:         f.GithubURL,
		QuickLinksTitle:   i18n.Resolve(f.QuickLinksTitle, f.QuickLinksTitleEn, nil, lang),
		QuickLinksTitleEn: f.QuickLinksTitleEn,
		CopyrightText:     i18n.Resolve(f.CopyrightText, f.CopyrightTextEn, nil, lang),
		CopyrightTextEn:   f.CopyrightTextEn,
		IsActive:          f.IsActive,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}
}

// NewTopInfoBar 顶部信息栏无多语言字段，直接输出模型
func NewTopInfoBar(t *models.TopInfoBar) *models.TopInfoBar {
	return t
}
