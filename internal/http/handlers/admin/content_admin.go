package admin

import (
	"github.com/fanxi-showcase/internal/http/dto"
	"github.com/fanxi-showcase/internal/http/response"
	"github.com/fanxi-showcase/internal/service"

	"github.com/gin-gonic/gin"
)

// AboutUsRequest 关于我们请求
type AboutUsRequest struct {
	Title              *string `json:"title"`
	TitleEn            *string `json:"title_en"`
	TitleZh            *string `json:"title_zh"`
	Content            *string `json:"content"`
	ContentEn          *string `json:"content_en"`
	ContentZh          *string `json:"content_zh"`
	BackgroundImageURL *string `json:"background_image_url"`
	TextColor          *string `json:"text_color"`
	BackgroundOverlay  *string `json:"background_overlay"`
	IsActive           *bool   `json:"is_active"`
}

func (r AboutUsRequest) toInput() service.AboutUsInput {
	return service.AboutUsInput{
		Title:              r.Title,
		TitleEn:            r.TitleEn,
		TitleZh:            r.TitleZh,
		Content:            r.Content,
		ContentEn:          r.ContentEn,
		ContentZh:          r.ContentZh,
		BackgroundImageURL: r.BackgroundImageURL,
		TextColor:          r.TextColor,
		BackgroundOverlay:  r.BackgroundOverlay,
		IsActive:           r.IsActive,
	}
}

// GetAdminAboutUs 后台获取关于我们（不存在时创建默认内容）
func (h *Handler) GetAdminAboutUs(c *gin.Context) {
	item, err := h.ContentService.AdminGetAboutUs()
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewAboutUs(item, contentLang(c)))
}

// CreateAboutUs 创建关于我们，已存在时返回冲突
func (h *Handler) CreateAboutUs(c *gin.Context) {
	var req AboutUsRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.ContentService.CreateAboutUs(c.Request.Context(), req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewAboutUs(item, contentLang(c)))
}

// UpdateAboutUs 更新关于我们
func (h *Handler) UpdateAboutUs(c *gin.Context) {
	var req AboutUsRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.ContentService.UpdateAboutUs(c.Request.Context(), req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewAboutUs(item, contentLang(c)))
}

// FooterInfoRequest 页脚信息请求
type FooterInfoRequest struct {
	AboutTitle        *string `json:"about_title"`
	AboutTitleEn      *string `json:"about_title_en"`
	AboutContent      *string `json:"about_content"`
	AboutContentEn    *string `json:"about_content_en"`
	ContactTitle      *string `json:"contact_title"`
	ContactTitleEn    *string `json:"contact_title_en"`
	ContactEmail      *string `json:"contact_email"`
	ContactPhone      *string `json:"contact_phone"`
	ContactAddress    *string `json:"contact_address"`
	ContactAddressEn  *string `json:"contact_address_en"`
	SocialTitle       *string `json:"social_title"`
	SocialTitleEn     *string `json:"social_title_en"`
	WechatURL         *string `json:"wechat_url"`
	WeiboURL          *string `json:"weibo_url"`
	GithubURL         *string `json:"github_url"`
	QuickLinksTitle   *string `json:"quick_links_title"`
	QuickLinksTitleEn *string `json:"quick_links_title_en"`
	CopyrightText     *string `json:"copyright_text"`
	CopyrightTextEn   *string `json:"copyright_text_en"`
	IsActive          *bool   `json:"is_active"`
}

// GetAdminFooterInfo 后台获取页脚信息
func (h *Handler) GetAdminFooterInfo(c *gin.Context) {
	item, err := h.ContentService.AdminGetFooterInfo()
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewFooterInfo(item, contentLang(c)))
}

// UpdateFooterInfo 更新页脚信息
func (h *Handler) UpdateFooterInfo(c *gin.Context) {
	var req FooterInfoRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.ContentService.UpdateFooterInfo(c.Request.Context(), service.FooterInfoInput{
		AboutTitle:        req.AboutTitle,
		AboutTitleEn:      req.AboutTitleEn,
		AboutContent:      req.AboutContent,
		AboutContentEn:    req.AboutContentEn,
		ContactTitle:      req.ContactTitle,
		ContactTitleEn:    req.ContactTitleEn,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		ContactAddress:    req.ContactAddress,
		ContactAddressEn:  req.ContactAddressEn,
		SocialTitle:       req.SocialTitle,
		SocialTitleEn:     req.SocialTitleEn,
		WechatURL:         req.WechatURL,
		WeiboURL:          req.WeiboURL,
		GithubURL:         req.GithubURL,
		QuickLinksTitle:   req.QuickLinksTitle,
		QuickLinksTitleEn: req.QuickLinksTitleEn,
		CopyrightText:     req.CopyrightText,
		CopyrightTextEn:   req.CopyrightTextEn,
		IsActive:          req.IsActive,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewFooterInfo(item, contentLang(c)))
}

// TopInfoBarRequest 顶部信息栏请求
type TopInfoBarRequest struct {
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	WechatURL   *string `json:"wechat_url"`
	WechatQR    *string `json:"wechat_qr"`
	WeiboURL    *string `json:"weibo_url"`
	QQURL       *string `json:"qq_url"`
	GithubURL   *string `json:"github_url"`
	LinkedinURL *string `json:"linkedin_url"`
	IsActive    *bool   `json:"is_active"`
}

func (r TopInfoBarRequest) toInput() service.TopInfoBarInput {
	return service.TopInfoBarInput{
		Phone:       r.Phone,
		Email:       r.Email,
		WechatURL:   r.WechatURL,
		WechatQR:    r.WechatQR,
		WeiboURL:    r.WeiboURL,
		QQURL:       r.QQURL,
		GithubURL:   r.GithubURL,
		LinkedinURL: r.LinkedinURL,
		IsActive:    r.IsActive,
	}
}

// GetAdminTopInfo 后台获取顶部信息栏
func (h *Handler) GetAdminTopInfo(c *gin.Context) {
	item, err := h.ContentService.AdminGetTopInfoBar()
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewTopInfoBar(item))
}

// CreateTopInfo 创建顶部信息栏，已存在时返回冲突
func (h *Handler) CreateTopInfo(c *gin.Context) {
	var req TopInfoBarRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.ContentService.CreateTopInfoBar(c.Request.Context(), req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewTopInfoBar(item))
}

// UpdateTopInfo 更新顶部信息栏
func (h *Handler) UpdateTopInfo(c *gin.Context) {
	var req TopInfoBarRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.ContentService.UpdateTopInfoBar(c.Request.Context(), req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, dto.NewTopInfoBar(item))
}
