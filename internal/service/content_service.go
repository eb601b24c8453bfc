package service

import (
	"context"
	"strings"
	"time"

	"github.com/fanxi-showcase/internal/cache"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"

	"gorm.io/gorm"
)

// AboutUsInput 关于我们输入，nil 字段表示不修改
type AboutUsInput struct {
	Title              *string
	TitleEn            *string
	TitleZh            *string
	Content            *string
	ContentEn          *string
	ContentZh          *string
	BackgroundImageURL *string
	TextColor          *string
	BackgroundOverlay  *string
	IsActive           *bool
}

// FooterInfoInput 页脚信息输入，nil 字段表示不修改
type FooterInfoInput struct {
	AboutTitle        *string
	AboutTitleEn      *string
	AboutContent      *string
	AboutContentEn    *string
	ContactTitle      *string
	ContactTitleEn    *string
	ContactEmail      *string
	ContactPhone      *string
	ContactAddress    *string
	ContactAddressEn  *string
	SocialTitle       *string
	SocialTitleEn     *string
	WechatURL         *string
	WeiboURL          *string
	GithubURL         *string
	QuickLinksTitle   *string
	QuickLinksTitleEn *string
	CopyrightText     *string
	CopyrightTextEn   *string
	IsActive          *bool
}

// TopInfoBarInput 顶部信息栏输入，nil 字段表示不修改
type TopInfoBarInput struct {
	Phone       *string
	Email       *string
	WechatURL   *string
	WechatQR    *string
	WeiboURL    *string
	QQURL       *string
	GithubURL   *string
	LinkedinURL *string
	IsActive    *bool
}

// ContentService 单例内容服务（关于我们 / 页脚 / 顶部信息栏）
type ContentService struct {
	repo     repository.ContentRepository
	notifier *CacheNotifier
	ttl      time.Duration
}

// NewContentService 创建内容服务
func NewContentService(repo repository.ContentRepository, notifier *CacheNotifier, ttl time.Duration) *ContentService {
	return &ContentService{repo: repo, notifier: notifier, ttl: ttl}
}

// ---- 关于我们 ----

// GetAboutUs 前台获取关于我们，不存在时创建默认内容
func (s *ContentService) GetAboutUs(ctx context.Context) (*models.AboutUs, error) {
	var cached models.AboutUs
	if s.readCache(ctx, cache.ContentAboutUs, &cached) {
		return &cached, nil
	}
	item, err := s.ensureAboutUs(true)
	if err != nil {
		return nil, err
	}
	s.writeCache(ctx, cache.ContentAboutUs, item)
	return item, nil
}

// AdminGetAboutUs 后台获取关于我们（含停用），不存在时创建默认内容
func (s *ContentService) AdminGetAboutUs() (*models.AboutUs, error) {
	return s.ensureAboutUs(false)
}

// CreateAboutUs 创建关于我们，已存在时返回 ErrContentExists
func (s *ContentService) CreateAboutUs(ctx context.Context, input AboutUsInput) (*models.AboutUs, error) {
	var created *models.AboutUs
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FirstAboutUs(false)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrContentExists
		}
		item := defaultAboutUs()
		applyAboutUsInput(item, input)
		if err := repo.SaveAboutUs(item); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifier.ContentChanged(ctx, cache.ContentAboutUs)
	return created, nil
}

// UpdateAboutUs 部分更新关于我们，不存在时先创建默认内容
func (s *ContentService) UpdateAboutUs(ctx context.Context, input AboutUsInput) (*models.AboutUs, error) {
	item, err := s.ensureAboutUs(false)
	if err != nil {
		return nil, err
	}
	applyAboutUsInput(item, input)
	if err := s.repo.SaveAboutUs(item); err != nil {
		return nil, err
	}
	s.notifier.ContentChanged(ctx, cache.ContentAboutUs)
	return item, nil
}

func (s *ContentService) ensureAboutUs(onlyActive bool) (*models.AboutUs, error) {
	var result *models.AboutUs
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		item, err := repo.FirstAboutUs(onlyActive)
		if err != nil || item != nil {
			result = item
			return err
		}
		item = defaultAboutUs()
		if err := repo.SaveAboutUs(item); err != nil {
			return err
		}
		logger.Infow("content_default_created", "kind", cache.ContentAboutUs, "id", item.ID)
		result = item
		return nil
	})
	return result, err
}

func applyAboutUsInput(item *models.AboutUs, input AboutUsInput) {
	setRequired(&item.Title, input.Title)
	setOptional(&item.TitleEn, input.TitleEn)
	setOptional(&item.TitleZh, input.TitleZh)
	setRequired(&item.Content, input.Content)
	setOptional(&item.ContentEn, input.ContentEn)
	setOptional(&item.ContentZh, input.ContentZh)
	setOptional(&item.BackgroundImageURL, input.BackgroundImageURL)
	setRequired(&item.TextColor, input.TextColor)
	setRequired(&item.BackgroundOverlay, input.BackgroundOverlay)
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
}

// ---- 页脚信息 ----

// GetFooterInfo 前台获取页脚信息，不存在时创建默认内容
func (s *ContentService) GetFooterInfo(ctx context.Context) (*models.FooterInfo, error) {
	var cached models.FooterInfo
	if s.readCache(ctx, cache.ContentFooterInfo, &cached) {
		return &cached, nil
	}
	item, err := s.ensureFooterInfo(true)
	if err != nil {
		return nil, err
	}
	s.writeCache(ctx, cache.ContentFooterInfo, item)
	return item, nil
}

// AdminGetFooterInfo 后台获取页脚信息
func (s *ContentService) AdminGetFooterInfo() (*models.FooterInfo, error) {
	return s.ensureFooterInfo(false)
}

// UpdateFooterInfo 部分更新页脚信息，不存在时先创建默认内容
func (s *ContentService) UpdateFooterInfo(ctx context.Context, input FooterInfoInput) (*models.FooterInfo, error) {
	item, err := s.ensureFooterInfo(false)
	if err != nil {
		return nil, err
	}
	setRequired(&item.AboutTitle, input.AboutTitle)
	setOptional(&item.AboutTitleEn, input.AboutTitleEn)
	setRequired(&item.AboutContent, input.AboutContent)
	setOptional(&item.AboutContentEn, input.AboutContentEn)
	setRequired(&item.ContactTitle, input.ContactTitle)
	setOptional(&item.ContactTitleEn, input.ContactTitleEn)
	setOptional(&item.ContactEmail, input.ContactEmail)
	setOptional(&item.ContactPhone, input.ContactPhone)
	setOptional(&item.ContactAddress, input.ContactAddress)
	setOptional(&item.ContactAddressEn, input.ContactAddressEn)
	setRequired(&item.SocialTitle, input.SocialTitle)
	setOptional(&item.SocialTitleEn, input.SocialTitleEn)
	setOptional(&item.WechatURL, input.WechatURL)
	setOptional(&item.WeiboURL, input.WeiboURL)
	setOptional(&item.GithubURL, input.GithubURL)
	setRequired(&item.QuickLinksTitle, input.QuickLinksTitle)
	setOptional(&item.QuickLinksTitleEn, input.QuickLinksTitleEn)
	setRequired(&item.CopyrightText, input.CopyrightText)
	setOptional(&item.CopyrightTextEn, input.CopyrightTextEn)
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if err := s.repo.SaveFooterInfo(item); err != nil {
		return nil, err
	}
	s.notifier.ContentChanged(ctx, cache.ContentFooterInfo)
	return item, nil
}

func (s *ContentService) ensureFooterInfo(onlyActive bool) (*models.FooterInfo, error) {
	var result *models.FooterInfo
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		item, err := repo.FirstFooterInfo(onlyActive)
		if err != nil || item != nil {
			result = item
			return err
		}
		item = defaultFooterInfo()
		if err := repo.SaveFooterInfo(item); err != nil {
			return err
		}
		logger.Infow("content_default_created", "kind", cache.ContentFooterInfo, "id", item.ID)
		result = item
		return nil
	})
	return result, err
}

// ---- 顶部信息栏 ----

// GetTopInfoBar 前台获取顶部信息栏，不存在时创建默认内容
func (s *ContentService) GetTopInfoBar(ctx context.Context) (*models.TopInfoBar, error) {
	var cached models.TopInfoBar
	if s.readCache(ctx, cache.ContentTopInfoBar, &cached) {
		return &cached, nil
	}
	item, err := s.ensureTopInfoBar(true)
	if err != nil {
		return nil, err
	}
	s.writeCache(ctx, cache.ContentTopInfoBar, item)
	return item, nil
}

// AdminGetTopInfoBar 后台获取顶部信息栏
func (s *ContentService) AdminGetTopInfoBar() (*models.TopInfoBar, error) {
	return s.ensureTopInfoBar(false)
}

// CreateTopInfoBar 创建顶部信息栏，已存在时返回 ErrContentExists
func (s *ContentService) CreateTopInfoBar(ctx context.Context, input TopInfoBarInput) (*models.TopInfoBar, error) {
	var created *models.TopInfoBar
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FirstTopInfoBar(false)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrContentExists
		}
		item := &models.TopInfoBar{IsActive: true}
		applyTopInfoBarInput(item, input)
		if err := repo.SaveTopInfoBar(item); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifier.ContentChanged(ctx, cache.ContentTopInfoBar)
	return created, nil
}

// UpdateTopInfoBar 部分更新顶部信息栏，不存在时先创建默认内容
func (s *ContentService) UpdateTopInfoBar(ctx context.Context, input TopInfoBarInput) (*models.TopInfoBar, error) {
	item, err := s.ensureTopInfoBar(false)
	if err != nil {
		return nil, err
	}
	applyTopInfoBarInput(item, input)
	if err := s.repo.SaveTopInfoBar(item); err != nil {
		return nil, err
	}
	s.notifier.ContentChanged(ctx, cache.ContentTopInfoBar)
	return item, nil
}

func (s *ContentService) ensureTopInfoBar(onlyActive bool) (*models.TopInfoBar, error) {
	var result *models.TopInfoBar
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		item, err := repo.FirstTopInfoBar(onlyActive)
		if err != nil || item != nil {
			result = item
			return err
		}
		item = defaultTopInfoBar()
		if err := repo.SaveTopInfoBar(item); err != nil {
			return err
		}
		logger.Infow("content_default_created", "kind", cache.ContentTopInfoBar, "id", item.ID)
		result = item
		return nil
	})
	return result, err
}

func applyTopInfoBarInput(item *models.TopInfoBar, input TopInfoBarInput) {
	setOptional(&item.Phone, input.Phone)
	setOptional(&item.Email, input.Email)
	setOptional(&item.WechatURL, input.WechatURL)
	setOptional(&item.WechatQR, input.WechatQR)
	setOptional(&item.WeiboURL, input.WeiboURL)
	setOptional(&item.QQURL, input.QQURL)
	setOptional(&item.GithubURL, input.GithubURL)
	setOptional(&item.LinkedinURL, input.LinkedinURL)
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
}

// WarmContent 预热全部单例内容缓存
func (s *ContentService) WarmContent(ctx context.Context) error {
	if !cache.Enabled() {
		return nil
	}
	about, err := s.ensureAboutUs(true)
	if err != nil {
		return err
	}
	s.writeCache(ctx, cache.ContentAboutUs, about)
	footer, err := s.ensureFooterInfo(true)
	if err != nil {
		return err
	}
	s.writeCache(ctx, cache.ContentFooterInfo, footer)
	top, err := s.ensureTopInfoBar(true)
	if err != nil {
		return err
	}
	s.writeCache(ctx, cache.ContentTopInfoBar, top)
	return nil
}

func (s *ContentService) readCache(ctx context.Context, kind string, dest interface{}) bool {
	hit, err := cache.GetContent(ctx, kind, dest)
	if err != nil {
		logger.Warnw("content_cache_get_failed", "kind", kind, "error", err)
		return false
	}
	return hit
}

func (s *ContentService) writeCache(ctx context.Context, kind string, value interface{}) {
	if err := cache.SetContent(ctx, kind, value, s.ttl); err != nil {
		logger.Warnw("content_cache_set_failed", "kind", kind, "error", err)
	}
}

// setRequired 非空时覆盖必填文本列
func setRequired(dst *string, src *string) {
	if src == nil {
		return
	}
	if trimmed := strings.TrimSpace(*src); trimmed != "" {
		*dst = trimmed
	}
}

// setOptional 覆盖可空文本列，空字符串清空
func setOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	*dst = normalizeOptional(src)
}
