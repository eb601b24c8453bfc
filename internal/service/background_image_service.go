package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"
)

// BackgroundImageInput 背景图创建/更新输入，nil 字段表示不修改
type BackgroundImageInput struct {
	Title          *string
	TitleEn        *string
	TitleZh        *string
	Subtitle       *string
	SubtitleEn     *string
	SubtitleZh     *string
	ImageURL       *string
	ButtonText     *string
	ButtonTextEn   *string
	ButtonTextZh   *string
	ButtonLink     *string
	SortOrder      *int
	IsActive       *bool
	ShowContentBox *bool
}

// BackgroundImageService 首页背景图服务
type BackgroundImageService struct {
	repo     repository.BackgroundImageRepository
	notifier *CacheNotifier
}

// NewBackgroundImageService 创建背景图服务
func NewBackgroundImageService(repo repository.BackgroundImageRepository, notifier *CacheNotifier) *BackgroundImageService {
	return &BackgroundImageService{repo: repo, notifier: notifier}
}

// List 背景图列表，isActive 为空时不过滤
func (s *BackgroundImageService) List(isActive *bool, page, pageSize int) ([]models.BackgroundImage, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = constants.AdminDefaultPageSize
	}
	if pageSize > constants.CatalogMaxPageSize {
		pageSize = constants.CatalogMaxPageSize
	}
	return s.repo.List(repository.BackgroundImageListFilter{Page: page, PageSize: pageSize, IsActive: isActive})
}

// Get 获取背景图
func (s *BackgroundImageService) Get(id uint) (*models.BackgroundImage, error) {
	image, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, ErrBackgroundImageNotFound
	}
	return image, nil
}

// Create 创建背景图
func (s *BackgroundImageService) Create(input BackgroundImageInput) (*models.BackgroundImage, error) {
	if strings.TrimSpace(derefString(input.ImageURL)) == "" {
		return nil, fmt.Errorf("%w: image_url is required", ErrInvalidInput)
	}
	image := models.BackgroundImage{IsActive: true, ShowContentBox: true}
	applyBackgroundImageInput(&image, input)
	if err := s.repo.Create(&image); err != nil {
		return nil, err
	}
	return &image, nil
}

// Update 部分更新背景图
func (s *BackgroundImageService) Update(id uint, input BackgroundImageInput) (*models.BackgroundImage, error) {
	image, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if input.ImageURL != nil && strings.TrimSpace(*input.ImageURL) == "" {
		return nil, fmt.Errorf("%w: image_url is required", ErrInvalidInput)
	}
	previousURL := image.ImageURL
	applyBackgroundImageInput(image, input)
	if err := s.repo.Update(image); err != nil {
		return nil, err
	}
	if previousURL != image.ImageURL {
		s.notifier.UploadOrphaned(previousURL)
	}
	return image, nil
}

// Delete 删除背景图并清理图片文件
func (s *BackgroundImageService) Delete(_ context.Context, id uint) error {
	image, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.notifier.UploadOrphaned(image.ImageURL)
	return nil
}

func applyBackgroundImageInput(image *models.BackgroundImage, input BackgroundImageInput) {
	optional := []struct {
		src *string
		dst **string
	}{
		{input.Title, &image.Title},
		{input.TitleEn, &image.TitleEn},
		{input.TitleZh, &image.TitleZh},
		{input.Subtitle, &image.Subtitle},
		{input.SubtitleEn, &image.SubtitleEn},
		{input.SubtitleZh, &image.SubtitleZh},
		{input.ButtonText, &image.ButtonText},
		{input.ButtonTextEn, &image.ButtonTextEn},
		{input.ButtonTextZh, &image.ButtonTextZh},
		{input.ButtonLink, &image.ButtonLink},
	}
	for _, field := range optional {
		if field.src != nil {
			*field.dst = normalizeOptional(field.src)
		}
	}
	if input.ImageURL != nil {
		image.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.SortOrder != nil {
		image.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		image.IsActive = *input.IsActive
	}
	if input.ShowContentBox != nil {
		image.ShowContentBox = *input.ShowContentBox
	}
}
