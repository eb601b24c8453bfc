package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"

	"gorm.io/gorm"
)

// CategoryInUseError 分类下仍有产品
type CategoryInUseError struct {
	Count int64
}

func (e CategoryInUseError) Error() string {
	return fmt.Sprintf("category has %d products", e.Count)
}

// Is 使 errors.Is(err, ErrCategoryInUse) 成立
func (e CategoryInUseError) Is(target error) bool {
	return target == ErrCategoryInUse
}

// CategoryService 分类业务服务
type CategoryService struct {
	repo     repository.CategoryRepository
	notifier *CacheNotifier
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository, notifier *CacheNotifier) *CategoryService {
	return &CategoryService{repo: repo, notifier: notifier}
}

// CategoryInput 创建/更新分类输入，nil 字段表示不修改
type CategoryInput struct {
	Slug          *string
	Name          *string
	NameEn        *string
	NameZh        *string
	Description   *string
	DescriptionEn *string
	DescriptionZh *string
	IconURL       *string
	SortOrder     *int
	IsActive      *bool
}

// ListPublic 启用的分类列表
func (s *CategoryService) ListPublic() ([]models.Category, error) {
	categories, _, err := s.repo.List(repository.CategoryListFilter{OnlyActive: true})
	return categories, err
}

// GetPublic 获取启用的分类
func (s *CategoryService) GetPublic(id uint) (*models.Category, error) {
	category, err := s.repo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// ListAdmin 后台分类列表
func (s *CategoryService) ListAdmin(search string, page, pageSize int) ([]models.Category, int64, error) {
	page, pageSize = adminPage(page, pageSize)
	return s.repo.List(repository.CategoryListFilter{Page: page, PageSize: pageSize, Search: search})
}

// GetAdmin 后台获取分类
func (s *CategoryService) GetAdmin(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(derefString(input.Name))
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	slugValue, err := s.resolveSlug(input.Slug, name, nil)
	if err != nil {
		return nil, err
	}

	category := models.Category{
		Slug:     slugValue,
		Name:     name,
		IsActive: true,
	}
	applyCategoryInput(&category, input)
	category.Name = name

	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	s.notifier.BoardChanged(ctx)
	return &category, nil
}

// Update 部分更新分类
func (s *CategoryService) Update(ctx context.Context, id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Slug != nil {
		slugValue, err := s.resolveSlug(input.Slug, category.Name, &id)
		if err != nil {
			return nil, err
		}
		category.Slug = slugValue
	}
	applyCategoryInput(category, input)

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	s.notifier.BoardChanged(ctx)
	return category, nil
}

// Delete 删除分类；统计与删除在同一事务内完成，存在产品时拒绝
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		category, err := repo.LockByID(id)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}
		count, err := repo.CountProducts(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return CategoryInUseError{Count: count}
		}
		return repo.Delete(id)
	})
	if err != nil {
		return err
	}
	s.notifier.BoardChanged(ctx)
	return nil
}

func (s *CategoryService) resolveSlug(explicit *string, name string, excludeID *uint) (string, error) {
	if explicit != nil && strings.TrimSpace(*explicit) != "" {
		value := buildSlug(*explicit, "", "category")
		count, err := s.repo.CountBySlug(value, excludeID)
		if err != nil {
			return "", err
		}
		if count > 0 {
			return "", ErrSlugExists
		}
		return value, nil
	}
	return uniqueSlug(buildSlug("", name, "category"), func(candidate string) (bool, error) {
		count, err := s.repo.CountBySlug(candidate, excludeID)
		return count > 0, err
	})
}

func applyCategoryInput(category *models.Category, input CategoryInput) {
	if input.Name != nil {
		category.Name = strings.TrimSpace(*input.Name)
	}
	if input.NameEn != nil {
		category.NameEn = normalizeOptional(input.NameEn)
	}
	if input.NameZh != nil {
		category.NameZh = normalizeOptional(input.NameZh)
	}
	if input.Description != nil {
		category.Description = normalizeOptional(input.Description)
	}
	if input.DescriptionEn != nil {
		category.DescriptionEn = normalizeOptional(input.DescriptionEn)
	}
	if input.DescriptionZh != nil {
		category.DescriptionZh = normalizeOptional(input.DescriptionZh)
	}
	if input.IconURL != nil {
		category.IconURL = normalizeOptional(input.IconURL)
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
}

// adminPage 归一化后台分页参数
func adminPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = constants.AdminDefaultPageSize
	}
	if pageSize > constants.CatalogMaxPageSize {
		pageSize = constants.CatalogMaxPageSize
	}
	return page, pageSize
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// normalizeOptional 去除首尾空白，空字符串视为未设置
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
