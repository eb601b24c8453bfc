package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductService 后台产品管理服务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	featuredRepo repository.FeaturedProductRepository
	notifier     *CacheNotifier
}

// NewProductService 创建产品管理服务
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	featuredRepo repository.FeaturedProductRepository,
	notifier *CacheNotifier,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		featuredRepo: featuredRepo,
		notifier:     notifier,
	}
}

// ProductInput 创建/更新产品输入，nil 字段表示不修改
type ProductInput struct {
	CategoryID         *uint
	Slug               *string
	SKU                *string
	Name               *string
	NameEn             *string
	NameZh             *string
	Description        *string
	DescriptionEn      *string
	DescriptionZh      *string
	Price              *decimal.Decimal
	OriginalPrice      *decimal.Decimal
	ClearOriginalPrice bool
	ImageURL           *string
	Images             *[]string
	Stock              *int
	SalesCount         *int
	Rating             *float64
	Tags               *[]string
	IsFeatured         *bool
	IsActive           *bool
	SortOrder          *int
}

// ProductAdminQuery 后台产品列表参数
type ProductAdminQuery struct {
	CategoryID *uint
	Search     string
	IsActive   *bool
	Page       int
	PageSize   int
}

// ListAdmin 后台产品列表（含下架）
func (s *ProductService) ListAdmin(q ProductAdminQuery) ([]models.Product, int64, error) {
	page, pageSize := adminPage(q.Page, q.PageSize)
	return s.productRepo.ListAdmin(repository.ProductAdminFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: q.CategoryID,
		Search:     q.Search,
		IsActive:   q.IsActive,
	})
}

// GetAdmin 后台获取产品（含下架）
func (s *ProductService) GetAdmin(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建产品
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(derefString(input.Name))
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.CategoryID == nil {
		return nil, fmt.Errorf("%w: category_id is required", ErrInvalidInput)
	}
	if input.Price == nil {
		return nil, ErrInvalidPrice
	}

	product := models.Product{
		Name:     name,
		Images:   models.StringArray{},
		Tags:     models.StringArray{},
		IsActive: true,
	}
	applyProductInput(&product, input)
	if err := s.validate(&product); err != nil {
		return nil, err
	}

	slugValue, err := s.resolveSlug(input.Slug, name, nil)
	if err != nil {
		return nil, err
	}
	product.Slug = slugValue
	if err := s.ensureSKUAvailable(product.SKU, nil); err != nil {
		return nil, err
	}

	if err := s.save(&product, true); err != nil {
		return nil, err
	}
	s.notifier.BoardChanged(ctx)
	return &product, nil
}

// Update 部分更新产品
func (s *ProductService) Update(ctx context.Context, id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	applyProductInput(product, input)
	if err := s.validate(product); err != nil {
		return nil, err
	}
	if input.Slug != nil {
		slugValue, err := s.resolveSlug(input.Slug, product.Name, &id)
		if err != nil {
			return nil, err
		}
		product.Slug = slugValue
	}
	if input.SKU != nil {
		if err := s.ensureSKUAvailable(product.SKU, &id); err != nil {
			return nil, err
		}
	}

	product.Category = nil
	if err := s.save(product, false); err != nil {
		return nil, err
	}
	s.notifier.BoardChanged(ctx)
	return product, nil
}

// ToggleActive 切换上架状态
func (s *ProductService) ToggleActive(ctx context.Context, id uint, active bool) (*models.Product, error) {
	return s.Update(ctx, id, ProductInput{IsActive: &active})
}

// Delete 删除产品，同时删除关联精选位，并清理图片
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	var removed *models.Product
	err := s.productRepo.Transaction(func(tx *gorm.DB) error {
		productRepo := s.productRepo.WithTx(tx)
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		if err := s.featuredRepo.WithTx(tx).DeleteByProductID(id); err != nil {
			return err
		}
		if err := productRepo.Delete(id); err != nil {
			return err
		}
		removed = product
		return nil
	})
	if err != nil {
		return err
	}
	s.notifier.BoardChanged(ctx)
	s.notifier.UploadOrphaned(productImageURLs(removed)...)
	return nil
}

func (s *ProductService) validate(product *models.Product) error {
	if !product.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if product.OriginalPrice != nil && !product.OriginalPrice.Above(product.Price) {
		return ErrInvalidPrice
	}
	if product.Stock < 0 || product.SalesCount < 0 {
		return ErrInvalidStock
	}
	if product.Rating < 0 || product.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// save 在同一事务内锁定分类并写入产品，避免与分类删除交错
func (s *ProductService) save(product *models.Product, create bool) error {
	err := s.productRepo.Transaction(func(tx *gorm.DB) error {
		category, err := s.categoryRepo.WithTx(tx).LockByID(product.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}
		repo := s.productRepo.WithTx(tx)
		if create {
			return repo.Create(product)
		}
		return repo.Update(product)
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrCategoryNotFound
	}
	return translateUniqueError(err, ErrSKUExists)
}

func (s *ProductService) resolveSlug(explicit *string, name string, excludeID *uint) (string, error) {
	if explicit != nil && strings.TrimSpace(*explicit) != "" {
		value := buildSlug(*explicit, "", "product")
		count, err := s.productRepo.CountBySlug(value, excludeID)
		if err != nil {
			return "", err
		}
		if count > 0 {
			return "", ErrSlugExists
		}
		return value, nil
	}
	return uniqueSlug(buildSlug("", name, "product"), func(candidate string) (bool, error) {
		count, err := s.productRepo.CountBySlug(candidate, excludeID)
		return count > 0, err
	})
}

func (s *ProductService) ensureSKUAvailable(sku *string, excludeID *uint) error {
	if sku == nil {
		return nil
	}
	count, err := s.productRepo.CountBySKU(*sku, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSKUExists
	}
	return nil
}

func applyProductInput(product *models.Product, input ProductInput) {
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.SKU != nil {
		product.SKU = normalizeOptional(input.SKU)
	}
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.NameEn != nil {
		product.NameEn = normalizeOptional(input.NameEn)
	}
	if input.NameZh != nil {
		product.NameZh = normalizeOptional(input.NameZh)
	}
	if input.Description != nil {
		product.Description = normalizeOptional(input.Description)
	}
	if input.DescriptionEn != nil {
		product.DescriptionEn = normalizeOptional(input.DescriptionEn)
	}
	if input.DescriptionZh != nil {
		product.DescriptionZh = normalizeOptional(input.DescriptionZh)
	}
	if input.Price != nil {
		product.Price = models.NewMoneyFromDecimal(*input.Price)
	}
	if input.ClearOriginalPrice {
		product.OriginalPrice = nil
	} else if input.OriginalPrice != nil {
		original := models.NewMoneyFromDecimal(*input.OriginalPrice)
		product.OriginalPrice = &original
	}
	if input.ImageURL != nil {
		product.ImageURL = normalizeOptional(input.ImageURL)
	}
	if input.Images != nil {
		product.Images = compactStrings(*input.Images)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.SalesCount != nil {
		product.SalesCount = *input.SalesCount
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.Tags != nil {
		product.Tags = compactStrings(*input.Tags)
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	}
}

func compactStrings(values []string) models.StringArray {
	result := make(models.StringArray, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func productImageURLs(product *models.Product) []string {
	if product == nil {
		return nil
	}
	urls := make([]string, 0, len(product.Images)+1)
	if product.ImageURL != nil {
		urls = append(urls, *product.ImageURL)
	}
	urls = append(urls, product.Images...)
	return urls
}

// translateUniqueError 将唯一约束冲突映射为业务错误
func translateUniqueError(err, target error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return target
	}
	return err
}
