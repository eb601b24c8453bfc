package main

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/fanxi-showcase/internal/app"
	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/provider"
	"github.com/fanxi-showcase/internal/service"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed_data.yaml
var seedData []byte

type seedFile struct {
	Categories       []seedCategory   `yaml:"categories"`
	Products         []seedProduct    `yaml:"products"`
	BackgroundImages []seedBackground `yaml:"background_images"`
	AboutUs          *seedAboutUs     `yaml:"about_us"`
	TopInfo          *seedTopInfo     `yaml:"top_info"`
}

type seedCategory struct {
	Slug          string  `yaml:"slug"`
	Name          string  `yaml:"name"`
	NameEn        *string `yaml:"name_en"`
	NameZh        *string `yaml:"name_zh"`
	Description   *string `yaml:"description"`
	DescriptionEn *string `yaml:"description_en"`
	SortOrder     int     `yaml:"sort_order"`
}

type seedProduct struct {
	Slug             string   `yaml:"slug"`
	Category         string   `yaml:"category"`
	SKU              string   `yaml:"sku"`
	Name             string   `yaml:"name"`
	NameEn           *string  `yaml:"name_en"`
	Description      *string  `yaml:"description"`
	DescriptionEn    *string  `yaml:"description_en"`
	Price            string   `yaml:"price"`
	OriginalPrice    string   `yaml:"original_price"`
	Stock            int      `yaml:"stock"`
	Rating           float64  `yaml:"rating"`
	Tags             []string `yaml:"tags"`
	ImageURL         *string  `yaml:"image_url"`
	SortOrder        int      `yaml:"sort_order"`
	FeaturedPosition int      `yaml:"featured_position"`
}

type seedBackground struct {
	ImageURL       string  `yaml:"image_url"`
	Title          *string `yaml:"title"`
	TitleEn        *string `yaml:"title_en"`
	Subtitle       *string `yaml:"subtitle"`
	SubtitleEn     *string `yaml:"subtitle_en"`
	ButtonText     *string `yaml:"button_text"`
	ButtonTextEn   *string `yaml:"button_text_en"`
	ButtonLink     *string `yaml:"button_link"`
	SortOrder      int     `yaml:"sort_order"`
	ShowContentBox bool    `yaml:"show_content_box"`
}

type seedAboutUs struct {
	Title     string  `yaml:"title"`
	TitleEn   *string `yaml:"title_en"`
	Content   string  `yaml:"content"`
	ContentEn *string `yaml:"content_en"`
}

type seedTopInfo struct {
	Phone *string `yaml:"phone"`
	Email *string `yaml:"email"`
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := app.InitDatabase(cfg); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	if err := models.Migrate(models.DB); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	var data seedFile
	if err := yaml.Unmarshal(seedData, &data); err != nil {
		stdLog.Fatalf("Failed to parse seed data: %v", err)
	}

	container := provider.NewContainer(cfg)
	defer container.Close()
	ctx := context.Background()

	categoryIDs := seedCategories(ctx, container, data.Categories)
	seedProducts(ctx, container, data.Products, categoryIDs)
	seedBackgrounds(container, data.BackgroundImages)
	seedContent(ctx, container, data)

	stdLog.Printf("Seed completed")
}

func seedCategories(ctx context.Context, c *provider.Container, items []seedCategory) map[string]uint {
	ids := make(map[string]uint, len(items))
	for _, item := range items {
		var existing models.Category
		if err := models.DB.Where("slug = ?", item.Slug).Limit(1).Find(&existing).Error; err == nil && existing.ID != 0 {
			logger.Infow("seed_category_exists", "slug", item.Slug)
			ids[item.Slug] = existing.ID
			continue
		}
		active := true
		slug, name, sortOrder := item.Slug, item.Name, item.SortOrder
		created, err := c.CategoryService.Create(ctx, service.CategoryInput{
			Slug:          &slug,
			Name:          &name,
			NameEn:        item.NameEn,
			NameZh:        item.NameZh,
			Description:   item.Description,
			DescriptionEn: item.DescriptionEn,
			SortOrder:     &sortOrder,
			IsActive:      &active,
		})
		if err != nil {
			logger.Errorw("seed_category_failed", "slug", item.Slug, "error", err)
			continue
		}
		logger.Infow("seed_category_created", "slug", created.Slug, "id", created.ID)
		ids[item.Slug] = created.ID
	}
	return ids
}

func seedProducts(ctx context.Context, c *provider.Container, items []seedProduct, categoryIDs map[string]uint) {
	for _, item := range items {
		categoryID, ok := categoryIDs[item.Category]
		if !ok {
			logger.Warnw("seed_product_category_missing", "slug", item.Slug, "category", item.Category)
			continue
		}
		existing, err := c.ProductRepo.GetBySlug(item.Slug, false)
		if err != nil {
			logger.Errorw("seed_product_lookup_failed", "slug", item.Slug, "error", err)
			continue
		}
		if existing != nil {
			logger.Infow("seed_product_exists", "slug", item.Slug)
			continue
		}

		input, err := item.toInput(categoryID)
		if err != nil {
			logger.Errorw("seed_product_invalid", "slug", item.Slug, "error", err)
			continue
		}
		product, err := c.ProductService.Create(ctx, input)
		if err != nil {
			logger.Errorw("seed_product_failed", "slug", item.Slug, "error", err)
			continue
		}
		logger.Infow("seed_product_created", "slug", product.Slug, "id", product.ID)

		if item.FeaturedPosition == 0 {
			continue
		}
		occupied, err := c.FeaturedProductRepo.FindActiveByPosition(item.FeaturedPosition, nil)
		if err != nil || occupied != nil {
			logger.Infow("seed_featured_skipped", "position", item.FeaturedPosition)
			continue
		}
		if _, err := c.FeaturedSlotService.AssignSlot(ctx, product.ID, item.FeaturedPosition, true); err != nil {
			logger.Errorw("seed_featured_failed", "position", item.FeaturedPosition, "error", err)
		}
	}
}

func (p seedProduct) toInput(categoryID uint) (service.ProductInput, error) {
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return service.ProductInput{}, fmt.Errorf("price: %w", err)
	}
	input := service.ProductInput{
		CategoryID:    &categoryID,
		Slug:          &p.Slug,
		Name:          &p.Name,
		NameEn:        p.NameEn,
		Description:   p.Description,
		DescriptionEn: p.DescriptionEn,
		Price:         &price,
		ImageURL:      p.ImageURL,
		Stock:         &p.Stock,
		Rating:        &p.Rating,
		Tags:          &p.Tags,
		SortOrder:     &p.SortOrder,
	}
	if p.SKU != "" {
		input.SKU = &p.SKU
	}
	if p.OriginalPrice != "" {
		original, err := decimal.NewFromString(p.OriginalPrice)
		if err != nil {
			return service.ProductInput{}, fmt.Errorf("original_price: %w", err)
		}
		input.OriginalPrice = &original
	}
	active := true
	input.IsActive = &active
	return input, nil
}

func seedBackgrounds(c *provider.Container, items []seedBackground) {
	for _, item := range items {
		var count int64
		if err := models.DB.Model(&models.BackgroundImage{}).Where("image_url = ?", item.ImageURL).Count(&count).Error; err == nil && count > 0 {
			logger.Infow("seed_background_exists", "image_url", item.ImageURL)
			continue
		}
		active := true
		imageURL, sortOrder, showBox := item.ImageURL, item.SortOrder, item.ShowContentBox
		if _, err := c.BackgroundImageService.Create(service.BackgroundImageInput{
			Title:          item.Title,
			TitleEn:        item.TitleEn,
			Subtitle:       item.Subtitle,
			SubtitleEn:     item.SubtitleEn,
			ImageURL:       &imageURL,
			ButtonText:     item.ButtonText,
			ButtonTextEn:   item.ButtonTextEn,
			ButtonLink:     item.ButtonLink,
			SortOrder:      &sortOrder,
			IsActive:       &active,
			ShowContentBox: &showBox,
		}); err != nil {
			logger.Errorw("seed_background_failed", "image_url", item.ImageURL, "error", err)
		}
	}
}

func seedContent(ctx context.Context, c *provider.Container, data seedFile) {
	if data.AboutUs != nil {
		if existing, err := c.ContentRepo.FirstAboutUs(false); err == nil && existing == nil {
			title, content := data.AboutUs.Title, data.AboutUs.Content
			if _, err := c.ContentService.CreateAboutUs(ctx, service.AboutUsInput{
				Title:     &title,
				TitleEn:   data.AboutUs.TitleEn,
				Content:   &content,
				ContentEn: data.AboutUs.ContentEn,
			}); err != nil {
				logger.Errorw("seed_about_us_failed", "error", err)
			}
		}
	}
	if data.TopInfo != nil {
		if existing, err := c.ContentRepo.FirstTopInfoBar(false); err == nil && existing == nil {
			if _, err := c.ContentService.CreateTopInfoBar(ctx, service.TopInfoBarInput{
				Phone: data.TopInfo.Phone,
				Email: data.TopInfo.Email,
			}); err != nil {
				logger.Errorw("seed_top_info_failed", "error", err)
			}
		}
	}
	// 页脚使用默认内容
	if _, err := c.ContentService.GetFooterInfo(ctx); err != nil {
		logger.Errorw("seed_footer_info_failed", "error", err)
	}
}
