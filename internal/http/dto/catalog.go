package dto

import (
	"time"

	"github.com/fanxi-showcase/internal/i18n"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/service"
)

// Category 分类输出
type Category struct {
	ID            uint      `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	NameEn        *string   `json:"name_en"`
	NameZh        *string   `json:"name_zh"`
	Description   string    `json:"description"`
	DescriptionEn *string   `json:"description_en"`
	DescriptionZh *string   `json:"description_zh"`
	IconURL       *string   `json:"icon_url"`
	SortOrder     int       `json:"sort_order"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewCategory 序列化分类，name/description 按语言解析
func NewCategory(c *models.Category, lang i18n.Lang) *Category {
	if c == nil {
		return nil
	}
	return &Category{
		ID:            c.ID,
		Slug:          c.Slug,
		Name:          i18n.Resolve(c.Name, c.NameEn, c.NameZh, lang),
		NameEn:        c.NameEn,
		NameZh:        c.NameZh,
		Description:   i18n.NewText(c.Description, c.DescriptionEn, c.DescriptionZh).Resolve(lang),
		DescriptionEn: c.DescriptionEn,
		DescriptionZh: c.DescriptionZh,
		IconURL:       c.IconURL,
		SortOrder:     c.SortOrder,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// NewCategories 批量序列化分类
func NewCategories(items []models.Category, lang i18n.Lang) []*Category {
	out := make([]*Category, 0, len(items))
	for i := range items {
		out = append(out, NewCategory(&items[i], lang))
	}
	return out
}

// Product 产品输出
type Product struct {
	ID            uint          `json:"id"`
	CategoryID    uint          `json:"category_id"`
	Slug          string        `json:"slug"`
	SKU           *string       `json:"sku"`
	Name          string        `json:"name"`
	NameEn        *string       `json:"name_en"`
	NameZh        *string       `json:"name_zh"`
	Description   string        `json:"description"`
	DescriptionEn *string       `json:"description_en"`
	DescriptionZh *string       `json:"description_zh"`
	Price         models.Money  `json:"price"`
	OriginalPrice *models.Money `json:"original_price"`
	ImageURL      *string       `json:"image_url"`
	Images        []string      `json:"images"`
	Stock         int           `json:"stock"`
	StockQuantity int           `json:"stock_quantity"`
	SalesCount    int           `json:"sales_count"`
	ViewCount     int           `json:"view_count"`
	Rating        float64       `json:"rating"`
	Tags          []string      `json:"tags"`
	IsFeatured    bool          `json:"is_featured"`
	IsActive      bool          `json:"is_active"`
	SortOrder     int           `json:"sort_order"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Category      *Category     `json:"category"`
}

// NewProduct 序列化产品，附带本地化后的分类
func NewProduct(p *models.Product, lang i18n.Lang) *Product {
	if p == nil {
		return nil
	}
	return &Product{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Slug:          p.Slug,
		SKU:           p.SKU,
		Name:          i18n.Resolve(p.Name, p.NameEn, p.NameZh, lang),
		NameEn:        p.NameEn,
		NameZh:        p.NameZh,
		Description:   i18n.NewText(p.Description, p.DescriptionEn, p.DescriptionZh).Resolve(lang),
		DescriptionEn: p.DescriptionEn,
		DescriptionZh: p.DescriptionZh,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		ImageURL:      p.ImageURL,
		Images:        nonNilStrings(p.Images),
		Stock:         p.Stock,
		StockQuantity: p.Stock,
		SalesCount:    p.SalesCount,
		ViewCount:     p.ViewCount,
		Rating:        p.Rating,
		Tags:          nonNilStrings(p.Tags),
		IsFeatured:    p.IsFeatured,
		IsActive:      p.IsActive,
		SortOrder:     p.SortOrder,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Category:      NewCategory(p.Category, lang),
	}
}

// NewProducts 批量序列化产品
func NewProducts(items []models.Product, lang i18n.Lang) []*Product {
	out := make([]*Product, 0, len(items))
	for i := range items {
		out = append(out, NewProduct(&items[i], lang))
	}
	return out
}

// BoardEntry 精选面板位置
type BoardEntry struct {
	Position           int      `json:"position"`
	SlotID             uint     `json:"slot_id,omitempty"`
	Product            *Product `json:"product"`
	IntegrityViolation bool     `json:"integrity_violation,omitempty"`
}

// NewBoard 序列化精选面板
func NewBoard(entries []service.BoardEntry, lang i18n.Lang) []BoardEntry {
	out := make([]BoardEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, BoardEntry{
			Position:           entry.Position,
			SlotID:             entry.SlotID,
			Product:            NewProduct(entry.Product, lang),
			IntegrityViolation: entry.IntegrityViolation,
		})
	}
	return out
}

// FeaturedSlot 后台精选位
type FeaturedSlot struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"product_id"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Product   *Product  `json:"product"`
}

// NewFeaturedSlot 序列化精选位
func NewFeaturedSlot(slot *models.FeaturedProduct, lang i18n.Lang) *FeaturedSlot {
	if slot == nil {
		return nil
	}
	return &FeaturedSlot{
		ID:        slot.ID,
		ProductID: slot.ProductID,
		Position:  slot.Position,
		IsActive:  slot.IsActive,
		CreatedAt: slot.CreatedAt,
		UpdatedAt: slot.UpdatedAt,
		Product:   NewProduct(slot.Product, lang),
	}
}

// NewFeaturedSlots 批量序列化精选位
func NewFeaturedSlots(items []models.FeaturedProduct, lang i18n.Lang) []*FeaturedSlot {
	out := make([]*FeaturedSlot, 0, len(items))
	for i := range items {
		out = append(out, NewFeaturedSlot(&items[i], lang))
	}
	return out
}

// Position 位置占用概览
type Position struct {
	Position    int    `json:"position"`
	Occupied    bool   `json:"occupied"`
	SlotID      uint   `json:"slot_id,omitempty"`
	ProductID   uint   `json:"product_id,omitempty"`
	ProductName string `json:"product_name"`
}

// NewPositions 序列化位置占用，产品缺失时显示提示文案
func NewPositions(items []service.PositionSummary, lang i18n.Lang) []Position {
	out := make([]Position, 0, len(items))
	for _, item := range items {
		name := item.ProductName
		switch {
		case item.ProductMissing:
			name = i18n.T(lang, "featured.product_missing")
		case !item.Occupied:
			name = i18n.T(lang, "featured.position_available")
		}
		out = append(out, Position{
			Position:    item.Position,
			Occupied:    item.Occupied,
			SlotID:      item.SlotID,
			ProductID:   item.ProductID,
			ProductName: name,
		})
	}
	return out
}

func nonNilStrings(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
