package service

import (
	"context"
	"time"

	"github.com/fanxi-showcase/internal/cache"
	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"

	"gorm.io/gorm"
)

// SlotInput 精选位创建/更新输入，nil 字段表示不修改
type SlotInput struct {
	ProductID *uint
	Position  *int
	IsActive  *bool
}

// BoardEntry 精选面板上的一个位置
type BoardEntry struct {
	Position           int             `json:"position"`
	SlotID             uint            `json:"slot_id,omitempty"`
	Product            *models.Product `json:"product,omitempty"`
	IntegrityViolation bool            `json:"integrity_violation,omitempty"`
}

// PositionSummary 后台位置占用概览
type PositionSummary struct {
	Position       int
	Occupied       bool
	SlotID         uint
	ProductID      uint
	ProductName    string
	ProductMissing bool
}

// FeaturedSlotService 首页精选位管理服务
type FeaturedSlotService struct {
	featuredRepo repository.FeaturedProductRepository
	productRepo  repository.ProductRepository
	notifier     *CacheNotifier
	boardTTL     time.Duration
}

// NewFeaturedSlotService 创建精选位服务
func NewFeaturedSlotService(
	featuredRepo repository.FeaturedProductRepository,
	productRepo repository.ProductRepository,
	notifier *CacheNotifier,
	boardTTL time.Duration,
) *FeaturedSlotService {
	return &FeaturedSlotService{
		featuredRepo: featuredRepo,
		productRepo:  productRepo,
		notifier:     notifier,
		boardTTL:     boardTTL,
	}
}

func validPosition(position int) bool {
	return position >= constants.FeaturedSlotMinPosition && position <= constants.FeaturedSlotMaxPosition
}

// AssignSlot 创建精选位；产品存在性与位置占用检查和写入在同一事务内完成
func (s *FeaturedSlotService) AssignSlot(ctx context.Context, productID uint, position int, active bool) (*models.FeaturedProduct, error) {
	if !validPosition(position) {
		return nil, ErrInvalidPosition
	}
	slot := &models.FeaturedProduct{ProductID: productID, Position: position, IsActive: active}
	err := s.featuredRepo.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.WithTx(tx).GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		featuredRepo := s.featuredRepo.WithTx(tx)
		if active {
			occupant, err := featuredRepo.FindActiveByPosition(position, nil)
			if err != nil {
				return err
			}
			if occupant != nil {
				return ErrPositionOccupied
			}
		}
		if err := featuredRepo.Create(slot); err != nil {
			return translateUniqueError(err, ErrPositionOccupied)
		}
		slot.Product = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifier.BoardChanged(ctx)
	return slot, nil
}

// UpdateSlot 部分更新精选位，占用检查排除自身
func (s *FeaturedSlotService) UpdateSlot(ctx context.Context, id uint, input SlotInput) (*models.FeaturedProduct, error) {
	if input.Position != nil && !validPosition(*input.Position) {
		return nil, ErrInvalidPosition
	}
	var updated *models.FeaturedProduct
	err := s.featuredRepo.Transaction(func(tx *gorm.DB) error {
		featuredRepo := s.featuredRepo.WithTx(tx)
		slot, err := featuredRepo.GetByID(id)
		if err != nil {
			return err
		}
		if slot == nil {
			return ErrFeaturedNotFound
		}
		if input.ProductID != nil {
			product, err := s.productRepo.WithTx(tx).GetByID(*input.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return ErrProductNotFound
			}
			slot.ProductID = product.ID
			slot.Product = product
		}
		if input.Position != nil {
			slot.Position = *input.Position
		}
		if input.IsActive != nil {
			slot.IsActive = *input.IsActive
		}
		if slot.IsActive {
			occupant, err := featuredRepo.FindActiveByPosition(slot.Position, &slot.ID)
			if err != nil {
				return err
			}
			if occupant != nil {
				return ErrPositionOccupied
			}
		}
		if err := featuredRepo.Update(slot); err != nil {
			return translateUniqueError(err, ErrPositionOccupied)
		}
		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifier.BoardChanged(ctx)
	return updated, nil
}

// DeleteSlot 删除精选位
func (s *FeaturedSlotService) DeleteSlot(ctx context.Context, id uint) error {
	slot, err := s.featuredRepo.GetByID(id)
	if err != nil {
		return err
	}
	if slot == nil {
		return ErrFeaturedNotFound
	}
	if err := s.featuredRepo.Delete(id); err != nil {
		return err
	}
	s.notifier.BoardChanged(ctx)
	return nil
}

// GetSlot 获取精选位
func (s *FeaturedSlotService) GetSlot(id uint) (*models.FeaturedProduct, error) {
	slot, err := s.featuredRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, ErrFeaturedNotFound
	}
	return slot, nil
}

// ListAdmin 全部精选位（含停用）
func (s *FeaturedSlotService) ListAdmin() ([]models.FeaturedProduct, error) {
	return s.featuredRepo.ListAll()
}

// Positions 1-6 号位的占用概览
func (s *FeaturedSlotService) Positions() ([]PositionSummary, error) {
	slots, err := s.featuredRepo.ListAll()
	if err != nil {
		return nil, err
	}
	summaries := make([]PositionSummary, constants.FeaturedSlotCount)
	for i := range summaries {
		summaries[i].Position = constants.FeaturedSlotMinPosition + i
	}
	for _, slot := range slots {
		if !slot.IsActive || !validPosition(slot.Position) {
			continue
		}
		summary := &summaries[slot.Position-constants.FeaturedSlotMinPosition]
		if summary.Occupied {
			continue
		}
		summary.Occupied = true
		summary.SlotID = slot.ID
		summary.ProductID = slot.ProductID
		if slot.Product != nil {
			summary.ProductName = slot.Product.Name
		} else {
			summary.ProductMissing = true
		}
	}
	return summaries, nil
}

// ListBoard 前台精选面板，固定返回 6 个位置
func (s *FeaturedSlotService) ListBoard(ctx context.Context) ([]BoardEntry, error) {
	var cached []BoardEntry
	if hit, err := cache.GetFeaturedBoard(ctx, &cached); err != nil {
		logger.Warnw("featured_board_cache_get_failed", "error", err)
	} else if hit && len(cached) == constants.FeaturedSlotCount {
		return cached, nil
	}

	board, err := s.BuildBoard()
	if err != nil {
		return nil, err
	}
	if err := cache.SetFeaturedBoard(ctx, board, s.boardTTL); err != nil {
		logger.Warnw("featured_board_cache_set_failed", "error", err)
	}
	return board, nil
}

// WarmBoard 重建精选面板并写入缓存
func (s *FeaturedSlotService) WarmBoard(ctx context.Context) error {
	if !cache.Enabled() {
		return nil
	}
	board, err := s.BuildBoard()
	if err != nil {
		return err
	}
	return cache.SetFeaturedBoard(ctx, board, s.boardTTL)
}

// BuildBoard 从数据库构建精选面板（不读缓存）
func (s *FeaturedSlotService) BuildBoard() ([]BoardEntry, error) {
	slots, err := s.featuredRepo.ListActive()
	if err != nil {
		return nil, err
	}

	byPosition := make(map[int][]models.FeaturedProduct, constants.FeaturedSlotCount)
	productIDs := make([]uint, 0, len(slots))
	for _, slot := range slots {
		if !validPosition(slot.Position) {
			continue
		}
		byPosition[slot.Position] = append(byPosition[slot.Position], slot)
		productIDs = append(productIDs, slot.ProductID)
	}

	products, err := s.productRepo.ListByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	productByID := make(map[uint]*models.Product, len(products))
	for i := range products {
		if products[i].IsActive {
			productByID[products[i].ID] = &products[i]
		}
	}

	board := make([]BoardEntry, 0, constants.FeaturedSlotCount)
	for position := constants.FeaturedSlotMinPosition; position <= constants.FeaturedSlotMaxPosition; position++ {
		entry := BoardEntry{Position: position}
		occupants := byPosition[position]
		switch {
		case len(occupants) > 1:
			entry.IntegrityViolation = true
			ids := make([]uint, 0, len(occupants))
			for _, slot := range occupants {
				ids = append(ids, slot.ID)
			}
			logger.Errorw("featured_slot_integrity_violation", "position", position, "slot_ids", ids)
		case len(occupants) == 1:
			entry.SlotID = occupants[0].ID
			entry.Product = productByID[occupants[0].ProductID]
		}
		board = append(board, entry)
	}
	return board, nil
}
