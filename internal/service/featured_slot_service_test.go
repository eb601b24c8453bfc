package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"

	"gorm.io/gorm"
)

func setupFeaturedSlotServiceTest(t *testing.T) (*FeaturedSlotService, *gorm.DB, *models.Category) {
	t.Helper()
	db := setupServiceTestDB(t)
	category := createServiceTestCategory(t, db, "featured")
	svc := NewFeaturedSlotService(
		repository.NewFeaturedProductRepository(db),
		repository.NewProductRepository(db),
		NewCacheNotifier(nil),
		0,
	)
	return svc, db, category
}

func TestAssignSlotRejectsInvalidPosition(t *testing.T) {
	svc, db, category := setupFeaturedSlotServiceTest(t)
	product := createServiceTestProduct(t, db, category.ID, "p1", true)

	for _, position := range []int{0, 7, -1} {
		if _, err := svc.AssignSlot(context.Background(), product.ID, position, true); !errors.Is(err, ErrInvalidPosition) {
			t.Fatalf("position %d: expected ErrInvalidPosition, got %v", position, err)
		}
	}
}

func TestAssignSlotRejectsMissingProduct(t *testing.T) {
	svc, _, _ := setupFeaturedSlotServiceTest(t)
	if _, err := svc.AssignSlot(context.Background(), 999, 1, true); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAssignSlotRejectsOccupiedPosition(t *testing.T) {
	svc, db, category := setupFeaturedSlotServiceTest(t)
	p1 := createServiceTestProduct(t, db, category.ID, "p1", true)
	p2 := createServiceTestProduct(t, db, category.ID, "p2", true)

	if _, err := svc.AssignSlot(context.Background(), p1.ID, 2, true); err != nil {
		t.Fatalf("assign first slot failed: %v", err)
	}
	if _, err := svc.AssignSlot(context.Background(), p2.ID, 2, true); !errors.Is(err, ErrPositionOccupied) {
		t.Fatalf("expected ErrPositionOccupied, got %v", err)
	}
	if _, err := svc.AssignSlot(context.Background(), p2.ID, 2, false); err != nil {
		t.Fatalf("inactive slot on occupied position should be allowed: %v", err)
	}
}

func TestUpdateSlotExcludesSelfAndDetectsConflict(t *testing.T) {
	svc, db, category := setupFeaturedSlotServiceTest(t)
	p1 := createServiceTestProduct(t, db, category.ID, "p1", true)
	p2 := createServiceTestProduct(t, db, category.ID, "p2", true)

	slotA, err := svc.AssignSlot(context.Background(), p1.ID, 1, true)
	if err != nil {
		t.Fatalf("assign slot A failed: %v", err)
	}
	slotB, err := svc.AssignSlot(context.Background(), p2.ID, 2, true)
	if err != nil {
		t.Fatalf("assign slot B failed: %v", err)
	}

	if _, err := svc.UpdateSlot(context.Background(), slotA.ID, SlotInput{Position: intRef(1), ProductID: uintRef(p2.ID)}); err != nil {
		t.Fatalf("re-save on own position should succeed: %v", err)
	}
	if _, err := svc.UpdateSlot(context.Background(), slotB.ID, SlotInput{Position: intRef(1)}); !errors.Is(err, ErrPositionOccupied) {
		t.Fatalf("expected ErrPositionOccupied, got %v", err)
	}
	if _, err := svc.UpdateSlot(context.Background(), slotB.ID, SlotInput{Position: intRef(9)}); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
	if _, err := svc.UpdateSlot(context.Background(), 999, SlotInput{IsActive: boolRef(false)}); !errors.Is(err, ErrFeaturedNotFound) {
		t.Fatalf("expected ErrFeaturedNotFound, got %v", err)
	}

	if _, err := svc.UpdateSlot(context.Background(), slotA.ID, SlotInput{IsActive: boolRef(false)}); err != nil {
		t.Fatalf("deactivate slot A failed: %v", err)
	}
	if _, err := svc.UpdateSlot(context.Background(), slotB.ID, SlotInput{Position: intRef(1)}); err != nil {
		t.Fatalf("move slot B onto freed position failed: %v", err)
	}
}

func TestBuildBoardAlwaysHasSixEntries(t *testing.T) {
	svc, db, category := setupFeaturedSlotServiceTest(t)
	p1 := createServiceTestProduct(t, db, category.ID, "p1", true)
	hidden := createServiceTestProduct(t, db, category.ID, "hidden", false)

	if _, err := svc.AssignSlot(context.Background(), p1.ID, 3, true); err != nil {
		t.Fatalf("assign slot failed: %v", err)
	}
	if _, err := svc.AssignSlot(context.Background(), hidden.ID, 5, true); err != nil {
		t.Fatalf("assign hidden slot failed: %v", err)
	}

	board, err := svc.ListBoard(context.Background())
	if err != nil {
		t.Fatalf("list board failed: %v", err)
	}
	if len(board) != 6 {
		t.Fatalf("board length want 6, got %d", len(board))
	}
	for i, entry := range board {
		if entry.Position != i+1 {
			t.Fatalf("entry %d position want %d got %d", i, i+1, entry.Position)
		}
	}
	if board[2].Product == nil || board[2].Product.ID != p1.ID {
		t.Fatalf("position 3 should hold p1, got %+v", board[2])
	}
	if board[4].Product != nil {
		t.Fatalf("inactive product must not appear on board")
	}
	if board[0].Product != nil || board[0].SlotID != 0 {
		t.Fatalf("position 1 should be empty, got %+v", board[0])
	}
}

func TestBuildBoardFlagsDuplicateActiveSlots(t *testing.T) {
	svc, db, category := setupFeaturedSlotServiceTest(t)
	p1 := createServiceTestProduct(t, db, category.ID, "p1", true)
	p2 := createServiceTestProduct(t, db, category.ID, "p2", true)

	if err := db.Exec("DROP INDEX IF EXISTS idx_featured_active_position").Error; err != nil {
		t.Fatalf("drop index failed: %v", err)
	}
	for _, productID := range []uint{p1.ID, p2.ID} {
		slot := &models.FeaturedProduct{ProductID: productID, Position: 4, IsActive: true}
		if err := db.Omit("Product").Create(slot).Error; err != nil {
			t.Fatalf("create duplicate slot failed: %v", err)
		}
	}

	board, err := svc.BuildBoard()
	if err != nil {
		t.Fatalf("build board failed: %v", err)
	}
	entry := board[3]
	if !entry.IntegrityViolation {
		t.Fatalf("expected integrity violation flag on position 4")
	}
	if entry.Product != nil {
		t.Fatalf("violating position must not expose a product")
	}
}

func TestBuildBoardDegradesSlotWithDeletedProduct(t *testing.T) {
	svc, db, category := setupFeaturedSlotServiceTest(t)
	kept := createServiceTestProduct(t, db, category.ID, "kept", true)
	gone := createServiceTestProduct(t, db, category.ID, "gone", true)

	if _, err := svc.AssignSlot(context.Background(), kept.ID, 1, true); err != nil {
		t.Fatalf("assign kept slot failed: %v", err)
	}
	goneSlot, err := svc.AssignSlot(context.Background(), gone.ID, 2, true)
	if err != nil {
		t.Fatalf("assign gone slot failed: %v", err)
	}
	// 绕过级联直接删除产品行
	if err := db.Exec("DELETE FROM products WHERE id = ?", gone.ID).Error; err != nil {
		t.Fatalf("raw delete product failed: %v", err)
	}

	board, err := svc.BuildBoard()
	if err != nil {
		t.Fatalf("build board failed: %v", err)
	}
	if len(board) != 6 {
		t.Fatalf("board length want 6, got %d", len(board))
	}
	if board[0].Product == nil || board[0].Product.ID != kept.ID {
		t.Fatalf("position 1 should still hold kept product, got %+v", board[0])
	}
	if board[1].SlotID != goneSlot.ID || board[1].Product != nil || board[1].IntegrityViolation {
		t.Fatalf("position 2 should keep slot %d without product, got %+v", goneSlot.ID, board[1])
	}
	for _, entry := range board[2:] {
		if entry.Product != nil || entry.SlotID != 0 {
			t.Fatalf("position %d should be empty, got %+v", entry.Position, entry)
		}
	}
}

func TestAssignSlotConcurrentSamePosition(t *testing.T) {
	db := openFileServiceTestDB(t, 5000)
	category := createServiceTestCategory(t, db, "featured")
	svc := NewFeaturedSlotService(
		repository.NewFeaturedProductRepository(db),
		repository.NewProductRepository(db),
		NewCacheNotifier(nil),
		0,
	)

	const workers = 4
	products := make([]*models.Product, workers)
	for i := range products {
		products[i] = createServiceTestProduct(t, db, category.ID, fmt.Sprintf("contender-%d", i), true)
	}

	start := make(chan struct{})
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.AssignSlot(context.Background(), products[i].ID, 3, true)
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for i, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrPositionOccupied):
		default:
			t.Fatalf("worker %d: expected nil or ErrPositionOccupied, got %v", i, err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("exactly one assignment should win, got %d", succeeded)
	}

	var active int64
	if err := db.Model(&models.FeaturedProduct{}).Where("position = ? AND is_active = ?", 3, true).Count(&active).Error; err != nil {
		t.Fatalf("count active slots failed: %v", err)
	}
	if active != 1 {
		t.Fatalf("active slots at position 3 want 1 got %d", active)
	}
}

func TestPositionsSummary(t *testing.T) {
	svc, db, category := setupFeaturedSlotServiceTest(t)
	p1 := createServiceTestProduct(t, db, category.ID, "p1", true)
	if _, err := svc.AssignSlot(context.Background(), p1.ID, 6, true); err != nil {
		t.Fatalf("assign slot failed: %v", err)
	}

	summaries, err := svc.Positions()
	if err != nil {
		t.Fatalf("positions failed: %v", err)
	}
	if len(summaries) != 6 {
		t.Fatalf("summaries want 6 got %d", len(summaries))
	}
	last := summaries[5]
	if !last.Occupied || last.ProductID != p1.ID || last.ProductName != "p1" {
		t.Fatalf("unexpected position 6 summary: %+v", last)
	}
	if summaries[0].Occupied {
		t.Fatalf("position 1 should be free")
	}
}

func TestDeleteSlot(t *testing.T) {
	svc, db, category := setupFeaturedSlotServiceTest(t)
	p1 := createServiceTestProduct(t, db, category.ID, "p1", true)
	slot, err := svc.AssignSlot(context.Background(), p1.ID, 1, true)
	if err != nil {
		t.Fatalf("assign slot failed: %v", err)
	}
	if err := svc.DeleteSlot(context.Background(), slot.ID); err != nil {
		t.Fatalf("delete slot failed: %v", err)
	}
	if err := svc.DeleteSlot(context.Background(), slot.ID); !errors.Is(err, ErrFeaturedNotFound) {
		t.Fatalf("expected ErrFeaturedNotFound, got %v", err)
	}
	if _, err := svc.AssignSlot(context.Background(), p1.ID, 1, true); err != nil {
		t.Fatalf("position should be free after delete: %v", err)
	}
}
