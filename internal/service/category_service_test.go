package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fanxi-showcase/internal/repository"
)

func TestCategoryDeleteGuard(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db), NewCacheNotifier(nil))
	ctx := context.Background()

	category, err := svc.Create(ctx, CategoryInput{Name: strRef("Garden Tools")})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if category.Slug != "garden-tools" {
		t.Fatalf("slug want garden-tools got %q", category.Slug)
	}
	createServiceTestProduct(t, db, category.ID, "rake", true)
	createServiceTestProduct(t, db, category.ID, "shovel", false)

	err = svc.Delete(ctx, category.ID)
	var inUse CategoryInUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("expected CategoryInUseError, got %v", err)
	}
	if inUse.Count != 2 {
		t.Fatalf("in-use count want 2 got %d", inUse.Count)
	}
	if !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected errors.Is ErrCategoryInUse")
	}
	if _, err := svc.GetAdmin(category.ID); err != nil {
		t.Fatalf("category must survive guarded delete: %v", err)
	}

	empty, err := svc.Create(ctx, CategoryInput{Name: strRef("Empty")})
	if err != nil {
		t.Fatalf("create empty category failed: %v", err)
	}
	if err := svc.Delete(ctx, empty.ID); err != nil {
		t.Fatalf("delete empty category failed: %v", err)
	}
	if err := svc.Delete(ctx, empty.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategorySlugUniqueness(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db), NewCacheNotifier(nil))
	ctx := context.Background()

	first, err := svc.Create(ctx, CategoryInput{Name: strRef("Lamps")})
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	second, err := svc.Create(ctx, CategoryInput{Name: strRef("Lamps")})
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}
	if first.Slug == second.Slug {
		t.Fatalf("derived slugs must be unique, both %q", first.Slug)
	}
	if _, err := svc.Create(ctx, CategoryInput{Name: strRef("Other"), Slug: strRef(first.Slug)}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestCategoryListPublicOrdering(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db), NewCacheNotifier(nil))
	ctx := context.Background()

	if _, err := svc.Create(ctx, CategoryInput{Name: strRef("B"), SortOrder: intRef(2)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, CategoryInput{Name: strRef("A"), SortOrder: intRef(1)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	hidden, err := svc.Create(ctx, CategoryInput{Name: strRef("Hidden"), IsActive: boolRef(false)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := svc.ListPublic()
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if len(list) != 2 || list[0].Name != "A" || list[1].Name != "B" {
		t.Fatalf("unexpected public order: %+v", list)
	}
	if _, err := svc.GetPublic(hidden.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("inactive category must be hidden publicly, got %v", err)
	}
}
