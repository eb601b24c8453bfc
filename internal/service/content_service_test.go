package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fanxi-showcase/internal/repository"
)

func setupContentServiceTest(t *testing.T) *ContentService {
	t.Helper()
	db := setupServiceTestDB(t)
	return NewContentService(repository.NewContentRepository(db), NewCacheNotifier(nil), 0)
}

func TestGetAboutUsCreatesDefaultOnce(t *testing.T) {
	svc := setupContentServiceTest(t)
	ctx := context.Background()

	first, err := svc.GetAboutUs(ctx)
	if err != nil {
		t.Fatalf("get about us failed: %v", err)
	}
	if first.ID == 0 || first.Title != "关于我们" || first.TitleEn == nil || *first.TitleEn != "About Us" {
		t.Fatalf("unexpected default about us: %+v", first)
	}
	if first.TextColor != "#333333" || first.BackgroundOverlay != "rgba(255, 255, 255, 0.8)" {
		t.Fatalf("unexpected default style: %q %q", first.TextColor, first.BackgroundOverlay)
	}
	second, err := svc.GetAboutUs(ctx)
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("default must be created once, got ids %d and %d", first.ID, second.ID)
	}
	if _, err := svc.CreateAboutUs(ctx, AboutUsInput{Title: strRef("New")}); !errors.Is(err, ErrContentExists) {
		t.Fatalf("expected ErrContentExists, got %v", err)
	}
}

func TestUpdateAboutUsPartial(t *testing.T) {
	svc := setupContentServiceTest(t)
	ctx := context.Background()

	updated, err := svc.UpdateAboutUs(ctx, AboutUsInput{TitleEn: strRef("Who We Are"), TextColor: strRef("#000000")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "关于我们" {
		t.Fatalf("untouched field changed: %q", updated.Title)
	}
	if updated.TitleEn == nil || *updated.TitleEn != "Who We Are" || updated.TextColor != "#000000" {
		t.Fatalf("update not applied: %+v", updated)
	}

	cleared, err := svc.UpdateAboutUs(ctx, AboutUsInput{TitleZh: strRef("")})
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if cleared.TitleZh != nil {
		t.Fatalf("empty string should clear optional field")
	}
}

func TestInactiveAboutUsHiddenPublicly(t *testing.T) {
	svc := setupContentServiceTest(t)
	ctx := context.Background()

	admin, err := svc.UpdateAboutUs(ctx, AboutUsInput{IsActive: boolRef(false)})
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	public, err := svc.GetAboutUs(ctx)
	if err != nil {
		t.Fatalf("public get failed: %v", err)
	}
	if public.ID == admin.ID || !public.IsActive {
		t.Fatalf("public read should fall back to an active default, got %+v", public)
	}
}

func TestFooterInfoDefaultsAndUpdate(t *testing.T) {
	svc := setupContentServiceTest(t)
	ctx := context.Background()

	footer, err := svc.AdminGetFooterInfo()
	if err != nil {
		t.Fatalf("admin get footer failed: %v", err)
	}
	if footer.ContactTitle != "联系我们" || footer.CopyrightText == "" {
		t.Fatalf("unexpected footer defaults: %+v", footer)
	}
	updated, err := svc.UpdateFooterInfo(ctx, FooterInfoInput{ContactEmail: strRef("hi@example.com"), AboutTitle: strRef("   ")})
	if err != nil {
		t.Fatalf("update footer failed: %v", err)
	}
	if updated.ContactEmail == nil || *updated.ContactEmail != "hi@example.com" {
		t.Fatalf("contact email not applied")
	}
	if updated.AboutTitle != footer.AboutTitle {
		t.Fatalf("blank required field must be ignored, got %q", updated.AboutTitle)
	}
}

func TestTopInfoBarCreateConflict(t *testing.T) {
	svc := setupContentServiceTest(t)
	ctx := context.Background()

	created, err := svc.CreateTopInfoBar(ctx, TopInfoBarInput{Phone: strRef("400-000-0000")})
	if err != nil {
		t.Fatalf("create top info failed: %v", err)
	}
	if created.Phone == nil || *created.Phone != "400-000-0000" || !created.IsActive {
		t.Fatalf("unexpected top info: %+v", created)
	}
	if _, err := svc.CreateTopInfoBar(ctx, TopInfoBarInput{}); !errors.Is(err, ErrContentExists) {
		t.Fatalf("expected ErrContentExists, got %v", err)
	}
	got, err := svc.GetTopInfoBar(ctx)
	if err != nil {
		t.Fatalf("get top info failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("public get should return created row")
	}
}
