package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fanxi-showcase/internal/models"
)

func TestHelpersAreNoopWhenDisabled(t *testing.T) {
	ctx := context.Background()
	if Enabled() {
		t.Fatalf("cache should be disabled by default")
	}
	if err := SetFeaturedBoard(ctx, []int{1}, time.Minute); err != nil {
		t.Fatalf("set should be noop, got %v", err)
	}
	var dest []int
	hit, err := GetFeaturedBoard(ctx, &dest)
	if err != nil || hit {
		t.Fatalf("get should miss without error, hit=%v err=%v", hit, err)
	}
	if err := InvalidateContent(ctx, ContentAboutUs); err != nil {
		t.Fatalf("invalidate should be noop, got %v", err)
	}
	enabled, err := Ping(ctx)
	if enabled || err != nil {
		t.Fatalf("ping should report disabled, enabled=%v err=%v", enabled, err)
	}
}

func TestContentKeys(t *testing.T) {
	seen := map[string]bool{}
	for _, kind := range ContentKinds {
		key := ContentKey(kind)
		if seen[key] {
			t.Fatalf("duplicate content key: %s", key)
		}
		seen[key] = true
	}
	if got := ContentKey(ContentFooterInfo); got != "content:footer_info" {
		t.Fatalf("unexpected content key: %s", got)
	}
}

func TestBuildAdminAuthState(t *testing.T) {
	now := time.Unix(1700000000, 0)
	state := BuildAdminAuthState(&models.Admin{ID: 7, Username: "ops", TokenVersion: 3, TokenInvalidBefore: &now, IsActive: true})
	if state.AdminID != 7 || state.TokenVersion != 3 || state.TokenInvalidBefore != now.Unix() || !state.IsActive || state.IsSuperuser {
		t.Fatalf("unexpected auth state: %+v", state)
	}
	if BuildAdminAuthState(nil) != nil {
		t.Fatalf("nil admin should produce nil state")
	}
}

func TestAdminAuthStateCheck(t *testing.T) {
	invalidBefore := time.Unix(1700000000, 0)
	state := &AdminAuthState{AdminID: 1, TokenVersion: 2, TokenInvalidBefore: invalidBefore.Unix(), IsActive: true}

	if err := state.Check(2, invalidBefore.Add(time.Second)); err != nil {
		t.Fatalf("fresh token should pass, got %v", err)
	}
	if err := state.Check(1, invalidBefore.Add(time.Second)); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("old version want ErrTokenRevoked got %v", err)
	}
	if err := state.Check(2, invalidBefore.Add(-time.Second)); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("token issued before cutoff want ErrTokenRevoked got %v", err)
	}
	state.IsActive = false
	if err := state.Check(2, invalidBefore.Add(time.Second)); !errors.Is(err, ErrAdminInactive) {
		t.Fatalf("inactive admin want ErrAdminInactive got %v", err)
	}
}

func TestLoadAdminAuthStateFallsBackToLoader(t *testing.T) {
	calls := 0
	state, err := LoadAdminAuthState(context.Background(), 5, func() (*models.Admin, error) {
		calls++
		return &models.Admin{ID: 5, Username: "ops", IsActive: true}, nil
	})
	if err != nil || state == nil || state.Username != "ops" || calls != 1 {
		t.Fatalf("unexpected load result: state=%+v err=%v calls=%d", state, err, calls)
	}

	missing, err := LoadAdminAuthState(context.Background(), 6, func() (*models.Admin, error) { return nil, nil })
	if err != nil || missing != nil {
		t.Fatalf("missing admin should yield nil state, got %+v err=%v", missing, err)
	}
}

func TestHitWindowDisabled(t *testing.T) {
	hit, enabled, err := HitWindow(context.Background(), RateKey("admin_login", "ops|1.2.3.4"), time.Minute)
	if enabled || err != nil || hit.Count != 0 {
		t.Fatalf("disabled redis should skip counting, hit=%+v enabled=%v err=%v", hit, enabled, err)
	}
	if got := RateKey("admin_login", "ops|1.2.3.4"); got != "rate:admin_login:ops|1.2.3.4" {
		t.Fatalf("unexpected rate key: %s", got)
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		input interface{}
		want  int64
		ok    bool
	}{
		{input: int64(10), want: 10, ok: true},
		{input: int(11), want: 11, ok: true},
		{input: float64(13.9), want: 13, ok: true},
		{input: "bad", want: 0, ok: false},
	}
	for _, tc := range cases {
		got, ok := toInt64(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("toInt64(%v) = %d,%v want %d,%v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
