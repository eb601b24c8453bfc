package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"

	"gorm.io/gorm"
)

type recordingRoleAssigner struct {
	mu      sync.Mutex
	roles   map[uint][]string
	cleared []uint
}

func (r *recordingRoleAssigner) SetAdminRoles(adminID uint, roles []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.roles == nil {
		r.roles = map[uint][]string{}
	}
	r.roles[adminID] = roles
	return nil
}

func (r *recordingRoleAssigner) ClearAdmin(adminID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.roles, adminID)
	r.cleared = append(r.cleared, adminID)
	return nil
}

func setupAdminAccountServiceTest(t *testing.T) (*AdminAccountService, *recordingRoleAssigner, *gorm.DB) {
	t.Helper()
	db := setupServiceTestDB(t)
	repo := repository.NewAdminRepository(db)
	roles := &recordingRoleAssigner{}
	return NewAdminAccountService(repo, NewAuthService(testConfig(), repo), roles), roles, db
}

func TestAdminAccountSuperuserOnlyOperations(t *testing.T) {
	svc, _, db := setupAdminAccountServiceTest(t)
	editor := createServiceTestAdmin(t, db, "editor", "secret123", false, true)
	actor := AdminActor{ID: editor.ID}
	ctx := context.Background()

	if _, _, err := svc.List(actor, "", 1, 20); !errors.Is(err, ErrSuperuserRequired) {
		t.Fatalf("list: expected ErrSuperuserRequired, got %v", err)
	}
	if _, err := svc.Create(ctx, actor, AdminCreateInput{Username: "x", Password: "secret123"}); !errors.Is(err, ErrSuperuserRequired) {
		t.Fatalf("create: expected ErrSuperuserRequired, got %v", err)
	}
	if err := svc.Delete(ctx, actor, 99); !errors.Is(err, ErrSuperuserRequired) {
		t.Fatalf("delete: expected ErrSuperuserRequired, got %v", err)
	}
}

func TestAdminAccountCreateRules(t *testing.T) {
	svc, roles, db := setupAdminAccountServiceTest(t)
	root := createServiceTestAdmin(t, db, "root", "secret123", true, true)
	actor := AdminActor{ID: root.ID, IsSuperuser: true}
	ctx := context.Background()

	if _, err := svc.Create(ctx, actor, AdminCreateInput{Username: "alice", Password: "short"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if _, err := svc.Create(ctx, actor, AdminCreateInput{Username: "root", Password: "secret123"}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}

	alice, err := svc.Create(ctx, actor, AdminCreateInput{Username: "alice", Password: "secret123", Email: strRef("alice@example.com")})
	if err != nil {
		t.Fatalf("create alice failed: %v", err)
	}
	if !alice.IsActive || alice.IsSuperuser {
		t.Fatalf("unexpected defaults: active=%v superuser=%v", alice.IsActive, alice.IsSuperuser)
	}
	if got := roles.roles[alice.ID]; len(got) != 1 || got[0] != "editor" {
		t.Fatalf("non-superuser must get editor role, got %v", got)
	}
	if _, err := svc.Create(ctx, actor, AdminCreateInput{Username: "bob", Password: "secret123", Email: strRef("alice@example.com")}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAdminAccountSelfService(t *testing.T) {
	svc, _, db := setupAdminAccountServiceTest(t)
	editor := createServiceTestAdmin(t, db, "editor", "secret123", false, true)
	other := createServiceTestAdmin(t, db, "other", "secret123", false, true)
	actor := AdminActor{ID: editor.ID}
	ctx := context.Background()

	if _, err := svc.Get(actor, editor.ID); err != nil {
		t.Fatalf("self get failed: %v", err)
	}
	if _, err := svc.Get(actor, other.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other admin, got %v", err)
	}
	if _, err := svc.Update(ctx, actor, editor.ID, AdminUpdateInput{IsSuperuser: boolRef(true)}); !errors.Is(err, ErrPermissionFieldForbidden) {
		t.Fatalf("expected ErrPermissionFieldForbidden, got %v", err)
	}
	if _, err := svc.Update(ctx, actor, editor.ID, AdminUpdateInput{IsActive: boolRef(true)}); !errors.Is(err, ErrPermissionFieldForbidden) {
		t.Fatalf("expected ErrPermissionFieldForbidden, got %v", err)
	}
	updated, err := svc.Update(ctx, actor, editor.ID, AdminUpdateInput{FullName: strRef("Ed Itor")})
	if err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if updated.FullName == nil || *updated.FullName != "Ed Itor" {
		t.Fatalf("full name not applied")
	}
}

func TestAdminAccountDeleteAndDeactivate(t *testing.T) {
	svc, roles, db := setupAdminAccountServiceTest(t)
	root := createServiceTestAdmin(t, db, "root", "secret123", true, true)
	target := createServiceTestAdmin(t, db, "target", "secret123", false, true)
	actor := AdminActor{ID: root.ID, IsSuperuser: true}
	ctx := context.Background()

	if err := svc.Delete(ctx, actor, root.ID); !errors.Is(err, ErrCannotDeleteSelf) {
		t.Fatalf("expected ErrCannotDeleteSelf, got %v", err)
	}

	deactivated, err := svc.Update(ctx, actor, target.ID, AdminUpdateInput{IsActive: boolRef(false)})
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if deactivated.IsActive || deactivated.TokenVersion != target.TokenVersion+1 {
		t.Fatalf("deactivation must revoke tokens: %+v", deactivated)
	}

	if err := svc.Delete(ctx, actor, target.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	var count int64
	db.Model(&models.Admin{}).Where("id = ?", target.ID).Count(&count)
	if count != 0 {
		t.Fatalf("admin should be deleted")
	}
	if len(roles.cleared) == 0 || roles.cleared[len(roles.cleared)-1] != target.ID {
		t.Fatalf("roles must be cleared on delete, got %v", roles.cleared)
	}
	if err := svc.Delete(ctx, actor, target.ID); !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}
