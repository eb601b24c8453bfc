package service

import (
	"context"
	"strings"

	"github.com/fanxi-showcase/internal/cache"
	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/repository"
)

// AdminActor 当前操作的管理员
type AdminActor struct {
	ID          uint
	IsSuperuser bool
}

// SystemActor 命令行等内部调用使用的超级管理员身份
func SystemActor() AdminActor {
	return AdminActor{IsSuperuser: true}
}

// AdminRoleAssigner 管理员角色分配（Casbin）
type AdminRoleAssigner interface {
	SetAdminRoles(adminID uint, roles []string) error
	ClearAdmin(adminID uint) error
}

// AdminCreateInput 创建管理员输入
type AdminCreateInput struct {
	Username    string
	Password    string
	Email       *string
	FullName    *string
	IsActive    *bool
	IsSuperuser bool
}

// AdminUpdateInput 更新管理员输入，nil 字段表示不修改
type AdminUpdateInput struct {
	Email       *string
	FullName    *string
	Password    *string
	IsActive    *bool
	IsSuperuser *bool
}

// AdminAccountService 管理员账号服务
type AdminAccountService struct {
	repo  repository.AdminRepository
	auth  *AuthService
	roles AdminRoleAssigner
}

// NewAdminAccountService 创建管理员账号服务
func NewAdminAccountService(repo repository.AdminRepository, auth *AuthService, roles AdminRoleAssigner) *AdminAccountService {
	return &AdminAccountService{repo: repo, auth: auth, roles: roles}
}

// List 管理员列表（仅超级管理员）
func (s *AdminAccountService) List(actor AdminActor, keyword string, page, pageSize int) ([]models.Admin, int64, error) {
	if !actor.IsSuperuser {
		return nil, 0, ErrSuperuserRequired
	}
	page, pageSize = adminPage(page, pageSize)
	return s.repo.List(repository.AdminListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(keyword),
	})
}

// Get 查看管理员（超级管理员或本人）
func (s *AdminAccountService) Get(actor AdminActor, id uint) (*models.Admin, error) {
	if !actor.IsSuperuser && actor.ID != id {
		return nil, ErrForbidden
	}
	admin, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

// Create 创建管理员（仅超级管理员）
func (s *AdminAccountService) Create(ctx context.Context, actor AdminActor, input AdminCreateInput) (*models.Admin, error) {
	if !actor.IsSuperuser {
		return nil, ErrSuperuserRequired
	}
	username := strings.TrimSpace(input.Username)
	if username == "" || len(username) > 50 {
		return nil, ErrInvalidInput
	}
	if err := s.auth.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	if err := s.ensureUsernameAvailable(username, nil); err != nil {
		return nil, err
	}
	email := normalizeOptional(input.Email)
	if err := s.ensureEmailAvailable(email, nil); err != nil {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{
		Username:     username,
		Email:        email,
		FullName:     normalizeOptional(input.FullName),
		PasswordHash: hash,
		IsActive:     true,
		IsSuperuser:  input.IsSuperuser,
	}
	if input.IsActive != nil {
		admin.IsActive = *input.IsActive
	}
	if err := s.repo.Create(admin); err != nil {
		return nil, translateUniqueError(err, ErrUsernameExists)
	}
	s.syncRoles(admin)
	logger.Infow("admin_account_created", "admin_id", admin.ID, "username", admin.Username, "operator_id", actor.ID)
	return admin, nil
}

// Update 更新管理员（超级管理员或本人；非超级管理员不可修改状态与权限字段）
func (s *AdminAccountService) Update(ctx context.Context, actor AdminActor, id uint, input AdminUpdateInput) (*models.Admin, error) {
	if !actor.IsSuperuser {
		if actor.ID != id {
			return nil, ErrForbidden
		}
		if input.IsActive != nil || input.IsSuperuser != nil {
			return nil, ErrPermissionFieldForbidden
		}
	}
	admin, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	if input.Email != nil {
		email := normalizeOptional(input.Email)
		if err := s.ensureEmailAvailable(email, &admin.ID); err != nil {
			return nil, err
		}
		admin.Email = email
	}
	if input.FullName != nil {
		admin.FullName = normalizeOptional(input.FullName)
	}

	revoke := false
	rolesChanged := false
	if input.Password != nil {
		if err := s.auth.ValidatePassword(*input.Password); err != nil {
			return nil, err
		}
		hash, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
		revoke = true
	}
	if input.IsActive != nil && *input.IsActive != admin.IsActive {
		admin.IsActive = *input.IsActive
		revoke = revoke || !admin.IsActive
	}
	if input.IsSuperuser != nil && *input.IsSuperuser != admin.IsSuperuser {
		admin.IsSuperuser = *input.IsSuperuser
		rolesChanged = true
	}
	if revoke {
		revokeTokens(admin)
	}

	if err := s.repo.Update(admin); err != nil {
		return nil, translateUniqueError(err, ErrUsernameExists)
	}
	if rolesChanged {
		s.syncRoles(admin)
	}
	if err := cache.SetAdminAuthState(ctx, cache.BuildAdminAuthState(admin)); err != nil {
		logger.Warnw("admin_auth_state_cache_set_failed", "admin_id", admin.ID, "error", err)
	}
	return admin, nil
}

// Delete 删除管理员（仅超级管理员，不可删除自己）
func (s *AdminAccountService) Delete(ctx context.Context, actor AdminActor, id uint) error {
	if !actor.IsSuperuser {
		return ErrSuperuserRequired
	}
	if actor.ID == id {
		return ErrCannotDeleteSelf
	}
	admin, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if s.roles != nil {
		if err := s.roles.ClearAdmin(id); err != nil {
			logger.Warnw("admin_roles_clear_failed", "admin_id", id, "error", err)
		}
	}
	if err := cache.DelAdminAuthState(ctx, id); err != nil {
		logger.Warnw("admin_auth_state_cache_delete_failed", "admin_id", id, "error", err)
	}
	logger.Infow("admin_account_deleted", "admin_id", id, "operator_id", actor.ID)
	return nil
}

// Verify 校验账号密码（不签发令牌）
func (s *AdminAccountService) Verify(username, password string) (*models.Admin, error) {
	admin, err := s.repo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if admin == nil || VerifyPassword(admin.PasswordHash, password) != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// GetByUsername 按用户名查找管理员
func (s *AdminAccountService) GetByUsername(username string) (*models.Admin, error) {
	admin, err := s.repo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

// syncRoles 非超级管理员默认绑定 editor 角色，超级管理员不需要角色
func (s *AdminAccountService) syncRoles(admin *models.Admin) {
	if s.roles == nil {
		return
	}
	var err error
	if admin.IsSuperuser {
		err = s.roles.ClearAdmin(admin.ID)
	} else {
		err = s.roles.SetAdminRoles(admin.ID, []string{constants.RoleEditor})
	}
	if err != nil {
		logger.Warnw("admin_roles_sync_failed", "admin_id", admin.ID, "error", err)
	}
}

func (s *AdminAccountService) ensureUsernameAvailable(username string, excludeID *uint) error {
	taken, err := s.repo.UsernameTaken(username, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameExists
	}
	return nil
}

func (s *AdminAccountService) ensureEmailAvailable(email *string, excludeID *uint) error {
	if email == nil {
		return nil
	}
	taken, err := s.repo.EmailTaken(*email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailExists
	}
	return nil
}
