package authz

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/util"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	apiV1Prefix     = "/api/v1"
	casbinTableName = "casbin_rule"
	adminSubjectFmt = "admin:%d"
	rolePrefix      = "role:"
	// 已定义的角色都挂在锚点下，用于区分角色与管理员主体
	roleAnchor = "role:__anchor__"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

var errUnavailable = errors.New("authz service unavailable")

// ErrUnknownRole 角色未定义
var ErrUnknownRole = errors.New("unknown role")

// Policy 路由授权策略，Object 为去掉 /api/v1 的路由模板
type Policy struct {
	Object string `json:"object"`
	Action string `json:"action"`
}

// Role 角色定义
type Role struct {
	Name     string   `json:"name"`
	Inherits []string `json:"inherits"`
	Policies []Policy `json:"policies"`
}

// Snapshot 管理员生效的角色与策略（含继承）
type Snapshot struct {
	Roles    []string `json:"roles"`
	Policies []Policy `json:"policies"`
}

// Service 后台路由授权（Casbin）
// 超级管理员不经过策略判定，由中间件直接放行
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService 创建授权服务，策略持久化在 casbin_rule 表
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("authz db is nil")
	}
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", casbinTableName)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter failed: %w", err)
	}
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model failed: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer failed: %w", err)
	}
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)
	enforcer.EnableAutoSave(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy failed: %w", err)
	}
	return &Service{enforcer: enforcer}, nil
}

func (s *Service) ready() error {
	if s == nil || s.enforcer == nil {
		return errUnavailable
	}
	return nil
}

// EnforceAdmin 判断管理员是否可访问指定路由
func (s *Service) EnforceAdmin(adminID uint, obj, act string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	return s.enforcer.Enforce(SubjectForAdmin(adminID), NormalizeObject(obj), NormalizeAction(act))
}

// GrantRolePolicy 为角色授予路由策略，角色不存在时自动定义
func (s *Service) GrantRolePolicy(role, object, action string) error {
	subject, err := s.defineRole(role)
	if err != nil {
		return err
	}
	act := NormalizeAction(action)
	if act == "" {
		return fmt.Errorf("action is required")
	}
	if _, err := s.enforcer.AddPolicy(subject, NormalizeObject(object), act); err != nil {
		return fmt.Errorf("grant policy failed: %w", err)
	}
	return nil
}

// InheritRole 让 role 继承 parent 的全部策略
func (s *Service) InheritRole(role, parent string) error {
	child, err := s.defineRole(role)
	if err != nil {
		return err
	}
	base, err := s.defineRole(parent)
	if err != nil {
		return err
	}
	if _, err := s.enforcer.AddNamedGroupingPolicy("g", child, base); err != nil {
		return fmt.Errorf("link role inheritance failed: %w", err)
	}
	return nil
}

// ListRoles 列出已定义角色及其直接策略
func (s *Service) ListRoles() ([]Role, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rules, err := s.enforcer.GetFilteredNamedGroupingPolicy("g", 1, roleAnchor)
	if err != nil {
		return nil, fmt.Errorf("list roles failed: %w", err)
	}
	roles := make([]Role, 0, len(rules))
	for _, rule := range rules {
		if len(rule) == 0 || !strings.HasPrefix(rule[0], rolePrefix) {
			continue
		}
		role, err := s.describeRole(rule[0])
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles, nil
}

func (s *Service) describeRole(subject string) (Role, error) {
	role := Role{Name: DisplayRole(subject), Inherits: []string{}}
	parents, err := s.enforcer.GetFilteredNamedGroupingPolicy("g", 0, subject)
	if err != nil {
		return role, fmt.Errorf("get role parents failed: %w", err)
	}
	for _, rule := range parents {
		if len(rule) >= 2 && rule[1] != roleAnchor {
			role.Inherits = append(role.Inherits, DisplayRole(rule[1]))
		}
	}
	sort.Strings(role.Inherits)
	rules, err := s.enforcer.GetFilteredPolicy(0, subject)
	if err != nil {
		return role, fmt.Errorf("get role policies failed: %w", err)
	}
	role.Policies = toPolicies(rules)
	return role, nil
}

// SetAdminRoles 覆盖设置管理员角色，角色必须已定义
func (s *Service) SetAdminRoles(adminID uint, roles []string) error {
	if err := s.ready(); err != nil {
		return err
	}
	subjects := make([]string, 0, len(roles))
	for _, role := range roles {
		subject, err := NormalizeRole(role)
		if err != nil {
			return err
		}
		defined, err := s.enforcer.HasNamedGroupingPolicy("g", subject, roleAnchor)
		if err != nil {
			return fmt.Errorf("check role failed: %w", err)
		}
		if !defined {
			return fmt.Errorf("%w: %s", ErrUnknownRole, DisplayRole(subject))
		}
		subjects = append(subjects, subject)
	}

	if err := s.ClearAdmin(adminID); err != nil {
		return err
	}
	admin := SubjectForAdmin(adminID)
	for _, subject := range subjects {
		if _, err := s.enforcer.AddNamedGroupingPolicy("g", admin, subject); err != nil {
			return fmt.Errorf("assign admin role failed: %w", err)
		}
	}
	return nil
}

// ClearAdmin 移除管理员的全部角色与直连策略
func (s *Service) ClearAdmin(adminID uint) error {
	if adminID == 0 {
		return fmt.Errorf("admin id is required")
	}
	if err := s.ready(); err != nil {
		return err
	}
	subject := SubjectForAdmin(adminID)
	if _, err := s.enforcer.RemoveFilteredNamedGroupingPolicy("g", 0, subject); err != nil {
		return fmt.Errorf("clear admin roles failed: %w", err)
	}
	if _, err := s.enforcer.RemoveFilteredPolicy(0, subject); err != nil {
		return fmt.Errorf("clear admin policies failed: %w", err)
	}
	return nil
}

// GetAdminRoles 查询管理员直接分配的角色
func (s *Service) GetAdminRoles(adminID uint) ([]string, error) {
	if adminID == 0 {
		return nil, fmt.Errorf("admin id is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	subjects, err := s.enforcer.GetRolesForUser(SubjectForAdmin(adminID))
	if err != nil {
		return nil, fmt.Errorf("get admin roles failed: %w", err)
	}
	roles := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		if strings.HasPrefix(subject, rolePrefix) && subject != roleAnchor {
			roles = append(roles, DisplayRole(subject))
		}
	}
	sort.Strings(roles)
	return roles, nil
}

// Snapshot 查询管理员角色与生效策略
func (s *Service) Snapshot(adminID uint) (*Snapshot, error) {
	roles, err := s.GetAdminRoles(adminID)
	if err != nil {
		return nil, err
	}
	rules, err := s.enforcer.GetImplicitPermissionsForUser(SubjectForAdmin(adminID))
	if err != nil {
		return nil, fmt.Errorf("get admin policies failed: %w", err)
	}
	return &Snapshot{Roles: roles, Policies: toPolicies(rules)}, nil
}

// toPolicies 转换 casbin 规则，去重并按资源排序
func toPolicies(rules [][]string) []Policy {
	seen := make(map[Policy]struct{}, len(rules))
	policies := make([]Policy, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		policy := Policy{Object: NormalizeObject(rule[1]), Action: NormalizeAction(rule[2])}
		if _, ok := seen[policy]; ok {
			continue
		}
		seen[policy] = struct{}{}
		policies = append(policies, policy)
	}
	sort.Slice(policies, func(i, j int) bool {
		if policies[i].Object == policies[j].Object {
			return policies[i].Action < policies[j].Action
		}
		return policies[i].Object < policies[j].Object
	})
	return policies
}

func (s *Service) defineRole(role string) (string, error) {
	subject, err := NormalizeRole(role)
	if err != nil {
		return "", err
	}
	if err := s.ready(); err != nil {
		return "", err
	}
	if subject == roleAnchor {
		return "", fmt.Errorf("reserved role is not allowed")
	}
	if _, err := s.enforcer.AddNamedGroupingPolicy("g", subject, roleAnchor); err != nil {
		return "", fmt.Errorf("define role failed: %w", err)
	}
	return subject, nil
}

// SubjectForAdmin 生成管理员主体标识
func SubjectForAdmin(adminID uint) string {
	return fmt.Sprintf(adminSubjectFmt, adminID)
}

// NormalizeRole 角色名转为 casbin 主体（role: 前缀）
func NormalizeRole(role string) (string, error) {
	name := strings.TrimPrefix(strings.ReplaceAll(strings.TrimSpace(role), " ", "_"), rolePrefix)
	if name == "" {
		return "", fmt.Errorf("role is required")
	}
	return rolePrefix + strings.ToLower(name), nil
}

// DisplayRole 去掉主体前缀后的角色名
func DisplayRole(subject string) string {
	return strings.TrimPrefix(subject, rolePrefix)
}

// NormalizeObject 统一授权资源路径，去掉 /api/v1 前缀
func NormalizeObject(object string) string {
	normalized := strings.TrimSpace(object)
	if normalized == "" {
		return "/"
	}
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	if normalized == apiV1Prefix {
		return "/"
	}
	if strings.HasPrefix(normalized, apiV1Prefix+"/") {
		return strings.TrimPrefix(normalized, apiV1Prefix)
	}
	return normalized
}

// NormalizeAction 统一授权动作
func NormalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}
