package authz

import (
	"fmt"

	"github.com/fanxi-showcase/internal/constants"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

const roleViewer = "viewer"

// BuiltinRoleSeeds 预置角色：viewer 只读后台，editor 维护商品与展示内容
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: roleViewer,
			Policies: []Policy{
				{Object: "/admin/products", Action: "GET"},
				{Object: "/admin/products/:id", Action: "GET"},
				{Object: "/admin/categories", Action: "GET"},
				{Object: "/admin/categories/:id", Action: "GET"},
				{Object: "/admin/featured-products", Action: "GET"},
				{Object: "/admin/featured-products/:id", Action: "GET"},
				{Object: "/admin/featured-products/positions", Action: "GET"},
				{Object: "/admin/background-images", Action: "GET"},
				{Object: "/admin/background-images/:id", Action: "GET"},
				{Object: "/admin/about-us", Action: "GET"},
				{Object: "/admin/footer-info", Action: "GET"},
				{Object: "/admin/top-info", Action: "GET"},
			},
		},
		{
			Role:     constants.RoleEditor,
			Inherits: []string{roleViewer},
			Policies: []Policy{
				{Object: "/admin/products", Action: "*"},
				{Object: "/admin/products/:id", Action: "*"},
				{Object: "/admin/products/:id/active", Action: "PATCH"},
				{Object: "/admin/categories", Action: "*"},
				{Object: "/admin/categories/:id", Action: "*"},
				{Object: "/admin/featured-products", Action: "*"},
				{Object: "/admin/featured-products/:id", Action: "*"},
				{Object: "/admin/background-images", Action: "*"},
				{Object: "/admin/background-images/:id", Action: "*"},
				{Object: "/admin/about-us", Action: "*"},
				{Object: "/admin/footer-info", Action: "*"},
				{Object: "/admin/top-info", Action: "*"},
				{Object: "/admin/upload", Action: "POST"},
			},
		},
	}
}

// BootstrapBuiltinRoles 初始化预置角色与默认策略，可重复执行
func (s *Service) BootstrapBuiltinRoles() error {
	if err := s.ready(); err != nil {
		return err
	}
	for _, seed := range BuiltinRoleSeeds() {
		for _, parent := range seed.Inherits {
			if err := s.InheritRole(seed.Role, parent); err != nil {
				return err
			}
		}
		for _, policy := range seed.Policies {
			if err := s.GrantRolePolicy(seed.Role, policy.Object, policy.Action); err != nil {
				return fmt.Errorf("seed role %s: %w", seed.Role, err)
			}
		}
	}
	return nil
}
