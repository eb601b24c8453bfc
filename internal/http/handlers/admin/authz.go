package admin

import (
	"errors"

	"github.com/fanxi-showcase/internal/authz"
	handlershared "github.com/fanxi-showcase/internal/http/handlers/shared"
	"github.com/fanxi-showcase/internal/http/response"

	"github.com/gin-gonic/gin"
)

type authzSetAdminRolesPayload struct {
	Roles []string `json:"roles"`
}

// GetAuthzMe 当前管理员权限快照
func (h *Handler) GetAuthzMe(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	snapshot, err := h.AuthzService.Snapshot(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{
		"admin_id": adminID,
		"is_super": handlershared.GetContextBool(c, handlershared.ContextAdminIsSuper),
		"roles":    snapshot.Roles,
		"policies": snapshot.Policies,
	})
}

// ListAuthzRoles 角色列表
func (h *Handler) ListAuthzRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, roles)
}

// SetAdminRoles 覆盖管理员角色（仅超级管理员）
func (h *Handler) SetAdminRoles(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	if !actor.IsSuperuser {
		respondError(c, response.CodeForbidden, "error.forbidden", nil)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req authzSetAdminRolesPayload
	if !bindJSON(c, &req) {
		return
	}
	admin, err := h.AdminRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if admin == nil {
		respondError(c, response.CodeNotFound, "error.admin_not_found", nil)
		return
	}
	if err := h.AuthzService.SetAdminRoles(id, req.Roles); err != nil {
		if errors.Is(err, authz.ErrUnknownRole) {
			respondError(c, response.CodeBadRequest, "error.role_unknown", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	roles, _ := h.AuthzService.GetAdminRoles(id)
	requestLog(c).Infow("admin_roles_updated", "operator_id", actor.ID, "admin_id", id, "roles", roles)
	response.Success(c, gin.H{"admin_id": id, "roles": roles})
}
