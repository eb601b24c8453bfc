package admin

import (
	handlershared "github.com/fanxi-showcase/internal/http/handlers/shared"
	"github.com/fanxi-showcase/internal/i18n"
	"github.com/fanxi-showcase/internal/service"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	identity, ok := handlershared.CurrentAdmin(c)
	return identity.ID, ok
}

// getActor 当前操作的管理员身份
func getActor(c *gin.Context) (service.AdminActor, bool) {
	identity, ok := handlershared.CurrentAdmin(c)
	if !ok {
		return service.AdminActor{}, false
	}
	return service.AdminActor{ID: identity.ID, IsSuperuser: identity.IsSuperuser}, true
}

func contentLang(c *gin.Context) i18n.Lang {
	return i18n.LangFromContext(c)
}
