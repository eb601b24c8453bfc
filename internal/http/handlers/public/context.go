package public

import (
	handlershared "github.com/fanxi-showcase/internal/http/handlers/shared"
	"github.com/fanxi-showcase/internal/i18n"

	"github.com/gin-gonic/gin"
)

func contentLang(c *gin.Context) i18n.Lang {
	return i18n.LangFromContext(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}
