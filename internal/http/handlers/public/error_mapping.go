package public

import (
	handlershared "github.com/fanxi-showcase/internal/http/handlers/shared"
	"github.com/fanxi-showcase/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondCatalogError(c *gin.Context, err error, fallbackKey string) {
	handlershared.RespondMappedError(c, err, handlershared.CatalogErrorRules, response.CodeInternal, fallbackKey)
}
