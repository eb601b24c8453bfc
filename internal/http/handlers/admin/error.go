package admin

import (
	handlershared "github.com/fanxi-showcase/internal/http/handlers/shared"
	"github.com/fanxi-showcase/internal/http/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondCatalogError(c *gin.Context, err error) {
	handlershared.RespondMappedError(c, err, handlershared.CatalogErrorRules, response.CodeInternal, "error.internal")
}

func respondAccountError(c *gin.Context, err error) {
	handlershared.RespondMappedError(c, err, handlershared.AdminAccountErrorRules, response.CodeInternal, "error.internal")
}

func respondUploadError(c *gin.Context, err error) {
	handlershared.RespondMappedError(c, err, handlershared.UploadErrorRules, response.CodeInternal, "error.upload_failed")
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return false
	}
	return true
}

func pathID(c *gin.Context) (uint, bool) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "error.invalid_id", nil)
	}
	return id, ok
}
