package admin

import (
	"strings"

	"github.com/fanxi-showcase/internal/constants"
	"github.com/fanxi-showcase/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UploadFile 上传图片，返回可公开访问的 URL
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.upload_file_missing", err)
		return
	}
	scene := strings.TrimSpace(c.DefaultPostForm("scene", constants.UploadSceneCommon))

	result, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	requestLog(c).Infow("admin_upload_saved", "url", result.URL, "size", result.Size, "scene", scene)
	response.Success(c, result)
}
