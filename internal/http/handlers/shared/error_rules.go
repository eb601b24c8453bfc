package shared

import (
	"errors"

	"github.com/fanxi-showcase/internal/http/response"
	"github.com/fanxi-showcase/internal/service"
)

// CatalogErrorRules 目录类接口共用的错误映射。
var CatalogErrorRules = []MappedError{
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrCategoryNotFound, Code: response.CodeNotFound, Key: "error.category_not_found"},
	{Target: service.ErrFeaturedNotFound, Code: response.CodeNotFound, Key: "error.featured_not_found"},
	{Target: service.ErrBackgroundImageNotFound, Code: response.CodeNotFound, Key: "error.background_not_found"},
	{Target: service.ErrCategoryInUse, Code: response.CodeConflict, Key: "error.category_in_use", Detail: categoryInUseDetail},
	{Target: service.ErrSlugExists, Code: response.CodeConflict, Key: "error.slug_exists"},
	{Target: service.ErrSKUExists, Code: response.CodeConflict, Key: "error.sku_exists"},
	{Target: service.ErrPositionOccupied, Code: response.CodeConflict, Key: "error.position_occupied_plain"},
	{Target: service.ErrInvalidPosition, Code: response.CodeBadRequest, Key: "error.position_invalid"},
	{Target: service.ErrInvalidPrice, Code: response.CodeBadRequest, Key: "error.price_invalid"},
	{Target: service.ErrInvalidStock, Code: response.CodeBadRequest, Key: "error.stock_invalid"},
	{Target: service.ErrInvalidRating, Code: response.CodeBadRequest, Key: "error.rating_invalid"},
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest, Key: "error.bad_request"},
	{Target: service.ErrContentExists, Code: response.CodeConflict, Key: "error.content_exists"},
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.not_found"},
}

// AdminAccountErrorRules 管理员账号与认证接口的错误映射。
var AdminAccountErrorRules = []MappedError{
	{Target: service.ErrAdminNotFound, Code: response.CodeNotFound, Key: "error.admin_not_found"},
	{Target: service.ErrUsernameExists, Code: response.CodeConflict, Key: "error.username_exists"},
	{Target: service.ErrEmailExists, Code: response.CodeConflict, Key: "error.email_exists"},
	{Target: service.ErrCannotDeleteSelf, Code: response.CodeBadRequest, Key: "error.cannot_delete_self"},
	{Target: service.ErrPermissionFieldForbidden, Code: response.CodeForbidden, Key: "error.permission_field_forbidden"},
	{Target: service.ErrSuperuserRequired, Code: response.CodeForbidden, Key: "error.superuser_required"},
	{Target: service.ErrForbidden, Code: response.CodeForbidden, Key: "error.forbidden"},
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Key: "error.login_failed"},
	{Target: service.ErrAdminDisabled, Code: response.CodeForbidden, Key: "error.admin_disabled"},
	{Target: service.ErrInvalidPassword, Code: response.CodeBadRequest, Key: "error.password_old_invalid"},
	{Target: service.ErrWeakPassword, Code: response.CodeBadRequest, Key: "error.password_weak", Detail: passwordPolicyDetail},
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest, Key: "error.bad_request"},
}

// CaptchaErrorRules 验证码错误映射。
var CaptchaErrorRules = []MappedError{
	{Target: service.ErrCaptchaRequired, Code: response.CodeBadRequest, Key: "error.captcha_required"},
	{Target: service.ErrCaptchaInvalid, Code: response.CodeBadRequest, Key: "error.captcha_invalid"},
}

// UploadErrorRules 上传错误映射。
var UploadErrorRules = []MappedError{
	{Target: service.ErrUploadTooLarge, Code: response.CodeBadRequest, Key: "error.upload_too_large"},
	{Target: service.ErrUploadTypeInvalid, Code: response.CodeBadRequest, Key: "error.upload_type_invalid"},
	{Target: service.ErrUploadDimensionInvalid, Code: response.CodeBadRequest, Key: "error.upload_dimension_invalid"},
}

func categoryInUseDetail(err error) (string, []interface{}) {
	var inUse service.CategoryInUseError
	if errors.As(err, &inUse) {
		return "", []interface{}{inUse.Count}
	}
	return "error.category_in_use_plain", nil
}

func passwordPolicyDetail(err error) (string, []interface{}) {
	var policyErr service.PasswordPolicyError
	if errors.As(err, &policyErr) {
		return policyErr.Key(), policyErr.Args()
	}
	return "", nil
}
