package service

import "errors"

// 通用错误
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

// 目录相关错误
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category has products")
	ErrSlugExists       = errors.New("slug already exists")
	ErrSKUExists        = errors.New("sku already exists")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrInvalidStock     = errors.New("invalid stock")
	ErrInvalidRating    = errors.New("invalid rating")
)

// 精选位相关错误
var (
	ErrFeaturedNotFound = errors.New("featured slot not found")
	ErrInvalidPosition  = errors.New("position must be between 1 and 6")
	ErrPositionOccupied = errors.New("position already occupied")
)

// 内容相关错误
var (
	ErrBackgroundImageNotFound = errors.New("background image not found")
	ErrContentExists           = errors.New("content already exists")
)

// 管理员与认证相关错误
var (
	ErrAdminNotFound            = errors.New("admin not found")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrAdminDisabled            = errors.New("admin disabled")
	ErrInvalidPassword          = errors.New("invalid password")
	ErrWeakPassword             = errors.New("weak password")
	ErrUsernameExists           = errors.New("username already exists")
	ErrEmailExists              = errors.New("email already exists")
	ErrCannotDeleteSelf         = errors.New("cannot delete self")
	ErrPermissionFieldForbidden = errors.New("cannot change is_active or is_superuser")
	ErrSuperuserRequired        = errors.New("superuser required")
)

// 验证码相关错误
var (
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha config invalid")
)

// 上传相关错误
var (
	ErrUploadTooLarge         = errors.New("upload too large")
	ErrUploadTypeInvalid      = errors.New("upload type not allowed")
	ErrUploadDimensionInvalid = errors.New("upload dimension exceeds limit")
)
