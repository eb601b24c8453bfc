package i18n

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var langTags = map[Lang]language.Tag{
	LangZH: language.SimplifiedChinese,
	LangEN: language.English,
}

// 接口提示文案
var catalogMessages = map[string][2]string{
	// key: {中文, English}
	"common.success":                   {"操作成功", "Success"},
	"error.bad_request":                {"请求参数错误", "Invalid request parameters"},
	"error.unauthorized":               {"未登录或登录已失效", "Unauthorized"},
	"error.forbidden":                  {"无权执行该操作", "Forbidden"},
	"error.role_unknown":               {"角色不存在", "Role does not exist"},
	"error.not_found":                  {"资源不存在", "Resource not found"},
	"error.internal":                   {"服务器内部错误", "Internal server error"},
	"error.too_many_requests":          {"请求过于频繁，请稍后再试", "Too many requests, please try again later"},
	"error.invalid_id":                 {"无效的ID", "Invalid ID"},
	"error.token_missing":              {"缺少认证令牌", "Missing authorization token"},
	"error.token_invalid":              {"认证令牌无效", "Invalid authorization token"},
	"error.token_expired":              {"认证令牌已过期", "Authorization token expired"},
	"error.login_failed":               {"用户名或密码错误", "Incorrect username or password"},
	"error.admin_disabled":             {"管理员账号已被禁用", "Admin account is disabled"},
	"error.captcha_required":           {"请输入验证码", "Captcha is required"},
	"error.captcha_invalid":            {"验证码错误", "Invalid captcha"},
	"error.password_old_invalid":       {"原密码错误", "Old password is incorrect"},
	"error.password_weak":              {"密码强度不足", "Password is too weak"},
	"error.password_min_length":        {"密码长度至少 %d 位", "Password must be at least %d characters"},
	"error.password_upper_required":    {"密码需包含大写字母", "Password must contain an uppercase letter"},
	"error.password_lower_required":    {"密码需包含小写字母", "Password must contain a lowercase letter"},
	"error.password_number_required":   {"密码需包含数字", "Password must contain a number"},
	"error.password_special_required":  {"密码需包含特殊字符", "Password must contain a special character"},
	"error.product_not_found":          {"产品不存在", "Product not found"},
	"error.category_not_found":         {"分类不存在", "Category not found"},
	"error.category_in_use":            {"该分类下存在 %d 个产品，无法删除", "Cannot delete category with %d products"},
	"error.category_in_use_plain":      {"该分类下存在产品，无法删除", "Cannot delete category that still has products"},
	"error.slug_exists":                {"标识已存在", "Slug already exists"},
	"error.sku_exists":                 {"SKU 已存在", "SKU already exists"},
	"error.price_invalid":              {"价格必须大于 0，原价必须高于售价", "Price must be positive and original price must exceed price"},
	"error.stock_invalid":              {"库存不能为负数", "Stock cannot be negative"},
	"error.rating_invalid":             {"评分必须在 0 到 5 之间", "Rating must be between 0 and 5"},
	"error.featured_not_found":         {"精选产品不存在", "Featured product not found"},
	"error.position_invalid":           {"位置必须在 1-6 之间", "Position must be between 1 and 6"},
	"error.position_occupied":          {"位置 %d 已被占用", "Position %d is already occupied"},
	"error.position_occupied_plain":    {"该位置已被占用", "Position is already occupied"},
	"error.background_not_found":       {"背景图片不存在", "Background image not found"},
	"error.content_exists":             {"内容已存在，请使用更新接口", "Content already exists, use update instead"},
	"error.content_not_found":          {"内容不存在", "Content not found"},
	"error.admin_not_found":            {"管理员不存在", "Admin not found"},
	"error.username_exists":            {"用户名已存在", "Username already exists"},
	"error.email_exists":               {"邮箱已存在", "Email already exists"},
	"error.cannot_delete_self":         {"不能删除自己的账号", "You cannot delete your own account"},
	"error.permission_field_forbidden": {"无权修改激活状态或超级管理员权限", "Not allowed to change active or superuser flags"},
	"error.superuser_required":         {"需要超级管理员权限", "Superuser permission required"},
	"error.upload_failed":              {"上传失败", "Upload failed"},
	"error.upload_file_missing":        {"请选择要上传的文件", "No file uploaded"},
	"error.upload_too_large":           {"文件大小超过限制", "File is too large"},
	"error.upload_type_invalid":        {"不支持的文件类型", "Unsupported file type"},
	"error.upload_dimension_invalid":   {"图片尺寸超过限制", "Image dimensions exceed the limit"},
	"error.monitor_unavailable":        {"巡检数据不可用", "Monitor data unavailable"},
	"error.admin_id_invalid":           {"管理员身份无效", "Invalid admin identity"},
	"error.admin_id_type_invalid":      {"管理员身份类型错误", "Invalid admin identity type"},
	"error.auth_header_missing":        {"缺少 Authorization 请求头", "Missing Authorization header"},
	"error.auth_header_invalid":        {"Authorization 请求头格式错误", "Malformed Authorization header"},
	"error.token_revoked":              {"登录状态已失效，请重新登录", "Token has been revoked, please log in again"},
	"error.jwt_secret_missing":         {"服务端未配置 JWT 密钥", "JWT secret is not configured"},
	"error.rate_limit_unavailable":     {"限流服务不可用", "Rate limiter unavailable"},
	"error.login_too_many":             {"登录尝试过多，请 %d 秒后再试", "Too many login attempts, retry in %d seconds"},
	"error.rate_limited":               {"请求过于频繁，请 %d 秒后再试", "Too many requests, retry in %d seconds"},
	"error.captcha_unavailable":        {"验证码服务不可用", "Captcha service unavailable"},
	"error.captcha_generate_failed":    {"验证码生成失败", "Failed to generate captcha"},
	"featured.product_missing":         {"产品不存在", "Product not found"},
	"featured.position_available":      {"空闲", "Available"},
}

var printers = map[Lang]*message.Printer{}

func init() {
	for key, texts := range catalogMessages {
		_ = message.SetString(langTags[LangZH], key, texts[0])
		_ = message.SetString(langTags[LangEN], key, texts[1])
	}
	for lang, tag := range langTags {
		printers[lang] = message.NewPrinter(tag)
	}
}

// ResolveLocale 解析接口提示文案使用的语言
func ResolveLocale(c *gin.Context) Lang {
	return LangFromContext(c)
}

// T 翻译文案 key，未登记的 key 原样返回
func T(lang Lang, key string) string {
	return printerFor(lang).Sprintf(key)
}

// Sprintf 翻译带参数的文案
func Sprintf(lang Lang, key string, args ...interface{}) string {
	return printerFor(lang).Sprintf(key, args...)
}

func printerFor(lang Lang) *message.Printer {
	if p, ok := printers[lang]; ok {
		return p
	}
	return printers[DefaultLang]
}
