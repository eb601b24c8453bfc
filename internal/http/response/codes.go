package response

// 业务状态码，HTTP 状态恒为 200
const (
	CodeOK              = 0
	CodeBadRequest      = 400 // 参数非法、位置越界、价格倒挂
	CodeUnauthorized    = 401 // 未登录或令牌失效
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeConflict        = 409 // 位置占用、分类仍被引用、用户名重复
	CodeTooManyRequests = 429
	CodeInternal        = 500
)
