package shared

import (
	"errors"

	"github.com/fanxi-showcase/internal/http/response"
	"github.com/fanxi-showcase/internal/i18n"
	"github.com/fanxi-showcase/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	locale := i18n.ResolveLocale(c)
	RespondErrorWithMsg(c, code, i18n.T(locale, key), err)
}

// RespondErrorWithMsg 返回自定义消息错误响应，并在有原始错误时记录日志。
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	if err != nil {
		RequestLog(c).Errorw("handler_error", "code", code, "message", msg, "error", err)
	}
	response.Error(c, code, msg)
}

// MappedError 业务错误到接口错误响应的映射。
// Detail 非空时可替换文案 key 并提供格式化参数。
type MappedError struct {
	Target error
	Code   int
	Key    string
	Detail func(err error) (string, []interface{})
}

// RespondMappedError 按规则表输出错误，未命中时使用兜底 code/key 并记录原始错误。
func RespondMappedError(c *gin.Context, err error, rules []MappedError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if !errors.Is(err, rule.Target) {
			continue
		}
		if rule.Detail != nil {
			key, args := rule.Detail(err)
			if key == "" {
				key = rule.Key
			}
			RespondErrorWithMsg(c, rule.Code, i18n.Sprintf(i18n.ResolveLocale(c), key, args...), nil)
			return
		}
		RespondError(c, rule.Code, rule.Key, nil)
		return
	}
	RespondError(c, fallbackCode, fallbackKey, err)
}

// ConcatMappedErrors 合并多组映射规则，先出现的优先。
func ConcatMappedErrors(groups ...[]MappedError) []MappedError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]MappedError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}
