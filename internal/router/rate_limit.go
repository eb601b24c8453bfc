package router

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/fanxi-showcase/internal/cache"
	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/http/response"
	"github.com/fanxi-showcase/internal/i18n"
	"github.com/fanxi-showcase/internal/logger"

	"github.com/gin-gonic/gin"
)

// 限流桶
const (
	rateBucketAdminLogin   = "admin_login"
	rateBucketCaptchaImage = "captcha_image"
)

// RateLimitKeyFunc 生成限流主体的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 限流规则
type RateLimitRule struct {
	Bucket     string
	Window     time.Duration
	Limit      int
	MessageKey string
}

// NewRateLimitRule 由配置生成规则，窗口或次数非正时规则不生效
func NewRateLimitRule(bucket string, cfg config.RateLimitConfig, messageKey string) RateLimitRule {
	return RateLimitRule{
		Bucket:     bucket,
		Window:     time.Duration(cfg.WindowSeconds) * time.Second,
		Limit:      cfg.MaxAttempts,
		MessageKey: messageKey,
	}
}

func (r RateLimitRule) active() bool {
	return r.Window > 0 && r.Limit > 0
}

// RateLimitMiddleware 基于 Redis 固定窗口的限流中间件，Redis 未启用时放行
func RateLimitMiddleware(rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rule.active() || !cache.Enabled() {
			c.Next()
			return
		}

		subject := ""
		if keyFunc != nil {
			subject = strings.TrimSpace(keyFunc(c))
		}
		if subject == "" {
			subject = c.ClientIP()
		}

		hit, enabled, err := cache.HitWindow(c.Request.Context(), cache.RateKey(rule.Bucket, subject), rule.Window)
		if !enabled {
			c.Next()
			return
		}
		locale := i18n.ResolveLocale(c)
		if err != nil {
			logger.Warnw("rate_limit_unavailable", "bucket", rule.Bucket, "error", err)
			response.Error(c, response.CodeInternal, i18n.T(locale, "error.rate_limit_unavailable"))
			c.Abort()
			return
		}
		if hit.Count > int64(rule.Limit) {
			msgKey := strings.TrimSpace(rule.MessageKey)
			if msgKey == "" {
				msgKey = "error.rate_limited"
			}
			wait := int(hit.RetryAfter / time.Second)
			if wait < 1 {
				wait = 1
			}
			response.Error(c, response.CodeTooManyRequests, i18n.Sprintf(locale, msgKey, wait))
			c.Abort()
			return
		}
		c.Next()
	}
}

// KeyByIP 按客户端 IP 限流
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 按 JSON 字段与 IP 组合限流，读取后恢复请求体
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(peekJSONString(c, field))
		if value == "" {
			return c.ClientIP()
		}
		return value + "|" + c.ClientIP()
	}
}

func peekJSONString(c *gin.Context, field string) string {
	if c == nil || c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil || len(body) == 0 {
		return ""
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	var text string
	if err := json.Unmarshal(payload[field], &text); err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
