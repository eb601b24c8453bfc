package i18n

import (
	"strings"

	"github.com/fanxi-showcase/internal/constants"

	"github.com/gin-gonic/gin"
)

// Lang 内容语言
type Lang string

const (
	LangZH Lang = constants.LangZH
	LangEN Lang = constants.LangEN
)

// DefaultLang 默认语言
const DefaultLang = LangZH

// ParseLang 解析请求语言：query 参数优先（精确匹配 en/zh），其次 Accept-Language，最后默认中文
func ParseLang(query, acceptLanguage string) Lang {
	switch query {
	case constants.LangEN:
		return LangEN
	case constants.LangZH:
		return LangZH
	}
	if acceptLanguage != "" && strings.Contains(strings.ToLower(acceptLanguage), constants.LangEN) {
		return LangEN
	}
	return DefaultLang
}

// LangFromContext 从 gin 请求中解析内容语言
func LangFromContext(c *gin.Context) Lang {
	if c == nil || c.Request == nil {
		return DefaultLang
	}
	return ParseLang(c.Query("lang"), c.GetHeader("Accept-Language"))
}

// String 返回语言代码
func (l Lang) String() string {
	return string(l)
}
