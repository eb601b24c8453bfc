package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseLangPrecedence(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		header string
		want   Lang
	}{
		{name: "query en wins over header", query: "en", header: "zh-CN", want: LangEN},
		{name: "query zh wins over header", query: "zh", header: "en-US,en;q=0.9", want: LangZH},
		{name: "query must match exactly", query: "EN", header: "zh-CN", want: LangZH},
		{name: "padded query falls through to header", query: " en ", header: "en-US", want: LangEN},
		{name: "padded query without header defaults", query: " en ", want: LangZH},
		{name: "unknown query falls through to header", query: "fr", header: "en-GB", want: LangEN},
		{name: "header substring match", header: "fr-FR,EN;q=0.5", want: LangEN},
		{name: "header without en", header: "zh-TW,zh;q=0.9", want: LangZH},
		{name: "nothing provided", want: LangZH},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLang(tc.query, tc.header))
		})
	}
}

func TestLangFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/public/products?lang=en", nil)
	c.Request.Header.Set("Accept-Language", "zh-CN")
	assert.Equal(t, LangEN, LangFromContext(c))

	assert.Equal(t, LangZH, LangFromContext(nil))
}

func TestTextResolve(t *testing.T) {
	cases := []struct {
		name string
		text Text
		lang Lang
		want string
	}{
		{name: "en column preferred", text: Text{Base: "基础", En: strPtr("Base"), Zh: strPtr("中文")}, lang: LangEN, want: "Base"},
		{name: "zh column preferred", text: Text{Base: "基础", En: strPtr("Base"), Zh: strPtr("中文")}, lang: LangZH, want: "中文"},
		{name: "missing en falls back to base", text: Text{Base: "基础", Zh: strPtr("中文")}, lang: LangEN, want: "基础"},
		{name: "empty zh falls back to base", text: Text{Base: "基础", Zh: strPtr("")}, lang: LangZH, want: "基础"},
		{name: "all empty", text: Text{}, lang: LangEN, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.text.Resolve(tc.lang))
		})
	}
}

func TestNewTextDerefsBase(t *testing.T) {
	assert.Equal(t, "", NewText(nil, nil, nil).Resolve(LangZH))
	assert.Equal(t, "desc", NewText(strPtr("desc"), nil, nil).Resolve(LangEN))
}

func TestMessageCatalog(t *testing.T) {
	require.Equal(t, "产品不存在", T(LangZH, "error.product_not_found"))
	require.Equal(t, "Product not found", T(LangEN, "error.product_not_found"))
	assert.Equal(t, "Position 3 is already occupied", Sprintf(LangEN, "error.position_occupied", 3))
	assert.Equal(t, "位置 3 已被占用", Sprintf(LangZH, "error.position_occupied", 3))
	assert.Equal(t, "unknown.key", T(LangEN, "unknown.key"))
	assert.Equal(t, "资源不存在", T(Lang("fr"), "error.not_found"))
}
