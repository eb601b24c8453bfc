package markup

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	once   sync.Once
	md     goldmark.Markdown
	policy *bluemonday.Policy
)

func setup() {
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	policy = bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span", "code", "pre")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
}

// RenderMarkdown 将 Markdown 渲染为经过清洗的 HTML，渲染失败时返回转义后的原文
func RenderMarkdown(source string) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	once.Do(setup)
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return policy.Sanitize(source)
	}
	return policy.Sanitize(buf.String())
}

// RenderMarkdownPtr 可空版本
func RenderMarkdownPtr(source *string) *string {
	if source == nil {
		return nil
	}
	rendered := RenderMarkdown(*source)
	return &rendered
}
