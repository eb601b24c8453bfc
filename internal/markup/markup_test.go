package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("# 标题\n\n**bold** text")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := RenderMarkdown("hello <script>alert(1)</script>\n\n[x](javascript:alert(1))")
	assert.NotContains(t, strings.ToLower(out), "<script")
	assert.NotContains(t, strings.ToLower(out), "javascript:")
}

func TestRenderMarkdownHardWraps(t *testing.T) {
	out := RenderMarkdown("line one\nline two")
	assert.Contains(t, out, "<br")
}

func TestRenderMarkdownEmpty(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown("   "))
	assert.Nil(t, RenderMarkdownPtr(nil))
}
