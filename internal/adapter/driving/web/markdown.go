package web

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdRenderer       goldmark.Markdown
	tooltipSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	// Tooltips hold short inline descriptions; block layout and media are stripped.
	tooltipSanitizer = bluemonday.NewPolicy()
	tooltipSanitizer.AllowElements("b", "strong", "i", "em", "del", "code", "br", "p", "ul", "ol", "li")
	tooltipSanitizer.AllowStandardURLs()
	tooltipSanitizer.AllowAttrs("href").OnElements("a")
	tooltipSanitizer.RequireNoFollowOnLinks(true)
}

// RenderMarkdown converts a training type description written in markdown to
// sanitized HTML suitable for a tooltip. Returns empty string for empty input.
func RenderMarkdown(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return tooltipSanitizer.Sanitize(src)
	}

	return strings.TrimSpace(tooltipSanitizer.Sanitize(buf.String()))
}
