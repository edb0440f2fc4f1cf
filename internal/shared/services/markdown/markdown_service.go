// Package markdown renders model-written markdown to safe HTML and strips
// markup from user-submitted text.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type Renderer interface {
	// ToHTMLSanitized renders markdown and passes the HTML through a UGC policy.
	ToHTMLSanitized(markdown string) (string, error)
	// StripTags removes every HTML element, keeping text content.
	StripTags(text string) string
}

type renderer struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)

	ugc := bluemonday.UGCPolicy()
	ugc.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre")
	ugc.RequireNoFollowOnLinks(true)
	ugc.AddTargetBlankToFullyQualifiedLinks(true)

	return &renderer{md: md, ugc: ugc, strict: bluemonday.StrictPolicy()}
}

func (r *renderer) ToHTMLSanitized(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return r.ugc.Sanitize(buf.String()), nil
}

func (r *renderer) StripTags(text string) string {
	// StrictPolicy escapes entities; stored text is plain, so undo that.
	return strings.TrimSpace(html.UnescapeString(r.strict.Sanitize(text)))
}
