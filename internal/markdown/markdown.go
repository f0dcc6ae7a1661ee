// Package markdown renders short Markdown snippets (footer messages) to HTML.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// RenderInline converts src to HTML. A single paragraph is unwrapped so the
// result can be embedded in an existing element.
func RenderInline(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}

// RenderAll renders each entry with RenderInline, preserving order.
func RenderAll(entries []string) ([]string, error) {
	out := make([]string, 0, len(entries))
	for i, e := range entries {
		r, err := RenderInline(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}
