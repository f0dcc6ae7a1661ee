// Package head renders head directives as an HTML fragment.
package head

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/blogbuilder/internal/site"
)

// Render writes one element per line in declaration order. Attributes keep
// their declared order. Script and style content is written verbatim; other
// content is escaped.
func Render(w io.Writer, tags []site.HeadTag) error {
	for i, t := range tags {
		if err := html.Render(w, node(t)); err != nil {
			return fmt.Errorf("render head tag %d <%s>: %w", i, t.Tag, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func node(t site.HeadTag) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     t.Tag,
		DataAtom: atom.Lookup([]byte(t.Tag)),
	}
	for _, a := range t.Attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if t.Content != "" {
		// html.Render writes children of raw-text elements (script, style) unescaped.
		n.AppendChild(&html.Node{Type: html.TextNode, Data: t.Content})
	}
	return n
}
