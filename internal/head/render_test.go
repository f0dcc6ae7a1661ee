package head

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogbuilder/internal/site"
)

func TestRender_DeclarationOrder(t *testing.T) {
	tags := []site.HeadTag{
		site.Meta("name", "theme-color", "content", "#3c8772"),
		site.Link("rel", "icon", "href", "/favicon.ico", "type", "image/svg+xml"),
		{Tag: "script", Attrs: []site.Attr{{Key: "async", Val: ""}, {Key: "src", Val: "https://example.com/a.js"}}},
	}

	var b strings.Builder
	require.NoError(t, Render(&b, tags))
	require.Equal(t,
		`<meta name="theme-color" content="#3c8772"/>`+"\n"+
			`<link rel="icon" href="/favicon.ico" type="image/svg+xml"/>`+"\n"+
			`<script async="" src="https://example.com/a.js"></script>`+"\n",
		b.String())
}

func TestRender_ContentEscaping(t *testing.T) {
	tags := []site.HeadTag{
		{Tag: "script", Content: "if (a < b && c) {}"},
		{Tag: "title", Content: "Tom & Jerry <3"},
	}

	var b strings.Builder
	require.NoError(t, Render(&b, tags))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Equal(t, []string{
		"<script>if (a < b && c) {}</script>",
		"<title>Tom &amp; Jerry &lt;3</title>",
	}, lines)
}

func TestRender_AttributeValuesEscaped(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Render(&b, []site.HeadTag{site.Meta("content", `say "hi"`)}))
	require.Equal(t, `<meta content="say &#34;hi&#34;"/>`+"\n", b.String())
}

func TestRender_Empty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Render(&b, nil))
	require.Empty(t, b.String())
}
