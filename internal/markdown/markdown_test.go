package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderInline_UnwrapsSingleParagraph(t *testing.T) {
	out, err := RenderInline("**hi** [blog](https://example.com)")
	require.NoError(t, err)
	require.Equal(t, `<strong>hi</strong> <a href="https://example.com">blog</a>`, out)
}

func TestRenderInline_KeepsMultipleParagraphs(t *testing.T) {
	out, err := RenderInline("one\n\ntwo")
	require.NoError(t, err)
	require.Equal(t, "<p>one</p>\n<p>two</p>", out)
}

func TestRenderInline_PassesRawHTML(t *testing.T) {
	out, err := RenderInline(`<span class="x">raw</span>`)
	require.NoError(t, err)
	require.Equal(t, `<span class="x">raw</span>`, out)
}

func TestRenderAll_PreservesOrder(t *testing.T) {
	out, err := RenderAll([]string{"*a*", "b"})
	require.NoError(t, err)
	require.Equal(t, []string{"<em>a</em>", "b"}, out)
}
