package site

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestHeadTag_UnmarshalArrayForm(t *testing.T) {
	src := `
- [link, {rel: icon, href: /favicon.ico}]
- [meta, {name: baidu-site-verification, content: codeva-123}]
- [script, {async: true, src: "https://example.com/ads.js"}, ""]
- [script, {}, "window.dataLayer = [];"]
`
	var tags []HeadTag
	require.NoError(t, yaml.Unmarshal([]byte(src), &tags))
	require.Len(t, tags, 4)
	require.Equal(t, "link", tags[0].Tag)
	require.Equal(t, []Attr{{"rel", "icon"}, {"href", "/favicon.ico"}}, tags[0].Attrs)
	require.Equal(t, []Attr{{"async", "true"}, {"src", "https://example.com/ads.js"}}, tags[2].Attrs)
	require.Equal(t, "window.dataLayer = [];", tags[3].Content)
}

func TestHeadTag_UnmarshalMappingForm(t *testing.T) {
	src := `
- tag: meta
  attrs:
    property: og:type
    content: website
- tag: title
  content: Blog
`
	var tags []HeadTag
	require.NoError(t, yaml.Unmarshal([]byte(src), &tags))
	require.Equal(t, "meta", tags[0].Tag)
	require.Equal(t, []Attr{{"property", "og:type"}, {"content", "website"}}, tags[0].Attrs)
	require.Equal(t, "Blog", tags[1].Content)
}

func TestHeadTag_UnmarshalErrors(t *testing.T) {
	for _, src := range []string{
		"- []",
		"- [a, {}, c, d]",
		"- [meta, notamap]",
		"- {tag: meta, extra: 1}",
		"- meta",
	} {
		var tags []HeadTag
		require.Error(t, yaml.Unmarshal([]byte(src), &tags), src)
	}
}

func TestHeadTag_MarshalRoundTrip(t *testing.T) {
	in := []HeadTag{
		Meta("name", "twitter:card", "content", "summary"),
		{Tag: "script", Attrs: []Attr{{"type", "application/ld+json"}}, Content: "{}"},
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out []HeadTag
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.Equal(t, in, out)
}
