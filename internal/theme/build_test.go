package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	berrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/tree"
)

func blogOptions() Options {
	return Options{
		DarkTransition: Bool(true),
		Footer: Footer{
			Copyright: "Blog Created by YGKing | 2018-2024",
			ICPRecord: &RecordLink{Name: "湘ICP备2020023751号-1", Link: "https://beian.miit.gov.cn/"},
		},
		ThemeColor: "el-blue",
		Author:     "YGKing",
		Friend: []FriendLink{
			{Nickname: "Mrack", Des: "Mrack's Blog", Avatar: "https://blog.mrack.cn/img/tx.jpg", URL: "https://blog.mrack.cn/"},
		},
		ButtonAfterArticle: &ButtonAfterArticle{
			OpenTitle:  "赞赏",
			CloseTitle: "下次一定",
			Content:    `<img src="https://example.com/pay.jpg">`,
			Icon:       "wechatPay",
		},
		Comment: &Comment{
			Repo:          "liudonjun/ygking-blog",
			RepoID:        "R_kgDOMxPqFg",
			Category:      "Announcements",
			CategoryID:    "DIC_kwDOMxPqFs4CjVuR",
			InputPosition: "top",
		},
	}
}

func TestBuild_CopyrightNonEmpty(t *testing.T) {
	cfg, err := Build(blogOptions())
	require.NoError(t, err)
	require.Equal(t, "Blog Created by YGKing | 2018-2024", cfg.Footer().Copyright)
}

func TestBuild_CopyrightDefaultsFromAuthor(t *testing.T) {
	cfg, err := Build(Options{Author: "YGKing"})
	require.NoError(t, err)
	require.Equal(t, "Copyright © YGKing", cfg.Footer().Copyright)
}

func TestBuild_CopyrightRequired(t *testing.T) {
	_, err := Build(Options{})
	require.Error(t, err)
	require.True(t, berrors.IsCategory(err, berrors.CategoryValidation))
	require.Contains(t, err.Error(), "footer.copyright")
}

func TestBuild_FriendOrderPreserved(t *testing.T) {
	opts := blogOptions()
	opts.Friend = []FriendLink{
		{Nickname: "A", URL: "https://a.example"},
		{Nickname: "B", URL: "https://b.example"},
		{Nickname: "A", URL: "https://a.example"},
	}
	cfg, err := Build(opts)
	require.NoError(t, err)

	friends := cfg.Friends()
	require.Len(t, friends, 3)
	assert.Equal(t, "A", friends[0].Nickname)
	assert.Equal(t, "B", friends[1].Nickname)
	assert.Equal(t, "A", friends[2].Nickname)
}

func TestBuild_Defaults(t *testing.T) {
	cfg, err := Build(Options{Footer: Footer{Copyright: "c"}})
	require.NoError(t, err)

	o := cfg.Options()
	require.Equal(t, ColorVPDefault, o.ThemeColor)
	require.True(t, *o.DarkTransition)
	require.True(t, *o.Search)
	require.False(t, *o.Mermaid)
	require.True(t, *o.Footer.Version)
}

func TestBuild_ExplicitFalseSurvivesDefaults(t *testing.T) {
	cfg, err := Build(Options{
		Footer:         Footer{Copyright: "c", Version: Bool(false)},
		DarkTransition: Bool(false),
		Search:         Bool(false),
	})
	require.NoError(t, err)

	o := cfg.Options()
	require.False(t, *o.DarkTransition)
	require.False(t, *o.Search)
	require.False(t, *o.Footer.Version)
	require.Empty(t, cfg.Plugins())
}

func TestBuild_DoesNotModifyInput(t *testing.T) {
	opts := Options{Author: "me"}
	_, err := Build(opts)
	require.NoError(t, err)
	require.Empty(t, opts.Footer.Copyright)
	require.Nil(t, opts.Search)
}

func TestBuild_EnumNormalization(t *testing.T) {
	opts := blogOptions()
	opts.ThemeColor = " EL-Blue "
	opts.Comment.InputPosition = "Bottom"
	cfg, err := Build(opts)
	require.NoError(t, err)
	require.Equal(t, ColorELBlue, cfg.ThemeColor())
	require.Equal(t, InputBottom, cfg.Options().Comment.InputPosition)

	opts.Comment.InputPosition = ""
	cfg, err = Build(opts)
	require.NoError(t, err)
	require.Equal(t, InputTop, cfg.Options().Comment.InputPosition)
}

func TestBuild_RejectsUnknownEnums(t *testing.T) {
	opts := blogOptions()
	opts.ThemeColor = "purple"
	_, err := Build(opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "themeColor")

	opts = blogOptions()
	opts.Comment.InputPosition = "left"
	_, err = Build(opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "comment.inputPosition")
}

func TestBuild_Popover(t *testing.T) {
	opts := blogOptions()
	opts.Popover = &Popover{
		Title: "公告",
		Body: []PopoverItem{
			{Type: "text", Content: "欢迎"},
			{Type: "IMAGE", Src: "https://example.com/qr.webp"},
			{Type: "button", Content: "作者博客", Link: "https://sugarat.top", Props: map[string]any{"type": "success"}},
		},
		Duration: 0,
	}
	cfg, err := Build(opts)
	require.NoError(t, err)

	body := cfg.Options().Popover.Body
	require.Len(t, body, 3)
	require.Equal(t, ItemImage, body[1].Type)
	require.Equal(t, "success", body[2].Props["type"])
	require.Equal(t, 0, cfg.Options().Popover.Duration)
}

func TestBuild_PopoverValidation(t *testing.T) {
	cases := []struct {
		name  string
		pop   Popover
		field string
	}{
		{"negative duration", Popover{Duration: -1}, "popover.duration"},
		{"missing type", Popover{Body: []PopoverItem{{Content: "x"}}}, "popover.body[0].type"},
		{"unknown type", Popover{Body: []PopoverItem{{Type: "video"}}}, "popover.body[0].type"},
		{"unknown footer type", Popover{Footer: []PopoverItem{{Type: "text", Content: "x"}, {Type: "video"}}}, "popover.footer[1].type"},
		{"text without content", Popover{Body: []PopoverItem{{Type: "text"}}}, "popover.body[0].content"},
		{"image without src", Popover{Footer: []PopoverItem{{Type: "image"}}}, "popover.footer[0].src"},
		{"button without link", Popover{Body: []PopoverItem{{Type: "button", Content: "go"}}}, "popover.body[0]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := blogOptions()
			pop := c.pop
			opts.Popover = &pop
			_, err := Build(opts)
			require.Error(t, err)
			be, ok := berrors.As(err)
			require.True(t, ok)
			require.Equal(t, c.field, be.Context["field"])
		})
	}
}

func TestBuild_RecordNeedsNameAndLink(t *testing.T) {
	opts := blogOptions()
	opts.Footer.SecurityRecord = &RecordLink{Name: "公网安备"}
	_, err := Build(opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "footer.securityRecord")
}

func TestBuild_MarkdownFooterMessages(t *testing.T) {
	opts := blogOptions()
	opts.Footer.Message = StringList{"**bold**", "plain"}
	opts.Footer.Markdown = true
	cfg, err := Build(opts)
	require.NoError(t, err)
	require.Equal(t, StringList{"<strong>bold</strong>", "plain"}, cfg.Footer().Message)
	require.False(t, cfg.Footer().Markdown)
}

func TestConfig_AccessorsReturnCopies(t *testing.T) {
	cfg, err := Build(blogOptions())
	require.NoError(t, err)

	friends := cfg.Friends()
	friends[0].Nickname = "changed"
	footer := cfg.Footer()
	footer.ICPRecord.Name = "changed"
	o := cfg.Options()
	o.Comment.Repo = "changed"

	require.Equal(t, "Mrack", cfg.Friends()[0].Nickname)
	require.Equal(t, "湘ICP备2020023751号-1", cfg.Footer().ICPRecord.Name)
	require.Equal(t, "liudonjun/ygking-blog", cfg.Options().Comment.Repo)
}

func TestConfig_Tree(t *testing.T) {
	opts := blogOptions()
	opts.RSS = &RSS{Title: "粥里有勺糖", BaseURL: "https://sugarat.top/", Language: "zh-cn"}
	cfg, err := Build(opts)
	require.NoError(t, err)

	root, err := cfg.Tree()
	require.NoError(t, err)

	author, ok := tree.Lookup(root, "themeConfig.author")
	require.True(t, ok)
	require.Equal(t, "YGKing", author)

	repo, ok := tree.Lookup(root, "themeConfig.comment.repoId")
	require.True(t, ok)
	require.Equal(t, "R_kgDOMxPqFg", repo)

	plugins, ok := tree.Lookup(root, "vite.plugins")
	require.True(t, ok)
	list := plugins.([]any)
	require.Len(t, list, 2)
	require.Equal(t, "pagefind", list[0].(map[string]any)["name"])
	require.Equal(t, "rss", list[1].(map[string]any)["name"])
	require.Equal(t, "https://sugarat.top/", list[1].(map[string]any)["options"].(map[string]any)["baseUrl"])

	head := root["head"].([]any)
	require.Len(t, head, 1)
	link := head[0].([]any)
	require.Equal(t, "link", link[0])
	require.Equal(t, "https://sugarat.top/feed.rss", link[1].(map[string]any)["href"])
}

func TestBuild_RSSNeedsBaseURL(t *testing.T) {
	opts := blogOptions()
	opts.RSS = &RSS{Title: "feed"}
	_, err := Build(opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "RSS.baseUrl")
}
