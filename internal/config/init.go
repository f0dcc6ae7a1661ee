package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	berrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/git"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/site"
	"git.home.luguber.info/inful/blogbuilder/internal/theme"
)

// ContentDir is the repository directory the example edit link points into.
const ContentDir = "docs"

// Init writes example theme and site documents into dir. Existing files are
// only replaced with force. When origin is known, the comment repository,
// social link and edit link point at it. It returns the written paths.
func Init(dir string, force bool, origin *git.Origin) ([]string, error) {
	themePath := filepath.Join(dir, DefaultThemeFile)
	sitePath := filepath.Join(dir, DefaultSiteFile)

	if !force {
		for _, p := range []string{themePath, sitePath} {
			if _, err := os.Stat(p); err == nil {
				return nil, berrors.New(berrors.CategoryConfig, berrors.SeverityFatal,
					"configuration file already exists (use --force to overwrite)").WithContext("path", p)
			} else if !errors.Is(err, os.ErrNotExist) {
				return nil, berrors.Wrap(err, berrors.CategoryFileSystem, berrors.SeverityFatal, "failed to stat configuration").
					WithContext("path", p)
			}
		}
	}

	th := ExampleTheme(origin)
	st := ExampleSite(origin)
	st.Extends = DefaultThemeFile

	for _, doc := range []struct {
		path string
		v    any
	}{{themePath, th}, {sitePath, st}} {
		data, err := marshal(doc.v)
		if err != nil {
			return nil, berrors.InternalError("failed to marshal example configuration", err)
		}
		if err := os.WriteFile(doc.path, data, 0o644); err != nil {
			return nil, berrors.FileWrite(doc.path, err)
		}
		slog.Info("Wrote example configuration", logfields.Path(doc.path))
	}
	return []string{themePath, sitePath}, nil
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExampleTheme is a complete theme document for a new blog.
func ExampleTheme(origin *git.Origin) theme.Options {
	repo := "your-name/your-blog"
	if origin != nil {
		repo = origin.FullName()
	}
	return theme.Options{
		DarkTransition: theme.Bool(true),
		Footer: theme.Footer{
			Copyright: "Blog Created by YGKing | 2018-2024",
			ICPRecord: &theme.RecordLink{
				Name: "湘ICP备2020023751号-1",
				Link: "https://beian.miit.gov.cn/",
			},
		},
		ThemeColor: theme.ColorELBlue,
		Author:     "YGKing",
		Friend: []theme.FriendLink{
			{
				Nickname: "Mrack",
				Des:      "Mrack's Blog",
				Avatar:   "https://blog.mrack.cn/img/tx.jpg",
				URL:      "https://blog.mrack.cn/",
			},
		},
		ButtonAfterArticle: &theme.ButtonAfterArticle{
			OpenTitle:  "赞赏",
			CloseTitle: "下次一定",
			Content:    `<img src="https://ldjun-nest.oss-cn-shenzhen.aliyuncs.com/pay.jpg">`,
			Icon:       "wechatPay",
		},
		Comment: &theme.Comment{
			Repo:          repo,
			RepoID:        "${GISCUS_REPO_ID}",
			Category:      "Announcements",
			CategoryID:    "${GISCUS_CATEGORY_ID}",
			InputPosition: theme.InputTop,
		},
	}
}

// ExampleSite is a site document layered over ExampleTheme.
func ExampleSite(origin *git.Origin) site.Options {
	opts := site.Options{
		Title:       "YGKing's Blog",
		Description: "Notes on front-end engineering",
		Lang:        "zh-CN",
		Base:        site.DefaultBase,
		Head: []site.HeadTag{
			site.Link("rel", "icon", "href", "/favicon.ico"),
			site.Meta("name", "theme-color", "content", "#3c8772"),
		},
		ThemeConfig: site.ThemeConfig{
			Nav: []site.NavItem{
				{Text: "首页", Link: "/"},
				{Text: "关于作者", Items: []site.NavLink{
					{Text: "掘金", Link: "https://juejin.cn/"},
					{Text: "GitHub", Link: "https://github.com/"},
				}},
			},
		},
	}
	if origin != nil {
		opts.ThemeConfig.SocialLinks = []site.SocialLink{{Icon: "github", Link: origin.WebURL()}}
		if pattern := origin.EditPattern(ContentDir); pattern != "" {
			opts.ThemeConfig.EditLink = &site.EditLink{Pattern: pattern, Text: "Edit this page"}
		}
	}
	return opts
}
