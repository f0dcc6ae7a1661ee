// Package site builds the Site Configuration: site-wide metadata, head tags,
// build plugins and the navigation layer placed over the theme configuration.
package site

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	berrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/tree"
)

// DefaultBase is the deployment base path when none is configured.
const DefaultBase = "/"

// Build normalizes and validates opts and returns the immutable site configuration.
func Build(opts Options) (*Config, error) {
	var built Options
	if err := tree.Decode(opts, &built); err != nil {
		return nil, berrors.InternalError("copying site options", err)
	}

	if built.Base == "" {
		built.Base = DefaultBase
	}
	if !strings.HasPrefix(built.Base, "/") || !strings.HasSuffix(built.Base, "/") {
		return nil, berrors.ValidationFailed("base", fmt.Sprintf("base %q must start and end with /", built.Base))
	}

	if built.Lang != "" {
		tag, err := language.Parse(built.Lang)
		if err != nil {
			return nil, berrors.ValidationFailed("lang", err.Error())
		}
		built.Lang = tag.String()
	}

	if err := validate(&built); err != nil {
		return nil, err
	}

	slog.Debug("Site configuration built",
		slog.String("title", built.Title),
		slog.Int("head_tags", len(built.Head)),
		slog.Int("nav_entries", len(built.ThemeConfig.Nav)))

	return &Config{opts: built}, nil
}

func validate(o *Options) error {
	for i, h := range o.Head {
		if err := h.validate(); err != nil {
			return berrors.ValidationFailed(fmt.Sprintf("head[%d]", i), err.Error())
		}
	}
	for i, p := range o.Vite.Plugins {
		if strings.TrimSpace(p.Name) == "" {
			return berrors.ConfigRequired(fmt.Sprintf("vite.plugins[%d].name", i))
		}
	}
	for i, n := range o.ThemeConfig.Nav {
		field := fmt.Sprintf("themeConfig.nav[%d]", i)
		if n.Text == "" {
			return berrors.ConfigRequired(field + ".text")
		}
		hasLink, hasItems := n.Link != "", len(n.Items) > 0
		if hasLink == hasItems {
			return berrors.ValidationFailed(field, "entry needs exactly one of link or items")
		}
		for j, child := range n.Items {
			if child.Text == "" || child.Link == "" {
				return berrors.ValidationFailed(fmt.Sprintf("%s.items[%d]", field, j), "child needs text and link")
			}
		}
	}
	for i, s := range o.ThemeConfig.SocialLinks {
		if s.Icon == "" || s.Link == "" {
			return berrors.ValidationFailed(fmt.Sprintf("themeConfig.socialLinks[%d]", i), "social link needs icon and link")
		}
	}
	if e := o.ThemeConfig.EditLink; e != nil {
		if n := strings.Count(e.Pattern, PathPlaceholder); n != 1 {
			return berrors.ValidationFailed("themeConfig.editLink.pattern",
				fmt.Sprintf("pattern must contain %s exactly once, found %d", PathPlaceholder, n))
		}
	}
	return nil
}
