// Package theme builds the Theme Configuration: the reusable bundle of blog
// theme options that a site configuration extends.
package theme

import (
	"fmt"
	"log/slog"
	"strings"

	"dario.cat/mergo"

	berrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/markdown"
)

// Defaults returns the option values applied to every unset option.
func Defaults() Options {
	return Options{
		Footer:         Footer{Version: Bool(true)},
		ThemeColor:     ColorVPDefault,
		DarkTransition: Bool(true),
		Search:         Bool(true),
		Mermaid:        Bool(false),
	}
}

// Build applies defaults to opts, normalizes and validates it, and returns
// the immutable theme configuration. opts is not modified.
func Build(opts Options) (*Config, error) {
	built, err := clone(opts)
	if err != nil {
		return nil, berrors.InternalError("copying theme options", err)
	}

	defaults := Defaults()
	// WithoutDereference keeps an explicit false from being replaced by a true default.
	if err := mergo.Merge(&built, &defaults, mergo.WithoutDereference); err != nil {
		return nil, berrors.InternalError("applying theme defaults", err)
	}

	if err := normalize(&built); err != nil {
		return nil, err
	}
	if err := validate(&built); err != nil {
		return nil, err
	}

	slog.Debug("Theme configuration built",
		slog.String("author", built.Author),
		slog.String("theme_color", string(built.ThemeColor)),
		slog.Int("friends", len(built.Friend)))

	return &Config{opts: built}, nil
}

func normalize(o *Options) error {
	color, err := themeColors.Resolve(string(o.ThemeColor))
	if err != nil {
		return berrors.ValidationFailed("themeColor", err.Error())
	}
	o.ThemeColor = color

	if strings.TrimSpace(o.Footer.Copyright) == "" && strings.TrimSpace(o.Author) != "" {
		o.Footer.Copyright = "Copyright © " + strings.TrimSpace(o.Author)
		slog.Debug("Defaulted footer copyright from author", logfields.Field("footer.copyright"))
	}

	if o.Footer.Markdown && len(o.Footer.Message) > 0 {
		rendered, err := markdown.RenderAll(o.Footer.Message)
		if err != nil {
			return berrors.ValidationFailed("footer.message", err.Error())
		}
		o.Footer.Message = rendered
	}
	o.Footer.Markdown = false

	if o.Comment != nil {
		pos, err := inputPositions.Resolve(string(o.Comment.InputPosition))
		if err != nil {
			return berrors.ValidationFailed("comment.inputPosition", err.Error())
		}
		o.Comment.InputPosition = pos
	}

	if o.Popover != nil {
		lists := []struct {
			field string
			items []PopoverItem
		}{{"popover.body", o.Popover.Body}, {"popover.footer", o.Popover.Footer}}
		for _, l := range lists {
			items := l.items
			for i := range items {
				typ, err := itemTypes.Resolve(string(items[i].Type))
				if err != nil {
					return berrors.ValidationFailed(fmt.Sprintf("%s[%d].type", l.field, i), err.Error())
				}
				items[i].Type = typ
			}
		}
	}
	return nil
}

func validate(o *Options) error {
	if strings.TrimSpace(o.Footer.Copyright) == "" {
		return berrors.ConfigRequired("footer.copyright")
	}
	if err := validateRecord("footer.icpRecord", o.Footer.ICPRecord); err != nil {
		return err
	}
	if err := validateRecord("footer.securityRecord", o.Footer.SecurityRecord); err != nil {
		return err
	}
	if o.Popover != nil {
		if o.Popover.Duration < 0 {
			return berrors.ValidationFailed("popover.duration", "duration must not be negative")
		}
		if err := validateItems("popover.body", o.Popover.Body); err != nil {
			return err
		}
		if err := validateItems("popover.footer", o.Popover.Footer); err != nil {
			return err
		}
	}
	if o.RSS != nil && strings.TrimSpace(o.RSS.BaseURL) == "" {
		return berrors.ConfigRequired("RSS.baseUrl")
	}
	return nil
}

func validateRecord(field string, r *RecordLink) error {
	if r == nil {
		return nil
	}
	if r.Name == "" || r.Link == "" {
		return berrors.ValidationFailed(field, "record needs both name and link")
	}
	return nil
}

func validateItems(field string, items []PopoverItem) error {
	for i, it := range items {
		name := fmt.Sprintf("%s[%d]", field, i)
		switch it.Type {
		case ItemText:
			if it.Content == "" {
				return berrors.ConfigRequired(name + ".content")
			}
		case ItemImage:
			if it.Src == "" {
				return berrors.ConfigRequired(name + ".src")
			}
		case ItemButton:
			if it.Content == "" || it.Link == "" {
				return berrors.ValidationFailed(name, "button needs content and link")
			}
		default:
			return berrors.ConfigRequired(name + ".type")
		}
	}
	return nil
}
