package theme

import (
	"strings"

	"git.home.luguber.info/inful/blogbuilder/internal/tree"
)

// Plugin is a build-plugin activation contributed by an enabled theme option.
type Plugin struct {
	Name    string         `yaml:"name"`
	Options map[string]any `yaml:"options,omitempty"`
}

// Config is a built theme configuration. It is immutable: accessors return copies.
type Config struct {
	opts Options
}

// Author returns the default attribution for content without explicit authorship.
func (c *Config) Author() string { return c.opts.Author }

// ThemeColor returns the selected palette.
func (c *Config) ThemeColor() ThemeColor { return c.opts.ThemeColor }

// Footer returns a copy of the footer block.
func (c *Config) Footer() Footer {
	f := c.opts.Footer
	f.Message = append(StringList(nil), c.opts.Footer.Message...)
	if r := c.opts.Footer.ICPRecord; r != nil {
		cp := *r
		f.ICPRecord = &cp
	}
	if r := c.opts.Footer.SecurityRecord; r != nil {
		cp := *r
		f.SecurityRecord = &cp
	}
	if v := c.opts.Footer.Version; v != nil {
		f.Version = Bool(*v)
	}
	return f
}

// Friends returns the friend links in declaration order.
func (c *Config) Friends() []FriendLink {
	return append([]FriendLink(nil), c.opts.Friend...)
}

// Options returns a deep copy of the built options.
func (c *Config) Options() Options {
	cp, err := clone(c.opts)
	if err != nil {
		// opts passed the same round trip in Build.
		panic(err)
	}
	return cp
}

// Plugins lists the build plugins implied by the enabled options, in a fixed order.
func (c *Config) Plugins() []Plugin {
	var plugins []Plugin
	if c.opts.Search != nil && *c.opts.Search {
		plugins = append(plugins, Plugin{Name: "pagefind"})
	}
	if c.opts.Mermaid != nil && *c.opts.Mermaid {
		plugins = append(plugins, Plugin{Name: "mermaid"})
	}
	if c.opts.RSS != nil {
		rss, _ := tree.FromValue(c.opts.RSS)
		plugins = append(plugins, Plugin{Name: "rss", Options: rss})
	}
	return plugins
}

// Tree renders the configuration in the generator's shape:
// options under themeConfig, implied plugins under vite.plugins and
// implied head tags under head.
func (c *Config) Tree() (map[string]any, error) {
	opts, err := tree.FromValue(c.opts)
	if err != nil {
		return nil, err
	}
	root := map[string]any{"themeConfig": opts}

	if plugins := c.Plugins(); len(plugins) > 0 {
		list := make([]any, 0, len(plugins))
		for _, p := range plugins {
			m, err := tree.FromValue(p)
			if err != nil {
				return nil, err
			}
			list = append(list, m)
		}
		root["vite"] = map[string]any{"plugins": list}
	}

	if c.opts.RSS != nil {
		root["head"] = []any{feedLink(c.opts.RSS)}
	}
	return root, nil
}

// feedLink is the alternate link the rss plugin's feed is discovered by.
func feedLink(r *RSS) []any {
	name := r.Filename
	if name == "" {
		name = "feed.rss"
	}
	attrs := map[string]any{
		"rel":  "alternate",
		"type": "application/rss+xml",
		"href": strings.TrimSuffix(r.BaseURL, "/") + "/" + name,
	}
	if r.Title != "" {
		attrs["title"] = r.Title
	}
	return []any{"link", attrs}
}

func clone(o Options) (Options, error) {
	var out Options
	if err := tree.Decode(o, &out); err != nil {
		return Options{}, err
	}
	return out, nil
}
