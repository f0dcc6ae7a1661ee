package site

import "git.home.luguber.info/inful/blogbuilder/internal/tree"

// Config is a built site configuration. It is immutable: accessors return copies.
type Config struct {
	opts Options
}

func (c *Config) Title() string       { return c.opts.Title }
func (c *Config) Description() string { return c.opts.Description }
func (c *Config) Lang() string        { return c.opts.Lang }
func (c *Config) Base() string        { return c.opts.Base }
func (c *Config) Extends() string     { return c.opts.Extends }

// Head returns the head directives in declaration order.
func (c *Config) Head() []HeadTag {
	out := make([]HeadTag, len(c.opts.Head))
	for i, h := range c.opts.Head {
		h.Attrs = append([]Attr(nil), h.Attrs...)
		out[i] = h
	}
	return out
}

// Plugins returns the site's build plugins in declaration order.
func (c *Config) Plugins() []Plugin {
	out := make([]Plugin, len(c.opts.Vite.Plugins))
	for i, p := range c.opts.Vite.Plugins {
		p.Options = tree.Clone(p.Options)
		out[i] = p
	}
	return out
}

// Nav returns the navigation entries in declaration order.
func (c *Config) Nav() []NavItem {
	out := make([]NavItem, len(c.opts.ThemeConfig.Nav))
	for i, n := range c.opts.ThemeConfig.Nav {
		n.Items = append([]NavLink(nil), n.Items...)
		out[i] = n
	}
	return out
}

// SocialLinks returns the social links in declaration order.
func (c *Config) SocialLinks() []SocialLink {
	return append([]SocialLink(nil), c.opts.ThemeConfig.SocialLinks...)
}

// EditLink returns the edit link configuration, or nil.
func (c *Config) EditLink() *EditLink {
	if c.opts.ThemeConfig.EditLink == nil {
		return nil
	}
	e := *c.opts.ThemeConfig.EditLink
	return &e
}

// Tree renders the configuration in the generator's shape. Extends is a
// loader concern and is not part of the tree.
func (c *Config) Tree() (map[string]any, error) {
	opts := c.opts
	opts.Extends = ""
	return tree.FromValue(opts)
}
