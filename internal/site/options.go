package site

import (
	"strings"
)

// Options is the site-level configuration document.
type Options struct {
	// Extends names the theme document this site layers over, relative to the site document.
	Extends     string      `yaml:"extends,omitempty"`
	Title       string      `yaml:"title,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Lang        string      `yaml:"lang,omitempty"`
	Base        string      `yaml:"base,omitempty"`
	Head        []HeadTag   `yaml:"head,omitempty"`
	Vite        Vite        `yaml:"vite,omitempty"`
	ThemeConfig ThemeConfig `yaml:"themeConfig,omitempty"`
}

// Vite carries build-plugin activations.
type Vite struct {
	Plugins []Plugin `yaml:"plugins,omitempty"`
}

// Plugin is an opaque build-plugin activation with literal options.
type Plugin struct {
	Name    string         `yaml:"name"`
	Options map[string]any `yaml:"options,omitempty"`
}

// ThemeConfig is the site's layer over the theme options. Keys not modelled
// here (friend, footer, ...) are kept in Overrides and win over the theme.
type ThemeConfig struct {
	Nav         []NavItem      `yaml:"nav,omitempty"`
	SocialLinks []SocialLink   `yaml:"socialLinks,omitempty"`
	EditLink    *EditLink      `yaml:"editLink,omitempty"`
	Author      string         `yaml:"author,omitempty"`
	Overrides   map[string]any `yaml:",inline"`
}

// NavItem is a navigation entry: a direct link or a one-level dropdown.
type NavItem struct {
	Text        string    `yaml:"text"`
	Link        string    `yaml:"link,omitempty"`
	ActiveMatch string    `yaml:"activeMatch,omitempty"`
	Items       []NavLink `yaml:"items,omitempty"`
}

// NavLink is a dropdown child; it cannot nest further.
type NavLink struct {
	Text        string `yaml:"text"`
	Link        string `yaml:"link"`
	ActiveMatch string `yaml:"activeMatch,omitempty"`
}

// IsDropdown reports whether the entry groups child links.
func (n NavItem) IsDropdown() bool { return len(n.Items) > 0 }

// SocialLink is an (icon, link) pair.
type SocialLink struct {
	Icon string `yaml:"icon"`
	Link string `yaml:"link"`
}

// EditLink configures the "edit this page" link.
type EditLink struct {
	Pattern string `yaml:"pattern"`
	Text    string `yaml:"text,omitempty"`
}

// PathPlaceholder is substituted with the page's source path.
const PathPlaceholder = ":path"

// URL substitutes relPath (slash separated, relative to the source root) into the pattern.
func (e EditLink) URL(relPath string) string {
	relPath = strings.TrimPrefix(strings.ReplaceAll(relPath, "\\", "/"), "/")
	return strings.Replace(e.Pattern, PathPlaceholder, relPath, 1)
}
