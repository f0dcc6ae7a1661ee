package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Options is the set of recognized theme options. Keys follow the generator's
// camelCase naming so the rendered tree can be consumed verbatim.
type Options struct {
	Footer             Footer              `yaml:"footer"`
	Author             string              `yaml:"author,omitempty"`
	Friend             []FriendLink        `yaml:"friend,omitempty"`
	ButtonAfterArticle *ButtonAfterArticle `yaml:"buttonAfterArticle,omitempty"`
	Comment            *Comment            `yaml:"comment,omitempty"`
	Popover            *Popover            `yaml:"popover,omitempty"`
	ThemeColor         ThemeColor          `yaml:"themeColor,omitempty"`
	DarkTransition     *bool               `yaml:"darkTransition,omitempty"`
	Search             *bool               `yaml:"search,omitempty"`
	Mermaid            *bool               `yaml:"mermaid,omitempty"`
	RSS                *RSS                `yaml:"RSS,omitempty"`
}

// Footer is the page footer block.
type Footer struct {
	Copyright      string      `yaml:"copyright,omitempty"`
	ICPRecord      *RecordLink `yaml:"icpRecord,omitempty"`
	SecurityRecord *RecordLink `yaml:"securityRecord,omitempty"`
	Message        StringList  `yaml:"message,omitempty"`
	Version        *bool       `yaml:"version,omitempty"`
	// Markdown marks Message entries as Markdown to be rendered at build time.
	Markdown bool `yaml:"markdown,omitempty"`
}

// RecordLink is a (name, link) pair such as an ICP filing record.
type RecordLink struct {
	Name string `yaml:"name"`
	Link string `yaml:"link"`
}

// FriendLink is one entry of the friend-links page.
type FriendLink struct {
	Nickname string `yaml:"nickname"`
	Des      string `yaml:"des,omitempty"`
	Avatar   string `yaml:"avatar,omitempty"`
	URL      string `yaml:"url"`
}

// ButtonAfterArticle is the toggle button rendered below each article.
type ButtonAfterArticle struct {
	OpenTitle  string `yaml:"openTitle,omitempty"`
	CloseTitle string `yaml:"closeTitle,omitempty"`
	Content    string `yaml:"content,omitempty"`
	Icon       string `yaml:"icon,omitempty"`
}

// Comment holds the discussion-widget parameters, passed through verbatim.
type Comment struct {
	Repo          string        `yaml:"repo,omitempty"`
	RepoID        string        `yaml:"repoId,omitempty"`
	Category      string        `yaml:"category,omitempty"`
	CategoryID    string        `yaml:"categoryId,omitempty"`
	InputPosition InputPosition `yaml:"inputPosition,omitempty"`
}

// Popover is the announcement block.
type Popover struct {
	Title  string        `yaml:"title,omitempty"`
	Body   []PopoverItem `yaml:"body,omitempty"`
	Footer []PopoverItem `yaml:"footer,omitempty"`
	// Duration in milliseconds before auto-dismiss; 0 never dismisses.
	Duration int `yaml:"duration"`
}

// PopoverItem is a tagged body record; Type selects which fields apply.
type PopoverItem struct {
	Type    ItemType       `yaml:"type"`
	Content string         `yaml:"content,omitempty"`
	Src     string         `yaml:"src,omitempty"`
	Link    string         `yaml:"link,omitempty"`
	Style   string         `yaml:"style,omitempty"`
	Props   map[string]any `yaml:"props,omitempty"`
}

// RSS enables feed generation by the rss build plugin.
type RSS struct {
	Title       string `yaml:"title,omitempty"`
	BaseURL     string `yaml:"baseUrl"`
	Copyright   string `yaml:"copyright,omitempty"`
	Description string `yaml:"description,omitempty"`
	Language    string `yaml:"language,omitempty"`
	Image       string `yaml:"image,omitempty"`
	Favicon     string `yaml:"favicon,omitempty"`
	Filename    string `yaml:"filename,omitempty"`
}

// StringList accepts either a single string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

// Bool returns a pointer to b, for literal options.
func Bool(b bool) *bool { return &b }
