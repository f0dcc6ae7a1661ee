// Package compose layers a site configuration over the theme configuration it
// extends and produces the framework-consumable result.
package compose

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	berrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
	"git.home.luguber.info/inful/blogbuilder/internal/site"
	"git.home.luguber.info/inful/blogbuilder/internal/theme"
	"git.home.luguber.info/inful/blogbuilder/internal/tree"
	"git.home.luguber.info/inful/blogbuilder/internal/version"
)

// MetaKey holds build metadata in the resolved tree.
const MetaKey = "buildMeta"

// Option configures Compose.
type Option func(*composer)

type composer struct {
	merge        MergeOptions
	recorder     metrics.Recorder
	now          func() time.Time
	newID        func() string
	deployTarget string
	withMeta     bool
}

// WithAppendPaths replaces DefaultAppendPaths.
func WithAppendPaths(paths ...string) Option {
	return func(c *composer) { c.merge.AppendPaths = paths }
}

// WithRecorder reports compose metrics to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *composer) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithDeployTarget records the deployment target in the build metadata.
func WithDeployTarget(target string) Option {
	return func(c *composer) { c.deployTarget = target }
}

// WithoutMeta omits the build metadata block.
func WithoutMeta() Option {
	return func(c *composer) { c.withMeta = false }
}

// WithClock overrides the clock and id source, for reproducible output.
func WithClock(now func() time.Time, newID func() string) Option {
	return func(c *composer) {
		c.now = now
		c.newID = newID
	}
}

// Compose merges st over th. Site keys win on conflict.
func Compose(ctx context.Context, th *theme.Config, st *site.Config, opts ...Option) (*Resolved, error) {
	c := &composer{
		merge:    MergeOptions{AppendPaths: DefaultAppendPaths},
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
		withMeta: true,
	}
	for _, o := range opts {
		o(c)
	}

	start := c.now()
	res, err := c.compose(ctx, th, st)
	c.recorder.ObserveComposeDuration(c.now().Sub(start))
	if err != nil {
		c.recorder.IncComposeOutcome(metrics.OutcomeFailed)
		return nil, err
	}
	c.recorder.IncComposeOutcome(metrics.OutcomeSuccess)
	c.recorder.SetOverrides(res.overrides)

	slog.Info("Configuration composed",
		logfields.BuildID(res.buildID),
		logfields.Overrides(res.overrides),
		logfields.DurationMS(float64(c.now().Sub(start).Microseconds())/1000))
	return res, nil
}

func (c *composer) compose(ctx context.Context, th *theme.Config, st *site.Config) (*Resolved, error) {
	if err := ctx.Err(); err != nil {
		return nil, berrors.Wrap(err, berrors.CategoryRuntime, berrors.SeverityError, "compose canceled")
	}
	if th == nil || st == nil {
		return nil, berrors.InternalError("compose needs both theme and site configuration", nil)
	}

	base, err := th.Tree()
	if err != nil {
		return nil, berrors.InternalError("rendering theme tree", err)
	}
	override, err := st.Tree()
	if err != nil {
		return nil, berrors.InternalError("rendering site tree", err)
	}

	merged, n := Merge(base, override, c.merge)

	head, err := c.mergeHead(base, st)
	if err != nil {
		return nil, berrors.InternalError("decoding theme head", err)
	}

	id := c.newID()
	if c.withMeta {
		merged[MetaKey] = map[string]any{
			"buildId":     id,
			"generatedAt": c.now().UTC().Format(time.RFC3339),
			"generator":   "blogbuilder " + version.Version,
		}
		if c.deployTarget != "" {
			merged[MetaKey].(map[string]any)["deployTarget"] = c.deployTarget
		}
	}
	return &Resolved{tree: merged, head: head, overrides: n, buildID: id}, nil
}

// mergeHead mirrors the tree's head rule on typed tags, which keep attribute
// declaration order that the generic tree cannot.
func (c *composer) mergeHead(base map[string]any, st *site.Config) ([]site.HeadTag, error) {
	var themeHead []site.HeadTag
	if v, ok := base["head"]; ok {
		if err := tree.Decode(v, &themeHead); err != nil {
			return nil, err
		}
	}
	siteHead := st.Head()
	if len(siteHead) == 0 {
		return themeHead, nil
	}
	for _, p := range c.merge.AppendPaths {
		if p == "head" {
			return append(themeHead, siteHead...), nil
		}
	}
	return siteHead, nil
}

// Format selects the encoding of a resolved configuration.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Resolved is the composed configuration. It is immutable.
type Resolved struct {
	tree      map[string]any
	head      []site.HeadTag
	overrides int
	buildID   string
}

// Tree returns a deep copy of the composed tree.
func (r *Resolved) Tree() map[string]any { return tree.Clone(r.tree) }

// Overrides is the number of theme values replaced by the site.
func (r *Resolved) Overrides() int { return r.overrides }

// BuildID identifies this composition.
func (r *Resolved) BuildID() string { return r.buildID }

// Author is the effective default attribution.
func (r *Resolved) Author() string {
	v, _ := tree.Lookup(r.tree, "themeConfig.author")
	s, _ := v.(string)
	return s
}

// Nav decodes the effective navigation.
func (r *Resolved) Nav() ([]site.NavItem, error) {
	var nav []site.NavItem
	if v, ok := tree.Lookup(r.tree, "themeConfig.nav"); ok {
		if err := tree.Decode(v, &nav); err != nil {
			return nil, err
		}
	}
	return nav, nil
}

// Head returns the effective head directives in output order.
func (r *Resolved) Head() []site.HeadTag {
	out := make([]site.HeadTag, len(r.head))
	for i, h := range r.head {
		h.Attrs = append([]site.Attr(nil), h.Attrs...)
		out[i] = h
	}
	return out
}

// Decode populates out from the subtree at a dotted path ("" for the root).
func (r *Resolved) Decode(path string, out any) error {
	if path == "" {
		return tree.Decode(r.tree, out)
	}
	v, ok := tree.Lookup(r.tree, path)
	if !ok {
		return fmt.Errorf("path %q not present", path)
	}
	return tree.Decode(v, out)
}

// Encode writes the composed tree to w.
func (r *Resolved) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(r.tree); err != nil {
			return berrors.InternalError("encoding composed configuration", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.tree); err != nil {
			return berrors.InternalError("encoding composed configuration", err)
		}
		if err := enc.Close(); err != nil {
			return berrors.InternalError("encoding composed configuration", err)
		}
		return nil
	default:
		return berrors.ValidationFailed("format", fmt.Sprintf("unsupported output format %q", format))
	}
}
