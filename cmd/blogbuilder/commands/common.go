package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogbuilder/internal/compose"
	"git.home.luguber.info/inful/blogbuilder/internal/config"
	berrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/foundation/normalization"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Site    string           `short:"s" help:"Site configuration document" default:"site.yaml" type:"path"`
	Theme   string           `short:"t" help:"Theme document; overrides the site's extends key" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd   `cmd:"" help:"Write the composed configuration and head fragment"`
	Head  HeadCmd    `cmd:"" help:"Print the rendered head fragment"`
	Init  InitCmd    `cmd:"" help:"Write example theme and site documents"`
	Watch WatchCmd   `cmd:"" help:"Rebuild on change and serve a live preview of the configuration"`
	About VersionCmd `cmd:"" name:"version" help:"Print version information"`

	env config.Env
}

// AfterApply runs after flag parsing: loads .env, reads BLOG_* variables and
// sets up logging once. --verbose takes precedence over BLOG_LOG_LEVEL.
func (c *CLI) AfterApply() error {
	if _, err := config.LoadDotEnv(""); err != nil {
		return berrors.Wrap(err, berrors.CategoryConfig, berrors.SeverityFatal, "failed to load environment file")
	}
	env, err := config.ParseEnv()
	if err != nil {
		return berrors.Wrap(err, berrors.CategoryConfig, berrors.SeverityFatal, "invalid environment")
	}
	c.env = env

	level := config.NormalizeLogLevel(env.LogLevel)
	if c.Verbose {
		level = config.LogLevelDebug
	}
	slog.SetDefault(config.NewLogger(os.Stderr, level, config.NormalizeLogFormat(env.LogFormat)))
	return nil
}

// resolve loads, builds and composes the configured documents.
func (c *CLI) resolve(ctx context.Context, rec metrics.Recorder) (*config.Documents, *compose.Resolved, error) {
	docs, err := config.Load(c.Site, c.Theme)
	if err != nil {
		return nil, nil, err
	}
	c.env.Apply(&docs.Site)

	th, st, err := docs.Build()
	if err != nil {
		return docs, nil, err
	}

	opts := []compose.Option{compose.WithRecorder(rec)}
	if c.env.DeployTarget != "" {
		opts = append(opts, compose.WithDeployTarget(c.env.DeployTarget))
	}
	res, err := compose.Compose(ctx, th, st, opts...)
	if err != nil {
		return docs, nil, err
	}
	return docs, res, nil
}

var formats = normalization.NewNormalizer("format", map[string]compose.Format{
	"json": compose.FormatJSON,
	"yaml": compose.FormatYAML,
	"yml":  compose.FormatYAML,
}, compose.FormatJSON)

// outputFormat picks the explicit format, else the one implied by path's extension.
func outputFormat(flag, path string) (compose.Format, error) {
	if flag == "" {
		flag = strings.TrimPrefix(filepath.Ext(path), ".")
		return formats.Normalize(flag), nil
	}
	f, err := formats.Resolve(flag)
	if err != nil {
		return "", berrors.ValidationFailed("format", err.Error())
	}
	return f, nil
}

// writeOutputs writes the configuration document and, when headPath is set,
// the head fragment. Files are replaced atomically.
func writeOutputs(res *compose.Resolved, outPath string, format compose.Format, headPath string) error {
	if err := writeAtomic(outPath, func(f *os.File) error { return res.Encode(f, format) }); err != nil {
		return err
	}
	slog.Info("Wrote configuration", logfields.Path(outPath), logfields.Format(string(format)), logfields.BuildID(res.BuildID()))

	if headPath == "" {
		return nil
	}
	if err := writeAtomic(headPath, func(f *os.File) error { return renderHead(f, res) }); err != nil {
		return err
	}
	slog.Info("Wrote head fragment", logfields.Path(headPath), slog.Int("tags", len(res.Head())))
	return nil
}

func writeAtomic(path string, write func(f *os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return berrors.FileWrite(path, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return berrors.FileWrite(path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		if _, ok := berrors.As(err); ok {
			return err
		}
		return berrors.FileWrite(path, err)
	}
	if err := tmp.Close(); err != nil {
		return berrors.FileWrite(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return berrors.FileWrite(path, fmt.Errorf("rename: %w", err))
	}
	return nil
}
