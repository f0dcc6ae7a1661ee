// Package config loads theme and site documents from disk and carries the
// process-level settings (environment, logging) around them.
package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	berrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/site"
	"git.home.luguber.info/inful/blogbuilder/internal/theme"
)

// Default document names, relative to the working directory.
const (
	DefaultSiteFile  = "site.yaml"
	DefaultThemeFile = "theme.yaml"
)

// Documents are the decoded theme and site documents of one blog.
type Documents struct {
	SitePath  string
	ThemePath string
	Site      site.Options
	Theme     theme.Options
}

// Load reads the site document and the theme document it extends. A
// non-empty themePath takes precedence over the site's extends key, which
// is resolved relative to the site document.
func Load(sitePath, themePath string) (*Documents, error) {
	st, err := LoadSite(sitePath)
	if err != nil {
		return nil, err
	}

	if themePath == "" {
		if st.Extends == "" {
			return nil, berrors.ConfigRequired("extends").WithContext("path", sitePath)
		}
		themePath = st.Extends
		if !filepath.IsAbs(themePath) {
			themePath = filepath.Join(filepath.Dir(sitePath), themePath)
		}
	}

	th, err := LoadTheme(themePath)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded configuration documents",
		logfields.Path(sitePath), slog.String("theme_path", themePath))
	return &Documents{SitePath: sitePath, ThemePath: themePath, Site: *st, Theme: *th}, nil
}

// Build validates both documents into immutable configurations.
func (d *Documents) Build() (*theme.Config, *site.Config, error) {
	th, err := theme.Build(d.Theme)
	if err != nil {
		return nil, nil, withPath(err, d.ThemePath)
	}
	st, err := site.Build(d.Site)
	if err != nil {
		return nil, nil, withPath(err, d.SitePath)
	}
	return th, st, nil
}

// LoadTheme reads a theme document.
func LoadTheme(path string) (*theme.Options, error) {
	var opts theme.Options
	if err := decodeFile(path, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// LoadSite reads a site document.
func LoadSite(path string) (*site.Options, error) {
	var opts site.Options
	if err := decodeFile(path, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// decodeFile expands set ${VAR} references and decodes strictly: keys the target
// does not know are errors. An empty document decodes to the zero value.
func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return berrors.ConfigNotFound(path)
		}
		return berrors.Wrap(err, berrors.CategoryFileSystem, berrors.SeverityFatal, "failed to read configuration").
			WithContext("path", path)
	}

	dec := yaml.NewDecoder(strings.NewReader(expandEnv(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return berrors.InvalidDocument(path, err)
	}
	return nil
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${NAME} with the value of a set environment variable.
// Unset references and any other $ text are kept as written.
func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		if v, ok := os.LookupEnv(ref[2 : len(ref)-1]); ok {
			return v
		}
		return ref
	})
}

func withPath(err error, path string) error {
	if be, ok := berrors.As(err); ok {
		if _, set := be.Context["path"]; !set {
			return be.WithContext("path", path)
		}
	}
	return err
}
