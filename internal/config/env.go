package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/site"
)

// EnvFiles are tried in order; the first one present is loaded.
var EnvFiles = []string{".env", ".env.local"}

// LoadDotEnv loads the first existing file of EnvFiles from dir. Variables
// already set in the process environment are not overwritten. It returns the
// loaded path, or "" when none exists.
func LoadDotEnv(dir string) (string, error) {
	for _, name := range EnvFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("load %s: %w", path, err)
		}
		slog.Debug("Loaded environment file", logfields.Path(path))
		return path, nil
	}
	return "", nil
}

// Env is the process-level configuration read from BLOG_* variables.
type Env struct {
	// Base overrides the site base path, for deployments under a sub-path.
	Base         string `env:"BLOG_BASE"`
	DeployTarget string `env:"BLOG_DEPLOY_TARGET"`
	LogLevel     string `env:"BLOG_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"BLOG_LOG_FORMAT" envDefault:"text"`
}

// ParseEnv reads Env from the process environment.
func ParseEnv() (Env, error) {
	e, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("error getting env configs: %w", err)
	}
	return e, nil
}

// Apply layers environment overrides onto the site document.
func (e Env) Apply(opts *site.Options) {
	if e.Base != "" {
		slog.Debug("Site base overridden from environment", slog.String("base", e.Base))
		opts.Base = e.Base
	}
}
