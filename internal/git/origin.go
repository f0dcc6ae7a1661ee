package git

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DefaultBranch is used when HEAD cannot be resolved to a branch.
const DefaultBranch = "main"

// ErrNoOrigin is returned when the repository has no usable origin remote.
var ErrNoOrigin = errors.New("no origin remote")

// Origin describes where a repository is hosted.
type Origin struct {
	Host   string
	Owner  string // may contain subgroups ("group/sub")
	Name   string
	Branch string
	Forge  ForgeType
}

// FullName is "owner/name".
func (o Origin) FullName() string { return o.Owner + "/" + o.Name }

// WebURL is the repository's web address.
func (o Origin) WebURL() string { return "https://" + o.Host + "/" + o.FullName() }

// DetectOrigin opens the repository containing dir (searching parent
// directories) and describes its origin remote.
func DetectOrigin(dir string) (*Origin, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return nil, ErrNoOrigin
		}
		return nil, fmt.Errorf("read origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, ErrNoOrigin
	}

	origin, err := ParseRemoteURL(urls[0])
	if err != nil {
		return nil, err
	}
	origin.Branch = currentBranch(repo)
	return origin, nil
}

// currentBranch resolves HEAD without requiring a commit, so freshly
// initialized repositories report their unborn branch.
func currentBranch(repo *git.Repository) string {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return DefaultBranch
	}
	name := ref.Name()
	if ref.Type() == plumbing.SymbolicReference {
		name = ref.Target()
	}
	if !name.IsBranch() {
		return DefaultBranch
	}
	return name.Short()
}

// ParseRemoteURL understands scp-like (git@host:owner/name.git), https and
// ssh remote URLs. Branch is left at DefaultBranch.
func ParseRemoteURL(raw string) (*Origin, error) {
	raw = strings.TrimSpace(raw)
	var host, path string

	if !strings.Contains(raw, "://") {
		at := strings.LastIndex(raw, "@")
		colon := strings.Index(raw, ":")
		if colon <= at+1 {
			return nil, fmt.Errorf("unsupported remote URL %q", raw)
		}
		host = raw[at+1 : colon]
		path = raw[colon+1:]
	} else {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse remote URL %q: %w", raw, err)
		}
		switch u.Scheme {
		case "https", "http", "ssh", "git":
		default:
			return nil, fmt.Errorf("unsupported remote scheme %q", u.Scheme)
		}
		host = u.Hostname()
		path = u.Path
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	idx := strings.LastIndex(path, "/")
	if host == "" || idx <= 0 || idx == len(path)-1 {
		return nil, fmt.Errorf("remote URL %q does not name owner/repository", raw)
	}

	return &Origin{
		Host:   strings.ToLower(host),
		Owner:  path[:idx],
		Name:   path[idx+1:],
		Branch: DefaultBranch,
		Forge:  DetectForge(host),
	}, nil
}
