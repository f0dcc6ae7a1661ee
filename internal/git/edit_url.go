package git

import (
	"fmt"
	"strings"
)

// ForgeType identifies the hosting software behind a remote.
type ForgeType string

const (
	ForgeGitHub  ForgeType = "github"
	ForgeGitLab  ForgeType = "gitlab"
	ForgeForgejo ForgeType = "forgejo"
	ForgeUnknown ForgeType = ""
)

// DetectForge guesses the forge from a host name.
func DetectForge(host string) ForgeType {
	h := strings.ToLower(host)
	switch {
	case strings.Contains(h, "github"):
		return ForgeGitHub
	case strings.Contains(h, "gitlab"):
		return ForgeGitLab
	case strings.Contains(h, "codeberg"), strings.Contains(h, "forgejo"), strings.Contains(h, "gitea"):
		return ForgeForgejo
	default:
		return ForgeUnknown
	}
}

// EditPattern returns the forge's web edit URL for files under dir, with the
// document path left as the ":path" placeholder. Unknown forges yield "".
func (o Origin) EditPattern(dir string) string {
	if o.Host == "" || o.Owner == "" || o.Name == "" {
		return ""
	}
	branch := o.Branch
	if branch == "" {
		branch = DefaultBranch
	}
	prefix := strings.Trim(dir, "/")
	if prefix != "" {
		prefix += "/"
	}
	base := "https://" + o.Host + "/" + o.FullName()
	switch o.Forge {
	case ForgeGitHub:
		return fmt.Sprintf("%s/edit/%s/%s:path", base, branch, prefix)
	case ForgeGitLab:
		return fmt.Sprintf("%s/-/edit/%s/%s:path", base, branch, prefix)
	case ForgeForgejo:
		return fmt.Sprintf("%s/_edit/%s/%s:path", base, branch, prefix)
	default:
		return ""
	}
}
