package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	berrors "git.home.luguber.info/inful/blogbuilder/internal/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/git"
)

func TestInit_WritesLoadableDocuments(t *testing.T) {
	dir := t.TempDir()
	origin := &git.Origin{Host: "github.com", Owner: "ATQQ", Name: "sugar-blog", Branch: "master", Forge: git.ForgeGitHub}

	paths, err := Init(dir, false, origin)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "theme.yaml"), filepath.Join(dir, "site.yaml")}, paths)

	docs, err := Load(paths[1], "")
	require.NoError(t, err)
	require.Equal(t, "ATQQ/sugar-blog", docs.Theme.Comment.Repo)

	th, st, err := docs.Build()
	require.NoError(t, err)
	require.Equal(t, "YGKing", th.Author())
	require.Equal(t, "https://github.com/ATQQ/sugar-blog/edit/master/docs/:path", st.EditLink().Pattern)
	require.Equal(t, "https://github.com/ATQQ/sugar-blog", st.SocialLinks()[0].Link)
	require.Len(t, st.Head(), 2)
	require.True(t, st.Nav()[1].IsDropdown())
}

func TestInit_WithoutOrigin(t *testing.T) {
	dir := t.TempDir()
	paths, err := Init(dir, false, nil)
	require.NoError(t, err)

	docs, err := Load(paths[1], "")
	require.NoError(t, err)
	_, st, err := docs.Build()
	require.NoError(t, err)
	require.Nil(t, st.EditLink())
	require.Empty(t, st.SocialLinks())
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := writeFile(t, dir, "site.yaml", "title: mine\n")

	_, err := Init(dir, false, nil)
	require.True(t, berrors.IsCategory(err, berrors.CategoryConfig))

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	require.Equal(t, "title: mine\n", string(data))

	_, err = Init(dir, true, nil)
	require.NoError(t, err)
}
