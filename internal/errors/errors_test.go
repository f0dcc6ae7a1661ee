package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BlogError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
		{
			name:     "error with field",
			err:      ConfigRequired("footer.copyright"),
			expected: "validation (fatal): required configuration missing [footer.copyright]",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.err.Error())
		})
	}
}

func TestIsCategory_FollowsWrapChain(t *testing.T) {
	inner := ValidationFailed("nav[0]", "entry needs link or items")
	wrapped := fmt.Errorf("building site: %w", inner)

	require.True(t, IsCategory(wrapped, CategoryValidation))
	require.False(t, IsCategory(wrapped, CategoryConfig))
	require.False(t, IsCategory(stdErrors.New("plain"), CategoryValidation))
	require.Equal(t, CategoryInternal, GetCategory(stdErrors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := stdErrors.New("disk full")
	err := FileWrite("dist/config.json", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "dist/config.json", err.Context["path"])
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{stdErrors.New("plain"), 1},
		{ValidationFailed("lang", "bad tag"), 2},
		{ConfigNotFound("site.yaml"), 7},
		{FileWrite("out", stdErrors.New("x")), 11},
		{WatchError("add", stdErrors.New("x")), 12},
		{InternalError("boom", nil), 10},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, a.ExitCodeFor(c.err), "err=%v", c.err)
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	assert.Equal(t, "required configuration missing: footer.copyright", a.FormatError(ConfigRequired("footer.copyright")))
	assert.Equal(t, "configuration file not found: site.yaml", a.FormatError(ConfigNotFound("site.yaml")))
	assert.Equal(t, "Error: plain", a.FormatError(stdErrors.New("plain")))
	assert.Equal(t, "filesystem: failed to write output", a.FormatError(FileWrite("out", nil)))

	verbose := NewCLIErrorAdapter(true, nil)
	assert.Contains(t, verbose.FormatError(ConfigRequired("author")), "validation (fatal)")
}
