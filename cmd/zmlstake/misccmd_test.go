package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The license summary must agree with the headers actually shipped.
func TestLicenseMatchesHeaders(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "utils", "*.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, f := range files {
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		assert.Contains(t, string(src), "GNU General Public License", f)
	}
	assert.Contains(t, licenseText, "GNU\n  General Public License, version 3")

	// Every file the summary points at exists.
	for _, ref := range []string{"LICENSE", "COPYING"} {
		if strings.Contains(licenseText, "see "+ref) {
			_, err := os.Stat(filepath.Join("..", "..", ref))
			assert.NoError(t, err, ref)
		}
	}
}
