package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureKey(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	t.Run("relative and absolute forms agree", func(t *testing.T) {
		assert.Equal(t, FixtureKey(filepath.Join(wd, "fixtures", "a.dpl")), FixtureKey("fixtures/a.dpl"))
	})

	t.Run("unclean paths are cleaned", func(t *testing.T) {
		assert.Equal(t, FixtureKey("fixtures/a.dpl"), FixtureKey("./fixtures/../fixtures/a.dpl"))
	})

	t.Run("slash separated", func(t *testing.T) {
		assert.Equal(t, filepath.ToSlash(filepath.Join(wd, "a.dpl")), FixtureKey("a.dpl"))
	})
}
