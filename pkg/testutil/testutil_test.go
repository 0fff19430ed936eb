package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile(t *testing.T) {
	dir := TempDir(t, "test-create-file")

	path := CreateFile(t, dir, "sub/dir/test.txt", "hello world")

	assert.True(t, FileExists(t, path))
	assert.Equal(t, "hello world", ReadFile(t, path))
}

func TestCreateSymlink(t *testing.T) {
	dir := TempDir(t, "test-symlink")
	target := CreateFile(t, dir, "target.txt", "target content")
	link := filepath.Join(dir, "nested", "link.txt")

	CreateSymlink(t, target, link)

	assert.Equal(t, "target content", ReadFile(t, link))
}

func TestMemoryFS(t *testing.T) {
	fsys := MemoryFS(t, map[string]string{
		"t/base.txt":      "base",
		"t/partials/a.md": "a",
	})

	assert.Equal(t, "base", ReadMemoryFile(t, fsys, "t/base.txt"))
	assert.Equal(t, "a", ReadMemoryFile(t, fsys, "t/partials/a.md"))
}

func TestIsolateXDG(t *testing.T) {
	dirs := IsolateXDG(t)

	assert.Equal(t, dirs.ConfigHome, xdg.ConfigHome)
	assert.Equal(t, dirs.StateHome, xdg.StateHome)
}

func TestClearTempleEnv(t *testing.T) {
	t.Setenv("TEMPLE_TEMPLATES", "/somewhere")

	ClearTempleEnv(t)

	_, ok := os.LookupEnv("TEMPLE_TEMPLATES")
	require.False(t, ok)
}
