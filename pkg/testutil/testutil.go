package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// TempDir creates a temporary directory for tests and returns its path.
// The directory is automatically cleaned up when the test completes.
func TempDir(t *testing.T, prefix string) string {
	t.Helper()
	dir, err := os.MkdirTemp(t.TempDir(), prefix+"-")
	if err != nil {
		t.Fatalf("Failed to create temp dir %s: %v", prefix, err)
	}
	return dir
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateSymlink creates a symbolic link pointing to target.
// It fails the test if the symlink cannot be created.
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatalf("Failed to create parent directory for symlink %s: %v", link, err)
	}

	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink %s -> %s: %v", link, target, err)
	}
}

// FileExists checks if a file exists and is not a directory.
func FileExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}

// MemoryFS returns an in-memory filesystem holding files. Parent
// directories are created as needed.
func MemoryFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for name, content := range files {
		if err := fsys.MkdirAll(filepath.Dir(name), 0755); err != nil {
			t.Fatalf("Failed to create parent directories for %s: %v", name, err)
		}
		if err := afero.WriteFile(fsys, name, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", name, err)
		}
	}
	return fsys
}

// ReadMemoryFile reads name from fsys, failing the test on error.
func ReadMemoryFile(t *testing.T, fsys afero.Fs, name string) string {
	t.Helper()

	content, err := afero.ReadFile(fsys, name)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", name, err)
	}
	return string(content)
}
