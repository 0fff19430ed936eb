// pkg/testutil/environment.go
// DEPENDENCIES: adrg/xdg
// PURPOSE: Isolate tests from the user's XDG directories and TEMPLE_* variables

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// XDGDirs holds the isolated base directories created by IsolateXDG.
type XDGDirs struct {
	ConfigHome string
	StateHome  string
}

// IsolateXDG points XDG_CONFIG_HOME and XDG_STATE_HOME at fresh temp
// directories, clears XDG_CONFIG_DIRS and reloads the xdg package. The
// previous values are restored when the test ends.
func IsolateXDG(t *testing.T) XDGDirs {
	t.Helper()

	root := t.TempDir()
	dirs := XDGDirs{
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
	}

	t.Setenv("XDG_CONFIG_HOME", dirs.ConfigHome)
	t.Setenv("XDG_STATE_HOME", dirs.StateHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "etc"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return dirs
}

// ClearTempleEnv unsets every TEMPLE_* variable for the duration of the test.
func ClearTempleEnv(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "TEMPLE_") {
			// t.Setenv registers the restore; Unsetenv then removes it.
			t.Setenv(key, "")
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("Failed to unset %s: %v", key, err)
			}
		}
	}
}
