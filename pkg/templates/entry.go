package templates

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/temple/pkg/logging"
	"github.com/arthur-debert/temple/pkg/types"
)

// EntryPrefix namespaces the entry template inside the template set.
const EntryPrefix = "__entry__/"

// EntryName returns the reserved logical name for the entry template at path.
func EntryName(path string) string {
	clean := filepath.ToSlash(filepath.Clean(path))
	return EntryPrefix + strings.TrimLeft(clean, "/")
}

// IsEntryName reports whether name lives in the reserved entry namespace.
func IsEntryName(name string) bool {
	return strings.HasPrefix(name, EntryPrefix)
}

// Entry reads the entry template from path.
func Entry(fsys afero.Fs, path string) (types.Template, error) {
	source, err := readSource(fsys, path)
	if err != nil {
		return types.Template{}, err
	}
	return types.Template{
		Name:   EntryName(path),
		Path:   path,
		Source: source,
	}, nil
}

// Assemble builds the template set for one render: everything under root
// (when root is non-empty) plus the entry template. It returns the set and
// the entry's logical name.
func Assemble(fsys afero.Fs, root string, exts []string, entryPath string) (*Set, string, error) {
	set := NewSet()

	if root != "" {
		collected, err := Collect(fsys, root, exts)
		if err != nil {
			return nil, "", err
		}
		for _, t := range collected {
			if err := set.Add(t); err != nil {
				return nil, "", err
			}
		}
	}

	entry, err := Entry(fsys, entryPath)
	if err != nil {
		return nil, "", err
	}
	if err := set.Add(entry); err != nil {
		return nil, "", err
	}

	logger := logging.GetLogger("templates")
	logger.Debug().
		Str("entry", entryPath).
		Int("templates", set.Len()).
		Msg("template set assembled")
	return set, entry.Name, nil
}
