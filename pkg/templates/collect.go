package templates

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/temple/pkg/errors"
	"github.com/arthur-debert/temple/pkg/filesystem"
	"github.com/arthur-debert/temple/pkg/logging"
	"github.com/arthur-debert/temple/pkg/types"
)

// DefaultExtensions are the template suffixes collected when none are given.
var DefaultExtensions = []string{
	"html", "htm", "xml", "txt", "text", "md",
	"j2", "jinja", "jinja2", "tmpl", "tpl", "tera", "template",
}

// ParseExtensions splits a comma-separated extension list.
func ParseExtensions(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return []string{}
	}
	return NormalizeExtensions(strings.Split(csv, ","))
}

// NormalizeExtensions trims whitespace, strips one leading dot and
// lower-cases each extension, dropping empty entries.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

// Collect walks root in lexical order and returns every accepted template.
//
// Entries whose name starts with "." are skipped together with their
// subtree. Symlinks to regular files are followed; symlinked directories
// are not descended. When exts is non-empty only files whose final
// extension is in exts are collected.
func Collect(fsys afero.Fs, root string, exts []string) ([]types.Template, error) {
	logger := logging.GetLogger("templates")

	accepted := make(map[string]bool, len(exts))
	for _, ext := range NormalizeExtensions(exts) {
		accepted[ext] = true
	}

	var collected []types.Template
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return errors.Wrap(walkErr, errors.ErrIO, "")
		}

		if path != root && strings.HasPrefix(info.Name(), ".") {
			logger.Trace().Str("path", path).Msg("skipping hidden entry")
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fsys.Stat(path)
			if err != nil {
				logger.Debug().Err(err).Str("path", path).Msg("skipping dangling symlink")
				return nil
			}
			info = target
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		if len(accepted) > 0 && !accepted[extensionOf(path)] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrIO, "%s", path)
		}

		source, err := readSource(fsys, path)
		if err != nil {
			return err
		}

		collected = append(collected, types.Template{
			Name:   filepath.ToSlash(rel),
			Path:   path,
			Source: source,
		})
		logger.Trace().Str("name", filepath.ToSlash(rel)).Msg("collected template")
		return nil
	})
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			err = errors.Wrap(err, errors.ErrIO, root)
		}
		return nil, err
	}

	logger.Debug().
		Str("root", root).
		Strs("extensions", exts).
		Int("count", len(collected)).
		Msg("collected templates")
	return collected, nil
}

func extensionOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func readSource(fsys afero.Fs, path string) (string, error) {
	source, valid, err := filesystem.ReadText(fsys, path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIO, "")
	}
	if !valid {
		return "", errors.Newf(errors.ErrData, "%s: template is not valid UTF-8", path).
			WithDetail("path", path)
	}
	return source, nil
}
