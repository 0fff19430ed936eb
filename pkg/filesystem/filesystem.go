package filesystem

import (
	"io/fs"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// NewOS returns the OS-backed filesystem.
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// ReadFile reads name, refusing directories with a PathError.
func ReadFile(fsys afero.Fs, name string) ([]byte, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(fsys, name)
}

// ReadText reads name as UTF-8 text. The second result is false when the
// content is not valid UTF-8.
func ReadText(fsys afero.Fs, name string) (string, bool, error) {
	data, err := ReadFile(fsys, name)
	if err != nil {
		return "", false, err
	}
	return string(data), utf8.Valid(data), nil
}
