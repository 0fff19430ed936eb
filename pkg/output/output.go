package output

import (
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"

	"github.com/arthur-debert/temple/pkg/errors"
	"github.com/arthur-debert/temple/pkg/logging"
	"github.com/arthur-debert/temple/pkg/types"
)

// FileMode is the permission of newly created output files, before umask.
const FileMode fs.FileMode = 0644

// Write sends data to stdout when dest is empty or "-". Otherwise it
// creates dest, failing with CANT_CREATE if it exists and overwrite is
// false. With overwrite the file is replaced atomically.
func Write(stdout io.Writer, dest string, overwrite bool, data []byte) error {
	logger := logging.GetLogger("output")

	if types.IsStdio(dest) {
		if _, err := stdout.Write(data); err != nil {
			return errors.Wrap(err, errors.ErrIO, "writing standard output")
		}
		logger.Debug().Int("bytes", len(data)).Msg("wrote standard output")
		return nil
	}

	var err error
	if overwrite {
		err = replace(dest, data)
	} else {
		err = create(dest, data)
	}
	if err != nil {
		return err
	}

	logger.Debug().
		Str("path", dest).
		Bool("overwrite", overwrite).
		Int("bytes", len(data)).
		Msg("wrote output file")
	return nil
}

// create writes a new file with exclusive-create semantics.
func create(dest string, data []byte) error {
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FileMode)
	if err != nil {
		if stderrors.Is(err, fs.ErrExist) {
			return errors.Newf(errors.ErrCantCreate, "%s: file exists (use -f/--force to overwrite)", dest).
				WithDetail("path", dest)
		}
		return errors.Wrap(err, errors.ErrCantCreate, "").WithDetail("path", dest)
	}

	_, werr := f.Write(data)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(dest)
		return errors.Wrap(werr, errors.ErrIO, "").WithDetail("path", dest)
	}
	return nil
}

// replace swaps dest for a file holding data. Readers never observe a
// partially written file. A missing dest is created like a new file so it
// gets the usual permissions. Symlinks and special files are written in
// place, as is a file whose directory does not allow the swap.
func replace(dest string, data []byte) error {
	info, err := os.Lstat(dest)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		err := create(dest, data)
		if !errors.IsErrorCode(err, errors.ErrCantCreate) || !fileExists(dest) {
			return err
		}
	case err == nil && !info.Mode().IsRegular():
		return writeInPlace(dest, data)
	}

	if err := atomic.WriteFile(dest, bytes.NewReader(data)); err != nil {
		logger := logging.GetLogger("output")
		logger.Debug().Err(err).Str("path", dest).Msg("atomic replace failed, writing in place")
		if terr := writeInPlace(dest, data); terr != nil {
			return errors.Wrapf(err, errors.ErrCantCreate, "%s", dest).WithDetail("path", dest)
		}
	}
	return nil
}

// writeInPlace truncates dest and writes data through the existing inode,
// following symlinks.
func writeInPlace(dest string, data []byte) error {
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FileMode)
	if err != nil {
		return errors.Wrap(err, errors.ErrCantCreate, "").WithDetail("path", dest)
	}

	_, werr := f.Write(data)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		return errors.Wrap(werr, errors.ErrIO, "").WithDetail("path", dest)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
