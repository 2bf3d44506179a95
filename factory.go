package fhandle

import (
	"os"
	"path/filepath"

	"github.com/ngicks/go-fsys-helper/fsutil"
	"github.com/spf13/afero"
)

const tempPattern = "fhandle-*.tmp"

// Factory allocates a fresh, structurally valid Handle
// backed by a placeholder resource.
//
// An Opener calls its Factory once per successful materialization
// and replaces the placeholder with the materialized resource.
type Factory func() (*Handle, error)

// TempFile returns a Factory that backs each Handle with an anonymous temporary file:
// a randomly named file is created exclusively under dir in fsys
// and then removed while it is still open.
//
// If dir is empty, [os.TempDir] is used.
// Running out of names fails with [fsutil.ErrMaxRetry].
func TempFile(fsys afero.Fs, dir string) Factory {
	return func() (*Handle, error) {
		dir := dir
		if dir == "" {
			dir = os.TempDir()
		}
		f, err := fsutil.OpenFileRandom[afero.Fs, afero.File](fsys, dir, tempPattern, 0o600)
		if err != nil {
			return nil, err
		}
		if err := fsys.Remove(filepath.Join(dir, filepath.Base(f.Name()))); err != nil {
			_ = f.Close()
			return nil, err
		}
		return NewHandle(f), nil
	}
}

// OsTempFile is TempFile on the os filesystem under [os.TempDir].
func OsTempFile() Factory {
	return TempFile(afero.NewOsFs(), "")
}
