package fhandle

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ngicks/go-fsys-helper/fsutil"
	"github.com/spf13/afero"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
)

func TestTempFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	assert.NilError(t, fsys.MkdirAll("/tmp", fs.ModePerm))

	factory := TempFile(fsys, "/tmp")

	names := make(map[string]bool)
	for range 30 {
		h, err := factory()
		assert.NilError(t, err)
		assert.Assert(t, h.usable())

		name := filepath.Base(h.Name())
		assert.Assert(t, strings.HasPrefix(name, "fhandle-"), "name = %q", name)
		assert.Assert(t, strings.HasSuffix(name, ".tmp"), "name = %q", name)
		assert.Assert(t, !names[name], "duplicate name %q", name)
		names[name] = true

		_, err = h.WriteString("placeholder")
		assert.NilError(t, err)
		_, err = h.Seek(0, io.SeekStart)
		assert.NilError(t, err)
		bin, err := io.ReadAll(h)
		assert.NilError(t, err)
		assert.Equal(t, string(bin), "placeholder")

		assert.NilError(t, h.Close())
	}

	// every temp file is anonymous.
	dirents, err := afero.ReadDir(fsys, "/tmp")
	assert.NilError(t, err)
	assert.Assert(t, cmp.Len(dirents, 0))
}

func TestTempFile_OpenError(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	h, err := TempFile(fsys, "/tmp")()
	assert.Assert(t, err != nil)
	assert.Assert(t, h == nil)
}

type existFs struct {
	afero.Fs
	calls int
}

func (fsys *existFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	fsys.calls++
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrExist}
}

func TestTempFile_MaxRetry(t *testing.T) {
	fsys := &existFs{Fs: afero.NewMemMapFs()}
	_, err := TempFile(fsys, "/tmp")()
	assert.ErrorIs(t, err, fsutil.ErrMaxRetry)
	assert.Equal(t, fsys.calls, 10000)
}
