package fhandle

import (
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/spf13/afero"
)

var _ afero.File = (*Handle)(nil)

// InvalidFd is returned from [Handle.Fd] when the resource is not backed by an os file.
const InvalidFd uintptr = 0xffffffff

// Handle is an open file.
//
// Handles are allocated by a [Factory] and are referenced by identity:
// the resource behind a Handle may be replaced while the *Handle value stays the same.
// Once closed, every method reports [fs.ErrClosed].
type Handle struct {
	closed atomic.Bool
	res    atomic.Pointer[resource]
}

type resource struct {
	f afero.File
}

// NewHandle returns a Handle backed by f.
// NewHandle is meant to be called by [Factory] implementations.
func NewHandle(f afero.File) *Handle {
	h := &Handle{}
	if f != nil {
		h.res.Store(&resource{f: f})
	}
	return h
}

func (h *Handle) file() afero.File {
	r := h.res.Load()
	if r == nil {
		return nil
	}
	return r.f
}

// usable reports whether h can take part in a swap.
func (h *Handle) usable() bool {
	return h != nil && !h.closed.Load() && h.file() != nil
}

// swap installs f and returns the resource it displaced.
// The caller becomes the owner of the returned file.
func (h *Handle) swap(f afero.File) afero.File {
	old := h.res.Swap(&resource{f: f})
	if old == nil {
		return nil
	}
	return old.f
}

func (h *Handle) errClosed(op string) error {
	f := h.file()
	if f == nil {
		return &fs.PathError{Op: op, Err: fs.ErrInvalid}
	}
	if h.closed.Load() {
		return &fs.PathError{Op: op, Path: f.Name(), Err: fs.ErrClosed}
	}
	return nil
}

// OsFile returns the *os.File currently backing h, if any.
// The returned file is still owned by h.
func (h *Handle) OsFile() (*os.File, bool) {
	f, ok := h.file().(*os.File)
	return f, ok
}

// Fd returns the descriptor of the resource, or [InvalidFd]
// if the resource is not os-backed.
func (h *Handle) Fd() uintptr {
	fder, ok := h.file().(interface{ Fd() uintptr })
	if !ok {
		return InvalidFd
	}
	return fder.Fd()
}

// Close implements afero.File.
func (h *Handle) Close() error {
	f := h.file()
	if f == nil {
		return &fs.PathError{Op: "close", Err: fs.ErrInvalid}
	}
	// io.Closer leaves a second Close undefined; report it instead of closing again.
	if !h.closed.CompareAndSwap(false, true) {
		return &fs.PathError{Op: "close", Path: f.Name(), Err: fs.ErrClosed}
	}
	return f.Close()
}

// Name implements afero.File.
func (h *Handle) Name() string {
	f := h.file()
	if f == nil {
		return ""
	}
	return f.Name()
}

// Read implements afero.File.
func (h *Handle) Read(p []byte) (n int, err error) {
	if err := h.errClosed("read"); err != nil {
		return 0, err
	}
	return h.file().Read(p)
}

// ReadAt implements afero.File.
func (h *Handle) ReadAt(p []byte, off int64) (n int, err error) {
	if err := h.errClosed("readat"); err != nil {
		return 0, err
	}
	return h.file().ReadAt(p, off)
}

// Readdir implements afero.File.
func (h *Handle) Readdir(count int) ([]fs.FileInfo, error) {
	if err := h.errClosed("readdir"); err != nil {
		return []fs.FileInfo{}, err
	}
	return h.file().Readdir(count)
}

// Readdirnames implements afero.File.
func (h *Handle) Readdirnames(n int) ([]string, error) {
	if err := h.errClosed("readdirnames"); err != nil {
		return []string{}, err
	}
	return h.file().Readdirnames(n)
}

// Seek implements afero.File.
func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	if err := h.errClosed("seek"); err != nil {
		return 0, err
	}
	return h.file().Seek(offset, whence)
}

// Stat implements afero.File.
func (h *Handle) Stat() (fs.FileInfo, error) {
	if err := h.errClosed("stat"); err != nil {
		return nil, err
	}
	return h.file().Stat()
}

// Sync implements afero.File.
func (h *Handle) Sync() error {
	if err := h.errClosed("sync"); err != nil {
		return err
	}
	return h.file().Sync()
}

// Truncate implements afero.File.
func (h *Handle) Truncate(size int64) error {
	if err := h.errClosed("truncate"); err != nil {
		return err
	}
	return h.file().Truncate(size)
}

// Write implements afero.File.
func (h *Handle) Write(p []byte) (n int, err error) {
	if err := h.errClosed("write"); err != nil {
		return 0, err
	}
	return h.file().Write(p)
}

// WriteAt implements afero.File.
func (h *Handle) WriteAt(p []byte, off int64) (n int, err error) {
	if err := h.errClosed("writeat"); err != nil {
		return 0, err
	}
	return h.file().WriteAt(p, off)
}

// WriteString implements afero.File.
func (h *Handle) WriteString(s string) (ret int, err error) {
	if err := h.errClosed("write"); err != nil {
		return 0, err
	}
	return h.file().WriteString(s)
}
