//go:build unix

package fhandle

import (
	"os"

	"github.com/ngicks/go-fsys-helper/fhandle/internal/errdef"
	"github.com/ngicks/go-fsys-helper/fhandle/internal/openflag"
	"golang.org/x/sys/unix"
)

// materializePath opens path as a regular file.
// The file is closed again if it turns out to be anything else.
func materializePath(path, mode string) (*os.File, error) {
	flag, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, flag, 0o666)
	if err != nil {
		return nil, err
	}

	err = withFd(f, func(fd uintptr) error {
		return validateOpened(int(fd), errdef.ENOENT)
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// materializeFd duplicates fd and wraps the duplicate as a stream in mode.
// fd itself is never closed. If validateFd is false, fd may be anything
// dup(2) accepts, e.g. a pipe or a socket.
//
// As fdopen(3) does, "w" does not truncate and "a" sets O_APPEND
// on the open file description, which fd shares with the duplicate.
func materializeFd(fd int, mode string, validateFd bool) (*os.File, error) {
	flag, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}

	if validateFd {
		if err := validate(fd, errdef.EINVAL); err != nil {
			return nil, err
		}
	}

	have, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return nil, err
	}
	if !openflag.Permits(have, flag) {
		return nil, errdef.EINVAL
	}

	dup, err := unix.FcntlInt(uintptr(fd), unix.F_DUPFD_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}

	if flag&os.O_APPEND != 0 && have&unix.O_APPEND == 0 {
		if _, err := unix.FcntlInt(uintptr(dup), unix.F_SETFL, have|unix.O_APPEND); err != nil {
			_ = unix.Close(dup)
			return nil, err
		}
	}

	f := os.NewFile(uintptr(dup), Descriptor(fd).String())
	if f == nil {
		_ = unix.Close(dup)
		return nil, errdef.EINVAL
	}
	return f, nil
}

// withFd calls fn with the descriptor of f
// without switching f into blocking mode as [os.File.Fd] does.
func withFd(f *os.File, fn func(fd uintptr) error) error {
	conn, err := f.SyscallConn()
	if err != nil {
		return err
	}
	var innerErr error
	if err := conn.Control(func(fd uintptr) {
		innerErr = fn(fd)
	}); err != nil {
		return err
	}
	return innerErr
}
