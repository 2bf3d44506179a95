package fhandle

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ngicks/go-fsys-helper/fhandle/internal/errdef"
)

const opFopen = "fopen"

var (
	// ErrFactoryNotFound is returned from [New] and [Init] when no temp-file factory is given.
	ErrFactoryNotFound = errors.New("temp-file factory not found")
	// ErrUnavailable is wrapped by errors from openers that were never configured with a factory.
	ErrUnavailable = errors.New("temp-file factory unavailable")
	// ErrNotAFile is wrapped by errors reporting that a resource exists but is not a regular file.
	ErrNotAFile = errors.New("not a regular file")
)

// Kind classifies an [*Error].
type Kind int

const (
	// KindSyscall: open, dup, fcntl or fstat failed, or the mode was malformed.
	KindSyscall Kind = iota
	// KindNotAFile: the resource resolved to something other than a regular file.
	KindNotAFile
	// KindFactory: the temp-file factory failed.
	KindFactory
	// KindUnavailable: no factory was ever installed.
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindSyscall:
		return "syscall"
	case KindNotAFile:
		return "not a file"
	case KindFactory:
		return "factory"
	case KindUnavailable:
		return "unavailable"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned from every open and adopt operation.
//
// Err usually wraps an errno; [Error.Code] extracts it.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(target Target, err error) *Error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	kind := KindSyscall
	if errors.Is(err, ErrNotAFile) {
		kind = KindNotAFile
	}
	return &Error{Op: opFopen, Path: target.String(), Kind: kind, Err: err}
}

func factoryError(target Target, err error) *Error {
	return &Error{Op: opFopen, Path: target.String(), Kind: KindFactory, Err: err}
}

func unavailableError(target Target) *Error {
	return &Error{
		Op:   opFopen,
		Path: target.String(),
		Kind: KindUnavailable,
		Err:  fmt.Errorf("%w: %w", ErrUnavailable, errdef.ENOTSUP),
	}
}

// notAFile wraps errno so that the result matches both [ErrNotAFile] and errno.
func notAFile(errno error) error {
	return fmt.Errorf("%w: %w", ErrNotAFile, errno)
}
