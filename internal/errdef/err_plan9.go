// Package errdef defines errno values reported through fhandle errors.
package errdef

import (
	"errors"
	"io/fs"
)

type errTy struct {
	Base    error
	Message string
}

func newErr(base error, msg string) error {
	return &errTy{
		Base:    base,
		Message: msg,
	}
}

func (e *errTy) Error() string {
	return e.Message
}

func (e *errTy) Unwrap() error {
	return e.Base
}

var (
	EBADF   = newErr(fs.ErrInvalid, "bad file descriptor")
	EINVAL  = newErr(fs.ErrInvalid, "invalid argument")
	ENOENT  = newErr(fs.ErrNotExist, "no such file or directory")
	ENOTSUP = newErr(errors.ErrUnsupported, "operation not supported")
)
