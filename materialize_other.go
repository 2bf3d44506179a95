//go:build !unix

package fhandle

import (
	"os"

	"github.com/ngicks/go-fsys-helper/fhandle/internal/errdef"
)

func materializePath(path, mode string) (*os.File, error) {
	if _, err := ParseMode(mode); err != nil {
		return nil, err
	}
	return nil, errdef.ENOTSUP
}

func materializeFd(fd int, mode string, validateFd bool) (*os.File, error) {
	if _, err := ParseMode(mode); err != nil {
		return nil, err
	}
	return nil, errdef.ENOTSUP
}
