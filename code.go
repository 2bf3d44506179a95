//go:build !plan9

package fhandle

import (
	"errors"
	"syscall"
)

// Code returns the errno number carried by e, or 0 if there is none.
func (e *Error) Code() int {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return int(errno)
	}
	return 0
}
