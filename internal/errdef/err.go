//go:build !plan9

// Package errdef defines errno values reported through fhandle errors.
package errdef

import "syscall"

var (
	EBADF   = syscall.EBADF
	EINVAL  = syscall.EINVAL
	ENOENT  = syscall.ENOENT
	ENOTSUP = syscall.ENOTSUP
)
