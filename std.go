package fhandle

import "sync/atomic"

var std atomic.Pointer[Opener]

// Init installs the process-wide Opener used by [Open], [OpenPath], [Adopt] and [AdoptAny].
// It is meant to be called once at startup.
//
// If tmpfile is nil, Init clears the installed Opener and returns [ErrFactoryNotFound];
// every later call then fails with [ErrUnavailable] until Init succeeds.
func Init(tmpfile Factory, opts ...Option) error {
	o, err := New(tmpfile, opts...)
	if err != nil {
		std.Store(nil)
		return err
	}
	std.Store(o)
	return nil
}

// Open calls [Opener.Open] on the Opener installed by [Init].
func Open(target Target, mode string) (*Handle, error) {
	return std.Load().Open(target, mode)
}

// OpenPath calls [Opener.OpenPath] on the Opener installed by [Init].
func OpenPath(path string, mode string) (*Handle, error) {
	return std.Load().OpenPath(path, mode)
}

// Adopt calls [Opener.Adopt] on the Opener installed by [Init].
func Adopt(fd int, mode string) (*Handle, error) {
	return std.Load().Adopt(fd, mode)
}

// AdoptAny calls [Opener.AdoptAny] on the Opener installed by [Init].
func AdoptAny(fd int, mode string) (*Handle, error) {
	return std.Load().AdoptAny(fd, mode)
}
