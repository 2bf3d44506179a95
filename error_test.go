//go:build !plan9

package fhandle

import (
	"errors"
	"io/fs"
	"syscall"
	"testing"

	"gotest.tools/v3/assert"
)

func TestError(t *testing.T) {
	type testCase struct {
		name    string
		err     *Error
		kind    Kind
		code    int
		is      []error
		message string
	}

	errFactory := errors.New("out of handles")

	for _, tc := range []testCase{
		{
			name:    "path error is unwrapped",
			err:     newError(Path("/foo"), &fs.PathError{Op: "open", Path: "/foo", Err: syscall.ENOENT}),
			kind:    KindSyscall,
			code:    int(syscall.ENOENT),
			is:      []error{fs.ErrNotExist, syscall.ENOENT},
			message: "fopen /foo: " + syscall.ENOENT.Error(),
		},
		{
			name:    "not a file from path",
			err:     newError(Path("/dir"), notAFile(syscall.ENOENT)),
			kind:    KindNotAFile,
			code:    int(syscall.ENOENT),
			is:      []error{ErrNotAFile, syscall.ENOENT},
			message: "fopen /dir: not a regular file: " + syscall.ENOENT.Error(),
		},
		{
			name: "not a file from descriptor",
			err:  newError(Descriptor(5), notAFile(syscall.EINVAL)),
			kind: KindNotAFile,
			code: int(syscall.EINVAL),
			is:   []error{ErrNotAFile, syscall.EINVAL},
		},
		{
			name:    "factory",
			err:     factoryError(Descriptor(3), errFactory),
			kind:    KindFactory,
			code:    0,
			is:      []error{errFactory},
			message: "fopen /dev/fd/3: out of handles",
		},
		{
			name: "unavailable",
			err:  unavailableError(Path("/foo")),
			kind: KindUnavailable,
			code: int(syscall.ENOTSUP),
			is:   []error{ErrUnavailable, syscall.ENOTSUP},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.err.Op, "fopen")
			assert.Equal(t, tc.err.Kind, tc.kind)
			assert.Equal(t, tc.err.Code(), tc.code)
			for _, target := range tc.is {
				assert.ErrorIs(t, tc.err, target)
			}
			if tc.message != "" {
				assert.Equal(t, tc.err.Error(), tc.message)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, KindSyscall.String(), "syscall")
	assert.Equal(t, KindNotAFile.String(), "not a file")
	assert.Equal(t, KindFactory.String(), "factory")
	assert.Equal(t, KindUnavailable.String(), "unavailable")
	assert.Equal(t, Kind(9).String(), "Kind(9)")
}

func TestParseMode(t *testing.T) {
	_, err := ParseMode("rw")
	assert.ErrorIs(t, err, syscall.EINVAL)

	flag, err := ParseMode("r+")
	assert.NilError(t, err)
	assert.Equal(t, flag, syscall.O_RDWR)

	assert.Equal(t, modeOrDefault(""), "r")
	assert.Equal(t, modeOrDefault("w"), "w")
}

func TestTarget(t *testing.T) {
	p := Path("/tmp/example.txt")
	_, ok := p.Fd()
	assert.Assert(t, !ok)
	assert.Equal(t, p.String(), "/tmp/example.txt")

	d := Descriptor(7)
	fd, ok := d.Fd()
	assert.Assert(t, ok)
	assert.Equal(t, fd, 7)
	assert.Equal(t, d.String(), "/dev/fd/7")
}
