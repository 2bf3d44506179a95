package fhandle

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ngicks/go-fsys-helper/fhandle/internal/errdef"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Opener opens paths and adopts descriptors into Handles allocated by its [Factory].
//
// Every operation materializes the target resource first,
// then asks the factory for a fresh Handle and transplants the resource into it.
// On failure no Handle is returned and every resource opened on the way is closed.
//
// A nil or zero Opener fails every call with [ErrUnavailable].
type Opener struct {
	tmpfile Factory
	logger  *slog.Logger
}

type Option func(o *Opener)

// WithLogger sets logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Opener) {
		o.logger = logger
	}
}

// New returns an Opener allocating Handles from tmpfile.
// It fails with [ErrFactoryNotFound] if tmpfile is nil.
func New(tmpfile Factory, opts ...Option) (*Opener, error) {
	if tmpfile == nil {
		return nil, ErrFactoryNotFound
	}
	o := &Opener{tmpfile: tmpfile}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

func (o *Opener) log() *slog.Logger {
	if o.logger == nil {
		return discardLogger
	}
	return o.logger
}

func (o *Opener) available() bool {
	return o != nil && o.tmpfile != nil
}

// Open dispatches on target: paths go to [Opener.OpenPath],
// descriptors to [Opener.Adopt].
func (o *Opener) Open(target Target, mode string) (*Handle, error) {
	if fd, ok := target.Fd(); ok {
		return o.Adopt(fd, mode)
	}
	return o.OpenPath(target.path, mode)
}

// OpenPath opens path in mode and returns a Handle backed by it.
// path must resolve to a regular file; anything else fails with
// an error wrapping [ErrNotAFile] and ENOENT.
// Empty mode is [DefaultMode].
func (o *Opener) OpenPath(path string, mode string) (*Handle, error) {
	target := Path(path)
	if !o.available() {
		return nil, unavailableError(target)
	}
	mode = modeOrDefault(mode)
	f, err := materializePath(path, mode)
	if err != nil {
		return nil, o.fail(target, mode, newError(target, err))
	}
	return o.transplant(target, mode, f)
}

// Adopt returns a Handle backed by a duplicate of fd.
// fd must be a regular file or one of the standard streams;
// anything else fails with an error wrapping [ErrNotAFile] and EINVAL.
//
// The caller keeps ownership of fd: closing fd does not affect the Handle
// and closing the Handle does not close fd.
// Empty mode is [DefaultMode].
func (o *Opener) Adopt(fd int, mode string) (*Handle, error) {
	return o.adopt(fd, mode, true)
}

// AdoptAny is like [Opener.Adopt] but skips the regular file check,
// so pipes, sockets and terminals can be adopted too.
func (o *Opener) AdoptAny(fd int, mode string) (*Handle, error) {
	return o.adopt(fd, mode, false)
}

func (o *Opener) adopt(fd int, mode string, validateFd bool) (*Handle, error) {
	target := Descriptor(fd)
	if !o.available() {
		return nil, unavailableError(target)
	}
	mode = modeOrDefault(mode)
	f, err := materializeFd(fd, mode, validateFd)
	if err != nil {
		return nil, o.fail(target, mode, newError(target, err))
	}
	return o.transplant(target, mode, f)
}

// transplant obtains a Handle from the factory and replaces its placeholder with f.
// f is owned by transplant: it either ends up in the returned Handle or is closed.
func (o *Opener) transplant(target Target, mode string, f *os.File) (*Handle, error) {
	h, err := o.tmpfile()
	if err == nil && !h.usable() {
		err = fmt.Errorf("factory returned an unusable handle: %w", errdef.EBADF)
	}
	if err != nil {
		_ = f.Close()
		return nil, o.fail(target, mode, factoryError(target, err))
	}

	placeholder := h.swap(f)
	if err := placeholder.Close(); err != nil {
		o.log().Warn(
			"closing placeholder resource",
			slog.String("target", target.String()),
			slog.String("placeholder", placeholder.Name()),
			slog.Any("err", err),
		)
	}

	o.log().Debug(
		"handle transplanted",
		slog.String("target", target.String()),
		slog.String("mode", mode),
	)
	return h, nil
}

func (o *Opener) fail(target Target, mode string, err *Error) *Error {
	o.log().Debug(
		"open failed",
		slog.String("target", target.String()),
		slog.String("mode", mode),
		slog.String("kind", err.Kind.String()),
		slog.Any("err", err.Err),
	)
	return err
}
