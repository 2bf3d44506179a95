package fhandle

import "strconv"

// Target names the file an open operation installs into a Handle:
// either a path or an already open descriptor.
//
// The zero Target is the empty path.
type Target struct {
	path string
	fd   int
	isFd bool
}

// Path returns a Target for path.
func Path(path string) Target {
	return Target{path: path}
}

// Descriptor returns a Target for an open descriptor.
// The descriptor is duplicated; callers keep ownership of fd.
func Descriptor(fd int) Target {
	return Target{fd: fd, isFd: true}
}

// Fd returns the descriptor and true if t is a descriptor target.
func (t Target) Fd() (int, bool) {
	return t.fd, t.isFd
}

// String returns the path, or /dev/fd/N for descriptors.
func (t Target) String() string {
	if t.isFd {
		return "/dev/fd/" + strconv.Itoa(t.fd)
	}
	return t.path
}
