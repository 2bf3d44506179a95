//go:build unix

package fhandle

import (
	"golang.org/x/sys/unix"
)

// validate reports whether a caller supplied fd denotes a regular file.
// Standard streams are accepted without fstat since
// some sandboxes refuse to stat them.
func validate(fd int, notFile error) error {
	switch fd {
	case unix.Stdin, unix.Stdout, unix.Stderr:
		return nil
	}
	return validateOpened(fd, notFile)
}

// validateOpened reports whether fd denotes a regular file, always asking fstat.
// open(2) may hand out 0, 1 or 2 when those are free,
// so descriptors opened here never take the standard stream shortcut.
//
// A non-regular file fails with notFile wrapped by [ErrNotAFile];
// fstat failures return the errno as is.
func validateOpened(fd int, notFile error) error {
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return err
	}
	if uint32(st.Mode)&unix.S_IFMT != unix.S_IFREG {
		return notAFile(notFile)
	}
	return nil
}
