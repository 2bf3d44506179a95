// Package openflag converts fopen style mode strings into os.OpenFile flags
// and answers access questions about them.
package openflag

import (
	"os"
	"syscall"
)

// AccMode masks the access bits out of flags returned by fcntl(F_GETFL).
const AccMode = os.O_RDONLY | os.O_WRONLY | os.O_RDWR

// Parse translates mode into os.OpenFile flags.
//
// Accepted grammar is `[rwa]\+?[bx]*` where 'b' is a no-op
// and 'x' (exclusive creation) is only allowed with 'w'.
// ok is false for anything else.
func Parse(mode string) (flag int, ok bool) {
	if mode == "" {
		return 0, false
	}

	plus := len(mode) > 1 && mode[1] == '+'
	rest := mode[1:]
	if plus {
		rest = mode[2:]
	}

	switch mode[0] {
	case 'r':
		flag = os.O_RDONLY
		if plus {
			flag = os.O_RDWR
		}
	case 'w':
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		if plus {
			flag = os.O_RDWR | os.O_CREATE | os.O_TRUNC
		}
	case 'a':
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		if plus {
			flag = os.O_RDWR | os.O_CREATE | os.O_APPEND
		}
	default:
		return 0, false
	}

	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case 'b':
		case 'x':
			if mode[0] != 'w' {
				return 0, false
			}
			flag |= os.O_EXCL
		default:
			return 0, false
		}
	}
	return flag, true
}

// Permits reports whether a descriptor opened with have
// can serve a stream requesting want.
func Permits(have, want int) bool {
	have &= AccMode
	if Readable(want) && !Readable(have) {
		return false
	}
	if Writable(want) && !Writable(have) {
		return false
	}
	return true
}

func ReadWrite(flag int) bool {
	return Readable(flag) && Writable(flag)
}

func ReadOnly(flag int) bool {
	return flag&os.O_RDWR == 0 && flag&os.O_WRONLY == 0
}

func WriteOnly(flag int) bool {
	return flag&os.O_WRONLY != 0 && flag&os.O_RDWR == 0
}

func Readable(flag int) bool {
	return !WriteOnly(flag)
}

func Writable(flag int) bool {
	return flag&(os.O_WRONLY|syscall.O_RDWR) != 0
}
