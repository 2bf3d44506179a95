package fhandle

import (
	"fmt"

	"github.com/ngicks/go-fsys-helper/fhandle/internal/errdef"
	"github.com/ngicks/go-fsys-helper/fhandle/internal/openflag"
)

// DefaultMode is used when an empty mode is given.
const DefaultMode = "r"

// ParseMode translates fopen style mode into os.OpenFile flags.
//
// The first character is 'r', 'w' or 'a', optionally followed by '+'.
// Any number of 'b' may follow and are ignored.
// 'x' requests exclusive creation and is only valid with 'w'.
// Other strings fail with an error wrapping EINVAL.
func ParseMode(mode string) (int, error) {
	flag, ok := openflag.Parse(mode)
	if !ok {
		return 0, fmt.Errorf("invalid mode %q: %w", mode, errdef.EINVAL)
	}
	return flag, nil
}

func modeOrDefault(mode string) string {
	if mode == "" {
		return DefaultMode
	}
	return mode
}
