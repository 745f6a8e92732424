package pcg

import (
	"fmt"
	"os"
)

var debug bool

// SetDebug enables diagnostic logging to stderr for loading and watching.
func SetDebug(enabled bool) {
	debug = enabled
}

func logf(format string, args ...any) {
	if !debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[pcg] "+format+"\n", args...)
}
