package logging

import (
	"fmt"
	"os"
)

// Verbose reports whether debug output was requested via DATSAN_VERBOSE=1.
var Verbose = os.Getenv("DATSAN_VERBOSE") == "1"

// PresentError formats an error for user display with masking applied.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, Mask(err.Error()))
}

// Debugf prints a masked debug line to stderr when verbose mode is on.
func Debugf(format string, args ...any) {
	if !Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "[debug] %s\n", Mask(fmt.Sprintf(format, args...)))
}
