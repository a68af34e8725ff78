// Package terminal provides small helpers for cleaning up interactive
// prompts.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines removes previously printed text from the terminal.
// textLength is the total number of characters printed (prompt plus user
// input); line wrapping is computed from the current terminal width.
func ClearPreviousLines(textLength int) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	lines := (textLength + width - 1) / width
	if lines < 1 {
		lines = 1
	}
	// +1 for the empty line the cursor lands on after Enter.
	for i := 0; i <= lines; i++ {
		fmt.Print("\r\x1b[2K")
		if i < lines {
			fmt.Print("\x1b[1A")
		}
	}
}
