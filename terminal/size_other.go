//go:build !unix

package terminal

import (
	"os"

	"golang.org/x/term"
)

func terminalSize(f *os.File) (int, int, error) {
	return term.GetSize(int(f.Fd()))
}
