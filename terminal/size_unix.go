//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminalSize queries the kernel for the window size of fd
func terminalSize(f *os.File) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
