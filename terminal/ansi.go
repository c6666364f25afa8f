package terminal

import (
	"bufio"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// DECAWM: disabling auto-wrap prevents terminal scroll on a
	// bottom-right corner write
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	csiFg256 = []byte("\x1b[38;5;") // followed by N m
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B m
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [8]byte
	i := 7
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// AnsiSink emits escape sequences directly to an xterm-compatible
// terminal, bypassing terminfo entirely.
type AnsiSink struct {
	mu     sync.Mutex
	out    *bufio.Writer
	file   *os.File // nil when wrapping a plain io.Writer
	mode   ColorMode
	saved  *term.State
	inited bool
	fined  bool
}

// NewAnsiSink creates a sink writing to stdout with detected color
// capability.
func NewAnsiSink() *AnsiSink {
	return &AnsiSink{
		out:  bufio.NewWriterSize(os.Stdout, 65536),
		file: os.Stdout,
		mode: DetectColorMode(),
	}
}

// NewAnsiSinkWriter creates a sink over an arbitrary writer. No raw mode
// or size detection is available; Size reports a fixed 80x24.
func NewAnsiSinkWriter(w io.Writer, mode ColorMode) *AnsiSink {
	return &AnsiSink{
		out:  bufio.NewWriterSize(w, 65536),
		mode: mode,
	}
}

// Init enters raw mode and the alternate screen buffer, hides the cursor
func (s *AnsiSink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}

	if s.file != nil {
		st, err := term.MakeRaw(int(s.file.Fd()))
		if err != nil {
			return err
		}
		s.saved = st
	}

	s.out.Write(csiAltScreenEnter)
	s.out.Write(csiCursorHide)
	s.out.Write(csiAutoWrapOff)
	s.out.Write(csiClear)
	s.out.Flush()

	s.inited = true
	s.fined = false
	return nil
}

// Fini restores the terminal. Safe to call multiple times.
func (s *AnsiSink) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inited || s.fined {
		return
	}

	s.out.Write(csiCursorShow)
	s.out.Write(csiAltScreenExit)
	s.out.Write(csiAutoWrapOn)
	s.out.Write(csiSGR0)
	s.out.Flush()

	if s.saved != nil && s.file != nil {
		term.Restore(int(s.file.Fd()), s.saved)
		s.saved = nil
	}

	s.fined = true
}

// Size returns terminal dimensions, or 80x24 for non-terminal writers
func (s *AnsiSink) Size() (int, int) {
	if s.file != nil {
		if w, h, err := terminalSize(s.file); err == nil {
			return w, h
		}
	}
	return 80, 24
}

func (s *AnsiSink) MoveCursor(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeCursorPos(s.out, x, y)
}

func (s *AnsiSink) SetColor(c RGB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ColorModeTrueColor {
		s.out.Write(csiFgRGB)
		writeInt(s.out, int(c.R))
		s.out.WriteByte(';')
		writeInt(s.out, int(c.G))
		s.out.WriteByte(';')
		writeInt(s.out, int(c.B))
	} else {
		s.out.Write(csiFg256)
		writeInt(s.out, int(RGBTo256(c)))
	}
	s.out.WriteByte('m')
}

func (s *AnsiSink) ResetColor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.Write(csiSGR0)
}

func (s *AnsiSink) WriteRun(run string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.WriteString(run)
}

func (s *AnsiSink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.Write(csiSGR0)
	s.out.Write(csiClear)
	s.out.Flush()
}

func (s *AnsiSink) SetCursorVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if visible {
		s.out.Write(csiCursorShow)
	} else {
		s.out.Write(csiCursorHide)
	}
	s.out.Flush()
}

func (s *AnsiSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.Flush()
}

// EmergencyRestore writes the sequences needed to return a terminal to a
// sane state. Call from panic recovery when Fini cannot run normally.
func EmergencyRestore(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)
	w.Write(csiSGR0)
}
