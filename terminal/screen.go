package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ScreenSink adapts a tcell.Screen to the Sink interface. It exists for
// two reasons: portability to terminals the raw ANSI path cannot assume,
// and headless end-to-end testing via tcell.NewSimulationScreen.
type ScreenSink struct {
	mu      sync.Mutex
	screen  tcell.Screen
	style   tcell.Style
	penX    int
	penY    int
	cursorX int
	cursorY int
	cursor  bool
	inited  bool
	fined   bool
}

// NewScreenSink wraps a tcell screen. The sink owns Init/Fini of the
// screen from this point on.
func NewScreenSink(s tcell.Screen) *ScreenSink {
	return &ScreenSink{
		screen: s,
		style:  tcell.StyleDefault,
	}
}

func (s *ScreenSink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inited {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.inited = true
	s.fined = false
	return nil
}

func (s *ScreenSink) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inited || s.fined {
		return
	}
	s.screen.Fini()
	s.fined = true
}

func (s *ScreenSink) Size() (int, int) {
	return s.screen.Size()
}

func (s *ScreenSink) MoveCursor(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.penX, s.penY = x, y
	s.cursorX, s.cursorY = x, y
	if s.cursor {
		s.screen.ShowCursor(x, y)
	}
}

func (s *ScreenSink) SetColor(c RGB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = tcell.StyleDefault.Foreground(
		tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (s *ScreenSink) ResetColor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = tcell.StyleDefault
}

func (s *ScreenSink) WriteRun(run string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range run {
		s.screen.SetContent(s.penX, s.penY, r, nil, s.style)
		s.penX += runewidth.RuneWidth(r)
	}
}

func (s *ScreenSink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Clear()
	s.screen.Sync()
}

func (s *ScreenSink) SetCursorVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = visible
	if visible {
		s.screen.ShowCursor(s.cursorX, s.cursorY)
	} else {
		s.screen.HideCursor()
	}
}

func (s *ScreenSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Show()
	return nil
}
