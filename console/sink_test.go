package console

import (
	"sync"
	"time"

	"github.com/lorekeep/termcanvas/terminal"
)

// testSink records every call so tests can assert on the exact write
// sequence a flush produced.
type testSink struct {
	mu sync.Mutex

	w, h int

	moves   [][2]int
	colors  []terminal.RGB
	runs    []string
	resets  int
	clears  int
	flushes int
	inits   int
	finis   int
	cursorVis []bool
}

func newTestSink(w, h int) *testSink {
	return &testSink{w: w, h: h}
}

func (s *testSink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inits++
	return nil
}

func (s *testSink) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finis++
}

func (s *testSink) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

func (s *testSink) setSize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w, s.h = w, h
}

func (s *testSink) MoveCursor(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moves = append(s.moves, [2]int{x, y})
}

func (s *testSink) SetColor(c terminal.RGB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colors = append(s.colors, c)
}

func (s *testSink) ResetColor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resets++
}

func (s *testSink) WriteRun(run string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
}

func (s *testSink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
}

func (s *testSink) SetCursorVisible(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursorVis = append(s.cursorVis, v)
}

func (s *testSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
	return nil
}

func (s *testSink) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moves = nil
	s.colors = nil
	s.runs = nil
	s.resets = 0
	s.clears = 0
	s.flushes = 0
}

func (s *testSink) flushCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushes
}

func (s *testSink) colorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.colors)
}

func (s *testSink) runText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all string
	for _, r := range s.runs {
		all += r
	}
	return all
}

// mockClock is a controllable time source for blink and debounce tests
type mockClock struct {
	mu sync.Mutex
	t  time.Time
}

func newMockClock() *mockClock {
	return &mockClock{t: time.Unix(1000, 0)}
}

func (c *mockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *mockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
