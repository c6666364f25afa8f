package console

import (
	"context"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/lorekeep/termcanvas/terminal"
)

const (
	minRegionWidth  = 4
	minRegionHeight = 3
	resizeDebounce  = 100 * time.Millisecond
	inputPrompt     = "> "
	caretGlyph      = '_'
)

// WindowManager owns the region table and the active character grid and
// runs the render loop on a background goroutine. One mutex serializes
// every mutation with rendering, so a mutation applied under the lock is
// visible to the very next render pass.
type WindowManager struct {
	mu       sync.Mutex
	sink     terminal.Sink
	clock    Clock
	regions  map[string]*Region
	buffer   *Buffer
	settings DisplaySettings
	glyphs   borderGlyphs

	dirty      bool
	inputText  string
	inputColor terminal.RGB

	caretOn   bool
	lastBlink time.Time

	lastW, lastH int
	resizeSeen   time.Time

	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
}

// NewWindowManager initializes the sink, sizes the grid to the terminal,
// and starts the render loop.
func NewWindowManager(sink terminal.Sink, settings DisplaySettings) (*WindowManager, error) {
	return NewWindowManagerClock(sink, settings, SystemClock{})
}

// NewWindowManagerClock is NewWindowManager with an explicit time source
func NewWindowManagerClock(sink terminal.Sink, settings DisplaySettings, clock Clock) (*WindowManager, error) {
	if err := sink.Init(); err != nil {
		return nil, err
	}

	w, h := sink.Size()
	buf := NewBuffer(w, h)
	buf.SetDefaultColor(settings.DefaultColor)

	m := &WindowManager{
		sink:       sink,
		clock:      clock,
		regions:    make(map[string]*Region),
		buffer:     buf,
		settings:   settings,
		glyphs:     glyphsFor(settings.Borders),
		inputColor: settings.DefaultColor,
		caretOn:    true,
		lastBlink:  clock.Now(),
		lastW:      w,
		lastH:      h,
		dirty:      true,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}

	go m.renderLoop()
	return m, nil
}

// AddRegion registers a copy of r under name, replacing any existing
// region with that name. The region's geometry is clamped against the
// current grid before it is stored.
func (m *WindowManager) AddRegion(name string, r *Region) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg := *r
	reg.Name = name
	m.clampRegion(&reg)
	m.regions[name] = &reg
	m.dirty = true
}

// UpdateRegion mutates a registered region in place under the lock.
// Returns false if no region has that name.
func (m *WindowManager) UpdateRegion(name string, fn func(*Region)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.regions[name]
	if !ok {
		return false
	}
	fn(r)
	r.Name = name // the table key stays authoritative
	m.clampRegion(r)
	m.dirty = true
	return true
}

// RemoveRegion drops a region from the table
func (m *WindowManager) RemoveRegion(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.regions, name)
	m.dirty = true
}

// GetRegions returns a value-copy snapshot of the current region table
func (m *WindowManager) GetRegions() map[string]Region {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]Region, len(m.regions))
	for name, r := range m.regions {
		out[name] = *r
	}
	return out
}

// QueueRender marks the next render pass as required. It never renders
// synchronously.
func (m *WindowManager) QueueRender() {
	m.mu.Lock()
	m.dirty = true
	m.mu.Unlock()
}

// UpdateInputText stores the latest input line content and color
func (m *WindowManager) UpdateInputText(text string, color terminal.RGB) {
	m.mu.Lock()
	m.inputText = text
	m.inputColor = color
	m.dirty = true
	m.mu.Unlock()
}

// UpdateDisplaySettings hot-swaps the display configuration. The border
// glyph cache is re-derived immediately and the whole screen repaints.
func (m *WindowManager) UpdateDisplaySettings(settings DisplaySettings) {
	m.mu.Lock()
	m.settings = settings
	m.glyphs = glyphsFor(settings.Borders)
	m.buffer.SetDefaultColor(settings.DefaultColor)
	m.buffer.Invalidate()
	m.dirty = true
	m.mu.Unlock()
}

// CheckResize polls the sink for changed terminal dimensions. A change
// must stay stable for the debounce interval before the grid is rebuilt;
// intermediate sizes during a drag-resize are ignored. Returns true when
// a resize was applied so the caller can recompute its layout.
func (m *WindowManager) CheckResize() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, h := m.sink.Size()
	if w == m.lastW && h == m.lastH {
		m.resizeSeen = time.Time{}
		return false
	}

	now := m.clock.Now()
	if m.resizeSeen.IsZero() {
		m.resizeSeen = now
		return false
	}
	if now.Sub(m.resizeSeen) < resizeDebounce {
		return false
	}

	m.buffer.Resize(w, h)
	m.sink.Clear()
	m.lastW, m.lastH = w, h
	m.resizeSeen = time.Time{}

	// The grid changed under the regions; clamp rather than assert
	for _, r := range m.regions {
		m.clampRegion(r)
	}

	m.dirty = true
	return true
}

// Close stops the render loop, waits for it to drain, and restores the
// terminal cursor. Idempotent.
func (m *WindowManager) Close() {
	m.closeOnce.Do(func() { close(m.stopCh) })
	<-m.doneCh
	m.sink.SetCursorVisible(true)
	m.sink.Fini()
}

// Shutdown is Close for asynchronous call paths: identical ordering, but
// the wait for the render loop honors ctx.
func (m *WindowManager) Shutdown(ctx context.Context) error {
	m.closeOnce.Do(func() { close(m.stopCh) })
	select {
	case <-m.doneCh:
	case <-ctx.Done():
		return ctx.Err()
	}
	m.sink.SetCursorVisible(true)
	m.sink.Fini()
	return nil
}

// clampRegion enforces geometry invariants against the current grid:
// minimum size, room for the title, and full on-screen placement.
// Callers hold m.mu.
func (m *WindowManager) clampRegion(r *Region) {
	if r.Width < minRegionWidth {
		r.Width = minRegionWidth
	}
	if r.Height < minRegionHeight {
		r.Height = minRegionHeight
	}
	if r.Name != "" {
		if need := StringWidth(r.Name) + 4; r.Width < need {
			r.Width = need
		}
	}

	bw, bh := m.buffer.Size()
	if bw <= 0 || bh <= 0 {
		return
	}
	if r.Width > bw {
		r.Width = bw
	}
	if r.Height > bh {
		r.Height = bh
	}
	if r.X+r.Width > bw {
		r.X = bw - r.Width
	}
	if r.Y+r.Height > bh {
		r.Y = bh - r.Height
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
}

// renderLoop wakes on the refresh interval and repaints when the dirty
// flag is set or the caret blink is due. Cancellation stops the next
// iteration; an in-progress frame always completes.
func (m *WindowManager) renderLoop() {
	defer close(m.doneCh)

	for {
		select {
		case <-m.stopCh:
			return
		default:
		}

		m.mu.Lock()
		interval := m.settings.RefreshInterval
		rendered := false
		if m.dirty || m.blinkDue() {
			m.renderLocked()
			m.dirty = false
			rendered = true
		}
		m.mu.Unlock()

		if !rendered {
			select {
			case <-m.stopCh:
				return
			case <-time.After(interval):
			}
		}
	}
}

// blinkDue reports whether the caret blink interval elapsed. Callers
// hold m.mu.
func (m *WindowManager) blinkDue() bool {
	return m.settings.CursorBlink &&
		m.clock.Now().Sub(m.lastBlink) >= m.settings.CursorBlinkRate
}

// renderFrame repaints synchronously. Exposed to the render loop and to
// tests; external callers use QueueRender.
func (m *WindowManager) renderFrame() {
	m.mu.Lock()
	m.renderLocked()
	m.dirty = false
	m.mu.Unlock()
}

// renderLocked draws one frame: clear, regions by z-order, input
// overlay, flush. Callers hold m.mu.
func (m *WindowManager) renderLocked() {
	// Blink state advances on its own interval, decoupled from the
	// frame cadence
	if m.blinkDue() {
		m.caretOn = !m.caretOn
		m.lastBlink = m.clock.Now()
	}

	m.buffer.Clear()

	for _, r := range m.sortedVisibleLocked() {
		m.drawFrameDecor(r)
		if r.Render != nil {
			renderContent(r, m.buffer)
		}
	}

	if input, ok := m.regions[InputRegionName]; ok && input.Visible {
		m.drawInputLine(input)
	}

	m.buffer.Flush(m.sink, m.settings.UseColors)
}

// sortedVisibleLocked returns visible regions ordered by ascending
// z-index; equal z-indexes order by name for deterministic paint order
func (m *WindowManager) sortedVisibleLocked() []*Region {
	out := make([]*Region, 0, len(m.regions))
	for _, r := range m.regions {
		if r.Visible {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ZIndex != out[j].ZIndex {
			return out[i].ZIndex < out[j].ZIndex
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// renderContent invokes one region callback, containing any panic so a
// misbehaving panel cannot abort the rest of the frame
func renderContent(r *Region, buf *Buffer) {
	defer func() {
		_ = recover()
	}()
	r.Render(buf, r.ContentBounds())
}

// drawFrameDecor draws the border and the centered " name " title
func (m *WindowManager) drawFrameDecor(r *Region) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	g := m.glyphs
	b := m.buffer

	b.SetChar(r.X, r.Y, g.TL, r.BorderColor)
	b.SetChar(r.X+r.Width-1, r.Y, g.TR, r.BorderColor)
	b.SetChar(r.X, r.Y+r.Height-1, g.BL, r.BorderColor)
	b.SetChar(r.X+r.Width-1, r.Y+r.Height-1, g.BR, r.BorderColor)

	for x := r.X + 1; x < r.X+r.Width-1; x++ {
		b.SetChar(x, r.Y, g.H, r.BorderColor)
		b.SetChar(x, r.Y+r.Height-1, g.H, r.BorderColor)
	}
	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		b.SetChar(r.X, y, g.V, r.BorderColor)
		b.SetChar(r.X+r.Width-1, y, g.V, r.BorderColor)
	}

	if r.Name != "" {
		title := " " + r.Name + " "
		tw := StringWidth(title)
		if tw <= r.Width-2 {
			b.WriteString(r.X+(r.Width-tw)/2, r.Y, title, r.TitleColor)
		}
	}
}

// drawInputLine renders the prompt, the trailing slice of the input text
// that fits, and the caret on the row above the bottom border. Older
// text truncates from the left so the caret's vicinity stays visible.
func (m *WindowManager) drawInputLine(r *Region) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	row := r.Y + r.Height - 2
	avail := r.Width - 2 - len(inputPrompt)
	if avail < 1 {
		return
	}

	text := m.inputText
	maxText := avail - 1 // one column reserved for the caret
	for StringWidth(text) > maxText {
		_, size := utf8.DecodeRuneInString(text)
		text = text[size:]
	}

	x := r.X + 1
	m.buffer.WriteString(x, row, inputPrompt, r.BorderColor)
	x += len(inputPrompt)
	m.buffer.WriteString(x, row, text, m.inputColor)
	x += StringWidth(text)

	caret := caretGlyph
	if !m.caretOn {
		caret = ' '
	}
	m.buffer.SetChar(x, row, caret, m.inputColor)
}
