package console

import (
	"testing"

	"github.com/lorekeep/termcanvas/terminal"
)

func TestWriteStringReadBack(t *testing.T) {
	b := NewBuffer(10, 2)
	b.WriteString(0, 0, "a世b", terminal.RGBWhite)

	if got := b.GetChar(0, 0); got != 'a' {
		t.Errorf("col 0 = %q, want 'a'", got)
	}
	if got := b.GetChar(1, 0); got != '世' {
		t.Errorf("col 1 = %q, want '世'", got)
	}
	if got := b.GetChar(2, 0); got != WidePlaceholder {
		t.Errorf("col 2 = %q, want placeholder", got)
	}
	if got := b.GetChar(3, 0); got != 'b' {
		t.Errorf("col 3 = %q, want 'b'", got)
	}
}

func TestWriteStringStopsAtRightEdge(t *testing.T) {
	b := NewBuffer(3, 1)
	b.WriteString(0, 0, "ab世", terminal.RGBWhite)

	if got := b.GetChar(0, 0); got != 'a' {
		t.Errorf("col 0 = %q", got)
	}
	if got := b.GetChar(1, 0); got != 'b' {
		t.Errorf("col 1 = %q", got)
	}
	// The wide glyph needs two columns; only one remains
	if got := b.GetChar(2, 0); got != ' ' {
		t.Errorf("col 2 = %q, want blank", got)
	}
}

func TestSetCharOutOfBoundsDropped(t *testing.T) {
	b := NewBuffer(4, 4)
	b.SetChar(-1, 0, 'x', terminal.RGBWhite)
	b.SetChar(0, -1, 'x', terminal.RGBWhite)
	b.SetChar(4, 0, 'x', terminal.RGBWhite)
	b.SetChar(0, 4, 'x', terminal.RGBWhite)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := b.GetChar(x, y); got != ' ' {
				t.Fatalf("cell (%d,%d) = %q, want untouched space", x, y, got)
			}
		}
	}

	if got := b.GetChar(99, 99); got != ' ' {
		t.Errorf("out-of-range read = %q, want space", got)
	}
}

func TestOverwritingWidePairBlanksOtherHalf(t *testing.T) {
	b := NewBuffer(4, 1)
	b.WriteString(0, 0, "世", terminal.RGBWhite)

	b.SetChar(1, 0, 'x', terminal.RGBWhite)
	if got := b.GetChar(0, 0); got != ' ' {
		t.Errorf("orphaned wide glyph = %q, want blank", got)
	}

	b.WriteString(0, 0, "界", terminal.RGBWhite)
	b.SetChar(0, 0, 'y', terminal.RGBWhite)
	if got := b.GetChar(1, 0); got != ' ' {
		t.Errorf("orphaned placeholder = %q, want blank", got)
	}
}

func TestResizeRoundTripPreservesContent(t *testing.T) {
	b := NewBuffer(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			b.SetChar(x, y, rune('a'+x+4*y), terminal.RGBWhite)
		}
	}

	b.Resize(8, 8)
	b.Resize(4, 4)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := rune('a' + x + 4*y)
			if got := b.GetChar(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %q after round trip, want %q", x, y, got, want)
			}
		}
	}
}

func TestResizeShrinkDropsOutside(t *testing.T) {
	b := NewBuffer(4, 4)
	b.SetChar(0, 0, 'k', terminal.RGBWhite)
	b.SetChar(3, 3, 'z', terminal.RGBWhite)

	b.Resize(2, 2)
	if got := b.GetChar(0, 0); got != 'k' {
		t.Errorf("kept cell = %q, want 'k'", got)
	}

	b.Resize(4, 4)
	if got := b.GetChar(3, 3); got != ' ' {
		t.Errorf("dropped cell reappeared as %q", got)
	}
}

func TestFlushCoalescesColorRuns(t *testing.T) {
	b := NewBuffer(4, 1)
	b.SetChar(0, 0, 'a', terminal.RGBRed)
	b.SetChar(1, 0, 'b', terminal.RGBRed)
	b.SetChar(2, 0, 'c', terminal.RGBBlue)
	b.SetChar(3, 0, 'd', terminal.RGBBlue)

	sink := newTestSink(4, 1)
	b.Flush(sink, true)

	if sink.colorCount() != 2 {
		t.Errorf("SetColor calls = %d, want 2 (one per color run)", sink.colorCount())
	}
	if got := sink.runText(); got != "abcd" {
		t.Errorf("flushed text = %q, want \"abcd\"", got)
	}
}

func TestFlushMonochromeSkipsColorCalls(t *testing.T) {
	b := NewBuffer(4, 1)
	b.WriteString(0, 0, "mono", terminal.RGBRed)

	sink := newTestSink(4, 1)
	b.Flush(sink, false)

	if sink.colorCount() != 0 {
		t.Errorf("SetColor calls = %d in monochrome mode, want 0", sink.colorCount())
	}
	if sink.resets != 0 {
		t.Errorf("ResetColor calls = %d in monochrome mode, want 0", sink.resets)
	}
}

func TestFlushDiffsAgainstPreviousFrame(t *testing.T) {
	b := NewBuffer(4, 1)
	b.WriteString(0, 0, "same", terminal.RGBWhite)

	sink := newTestSink(4, 1)
	b.Flush(sink, true)
	sink.reset()

	b.Flush(sink, true)
	if len(sink.runs) != 0 {
		t.Errorf("second flush wrote %v, want nothing", sink.runs)
	}

	b.SetChar(2, 0, 'X', terminal.RGBWhite)
	b.Flush(sink, true)
	if got := sink.runText(); got != "X" {
		t.Errorf("incremental flush wrote %q, want only \"X\"", got)
	}
}

func TestFlushAfterInvalidateRedrawsEverything(t *testing.T) {
	b := NewBuffer(3, 1)
	b.WriteString(0, 0, "abc", terminal.RGBWhite)

	sink := newTestSink(3, 1)
	b.Flush(sink, true)
	sink.reset()

	b.Invalidate()
	b.Flush(sink, true)
	if got := sink.runText(); got != "abc" {
		t.Errorf("post-invalidate flush wrote %q, want \"abc\"", got)
	}
}

func TestFlushSkipsPlaceholderCells(t *testing.T) {
	b := NewBuffer(4, 1)
	b.WriteString(0, 0, "世a", terminal.RGBWhite)

	sink := newTestSink(4, 1)
	b.Flush(sink, true)

	if got := sink.runText(); got != "世a " {
		t.Errorf("flushed text = %q, want %q", got, "世a ")
	}
}
