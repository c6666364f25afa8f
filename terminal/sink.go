package terminal

// Sink is the narrow capability the renderer needs from an output target.
// A frame flush is a sequence of MoveCursor/SetColor/WriteRun calls
// followed by one Flush; the renderer batches same-colored cells into
// single WriteRun calls and only calls SetColor when the run color
// actually changes.
//
// Implementations must tolerate calls in any order and never panic; a
// renderer cannot afford to crash a live terminal session mid-frame.
type Sink interface {
	// Init prepares the target (raw mode, alternate screen). Idempotent.
	Init() error

	// Fini restores the target to its pre-Init state. Idempotent.
	Fini()

	// Size returns current target dimensions in cells.
	Size() (width, height int)

	// MoveCursor positions the write cursor (0-indexed).
	MoveCursor(x, y int)

	// SetColor sets the foreground color for subsequent WriteRun calls.
	SetColor(c RGB)

	// ResetColor restores the target's default attributes.
	ResetColor()

	// WriteRun writes a run of glyphs at the cursor, advancing it.
	WriteRun(s string)

	// Clear erases the whole target surface.
	Clear()

	// SetCursorVisible shows or hides the hardware cursor.
	SetCursorVisible(visible bool)

	// Flush pushes any buffered output to the target.
	Flush() error
}
