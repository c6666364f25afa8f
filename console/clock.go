package console

import "time"

// Clock abstracts the time source so blink and debounce behavior are
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}
