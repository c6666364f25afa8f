// Package console implements a region-based, double-buffered text-UI
// compositor. A WindowManager owns a character grid (Buffer) and a table
// of named panels (Region), runs its own render loop on a background
// goroutine, and flushes each frame to a terminal.Sink as minimal
// cursor/color/run writes.
//
// All drawing operations are total: out-of-bounds writes are dropped, not
// reported, so a terminal resize racing an in-flight render can never
// crash a session.
package console
