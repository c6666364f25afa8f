// Package terminal provides the output sink abstraction for the console
// renderer: direct ANSI emission with raw-mode handling, a tcell-backed
// adapter for portable or headless use, and the RGB color model shared by
// every drawing layer.
//
// The renderer never talks to a concrete terminal API; it depends on Sink
// only. AnsiSink targets xterm-compatible terminals with 24-bit or
// 256-color output, ScreenSink targets any tcell.Screen (including
// tcell's simulation screen for tests).
package terminal
