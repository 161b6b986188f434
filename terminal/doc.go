// Package terminal provides direct ANSI terminal control for the frame stream.
//
// Features:
//   - Pre-allocated escape sequences for cursor, screen mode and SGR control
//   - True color (24-bit) and 256-color foreground generators
//   - Color capability detection from the environment
//   - Raw stdin input parsing with escape sequence handling
//   - SIGWINCH resize detection
//   - Clean terminal restoration on exit, signal or panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
