// Package log provides the leveled logging interface used across gridpath.
//
// Library packages never construct loggers themselves: they accept a Logger
// through a functional option and default to NoOpLogger, so tests and
// embedding programs stay silent unless they opt in. The CLI wires a
// GologLogger (github.com/kataras/golog) at the level chosen on the command line.
//
// # Log Levels
//
//   - LevelDebug: per-attempt generation details (component counts, repair edges)
//   - LevelInfo:  lifecycle events (graph ready, traversal finished)
//   - LevelWarn:  recoverable trouble (regeneration attempt failed)
//   - LevelError: failures surfaced to the user
//   - LevelNone:  disables all output
//
// # Example
//
//	logger := log.NewGologLogger(golog.New())
//	logger.SetLevel(log.LevelDebug)
//	b, _ := builder.New(64, 64, 8, builder.WithLogger(logger))
package log
