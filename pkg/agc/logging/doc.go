// Package logging defines the narrow logging facade used by the agc
// wrapper. It is backed by log/slog so applications can plug in their own
// handler, or substitute the whole Logger in tests.
package logging
