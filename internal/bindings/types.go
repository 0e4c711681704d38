// Package bindings holds the cgo layer for libagc, the AGC (Assembled
// Genomes Compressor) C API. It restates the native signatures, converts
// between Go and C types, and releases every foreign allocation before a
// result escapes. Name validation and handle-lifetime tracking live in
// pkg/agc; this package should only be imported from there.
package bindings

import (
	"errors"
	"unsafe"
)

// Handle is the opaque native archive handle returned by Open. It is only
// meaningful to this package; pkg/agc treats it as a token it owes exactly
// one Close for.
type Handle = unsafe.Pointer

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary (Windows build or CGO disabled). Callers can use this to
// fall back gracefully on platforms without libagc.
var ErrNotBuilt = errors.New("agc/internal/bindings: native bindings not built")
