// Package agc provides Go bindings for libagc, the reader side of the AGC
// (Assembled Genomes Compressor) archive format. An Archive wraps exactly
// one native handle and exposes sample and contig enumeration plus
// random-access sequence retrieval. No foreign pointer ever reaches the
// caller: every native string or string array is copied into Go-owned
// memory and released via libagc's designated destroy call before a method
// returns.
//
// The native library is linked via cgo. On platforms where the bindings
// are not built (Windows, or CGO disabled) the package still compiles and
// Open fails with ErrNotBuilt.
package agc
