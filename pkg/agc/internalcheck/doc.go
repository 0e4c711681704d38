// Package internalcheck holds repository policy tests for the agc wrapper.
//
// The tests here do not exercise runtime behavior; they statically inspect
// the module's source to keep the FFI ownership boundary where it belongs.
// The package is not intended for import by applications.
package internalcheck
