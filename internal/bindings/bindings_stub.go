//go:build !cgo || windows

package bindings

// Stub implementations for builds without the native library. Every entry
// point fails with ErrNotBuilt so pkg/agc compiles and its pure-Go tests
// run on machines that have never built libagc.

func Open(path string, prefetch bool) (Handle, error) { return nil, ErrNotBuilt }

func Close(h Handle) error { return nil }

func SampleCount(h Handle) int { return 0 }

func ContigCount(h Handle, sample string) (int, error) { return 0, ErrNotBuilt }

func ReferenceSample(h Handle) (string, error) { return "", ErrNotBuilt }

func ListSamples(h Handle) ([]string, error) { return nil, ErrNotBuilt }

func ListContigs(h Handle, sample *string) ([]string, error) { return nil, ErrNotBuilt }

func ContigLength(h Handle, sample *string, name string) (int, error) {
	return 0, ErrNotBuilt
}

func ContigSequence(h Handle, sample *string, name string, start, end int) ([]byte, error) {
	return nil, ErrNotBuilt
}
