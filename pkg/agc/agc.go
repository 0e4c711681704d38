package agc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/genomekit/agc-go/internal/bindings"
	"github.com/genomekit/agc-go/pkg/agc/logging"
)

// Archive is an open AGC archive. It owns exactly one native handle, which
// is released exactly once: by the first Close call, or by the finalizer
// when the Archive becomes unreachable without one.
//
// Methods are safe for concurrent use. Queries on the same Archive may run
// in parallel (libagc keeps decompression state per call); Close takes the
// write side of the lock, so a handle is never released while a query is
// in flight.
type Archive struct {
	mu   sync.RWMutex
	ptr  bindings.Handle
	path string
	log  logging.Logger
}

// Open opens the AGC archive at path. With prefetch set, libagc loads the
// whole archive into memory at open time: later queries are faster, at the
// cost of open-time latency and a native buffer proportional to the archive
// size that is held until Close.
func Open(path string, prefetch bool) (*Archive, error) {
	return OpenWithLogger(path, prefetch, nil)
}

// OpenWithLogger is Open with a caller-provided logger. A nil logger binds
// to slog.Default().
func OpenWithLogger(path string, prefetch bool, log logging.Logger) (*Archive, error) {
	if err := validName("path", path); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.New(nil)
	}

	ptr, err := bindings.Open(path, prefetch)
	if err != nil {
		if errors.Is(err, bindings.ErrNotBuilt) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", ErrOpenFailed, path)
	}

	a := &Archive{ptr: ptr, path: path, log: log.With("archive", path)}
	runtime.SetFinalizer(a, func(a *Archive) { _ = a.Close() })
	a.log.Debug(context.Background(), "opened archive", "prefetch", prefetch)
	return a, nil
}

// Close releases the native handle. It is idempotent: the first call
// closes the handle, every later call is a no-op returning nil.
func (a *Archive) Close() error {
	if a == nil {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ptr == nil {
		return nil
	}

	runtime.SetFinalizer(a, nil)
	err := bindings.Close(a.ptr)
	a.ptr = nil
	if err != nil {
		return fmt.Errorf("agc: closing %s: %w", a.path, err)
	}
	a.log.Debug(context.Background(), "closed archive")
	return nil
}

// Path returns the filesystem path the archive was opened from.
func (a *Archive) Path() string {
	return a.path
}

// acquire takes the read lock and hands out the live handle. The release
// func must be called once the native call has returned.
func (a *Archive) acquire() (bindings.Handle, func(), error) {
	a.mu.RLock()
	if a.ptr == nil {
		a.mu.RUnlock()
		return nil, nil, ErrArchiveClosed
	}
	return a.ptr, a.mu.RUnlock, nil
}

// SampleCount reports the number of samples in the archive. A closed
// Archive reports zero.
func (a *Archive) SampleCount() int {
	ptr, release, err := a.acquire()
	if err != nil {
		return 0
	}
	defer release()
	return bindings.SampleCount(ptr)
}

// Samples lists every sample name in the archive, in libagc's enumeration
// order.
func (a *Archive) Samples() ([]string, error) {
	ptr, release, err := a.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	names, err := bindings.ListSamples(ptr)
	if err != nil {
		return nil, fmt.Errorf("agc: listing samples in %s: %w", a.path, err)
	}
	return names, nil
}

// ReferenceSample returns the name of the archive's reference sample, or
// an error when none is configured.
func (a *Archive) ReferenceSample() (string, error) {
	ptr, release, err := a.acquire()
	if err != nil {
		return "", err
	}
	defer release()

	name, err := bindings.ReferenceSample(ptr)
	if err != nil || name == "" {
		return "", fmt.Errorf("%w: no reference sample configured in %s", ErrSampleNotFound, a.path)
	}
	return name, nil
}

// ContigCount reports the number of contigs in the named sample.
func (a *Archive) ContigCount(sample string) (int, error) {
	if err := validName("sample", sample); err != nil {
		return 0, err
	}
	ptr, release, err := a.acquire()
	if err != nil {
		return 0, err
	}
	defer release()

	n, err := bindings.ContigCount(ptr, sample)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSampleNotFound, sample)
	}
	return n, nil
}

// Contigs lists contig names in libagc's enumeration order: those of one
// sample for InSample(name), or of the whole archive for AnySample.
func (a *Archive) Contigs(sample Sample) ([]string, error) {
	if err := sample.validate(); err != nil {
		return nil, err
	}
	ptr, release, err := a.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	names, err := bindings.ListContigs(ptr, sample.ref())
	if err != nil {
		if sample.Named() {
			return nil, fmt.Errorf("%w: %q", ErrSampleNotFound, sample)
		}
		return nil, fmt.Errorf("agc: listing contigs in %s: %w", a.path, err)
	}
	if len(names) == 0 {
		// An empty listing for a named sample is verified against the
		// sample table, so an unknown sample reports not-found rather
		// than an empty success.
		if s, ok := sample.Name(); ok {
			if _, cerr := bindings.ContigCount(ptr, s); cerr != nil {
				return nil, fmt.Errorf("%w: %q", ErrSampleNotFound, s)
			}
		}
	}
	return names, nil
}

// ContigLength reports the length in bases of the named contig. With
// AnySample the name must be unique across the archive.
func (a *Archive) ContigLength(sample Sample, name string) (int, error) {
	if err := sample.validate(); err != nil {
		return 0, err
	}
	if err := validName("contig", name); err != nil {
		return 0, err
	}
	ptr, release, err := a.acquire()
	if err != nil {
		return 0, err
	}
	defer release()

	n, err := bindings.ContigLength(ptr, sample.ref(), name)
	if err != nil {
		return 0, contigLookupError(sample, name)
	}
	return n, nil
}

// ContigSequence returns the bases of the named contig in the half-open,
// zero-based range [start, end). The range semantics are libagc's own: the
// wrapper rejects start < 0, end < start, and offsets past the 32-bit range
// the C API accepts, but does not clamp end to the contig length or
// second-guess what the library returns for start == end.
func (a *Archive) ContigSequence(sample Sample, name string, start, end int) ([]byte, error) {
	// The C API takes int offsets; anything wider would truncate silently
	// at the boundary while the scratch buffer is sized from the full value.
	if start < 0 || end < start || end > math.MaxInt32 {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, start, end)
	}
	if err := sample.validate(); err != nil {
		return nil, err
	}
	if err := validName("contig", name); err != nil {
		return nil, err
	}
	ptr, release, err := a.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	seq, err := bindings.ContigSequence(ptr, sample.ref(), name, start, end)
	if err != nil {
		return nil, contigLookupError(sample, name)
	}
	return seq, nil
}
