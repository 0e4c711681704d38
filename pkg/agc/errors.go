package agc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/genomekit/agc-go/internal/bindings"
)

var (
	// ErrOpenFailed reports that libagc refused to open an archive: the
	// path does not exist, the file is corrupt, or the format version is
	// unsupported. libagc exposes no error-message call, so the wrapper
	// supplies the descriptive text.
	ErrOpenFailed = errors.New("agc: failed to open archive")

	// ErrArchiveClosed reports a query on an Archive whose handle has
	// already been released.
	ErrArchiveClosed = errors.New("agc: archive is closed")

	// ErrSampleNotFound reports a query naming a sample the archive does
	// not contain.
	ErrSampleNotFound = errors.New("agc: sample not found")

	// ErrContigNotFound reports a contig lookup failure. When the query
	// did not name a sample this also covers names that exist in more
	// than one sample: libagc signals both cases with the same sentinel.
	ErrContigNotFound = errors.New("agc: contig not found")

	// ErrInvalidRange reports a sequence range violating start >= 0 or
	// end >= start. Ranges past the contig end are not caught here; their
	// behavior is libagc's.
	ErrInvalidRange = errors.New("agc: invalid sequence range")

	// ErrInvalidName reports a path, sample, or contig name containing a
	// NUL byte, which cannot cross the C boundary as a C string. Caught
	// before the boundary, never handed to libagc.
	ErrInvalidName = errors.New("agc: name contains a NUL byte")

	// ErrNotBuilt mirrors bindings.ErrNotBuilt for callers of this package.
	ErrNotBuilt = bindings.ErrNotBuilt
)

// validName rejects strings that cannot be represented as NUL-terminated
// C strings. kind names the argument in the error message.
func validName(kind, s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: %s %q", ErrInvalidName, kind, s)
	}
	return nil
}

// contigLookupError maps libagc's single lookup-failure sentinel onto the
// error the caller can act on. Without a sample the native lookup also
// fails when the name is not unique archive-wide, and libagc does not say
// which case occurred.
func contigLookupError(sample Sample, name string) error {
	if s, ok := sample.Name(); ok {
		return fmt.Errorf("%w: %q in sample %q", ErrContigNotFound, name, s)
	}
	return fmt.Errorf("%w: %q (missing, or ambiguous across samples)", ErrContigNotFound, name)
}
