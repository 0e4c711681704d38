//go:build cgo && !windows

package bindings

/*
#cgo LDFLAGS: -lagc -lzstd -lstdc++ -lm
#cgo CFLAGS: -I${SRCDIR}
#include <stdlib.h>

// libagc C API. The prototypes are restated here, exactly as the library
// exports them, so the package links against a bare libagc.a or libagc.so
// without needing an installed header.
typedef struct agc_t agc_t;

agc_t *agc_open(char *fn, int prefetching);
int agc_close(agc_t *agc);
int agc_n_sample(const agc_t *agc);
int agc_n_ctg(const agc_t *agc, const char *sample);
int agc_get_ctg_len(const agc_t *agc, const char *sample, const char *name);
int agc_get_ctg_seq(const agc_t *agc, const char *sample, const char *name,
                    int start, int end, char *buf);
char *agc_reference_sample(const agc_t *agc);
char **agc_list_sample(const agc_t *agc, int *n_sample);
char **agc_list_ctg(const agc_t *agc, const char *sample, int *n_ctg);
int agc_list_destroy(char **list);
int agc_string_destroy(char *str);
*/
import "C"

import (
	"errors"
	"unsafe"
)

var (
	errOpen      = errors.New("agc_open returned NULL")
	errClose     = errors.New("agc_close failed")
	errNCtg      = errors.New("agc_n_ctg failed")
	errCtgLen    = errors.New("agc_get_ctg_len failed")
	errCtgSeq    = errors.New("agc_get_ctg_seq failed")
	errRefSample = errors.New("agc_reference_sample returned NULL")
	errListSmpl  = errors.New("agc_list_sample returned NULL")
	errListCtg   = errors.New("agc_list_ctg returned NULL")
)

// optCString converts an optional sample name into the pointer the C API
// expects: nil stays NULL, which libagc treats as "search every sample".
// The returned release func frees the C copy and must always be called.
func optCString(s *string) (*C.char, func()) {
	if s == nil {
		return nil, func() {}
	}
	p := C.CString(*s)
	return p, func() { C.free(unsafe.Pointer(p)) }
}

// copyStringList copies n foreign strings into Go-owned strings, preserving
// libagc's enumeration order. It never reads past n and skips NULL slots.
// The caller still owns the foreign array and must destroy it.
func copyStringList(list **C.char, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for _, p := range unsafe.Slice(list, n) {
		if p != nil {
			out = append(out, C.GoString(p))
		}
	}
	return out
}

// Open opens the archive at path and returns the opaque native handle.
// The caller owns the handle and must release it with Close exactly once.
func Open(path string, prefetch bool) (Handle, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	flag := C.int(0)
	if prefetch {
		flag = 1
	}
	h := C.agc_open(cPath, flag)
	if h == nil {
		return nil, errOpen
	}
	return unsafe.Pointer(h), nil
}

// Close releases a handle returned by Open. Safe to call with nil.
func Close(h Handle) error {
	if h == nil {
		return nil
	}
	if C.agc_close((*C.agc_t)(h)) != 0 {
		return errClose
	}
	return nil
}

// SampleCount reports the number of samples. No failure path in the C API.
func SampleCount(h Handle) int {
	return int(C.agc_n_sample((*C.agc_t)(h)))
}

// ContigCount reports the number of contigs in sample. A negative count is
// libagc's unknown-sample sentinel.
func ContigCount(h Handle, sample string) (int, error) {
	cSample := C.CString(sample)
	defer C.free(unsafe.Pointer(cSample))

	n := C.agc_n_ctg((*C.agc_t)(h), cSample)
	if n < 0 {
		return 0, errNCtg
	}
	return int(n), nil
}

// ReferenceSample returns the archive's reference sample name. The foreign
// string is copied and destroyed before returning.
func ReferenceSample(h Handle) (string, error) {
	p := C.agc_reference_sample((*C.agc_t)(h))
	if p == nil {
		return "", errRefSample
	}
	name := C.GoString(p)
	C.agc_string_destroy(p)
	return name, nil
}

// ListSamples returns every sample name in the archive. The foreign array
// and its elements are released via agc_list_destroy before returning.
func ListSamples(h Handle) ([]string, error) {
	var n C.int
	list := C.agc_list_sample((*C.agc_t)(h), &n)
	if list == nil {
		return nil, errListSmpl
	}
	out := copyStringList(list, int(n))
	C.agc_list_destroy(list)
	return out, nil
}

// ListContigs returns the contig names in sample, or across the whole
// archive when sample is nil. Same release discipline as ListSamples.
func ListContigs(h Handle, sample *string) ([]string, error) {
	cSample, release := optCString(sample)
	defer release()

	var n C.int
	list := C.agc_list_ctg((*C.agc_t)(h), cSample, &n)
	if list == nil {
		return nil, errListCtg
	}
	out := copyStringList(list, int(n))
	C.agc_list_destroy(list)
	return out, nil
}

// ContigLength reports the length of contig name. With a nil sample the
// name must be unique archive-wide; libagc signals both "not found" and
// "ambiguous" with the same negative sentinel.
func ContigLength(h Handle, sample *string, name string) (int, error) {
	cSample, release := optCString(sample)
	defer release()
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	n := C.agc_get_ctg_len((*C.agc_t)(h), cSample, cName)
	if n < 0 {
		return 0, errCtgLen
	}
	return int(n), nil
}

// ContigSequence retrieves the bases of contig name in [start, end). The
// C API writes into a caller-supplied buffer, so the scratch buffer is
// malloc'd here (one extra byte for the terminator libagc appends) and
// freed on every exit; only the returned-length prefix is copied out.
// Range preconditions (start >= 0, end >= start, end within C int range)
// are enforced by pkg/agc.
func ContigSequence(h Handle, sample *string, name string, start, end int) ([]byte, error) {
	cSample, release := optCString(sample)
	defer release()
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	// C.malloc aborts the process on allocation failure, so the scratch
	// buffer never comes back NULL.
	buf := (*C.char)(C.malloc(C.size_t(end - start + 1)))
	defer C.free(unsafe.Pointer(buf))

	n := C.agc_get_ctg_seq((*C.agc_t)(h), cSample, cName, C.int(start), C.int(end), buf)
	if n < 0 {
		return nil, errCtgSeq
	}
	return C.GoBytes(unsafe.Pointer(buf), n), nil
}
