package agc

// Sample selects which sample a contig query applies to. The zero value,
// AnySample, asks libagc to resolve the contig name across every sample in
// the archive; that lookup fails when the name is not unique archive-wide.
// AnySample is a distinct mode, not an empty sample name: a sample literally
// named "" is InSample("").
type Sample struct {
	name  string
	named bool
}

// AnySample matches a contig in any sample of the archive.
var AnySample = Sample{}

// InSample restricts a query to the named sample.
func InSample(name string) Sample {
	return Sample{name: name, named: true}
}

// Name returns the sample name and whether one was set.
func (s Sample) Name() (string, bool) {
	return s.name, s.named
}

// Named reports whether the query is restricted to one sample.
func (s Sample) Named() bool {
	return s.named
}

func (s Sample) String() string {
	if !s.named {
		return "<any>"
	}
	return s.name
}

// ref converts the optional into the *string the bindings layer passes to
// C: nil crosses the boundary as NULL.
func (s Sample) ref() *string {
	if !s.named {
		return nil
	}
	name := s.name
	return &name
}

// validate rejects a named sample whose name cannot cross the C boundary.
func (s Sample) validate() error {
	if !s.named {
		return nil
	}
	return validName("sample", s.name)
}
