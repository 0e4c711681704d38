package agc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnySampleIsZeroValue(t *testing.T) {
	var s Sample
	assert.False(t, s.Named())
	assert.Equal(t, AnySample, s)
	assert.Nil(t, s.ref())
}

func TestInSample(t *testing.T) {
	s := InSample("HG002")
	require.True(t, s.Named())

	name, ok := s.Name()
	require.True(t, ok)
	assert.Equal(t, "HG002", name)

	ref := s.ref()
	require.NotNil(t, ref)
	assert.Equal(t, "HG002", *ref)
}

func TestEmptySampleNameIsNotAnySample(t *testing.T) {
	s := InSample("")
	assert.True(t, s.Named())
	require.NotNil(t, s.ref())
	assert.Empty(t, *s.ref())
}

func TestSampleString(t *testing.T) {
	assert.Equal(t, "<any>", AnySample.String())
	assert.Equal(t, "HG002", InSample("HG002").String())
}

func TestSampleValidate(t *testing.T) {
	assert.NoError(t, AnySample.validate())
	assert.NoError(t, InSample("ok").validate())
	assert.ErrorIs(t, InSample("bad\x00name").validate(), ErrInvalidName)
}
