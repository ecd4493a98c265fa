package dbtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorValueScan(t *testing.T) {
	v := Vector{0.5, -1.25, 2}
	raw, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, "[0.500000,-1.250000,2.000000]", raw)

	var got Vector
	require.NoError(t, got.Scan(raw))
	assert.Equal(t, v, got)

	// bytes from the driver work the same
	var fromBytes Vector
	require.NoError(t, fromBytes.Scan([]byte("[1.000000,2.000000]")))
	assert.Equal(t, Vector{1, 2}, fromBytes)
}

func TestVectorEmptyAndNil(t *testing.T) {
	raw, err := Vector{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	var got Vector
	require.NoError(t, got.Scan("[]"))
	assert.Empty(t, got)

	require.NoError(t, got.Scan(nil))
	assert.Nil(t, got)
}

func TestVectorScanRejectsGarbage(t *testing.T) {
	var got Vector
	assert.Error(t, got.Scan("[one,two]"))
	assert.Error(t, got.Scan(42))
}
