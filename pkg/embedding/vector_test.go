package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	vec := []float32{0.25, -1.5, 0, 3.14159, math.MaxFloat32}

	data := Encode(vec)
	require.Len(t, data, len(vec)*4)

	got := Decode(data)
	assert.Equal(t, vec, got)
}

func TestEncodeDecode_Empty(t *testing.T) {
	assert.Nil(t, Encode(nil))
	assert.Nil(t, Encode([]float32{}))
	assert.Nil(t, Decode(nil))
	assert.Nil(t, Decode([]byte{1, 2, 3})) // under one float32
}

func TestDecode_IgnoresTrailingBytes(t *testing.T) {
	data := append(Encode([]float32{1, 2}), 0xFF)
	assert.Equal(t, []float32{1, 2}, Decode(data))
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical unit vectors", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"scale invariant", []float32{2, 2}, []float32{5, 5}, 1},
		{"length mismatch", []float32{1, 0}, []float32{1, 0, 0}, 0},
		{"empty", nil, nil, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosine_Symmetric(t *testing.T) {
	a := []float32{0.3, -0.7, 0.9}
	b := []float32{0.1, 0.5, -0.2}
	assert.InDelta(t, Cosine(a, b), Cosine(b, a), 1e-12)
}
