package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleOctaves(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		octaves int
		want    float64
	}{
		{"Identity", 440, 0, 440},
		{"Down one", 440, 1, 220},
		{"Down four", 7040, 4, 440},
		{"Up two", 110, -2, 440},
		{"Fraction", 0.1, 3, 0.0125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScaleOctaves(tt.v, tt.octaves))
			assert.Equal(t, float32(tt.want), ScaleOctaves(float32(tt.v), tt.octaves))
		})
	}
}

// TestScaleOctaves_Exact checks scaling matches multiplication by the exact
// power of two bit for bit.
func TestScaleOctaves_Exact(t *testing.T) {
	v := 9361.596739618899
	for o := 0; o <= 10; o++ {
		assert.Equal(t, v*OctaveFactor[float64](o), ScaleOctaves(v, o))
		assert.Equal(t, v/math.Pow(2, float64(o)), ScaleOctaves(v, o))
	}
}

func TestSemitoneRatio(t *testing.T) {
	assert.Equal(t, 2.0, SemitoneRatio(12))
	assert.Equal(t, 1.0, SemitoneRatio(0))
	assert.InDelta(t, math.Sqrt2, SemitoneRatio(6), 1e-15)
	assert.InDelta(t, 1.059463094, SemitoneRatio(1), 1e-9)
	assert.InDelta(t, float32(1.059463094), SemitoneRatio32(1), 1e-6)
}

func TestRelativeError(t *testing.T) {
	assert.Zero(t, RelativeError(440, 440))
	assert.InDelta(t, 0.01, RelativeError(100, 101), 1e-15)
	assert.Equal(t, RelativeError(100, 101), RelativeError(101, 100))
}
