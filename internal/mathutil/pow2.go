// Package mathutil provides the numeric helpers shared by the exact and
// approximate key conversions.
package mathutil

import (
	"math"

	"github.com/tphakala/go-keytones/internal/simdops"
)

// ScaleOctaves returns v * 2^-octaves.
//
// The scale is applied by adjusting the binary exponent, so for any finite v
// the result carries no rounding beyond that of v itself, provided it stays
// within the normal range of F.
func ScaleOctaves[F simdops.Float](v F, octaves int) F {
	return F(math.Ldexp(float64(v), -octaves))
}

// OctaveFactor returns 2^-octaves as F.
func OctaveFactor[F simdops.Float](octaves int) F {
	return F(math.Ldexp(1, -octaves))
}

// SemitoneRatio returns 2^(semitones/12), the equal-tempered frequency ratio
// for an interval of the given number of semitones.
func SemitoneRatio(semitones float64) float64 {
	return math.Pow(2, semitones/semitonesPerOctave)
}

// SemitoneRatio32 is SemitoneRatio computed in float32 arithmetic for the
// exponent, matching float32 callers bit for bit across platforms.
func SemitoneRatio32(semitones float32) float32 {
	return float32(math.Pow(2, float64(semitones/semitonesPerOctave)))
}

// RelativeError returns |a-b| / min(a, b) for positive a and b.
func RelativeError(a, b float64) float64 {
	return math.Abs(a-b) / math.Min(a, b)
}
