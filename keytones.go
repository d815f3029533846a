package keytones

import (
	"github.com/tphakala/go-keytones/internal/chebyshev"
	"github.com/tphakala/go-keytones/internal/mathutil"
	"github.com/tphakala/go-keytones/internal/octave"
)

// ErrKeyOutOfRange indicates a key outside [MinKey, MaxKey].
var ErrKeyOutOfRange = octave.ErrKeyOutOfRange

// ValidateKey returns an error wrapping ErrKeyOutOfRange if key is not a
// MIDI key, and nil otherwise.
func ValidateKey(key int) error {
	return octave.CheckKey(key)
}

// KeyToFrequency returns the frequency of key in Hz.
//
// Panics if key is out of range.
func KeyToFrequency(key int) float64 {
	octave.MustCheckKey(key)
	return ReferenceFrequency * mathutil.SemitoneRatio(float64(key-ReferenceKey))
}

// KeyToPeriod returns the unit period of key in seconds per cycle. It is
// exactly 1 / KeyToFrequency(key).
//
// Panics if key is out of range.
func KeyToPeriod(key int) float64 {
	return 1 / KeyToFrequency(key)
}

// KeyToFrequency32 is KeyToFrequency in float32.
func KeyToFrequency32(key int) float32 {
	octave.MustCheckKey(key)
	return ReferenceFrequency * mathutil.SemitoneRatio32(float32(key-ReferenceKey))
}

// KeyToPeriod32 is KeyToPeriod in float32.
func KeyToPeriod32(key int) float32 {
	return 1 / KeyToFrequency32(key)
}

// Series bound to their octave alignment. Never pair a table with the other
// alignment: the fit only holds for the keys it was built from.
var (
	frequencySeries64 = chebyshev.NewSeries[float64](chebyshev.TopOctave)
	frequencySeries32 = chebyshev.NewSeries[float32](chebyshev.TopOctave)
	periodSeries64    = chebyshev.NewSeries[float64](chebyshev.BottomOctave)
	periodSeries32    = chebyshev.NewSeries[float32](chebyshev.BottomOctave)
)

// KeyToFrequencyApprox returns the frequency of key in Hz from the top
// octave Chebyshev series. The result is within ApproxTolerance of
// KeyToFrequency.
//
// Panics if key is out of range.
func KeyToFrequencyApprox(key int) float64 {
	return approximate(frequencySeries64, octave.Top, key)
}

// KeyToPeriodApprox returns the unit period of key from the bottom octave
// Chebyshev series. The result is within ApproxTolerance of KeyToPeriod.
//
// Panics if key is out of range.
func KeyToPeriodApprox(key int) float64 {
	return approximate(periodSeries64, octave.Bottom, key)
}

// KeyToFrequencyApprox32 is KeyToFrequencyApprox in float32.
func KeyToFrequencyApprox32(key int) float32 {
	return approximate(frequencySeries32, octave.Top, key)
}

// KeyToPeriodApprox32 is KeyToPeriodApprox in float32.
func KeyToPeriodApprox32(key int) float32 {
	return approximate(periodSeries32, octave.Bottom, key)
}

// approximate evaluates s at the octave index of key and shifts the result
// by the octave number.
func approximate[F chebyshev.Float](s *chebyshev.Series[F], a octave.Alignment, key int) F {
	index, oct := octave.Decompose(key, a)
	return mathutil.ScaleOctaves(s.At(index), oct)
}
