// Package keytones converts MIDI key numbers to equal-temperament frequency
// and unit period.
//
// Key k maps to
//
//	f(k) = 440 * 2^((k-69)/12) Hz
//
// and its unit period 1/f(k) in seconds per cycle. Multiplying a period by a
// sample rate gives the cycle length in samples.
//
// # Exact and Approximate Conversions
//
// [KeyToFrequency] and [KeyToPeriod] evaluate the formula directly with
// [math.Pow].
//
// [KeyToFrequencyApprox] and [KeyToPeriodApprox] avoid the fractional power.
// The key is split into a position within an octave and an octave number;
// a cubic Chebyshev series fitted over one octave gives the value at that
// position, and the octave number is applied as an exact power of two:
//
//	key -> (index, octave) -> series(index) * 2^-octave
//
// Frequency and period use different series and different octave
// alignments. The frequency series is fitted over the top octave (keys 116
// to 127), the period series over the bottom one (keys 0 to 11). Each series
// is only valid with its own alignment.
//
// Both approximate conversions stay within [ApproxTolerance] (0.1%) of the
// exact ones for every key.
//
// # Precision
//
// The float64 functions are the primary API. Each has a float32 counterpart
// with a 32 suffix, e.g. [KeyToFrequencyApprox32].
//
// # Invalid Keys
//
// Keys outside [MinKey, MaxKey] are a programming error. Every conversion
// panics with an error wrapping [ErrKeyOutOfRange] rather than returning a
// clamped or meaningless value. Use [ValidateKey] to check untrusted input
// first.
//
// # Thread Safety
//
// All functions are pure. The coefficient tables are built once at package
// initialisation and never modified, so every function is safe for
// concurrent use.
package keytones
