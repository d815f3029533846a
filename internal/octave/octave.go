// Package octave splits MIDI keys into a position within an octave and an
// octave number, under the two alignment conventions used by the Chebyshev
// coefficient tables.
package octave

import (
	"errors"
	"fmt"
)

// ErrKeyOutOfRange indicates a MIDI key outside [MinKey, MaxKey].
var ErrKeyOutOfRange = errors.New("midi key out of range")

// Alignment selects where octave boundaries fall.
//
// A coefficient table is only valid for the alignment it was fitted with, so
// the two conventions are kept as distinct values rather than one
// parameterised formula.
type Alignment int

const (
	// Bottom places octave boundaries at C: key 0 is index 0 of octave 0 and
	// octave numbers grow with the key.
	Bottom Alignment = iota

	// Top places index 0 of octave 0 at key 116 (G#8). Octave numbers grow
	// towards lower keys, so scaling by 2^-octave walks down from the top
	// octave.
	Top
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// CheckKey returns an error wrapping ErrKeyOutOfRange if key is not a MIDI key.
func CheckKey(key int) error {
	if key < MinKey || key > MaxKey {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrKeyOutOfRange, key, MinKey, MaxKey)
	}
	return nil
}

// MustCheckKey panics with the CheckKey error if key is not a MIDI key.
func MustCheckKey(key int) {
	if err := CheckKey(key); err != nil {
		panic(err)
	}
}

// Decompose returns the index within the octave (0..11) and the octave
// number of key under alignment a.
//
// Panics if key is out of range or a is unknown.
func Decompose(key int, a Alignment) (index, octave int) {
	MustCheckKey(key)

	switch a {
	case Bottom:
		return key % KeysPerOctave, key / KeysPerOctave
	case Top:
		index = (key + topKeyOffset) % KeysPerOctave
		octave = topOctaveCount - (key+KeysPerOctave-index)/KeysPerOctave
		return index, octave
	default:
		panic(fmt.Sprintf("octave: unknown alignment %v", a))
	}
}

// Compose is the inverse of Decompose: it rebuilds the key from an index and
// octave number. The result is not range checked.
func Compose(index, octave int, a Alignment) int {
	switch a {
	case Bottom:
		return octave*KeysPerOctave + index
	case Top:
		return topReferenceKey + index - octave*KeysPerOctave
	default:
		panic(fmt.Sprintf("octave: unknown alignment %v", a))
	}
}
