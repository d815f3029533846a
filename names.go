package keytones

import (
	"fmt"

	"github.com/tphakala/go-keytones/internal/octave"
)

var noteNames = [octave.KeysPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// NoteName returns the scientific pitch name of key, with middle C (key 60)
// as C4, e.g. "A4" for key 69 and "C-1" for key 0.
//
// Panics if key is out of range.
func NoteName(key int) string {
	index, oct := octave.Decompose(key, octave.Bottom)
	return fmt.Sprintf("%s%d", noteNames[index], oct-1)
}
