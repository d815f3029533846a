package mathutil

// Equal temperament constants
const (
	semitonesPerOctave = 12.0 // Equal-tempered semitones per doubling
)
