package octave

// Key range
const (
	MinKey  = 0   // Lowest MIDI key
	MaxKey  = 127 // Highest MIDI key
	NumKeys = MaxKey - MinKey + 1
)

// Octave geometry
const (
	KeysPerOctave = 12 // Semitones per octave
)

// Top alignment constants.
// Key 116 is index 0 of octave 0; octave numbers grow downwards from there.
const (
	topReferenceKey = 116
	topKeyOffset    = 120 - topReferenceKey // Keeps the modulo operand non-negative
	topOctaveCount  = 10                    // Octave number of the lowest (partial) octave row
)
