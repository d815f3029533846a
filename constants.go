package keytones

import "github.com/tphakala/go-keytones/internal/octave"

// Key range
const (
	MinKey  = octave.MinKey  // Lowest MIDI key (C-1)
	MaxKey  = octave.MaxKey  // Highest MIDI key (G9)
	NumKeys = octave.NumKeys // Number of MIDI keys
)

// Tuning reference
const (
	ReferenceKey       = 69    // A4
	ReferenceFrequency = 440.0 // Hz at ReferenceKey
)

// ApproxTolerance bounds the relative error of the approximate conversions
// against the exact ones, over every key.
const ApproxTolerance = 0.001

// Table construction
const (
	maxOctaveNumber = 10 // Largest octave number under either alignment
)
