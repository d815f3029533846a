package main

// Fit domain: octave indices 0..11 mapped onto [-1, 1]
const (
	keysPerOctave = 12
	fitOrigin     = 0.0
	fitWidth      = keysPerOctave - 1
)

// Tuning reference
const (
	referenceKey       = 69
	referenceFrequency = 440.0
	topReferenceKey    = 116
)

// Flag defaults
const (
	defaultTerms   = 4
	defaultPackage = "chebyshev"
	defaultOutput  = "tables.go"
	minTerms       = 1
	maxTerms       = keysPerOctave // One term per sample point at most
)
