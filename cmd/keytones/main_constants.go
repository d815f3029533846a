package main

// Flag defaults
const (
	allKeys     = -1  // -key value selecting every key
	defaultRate = 0.0 // -rate value disabling the samples column
)

// Output formatting
const (
	percentScale   = 100 // Relative error to percent
	columnSepWidth = 2   // Spaces between tabwriter columns
	tabMinWidth    = 0   // tabwriter minimum cell width
	tabWidth       = 8   // tabwriter tab width
	padChar        = ' ' // tabwriter padding
)
