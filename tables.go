package keytones

import (
	"github.com/tphakala/go-keytones/internal/chebyshev"
	"github.com/tphakala/go-keytones/internal/mathutil"
	"github.com/tphakala/go-keytones/internal/octave"
	"github.com/tphakala/go-keytones/internal/simdops"
)

// Table holds one value per MIDI key, indexed by key.
type Table [NumKeys]float64

// FrequencyTable returns KeyToFrequency for every key.
func FrequencyTable() Table {
	return exactTable(KeyToFrequency)
}

// PeriodTable returns KeyToPeriod for every key.
func PeriodTable() Table {
	return exactTable(KeyToPeriod)
}

// FrequencyApproxTable returns KeyToFrequencyApprox for every key.
func FrequencyApproxTable() Table {
	return octaveTable(frequencySeries64, octave.Top)
}

// PeriodApproxTable returns KeyToPeriodApprox for every key.
func PeriodApproxTable() Table {
	return octaveTable(periodSeries64, octave.Bottom)
}

func exactTable(convert func(int) float64) Table {
	var t Table
	for key := range t {
		t[key] = convert(key)
	}
	return t
}

// octaveTable evaluates the series once per octave index and fills each
// octave by scaling that row with its power of two. The values equal the
// per-key approximate conversions exactly.
func octaveTable(s *chebyshev.Series[float64], a octave.Alignment) Table {
	var base, row [octave.KeysPerOctave]float64
	for i := range base {
		base[i] = s.At(i)
	}

	ops := simdops.For[float64]()
	var t Table
	for oct := 0; oct <= maxOctaveNumber; oct++ {
		ops.Scale(row[:], base[:], mathutil.OctaveFactor[float64](oct))
		for i, v := range row {
			key := octave.Compose(i, oct, a)
			if key >= MinKey && key <= MaxKey {
				t[key] = v
			}
		}
	}
	return t
}

// MaxRelativeError compares got against want over every key and returns the
// key with the largest relative error |got-want| / min(got, want), together
// with that error.
func MaxRelativeError(want, got func(int) float64) (key int, relErr float64) {
	for k := MinKey; k <= MaxKey; k++ {
		if e := mathutil.RelativeError(want(k), got(k)); e > relErr {
			key, relErr = k, e
		}
	}
	return key, relErr
}
