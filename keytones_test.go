package keytones

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-keytones/internal/testutil"
)

// TestKeyToFrequency_KnownValues checks the exact path against the standard
// equal-temperament note table.
func TestKeyToFrequency_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		key  int
		freq float64
	}{
		{"A0", 21, 27.5},
		{"C4", 60, 261.625565},
		{"A4", 69, 440.0},
		{"A5", 81, 880.0},
		{"C8", 108, 4186.009045},
		{"C-1", 0, 8.175799},
		{"G9", 127, 12543.853951},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertRelativeError(t, tt.freq, KeyToFrequency(tt.key), testutil.ExactTolerance)
			testutil.AssertRelativeError(t, tt.freq, float64(KeyToFrequency32(tt.key)), testutil.ExactTolerance)
		})
	}
}

func TestKeyToFrequency_Reference(t *testing.T) {
	assert.Equal(t, 440.0, KeyToFrequency(ReferenceKey))
	assert.Equal(t, float32(440), KeyToFrequency32(ReferenceKey))
	testutil.AssertRelativeError(t, 1.0/440, KeyToPeriod(ReferenceKey), testutil.ExactTolerance)
	assert.Equal(t, 1.0, math.Round(KeyToPeriod(ReferenceKey)*440))
}

// TestKeyToPeriod_Reciprocal checks period is the reciprocal of frequency
// bit for bit.
func TestKeyToPeriod_Reciprocal(t *testing.T) {
	for key := MinKey; key <= MaxKey; key++ {
		assert.Equal(t, 1/KeyToFrequency(key), KeyToPeriod(key), "key %d", key)
		assert.Equal(t, 1/KeyToFrequency32(key), KeyToPeriod32(key), "key %d", key)
	}
}

func TestKeyToFrequency_StrictlyIncreasing(t *testing.T) {
	freqs := FrequencyTable()
	testutil.AssertStrictlyIncreasing(t, freqs[:])
	testutil.AssertAllPositive(t, freqs[:])

	approx := FrequencyApproxTable()
	testutil.AssertStrictlyIncreasing(t, approx[:])
}

// TestKeyToFrequency_Octaves checks that twelve semitones double the
// frequency.
func TestKeyToFrequency_Octaves(t *testing.T) {
	for key := MinKey; key+12 <= MaxKey; key++ {
		testutil.AssertRelativeError(t, 2*KeyToFrequency(key), KeyToFrequency(key+12), 1e-14)
	}
}

func TestApprox_WithinTolerance(t *testing.T) {
	tests := []struct {
		name        string
		exact, appr func(int) float64
	}{
		{"frequency", KeyToFrequency, KeyToFrequencyApprox},
		{"period", KeyToPeriod, KeyToPeriodApprox},
		{"frequency32", widen(KeyToFrequency32), widen(KeyToFrequencyApprox32)},
		{"period32", widen(KeyToPeriod32), widen(KeyToPeriodApprox32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key := MinKey; key <= MaxKey; key++ {
				testutil.AssertClose(t, tt.exact(key), tt.appr(key), ApproxTolerance, "key %d", key)
			}
			key, relErr := MaxRelativeError(tt.exact, tt.appr)
			assert.Less(t, relErr, ApproxTolerance, "worst key %d", key)
		})
	}
}

func TestApprox_Reference(t *testing.T) {
	assert.Equal(t, 440.0, math.Round(KeyToFrequencyApprox(ReferenceKey)))
	assert.Equal(t, float32(440), float32(math.Round(float64(KeyToFrequencyApprox32(ReferenceKey)))))
	assert.Equal(t, 440.0, math.Round(1/KeyToPeriodApprox(ReferenceKey)))
}

// TestApprox_AlignmentMatters checks the series are not interchangeable:
// evaluating the frequency series with the bottom alignment is far off.
func TestApprox_AlignmentMatters(t *testing.T) {
	wrong := func(key int) float64 { return approximate(frequencySeries64, 0, key) }
	_, relErr := MaxRelativeError(KeyToFrequency, wrong)
	assert.Greater(t, relErr, 1.0)
}

func TestConversions_OutOfRange(t *testing.T) {
	funcs := map[string]func(int){
		"KeyToFrequency":         func(k int) { KeyToFrequency(k) },
		"KeyToPeriod":            func(k int) { KeyToPeriod(k) },
		"KeyToFrequencyApprox":   func(k int) { KeyToFrequencyApprox(k) },
		"KeyToPeriodApprox":      func(k int) { KeyToPeriodApprox(k) },
		"KeyToFrequency32":       func(k int) { KeyToFrequency32(k) },
		"KeyToPeriod32":          func(k int) { KeyToPeriod32(k) },
		"KeyToFrequencyApprox32": func(k int) { KeyToFrequencyApprox32(k) },
		"KeyToPeriodApprox32":    func(k int) { KeyToPeriodApprox32(k) },
		"NoteName":               func(k int) { NoteName(k) },
	}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			for _, key := range []int{-1, 128, 255, math.MaxInt} {
				err := panicValue(func() { fn(key) })
				require.Error(t, err, "key %d did not panic", key)
				assert.ErrorIs(t, err, ErrKeyOutOfRange)
			}
			assert.NotPanics(t, func() { fn(MinKey) })
			assert.NotPanics(t, func() { fn(MaxKey) })
		})
	}
}

func TestValidateKey(t *testing.T) {
	assert.NoError(t, ValidateKey(0))
	assert.NoError(t, ValidateKey(127))

	err := ValidateKey(128)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrKeyOutOfRange))
}

func TestConversions_Concurrent(t *testing.T) {
	want := FrequencyApproxTable()

	var wg sync.WaitGroup
	results := make([]Table, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := MinKey; key <= MaxKey; key++ {
				results[i][key] = KeyToFrequencyApprox(key)
			}
		}()
	}
	wg.Wait()

	for i := range results {
		assert.Equal(t, want, results[i], "goroutine %d", i)
	}
}

func widen(f func(int) float32) func(int) float64 {
	return func(k int) float64 { return float64(f(k)) }
}

// panicValue runs fn and returns the error it panicked with, or nil.
func panicValue(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.New("non-error panic")
		}
	}()
	fn()
	return nil
}

func BenchmarkKeyToFrequency(b *testing.B) {
	for b.Loop() {
		_ = KeyToFrequency(60)
	}
}

func BenchmarkKeyToFrequencyApprox(b *testing.B) {
	for b.Loop() {
		_ = KeyToFrequencyApprox(60)
	}
}

func BenchmarkKeyToPeriodApprox32(b *testing.B) {
	for b.Loop() {
		_ = KeyToPeriodApprox32(60)
	}
}
