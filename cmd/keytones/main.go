// Command keytones prints MIDI key frequencies and periods, comparing the
// exact and approximate conversions.
//
// Usage:
//
//	keytones                     # frequency of every key, exact and approximate
//	keytones -key 69             # a single key
//	keytones -period -rate 48000 # periods, with cycle length in samples
//	keytones -float32 -summary   # float32 conversions, accuracy summary only
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	keytones "github.com/tphakala/go-keytones"
)

var errInvalidRate = errors.New("invalid sample rate")

// options holds parsed command-line settings.
type options struct {
	key        int
	period     bool
	float32    bool
	summary    bool
	sampleRate float64
}

// converter pairs an exact and an approximate conversion.
type converter struct {
	label  string
	unit   string
	exact  func(int) float64
	approx func(int) float64
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	keys, err := selectKeys(opts.key)
	if err != nil {
		return err
	}

	conv := selectConverter(opts)
	if !opts.summary {
		if err := writeTable(w, conv, keys, opts.sampleRate); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
	}
	return writeSummary(w, conv, keys)
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("keytones", flag.ContinueOnError)
	fs.IntVar(&opts.key, "key", allKeys, "MIDI key to print (0-127), or -1 for all keys")
	fs.BoolVar(&opts.period, "period", false, "Print unit period instead of frequency")
	fs.BoolVar(&opts.float32, "float32", false, "Use the float32 conversions")
	fs.BoolVar(&opts.summary, "summary", false, "Print only the accuracy summary")
	fs.Float64Var(&opts.sampleRate, "rate", defaultRate, "Sample rate in Hz for the samples-per-cycle column (with -period)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.sampleRate < 0 {
		return opts, fmt.Errorf("%w: %g", errInvalidRate, opts.sampleRate)
	}
	return opts, nil
}

func selectKeys(key int) ([]int, error) {
	if key == allKeys {
		keys := make([]int, keytones.NumKeys)
		for i := range keys {
			keys[i] = keytones.MinKey + i
		}
		return keys, nil
	}
	if err := keytones.ValidateKey(key); err != nil {
		return nil, err
	}
	return []int{key}, nil
}

func selectConverter(opts options) converter {
	switch {
	case opts.period && opts.float32:
		return converter{"period (float32)", "s", widen(keytones.KeyToPeriod32), widen(keytones.KeyToPeriodApprox32)}
	case opts.period:
		return converter{"period", "s", keytones.KeyToPeriod, keytones.KeyToPeriodApprox}
	case opts.float32:
		return converter{"frequency (float32)", "Hz", widen(keytones.KeyToFrequency32), widen(keytones.KeyToFrequencyApprox32)}
	default:
		return converter{"frequency", "Hz", keytones.KeyToFrequency, keytones.KeyToFrequencyApprox}
	}
}

func writeTable(w io.Writer, conv converter, keys []int, sampleRate float64) error {
	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, columnSepWidth, padChar, tabwriter.AlignRight)

	header := fmt.Sprintf("key\tnote\texact (%s)\tapprox (%s)\terror (%%)\t", conv.unit, conv.unit)
	if sampleRate > 0 {
		header += "samples\t"
	}
	fmt.Fprintln(tw, header)

	for _, k := range keys {
		exact, approx := conv.exact(k), conv.approx(k)
		line := fmt.Sprintf("%d\t%s\t%.6g\t%.6g\t%.4f\t",
			k, keytones.NoteName(k), exact, approx, relativeError(exact, approx)*percentScale)
		if sampleRate > 0 {
			line += fmt.Sprintf("%.2f\t", exact*sampleRate)
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, conv converter, keys []int) error {
	errs := make([]float64, len(keys))
	for i, k := range keys {
		errs[i] = relativeError(conv.exact(k), conv.approx(k))
	}
	worst := floats.MaxIdx(errs)

	_, err := fmt.Fprintf(w, "%s: %d keys, max error %.4f%% at key %d (%s), mean error %.4f%%, bound %.1f%%\n",
		conv.label, len(keys),
		errs[worst]*percentScale, keys[worst], keytones.NoteName(keys[worst]),
		stat.Mean(errs, nil)*percentScale,
		keytones.ApproxTolerance*percentScale)
	return err
}

func relativeError(a, b float64) float64 {
	return math.Abs(a-b) / min(a, b)
}

func widen(f func(int) float32) func(int) float64 {
	return func(k int) float64 { return float64(f(k)) }
}
