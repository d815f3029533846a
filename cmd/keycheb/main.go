// Command keycheb fits the Chebyshev coefficient tables used by the
// approximate key conversions and writes them out as Go source.
//
// Usage:
//
//	keycheb                      # write tables.go in the current directory
//	keycheb -out - -terms 5      # print a 5-term fit to stdout
//	keycheb -v -out tables.go    # log fit residuals
//
// It is run through go generate in internal/chebyshev and is not needed at
// run time.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"log"
	"math"
	"os"
	"strconv"
	"text/template"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-keytones/internal/chebyshev"
)

var errInvalidTerms = errors.New("invalid term count")

// tableSpec describes one fitted table.
type tableSpec struct {
	Var    string
	Name   string
	Doc    []string
	target func(n float64) float64
}

// specs lists the generated tables. The frequency table is fitted over the
// top octave and the period table over the bottom one.
var specs = []tableSpec{
	{
		Var:  "TopOctave",
		Name: "top",
		Doc: []string{
			"TopOctave approximates 440 * 2^((n+116-69)/12) for n in [0, 11].",
			"Valid only with top octave alignment; yields frequency in Hz.",
		},
		target: func(n float64) float64 {
			return referenceFrequency * math.Pow(2, (n+topReferenceKey-referenceKey)/keysPerOctave)
		},
	},
	{
		Var:  "BottomOctave",
		Name: "bottom",
		Doc: []string{
			"BottomOctave approximates 2^((69-n)/12) / 440 for n in [0, 11].",
			"Valid only with bottom octave alignment; yields period in seconds.",
		},
		target: func(n float64) float64 {
			return math.Pow(2, (referenceKey-n)/keysPerOctave) / referenceFrequency
		},
	},
}

// fittedTable is the template input for one table.
type fittedTable struct {
	Var    string
	Name   string
	Doc    []string
	Coeffs []string
	Origin string
	Width  string
}

const tablesTemplate = `// Code generated by keycheb; DO NOT EDIT.

package {{.Package}}

// Terms is the number of coefficients in each generated table.
const Terms = {{.Terms}}
{{range .Tables}}
{{range .Doc}}// {{.}}
{{end}}var {{.Var}} = Table{
	Coeffs: [Terms]float64{
{{range .Coeffs}}		{{.}},
{{end}}	},
	Name:   {{printf "%q" .Name}},
	Origin: {{.Origin}},
	Width:  {{.Width}},
}
{{end}}`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	terms := flag.Int("terms", defaultTerms, "Number of Chebyshev coefficients per table")
	pkg := flag.String("pkg", defaultPackage, "Package name of the generated file")
	out := flag.String("out", defaultOutput, "Output file, or - for stdout")
	verbose := flag.Bool("v", false, "Log fit residuals")
	flag.Parse()

	if *terms < minTerms || *terms > maxTerms {
		return fmt.Errorf("%w: %d not in [%d, %d]", errInvalidTerms, *terms, minTerms, maxTerms)
	}

	tables := make([]fittedTable, 0, len(specs))
	for _, spec := range specs {
		coeffs, residual, err := fitOctave(spec.target, *terms)
		if err != nil {
			return fmt.Errorf("fitting %s table: %w", spec.Name, err)
		}
		if *verbose {
			log.Printf("%s: %d terms, max relative residual %.3e", spec.Name, *terms, residual)
		}
		tables = append(tables, fittedTable{
			Var:    spec.Var,
			Name:   spec.Name,
			Doc:    spec.Doc,
			Coeffs: formatFloats(coeffs),
			Origin: formatFloat(fitOrigin),
			Width:  formatFloat(fitWidth),
		})
	}

	src, err := render(*pkg, *terms, tables)
	if err != nil {
		return err
	}

	if *out == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if *verbose {
		log.Printf("wrote %s", *out)
	}
	return nil
}

// samplePoints returns the octave indices mapped onto [-1, 1] and the
// target values at those indices.
func samplePoints(target func(float64) float64) (xs, ys []float64) {
	xs = make([]float64, keysPerOctave)
	ys = make([]float64, keysPerOctave)
	for n := range keysPerOctave {
		xs[n] = 2*(float64(n)-fitOrigin)/fitWidth - 1
		ys[n] = target(float64(n))
	}
	return xs, ys
}

// fitOctave computes the least-squares Chebyshev fit of target over one
// octave. It returns the coefficients and the largest relative residual at
// the sample points.
func fitOctave(target func(float64) float64, terms int) ([]float64, float64, error) {
	xs, ys := samplePoints(target)

	// Chebyshev Vandermonde matrix: row i holds T_0..T_{terms-1} at xs[i]
	v := mat.NewDense(len(xs), terms, nil)
	row := make([]float64, terms)
	for i, x := range xs {
		chebyshev.Basis(row, x)
		v.SetRow(i, row)
	}

	var c mat.VecDense
	if err := c.SolveVec(v, mat.NewVecDense(len(ys), ys)); err != nil {
		return nil, 0, fmt.Errorf("least squares solve: %w", err)
	}
	coeffs := mat.Col(nil, 0, &c)

	residuals := make([]float64, len(xs))
	for i, x := range xs {
		residuals[i] = math.Abs(chebyshev.Clenshaw(coeffs, x)-ys[i]) / ys[i]
	}
	return coeffs, floats.Max(residuals), nil
}

func render(pkg string, terms int, tables []fittedTable) ([]byte, error) {
	tmpl, err := template.New("tables").Parse(tablesTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Package string
		Terms   int
		Tables  []fittedTable
	}{pkg, terms, tables})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatFloats(vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = formatFloat(v)
	}
	return out
}
