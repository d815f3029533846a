// Package chebyshev evaluates truncated Chebyshev series over one octave.
//
// Coefficients follow the numpy.polynomial convention: the series is
//
//	P(x) = Σ c[k] * T_k(x),  x in [-1, 1]
//
// with c[0] used as is (not halved). Clenshaw and DirectSum both consume
// coefficients in this convention, so a table can be passed to either
// without adjustment.
package chebyshev

import (
	"github.com/tphakala/go-keytones/internal/simdops"
)

//go:generate go run ../../cmd/keycheb -out tables.go

// Float is the type constraint for supported floating-point types.
type Float = simdops.Float

// Table is a fitted coefficient set together with the index range it was
// fitted over. Index Origin maps to x = -1 and Origin+Width to x = 1.
type Table struct {
	Coeffs [Terms]float64
	Name   string
	Origin float64
	Width  float64
}

// Clenshaw evaluates Σ coeffs[k]*T_k(x) with Clenshaw's backward recurrence:
//
//	b_k = c_k + 2x*b_{k+1} - b_{k+2},  b_{N+1} = b_{N+2} = 0
//	P(x) = b_0 - x*b_1
//
// An empty series evaluates to zero.
func Clenshaw[F Float](coeffs []F, x F) F {
	var b0, b1, b2 F
	x2 := 2 * x
	for k := len(coeffs) - 1; k >= 0; k-- {
		b0 = coeffs[k] + x2*b1 - b2
		b2 = b1
		b1 = b0
	}
	// after the loop b1 holds b_0 and b2 holds b_1
	return b1 - x*b2
}

// Basis fills dst with T_0(x) .. T_{len(dst)-1}(x).
func Basis[F Float](dst []F, x F) {
	for k := range dst {
		switch k {
		case 0:
			dst[k] = 1
		case 1:
			dst[k] = x
		default:
			dst[k] = 2*x*dst[k-1] - dst[k-2]
		}
	}
}

// DirectSum evaluates Σ coeffs[k]*T_k(x) by forming every basis polynomial
// and taking the dot product with the coefficients. It agrees with Clenshaw
// to within rounding and is kept as an independent check on it.
func DirectSum[F Float](coeffs []F, x F) F {
	n := len(coeffs)
	if n == 0 {
		return 0
	}

	var buf [maxDirectTerms]F
	var basis []F
	if n <= maxDirectTerms {
		basis = buf[:n]
	} else {
		basis = make([]F, n)
	}
	Basis(basis, x)

	return simdops.For[F]().DotProductUnsafe(coeffs, basis)
}

// Series binds a Table to a float type and precomputes its domain remap.
// A Series is immutable after construction and safe for concurrent use.
type Series[F Float] struct {
	coeffs [Terms]F
	origin F
	scale  F
	name   string
}

// NewSeries converts t to F.
func NewSeries[F Float](t Table) *Series[F] {
	s := &Series[F]{
		origin: F(t.Origin),
		scale:  F(domainSpan / t.Width),
		name:   t.Name,
	}
	for i, c := range t.Coeffs {
		s.coeffs[i] = F(c)
	}
	return s
}

// Name returns the name of the table the series was built from.
func (s *Series[F]) Name() string {
	return s.name
}

// X maps an octave index onto the Chebyshev domain.
func (s *Series[F]) X(index int) F {
	return (F(index)-s.origin)*s.scale + domainLow
}

// At evaluates the series at octave index using Clenshaw's recurrence.
func (s *Series[F]) At(index int) F {
	return Clenshaw(s.coeffs[:], s.X(index))
}

// AtDirect evaluates the series at octave index using DirectSum.
func (s *Series[F]) AtDirect(index int) F {
	return DirectSum(s.coeffs[:], s.X(index))
}
