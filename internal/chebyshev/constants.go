package chebyshev

// Evaluation constants
const (
	maxDirectTerms = 16 // Basis buffer size for DirectSum before it allocates

	domainLow  = -1.0 // Lower edge of the Chebyshev domain
	domainSpan = 2.0  // Width of the Chebyshev domain [-1, 1]
)
