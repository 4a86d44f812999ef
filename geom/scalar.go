// Package geom: Exact, the fixed-precision scalar type every geom value
// is built from.

package geom

import (
	"fmt"
	"math/big"
)

// precisionBits is the mantissa precision used for every Exact value.
// 256 bits (~77 decimal digits) comfortably absorbs the error growth of a
// few dozen chained sqrt/div operations per bisector, which is what a
// straight-skeleton simulation on a few hundred polygon vertices needs.
const precisionBits = 256

// Exact is a fixed-precision real number. All geom arithmetic routes
// through Exact so that two runs on the same input produce bit-identical
// output, which a naive float64 kernel would not guarantee across Go
// versions/architectures the way big.Float's software-emulated
// arithmetic does.
type Exact struct {
	v *big.Float
}

// NewExactInt builds an Exact from a plain integer.
func NewExactInt(i int64) Exact {
	return Exact{v: new(big.Float).SetPrec(precisionBits).SetInt64(i)}
}

// NewExactRat builds an Exact from a numerator/denominator pair, e.g. the
// constant 1/2 in Midpoint. The mesh parser does not accept "3/2" style
// values; it reads decimal literals via ParseExact.
func NewExactRat(num, den int64) Exact {
	r := new(big.Rat).SetFrac64(num, den)
	return Exact{v: new(big.Float).SetPrec(precisionBits).SetRat(r)}
}

// ParseExact parses a decimal literal such as "3.25" or "-1".
func ParseExact(s string) (Exact, error) {
	f, _, err := big.ParseFloat(s, 10, precisionBits, big.ToNearestEven)
	if err != nil {
		return Exact{}, fmt.Errorf("geom: parse %q: %w", s, err)
	}
	return Exact{v: f}, nil
}

func zero() Exact { return NewExactInt(0) }

func (e Exact) bf() *big.Float {
	if e.v == nil {
		return new(big.Float).SetPrec(precisionBits)
	}
	return e.v
}

// Add returns e+o.
func (e Exact) Add(o Exact) Exact {
	return Exact{v: new(big.Float).SetPrec(precisionBits).Add(e.bf(), o.bf())}
}

// Sub returns e-o.
func (e Exact) Sub(o Exact) Exact {
	return Exact{v: new(big.Float).SetPrec(precisionBits).Sub(e.bf(), o.bf())}
}

// Mul returns e*o.
func (e Exact) Mul(o Exact) Exact {
	return Exact{v: new(big.Float).SetPrec(precisionBits).Mul(e.bf(), o.bf())}
}

// Div returns e/o. Panics if o is zero; callers in geom never divide by a
// quantity that a preceding predicate hasn't already shown non-zero.
func (e Exact) Div(o Exact) Exact {
	if o.IsZero() {
		panic("geom: division by zero")
	}
	return Exact{v: new(big.Float).SetPrec(precisionBits).Quo(e.bf(), o.bf())}
}

// Neg returns -e.
func (e Exact) Neg() Exact {
	return Exact{v: new(big.Float).SetPrec(precisionBits).Neg(e.bf())}
}

// Abs returns |e|.
func (e Exact) Abs() Exact {
	return Exact{v: new(big.Float).SetPrec(precisionBits).Abs(e.bf())}
}

// Sqrt returns sqrt(e). Panics on a negative operand: every call site in
// skel first establishes non-negativity (a squared distance, a sum of
// squares) before taking a root.
func (e Exact) Sqrt() Exact {
	if e.Sign() < 0 {
		panic("geom: sqrt of negative value")
	}
	return Exact{v: new(big.Float).SetPrec(precisionBits).Sqrt(e.bf())}
}

// Cmp compares e and o: -1, 0, +1.
func (e Exact) Cmp(o Exact) int { return e.bf().Cmp(o.bf()) }

// Sign returns -1, 0, or +1.
func (e Exact) Sign() int { return e.bf().Sign() }

// IsZero reports whether e is exactly zero.
func (e Exact) IsZero() bool { return e.Sign() == 0 }

// LessThan reports e < o.
func (e Exact) LessThan(o Exact) bool { return e.Cmp(o) < 0 }

// Equal reports e == o.
func (e Exact) Equal(o Exact) bool { return e.Cmp(o) == 0 }

// Float64 converts to a float64, for rendering and output formatting only
// — never for comparisons that feed back into the algorithm.
func (e Exact) Float64() float64 {
	f, _ := e.bf().Float64()
	return f
}

func (e Exact) String() string { return e.bf().Text('g', 12) }

// Min returns the smaller of a, b.
func Min(a, b Exact) Exact {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of a, b.
func Max(a, b Exact) Exact {
	if a.LessThan(b) {
		return b
	}
	return a
}
