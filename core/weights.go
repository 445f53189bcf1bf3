// This file declares the compile-time weight-arithmetic traits. Weight types
// have no built-in arithmetic as far as the algorithms are concerned: every
// weighted solver receives an Arith (or FlowArith) supplying the zero value,
// associative addition, and a total-order comparator.
package core

import "cmp"

// Arith supplies the arithmetic capabilities a weighted algorithm needs from
// a weight type W. Implementations must be stateless: Add must be
// associative with Zero as identity, and Compare a total order consistent
// with Add (a ≤ b implies a+c ≤ b+c for the algorithms to be correct).
type Arith[W any] interface {
	// Zero returns the additive identity of W.
	Zero() W

	// Add returns a + b.
	Add(a, b W) W

	// Compare returns -1, 0, or +1 as a is less than, equal to, or
	// greater than b.
	Compare(a, b W) int
}

// FlowArith extends Arith with subtraction, required by the max-flow solvers
// to maintain residual capacities.
type FlowArith[W any] interface {
	Arith[W]

	// Sub returns a - b. Callers guarantee b ≤ a in every invocation made
	// by the flow solvers (a bottleneck never exceeds a residual capacity).
	Sub(a, b W) W
}

// Real constrains the built-in numeric kernel types for which Numeric and
// NumericFlow can derive arithmetic automatically.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// numeric implements Arith for any Real kernel type.
type numeric[W Real] struct{}

func (numeric[W]) Zero() W            { var z W; return z }
func (numeric[W]) Add(a, b W) W       { return a + b }
func (numeric[W]) Compare(a, b W) int { return cmp.Compare(a, b) }

// numericFlow adds subtraction on top of numeric.
type numericFlow[W Real] struct{ numeric[W] }

func (numericFlow[W]) Sub(a, b W) W { return a - b }

// Numeric returns an Arith for any built-in real-number kernel type.
// Complexity: O(1); the returned trait is stateless and shareable.
func Numeric[W Real]() Arith[W] { return numeric[W]{} }

// NumericFlow returns a FlowArith for any built-in real-number kernel type.
func NumericFlow[W Real]() FlowArith[W] { return numericFlow[W]{} }
