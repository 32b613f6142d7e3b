// SPDX-License-Identifier: MIT
//
// Package linearmatroid implements RealLinearMatroid: the linear matroid of
// a real matrix A (spec section 4.5). The ground set is the set of column
// indices {0, ..., n-1}; a subset of columns is independent iff the
// submatrix they form has full column rank. Rank is computed via
// gonum.org/v1/gonum/mat's SVD, mirroring original_source's use of
// numpy.linalg.matrix_rank (spec section 9, Open Question 2).
package linearmatroid

import (
	"gonum.org/v1/gonum/mat"

	"github.com/lvlath-labs/matroid/matroid"
	"github.com/lvlath-labs/matroid/randset"
)

// defaultTolerance mirrors numpy.linalg.matrix_rank's default singular
// value cutoff: tol * sigmaMax * max(rows, cols).
const defaultTolerance = 1e-10

// RealLinearMatroid is the linear matroid of an m-by-n real matrix: column
// index i is in the ground set iff 0 <= i < n, and a subset S of columns is
// independent iff rank(A[:, S]) == |S|.
type RealLinearMatroid struct {
	a         *mat.Dense
	rows, cols int
	weights   []float64
	tol       float64
}

// Option configures a RealLinearMatroid at construction time.
type Option func(*RealLinearMatroid)

// WithTolerance overrides the default singular-value cutoff used to decide
// numerical rank. tol is a relative tolerance, scaled internally by
// sigmaMax * max(rows, cols) exactly as numpy.linalg.matrix_rank does.
func WithTolerance(tol float64) Option {
	return func(m *RealLinearMatroid) { m.tol = tol }
}

// New builds a RealLinearMatroid from data, a row-major flattening of an
// m-by-n matrix, with one weight per column. Returns ErrInvalidShape if
// len(data) != rows*cols or len(weights) != cols.
func New(rows, cols int, data []float64, weights []float64, opts ...Option) (*RealLinearMatroid, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, matroid.ErrInvalidShape
	}
	if len(weights) != cols {
		return nil, matroid.ErrInvalidShape
	}

	w := make([]float64, cols)
	copy(w, weights)

	m := &RealLinearMatroid{
		a:       mat.NewDense(rows, cols, append([]float64(nil), data...)),
		rows:    rows,
		cols:    cols,
		weights: w,
		tol:     defaultTolerance,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// GroundSet returns the column indices {0, ..., n-1}.
func (m *RealLinearMatroid) GroundSet() []int {
	out := make([]int, m.cols)
	for i := range out {
		out[i] = i
	}

	return out
}

// IsEmpty reports whether the matrix has no columns.
func (m *RealLinearMatroid) IsEmpty() bool { return m.cols == 0 }

// IsIndependent reports whether the columns named by s form a full-rank
// submatrix. A set larger than the row count is trivially dependent
// (rank is bounded by min(rows, |s|)), avoiding an SVD call in that case.
//
// Complexity: O(rows * |s|^2) for the SVD, when the shortcut doesn't apply.
func (m *RealLinearMatroid) IsIndependent(s *randset.Set[int]) bool {
	k := s.Len()
	if k == 0 {
		return true
	}
	if k > m.rows {
		return false
	}

	return m.rank(s.Values()) == k
}

// Weight returns the weight assigned to column e, or 0 if e is out of range.
func (m *RealLinearMatroid) Weight(e int) float64 {
	if e < 0 || e >= m.cols {
		return 0
	}

	return m.weights[e]
}

// TotalWeight sums Weight over every element of s.
func (m *RealLinearMatroid) TotalWeight(s *randset.Set[int]) float64 {
	var total float64
	for _, e := range s.Values() {
		total += m.Weight(e)
	}

	return total
}

// StatefulChecker returns the default bulk-test-backed checker: linear
// independence has no cheaper-than-rank incremental structure in general,
// so RealLinearMatroid does not override WouldBeIndependentAfterAdding.
func (m *RealLinearMatroid) StatefulChecker(seed *randset.Set[int]) matroid.StatefulIndependenceChecker[int] {
	return matroid.NewDefaultChecker[int](m, seed)
}

// rank computes the numerical rank of the submatrix formed by the given
// column indices, via SVD, using the tolerance documented on New/WithTolerance.
func (m *RealLinearMatroid) rank(cols []int) int {
	sub := mat.NewDense(m.rows, len(cols), nil)
	for j, c := range cols {
		col := mat.Col(nil, c, m.a)
		sub.SetCol(j, col)
	}

	var svd mat.SVD
	ok := svd.Factorize(sub, mat.SVDNone)
	if !ok {
		// Factorization failure is itself evidence of a degenerate
		// (rank-deficient) matrix; treat as rank 0 rather than panicking.
		return 0
	}

	values := svd.Values(nil)
	if len(values) == 0 {
		return 0
	}

	sigmaMax := values[0]
	cutoff := m.tol * sigmaMax * float64(max(m.rows, len(cols)))

	rank := 0
	for _, sigma := range values {
		if sigma > cutoff {
			rank++
		}
	}

	return rank
}
