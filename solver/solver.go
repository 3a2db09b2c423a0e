// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package solver implements the progressive digit-budget search itself
// (spec.md's component D): a table of the cheapest expression found so far
// for each reachable value, searched in order of increasing digit count by
// combining previously-found values with the arithmetic operators, unary
// sqrt/factorial, and the divide-diff-one rewrite.
//
// Translated from xuanyan0x7c7/rust-tchisla-solver's src/solver/base.rs.
// Where base.rs declares a trait method with no body (division_diff_one is
// implemented per-domain and that source wasn't available to translate),
// this package reconstructs the identity from the surrounding description
// and documents the reconstruction in this repository's design notes
// instead of guessing at a byte-for-byte port.
package solver

import (
	"math"

	"github.com/getamis/tchisla/expression"
	"github.com/getamis/tchisla/numbertheory"
)

type tableEntry[T Number] struct {
	Digits int
	Expr   *expression.Expression[T]
}

// Solver searches a single number domain T for expressions built from n,
// tracking the cheapest (fewest-digit) expression found for every value
// reached so far.
type Solver[T Number] struct {
	n      int64
	limits Limits
	ops    Ops[T]

	table       map[T]tableEntry[T]
	searched    map[T]bool
	digitsIndex map[int][]T
	newValues   []T
}

// New builds a Solver over domain T for the digit n, bounded by limits and
// driven by the given Ops strategy.
func New[T Number](n int64, limits Limits, ops Ops[T]) *Solver[T] {
	return &Solver[T]{
		n:           n,
		limits:      limits,
		ops:         ops,
		table:       make(map[T]tableEntry[T]),
		searched:    make(map[T]bool),
		digitsIndex: make(map[int][]T),
	}
}

// Clone returns an independent copy of s's current search state (table,
// searched set and digit index; pending NewNumbers are not carried over).
// It lets a caller drive a second, unsynchronized Solve from the same
// starting point without disturbing s itself — the progressive driver's
// integer phase-2 back-off search (component E) clones the stacked integer
// solver's progress this way before racing it ahead to a deeper max_depth.
func (s *Solver[T]) Clone() *Solver[T] {
	clone := &Solver[T]{
		n:           s.n,
		limits:      s.limits,
		ops:         s.ops,
		table:       make(map[T]tableEntry[T], len(s.table)),
		searched:    make(map[T]bool, len(s.searched)),
		digitsIndex: make(map[int][]T, len(s.digitsIndex)),
	}
	for k, v := range s.table {
		clone.table[k] = v
	}
	for k, v := range s.searched {
		clone.searched[k] = v
	}
	for digits, values := range s.digitsIndex {
		clone.digitsIndex[digits] = append([]T(nil), values...)
	}
	return clone
}

// Lookup reports the cheapest expression found so far for value, if any.
func (s *Solver[T]) Lookup(value T) (expr *expression.Expression[T], digits int, ok bool) {
	entry, ok := s.table[value]
	if !ok {
		return nil, 0, false
	}
	return entry.Expr, entry.Digits, true
}

// NewNumbers returns the values admitted since the last ClearNewNumbers
// call, letting a multi-domain driver lift this round's discoveries into
// other domains before they are sealed as already searched.
func (s *Solver[T]) NewNumbers() []T { return s.newValues }

// ClearNewNumbers seals every value returned by the most recent NewNumbers
// call as already searched (so a future, no-better rediscovery is rejected
// before even attempting sqrt/factorial again) and resets the pending list.
func (s *Solver[T]) ClearNewNumbers() {
	for _, v := range s.newValues {
		s.searched[v] = true
	}
	s.newValues = nil
}

// TryInsert places value into the table as a same-cost seed, without
// chasing the sqrt/factorial/unary-minus-one cascade check performs for a
// value discovered through this domain's own search. It is how the
// progressive driver lifts a value already solved in a smaller domain into
// a wider one (spec.md §4.E) without re-deriving it from scratch.
func (s *Solver[T]) TryInsert(value T, digits int, buildExpr func() *expression.Expression[T]) bool {
	if !s.ops.RangeCheck(value, s.limits) {
		return false
	}
	if entry, ok := s.table[value]; ok && entry.Digits <= digits {
		return false
	}
	s.table[value] = tableEntry[T]{Digits: digits, Expr: buildExpr()}
	s.newValues = append(s.newValues, value)
	s.digitsIndex[digits] = append(s.digitsIndex[digits], value)
	return true
}

// insert places value into the table if it is either new or cheaper than
// what is already recorded.
func (s *Solver[T]) insert(value T, digits int, expr *expression.Expression[T]) bool {
	if entry, ok := s.table[value]; ok && entry.Digits <= digits {
		return false
	}
	s.table[value] = tableEntry[T]{Digits: digits, Expr: expr}
	s.newValues = append(s.newValues, value)
	s.digitsIndex[digits] = append(s.digitsIndex[digits], value)
	return true
}

// check is the single admission point every candidate value passes
// through: range and novelty checks, then insertion, then (on a successful
// novel insertion) speculative sqrt and factorial derivation.
func (s *Solver[T]) check(value T, digits int, expr *expression.Expression[T]) bool {
	if !s.ops.RangeCheck(value, s.limits) || s.searched[value] {
		return false
	}
	if !s.insert(value, digits, expr) {
		return false
	}
	state := State[T]{Digits: digits, Value: value, Expr: expr}
	s.trySqrt(state)
	if s.ops.IsInteger(value) {
		s.tryFactorial(state)
	}
	return true
}

func (s *Solver[T]) stateFor(v T) State[T] {
	entry := s.table[v]
	return State[T]{Digits: entry.Digits, Value: v, Expr: entry.Expr}
}

func (s *Solver[T]) trySqrt(x State[T]) bool {
	root, ok := s.ops.TrySqrt(x.Value, s.limits)
	if !ok {
		return false
	}
	depth := 1
	if x.Expr.Kind() == expression.KindSqrt {
		depth = x.Expr.SqrtDepth() + 1
	}
	return s.check(root, x.Digits, expression.FromSqrtAtDepth(x.Expr, depth))
}

func (s *Solver[T]) tryFactorial(x State[T]) bool {
	n, ok := s.ops.ToInt(x.Value)
	if !ok || n < 0 || n > s.limits.MaxFactorial {
		return false
	}
	result, ok := numbertheory.FitsInt64(numbertheory.Factorial(n))
	if !ok {
		return false
	}
	return s.check(s.ops.FromInt(result), x.Digits, expression.FromFactorial(x.Expr))
}

// factorialDivide derives a!/b! for an unordered pair (x, y), with a the
// larger operand. It rejects the pair when either operand is not a
// non-negative integer, when a-b <= 1, when b <= 2, when a <= MaxFactorial
// (plain factorials already cover that range), and when the estimated bit
// length (a-b)*(log2 a + log2 b) exceeds 2*MaxDigits.
func (s *Solver[T]) factorialDivide(x, y State[T]) bool {
	a, aok := s.ops.ToInt(x.Value)
	b, bok := s.ops.ToInt(y.Value)
	if !aok || !bok || a < 0 || b < 0 {
		return false
	}
	if a < b {
		a, b = b, a
		x, y = y, x
	}
	if a-b <= 1 || b <= 2 || a <= s.limits.MaxFactorial {
		return false
	}
	if float64(a-b)*(math.Log2(float64(a))+math.Log2(float64(b))) > float64(2*s.limits.MaxDigits) {
		return false
	}
	result, ok := numbertheory.FitsInt64(numbertheory.FactorialDivide(a, b))
	if !ok {
		return false
	}
	expr := expression.FromDivide(expression.FromFactorial(x.Expr), expression.FromFactorial(y.Expr))
	return s.check(s.ops.FromInt(result), x.Digits+y.Digits, expr)
}

func (s *Solver[T]) div(x, y State[T]) bool {
	if s.ops.IsZero(y.Value) {
		return false
	}
	v, ok := s.ops.Div(x.Value, y.Value)
	if !ok {
		return false
	}
	return s.check(v, x.Digits+y.Digits, expression.FromDivide(x.Expr, y.Expr))
}

func (s *Solver[T]) mul(x, y State[T]) bool {
	v, ok := s.ops.Mul(x.Value, y.Value)
	if !ok {
		return false
	}
	return s.check(v, x.Digits+y.Digits, expression.FromMultiply(x.Expr, y.Expr))
}

func (s *Solver[T]) add(x, y State[T]) bool {
	v, ok := s.ops.Add(x.Value, y.Value)
	if !ok {
		return false
	}
	return s.check(v, x.Digits+y.Digits, expression.FromAdd(x.Expr, y.Expr))
}

func (s *Solver[T]) sub(x, y State[T]) bool {
	v, ok := s.ops.Sub(x.Value, y.Value)
	if !ok {
		return false
	}
	return s.check(v, x.Digits+y.Digits, expression.FromSubtract(x.Expr, y.Expr))
}

func (s *Solver[T]) pow(x, y State[T]) bool {
	v, ok := s.ops.Pow(x.Value, y.Value, s.limits)
	if !ok {
		return false
	}
	return s.check(v, x.Digits+y.Digits, expression.FromPower(x.Expr, y.Expr))
}

// binaryOperation tries every operator this pair can combine under. div,
// sub and pow are tried in both operand orders since they are not
// commutative (pow(x,y) and pow(y,x) are in general different values);
// factorialDivide normalizes operand order internally, so one call already
// covers both.
func (s *Solver[T]) binaryOperation(x, y State[T]) bool {
	found := false
	if s.div(x, y) {
		found = true
	}
	if s.div(y, x) {
		found = true
	}
	if s.mul(x, y) {
		found = true
	}
	if s.add(x, y) {
		found = true
	}
	if s.sub(x, y) {
		found = true
	}
	if s.sub(y, x) {
		found = true
	}
	if s.pow(x, y) {
		found = true
	}
	if s.pow(y, x) {
		found = true
	}
	if s.factorialDivide(x, y) {
		found = true
	}
	return found
}

// divisionDiffOne implements the unary-minus-one rewrite: given x = a/b
// with b = rest*q for a factor q that is a bare Number leaf equal to n, it
// re-associates the expression as y = a/rest (the combined "numerator"
// expression already passed in) and submits y, y+q and y-q as additional
// same-cost candidates. The value of y is derived algebraically from x's own
// value and q (y = x*n), never by evaluating the numerator/rest
// subexpressions, since this package has no general expression evaluator;
// a q wrapped in Negate/Sqrt/Factorial is rejected, since its value need
// not be n.
func (s *Solver[T]) divisionDiffOne(xValue T, digits int, numerator, nLeaf *expression.Expression[T]) bool {
	if nLeaf.Kind() != expression.KindNumber {
		return false
	}
	n := s.ops.FromInt(s.n)
	y, ok := s.ops.Mul(xValue, n)
	if !ok {
		return false
	}
	found := s.check(y, digits, numerator)
	if plus, ok := s.ops.Add(y, n); ok {
		if s.check(plus, digits, expression.FromAdd(numerator, nLeaf)) {
			found = true
		}
	}
	if minus, ok := s.ops.Sub(y, n); ok {
		if s.check(minus, digits, expression.FromSubtract(numerator, nLeaf)) {
			found = true
		}
	}
	return found
}

// unaryOperation looks for the divide-diff-one rewrite opportunity in x: x
// must be a division whose denominator, after peeling away a chain of
// multiplications, ends in a bare single-digit-n leaf.
func (s *Solver[T]) unaryOperation(x State[T]) bool {
	if s.n == 1 {
		return false
	}
	numerator, denominator, ok := x.Expr.AsDivide()
	if !ok {
		return false
	}
	if !s.ops.IsRational(x.Value) {
		return false
	}
	if expression.PeelsToSingleDigit(denominator, s.n) {
		return s.divisionDiffOne(x.Value, x.Digits, numerator, denominator)
	}
	lhs := denominator
	var rhs *expression.Expression[T]
	for {
		p, q, ok := lhs.AsMultiply()
		if !ok {
			return false
		}
		lhs = p
		if expression.PeelsToSingleDigit(q, s.n) {
			rest := lhs
			if rhs != nil {
				rest = expression.FromMultiply(lhs, rhs)
			}
			return s.divisionDiffOne(x.Value, x.Digits, expression.FromDivide(numerator, rest), q)
		}
		if rhs != nil {
			rhs = expression.FromMultiply(q, rhs)
		} else {
			rhs = q
		}
	}
}

func concatDigits(n int64, digits int) (int64, bool) {
	value := int64(0)
	for i := 0; i < digits; i++ {
		var ok bool
		value, ok = mulInt64(value, 10)
		if !ok {
			return 0, false
		}
		value, ok = addInt64(value, n)
		if !ok {
			return 0, false
		}
	}
	return value, true
}

// Search extends the table with every value reachable using exactly
// "digits" copies of n: the concatenated-digit seed, then every binary
// combination of a cheaper pair of already-known values whose digit counts
// sum to digits, then the unary-minus-one rewrite over what that produced.
// It does not call ClearNewNumbers; callers that don't need to inspect
// NewNumbers between rounds (a bare single-domain search) should call it
// themselves after each Search.
func (s *Solver[T]) Search(digits int) bool {
	if digits > s.limits.MaxDigits {
		return false
	}
	found := false
	if seed, ok := concatDigits(s.n, digits); ok {
		v := s.ops.FromInt(seed)
		if s.check(v, digits, expression.FromNumber(v)) {
			found = true
		}
	}
	for i := 1; i*2 <= digits; i++ {
		j := digits - i
		xs := s.digitsIndex[i]
		if i == j {
			for a := 0; a < len(xs); a++ {
				for b := a; b < len(xs); b++ {
					if s.binaryOperation(s.stateFor(xs[a]), s.stateFor(xs[b])) {
						found = true
					}
				}
			}
			continue
		}
		for _, xv := range xs {
			for _, yv := range s.digitsIndex[j] {
				if s.binaryOperation(s.stateFor(xv), s.stateFor(yv)) {
					found = true
				}
			}
		}
	}
	for _, v := range s.digitsIndex[digits] {
		if s.unaryOperation(s.stateFor(v)) {
			found = true
		}
	}
	return found
}

// Solve runs Search for increasing digit counts up to maxDigits (capped by
// the solver's own Limits), stopping as soon as target is found.
func (s *Solver[T]) Solve(target T, maxDigits int) (*expression.Expression[T], int, bool) {
	if maxDigits > s.limits.MaxDigits {
		maxDigits = s.limits.MaxDigits
	}
	for d := 1; d <= maxDigits; d++ {
		s.Search(d)
		if expr, digits, ok := s.Lookup(target); ok {
			return expr, digits, true
		}
		s.ClearNewNumbers()
	}
	return nil, 0, false
}
