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

// Package progressive implements the three-domain stacked search (spec.md's
// component E): an integer solver, a rational solver and a
// rational-quadratic solver are driven together at increasing digit counts,
// with every value a narrower domain discovers lifted into the wider
// domains as a same-cost seed. Some targets are only reachable cheaply by
// passing through an irrational intermediate (e.g. sqrt(2)*sqrt(2)) before
// landing back on an integer, so searching the integer domain alone would
// miss them or find them later than necessary.
//
// A fourth, independent search rides along inside PhaseIntegralPhase2: once
// a round reaches 3 digits, the integer table is cloned and raced ahead,
// non-progressively, to maxDepth looking for the query's own target — a
// back-off search that sometimes beats the stacked progressive search to a
// cheap all-integer answer. GetSolution only prefers that table's answer
// when it is strictly better than the regular domain-priority result.
//
// Translated from xuanyan0x7c7/rust-tchisla-solver's src/solver/progressive.rs:
// the ProgressiveSearchState enum walks exactly the five phases this package
// names, and get_solution there is reconstructed here as GetSolution's
// domain-priority tie-break, extended with the phase-2 override (see
// DESIGN.md).
package progressive

import (
	"github.com/getamis/tchisla/expression"
	"github.com/getamis/tchisla/logger"
	"github.com/getamis/tchisla/quadratic"
	"github.com/getamis/tchisla/solver"
)

// Limits bounds the three domains the Driver searches.
type Limits struct {
	Integral          solver.Limits
	Rational          solver.Limits
	RationalQuadratic solver.Limits
}

// Solution reports where GetSolution found its answer.
type Solution struct {
	Digits int
	Domain Phase // PhaseIntegral, PhaseIntegralPhase2, PhaseRational or PhaseRationalQuadratic
}

// DefaultLimits returns the recommended per-domain bounds: 20/30/40 digits
// for the integer/rational/rational-quadratic domains respectively, a
// factorial argument cap of 20 shared across domains, and radicals nested
// no more than 3 deep.
func DefaultLimits() Limits {
	return Limits{
		Integral:          solver.Limits{MaxDigits: 20, MaxFactorial: 20},
		Rational:          solver.Limits{MaxDigits: 30, MaxFactorial: 20},
		RationalQuadratic: solver.Limits{MaxDigits: 40, MaxFactorial: 20, MaxQuadraticPower: 3},
	}
}

// Driver walks the integer, rational and rational-quadratic solvers in
// lockstep by digit count, lifting each round's fresh discoveries from
// narrower domains into wider ones before the wider domain searches that
// same digit count.
type Driver struct {
	n      int64
	limits Limits

	integral *solver.Solver[solver.IntValue]
	rational *solver.Solver[quadratic.Rational64]
	rq       *solver.Solver[quadratic.RationalQuadratic]

	// phase2 is the integer phase-2 back-off solver: a clone of integral's
	// table taken once digit >= 3, then raced ahead to maxDepth looking for
	// target in a single non-progressive pass, independent of the rational
	// and rational-quadratic rounds still to come. Re-cloned (overwritten)
	// every round phase 2 runs; nil until the first such round.
	phase2 *solver.Solver[solver.IntValue]

	phase     Phase
	digit     int
	maxDepth  int
	target    int64
	hasTarget bool
	verbose   bool
}

// NewDriver builds a Driver over the digit n, bounded by limits. maxDepth
// gates the integer phase-2 back-off search (see Step's PhaseIntegralPhase2
// case): pass 0 to leave it unbounded (capped only by the integer domain's
// own Limits.MaxDigits), matching progressive.rs's behavior when no
// explicit depth cap is given.
func NewDriver(n int64, limits Limits, maxDepth int) *Driver {
	return &Driver{
		n:        n,
		limits:   limits,
		integral: solver.New[solver.IntValue](n, limits.Integral, solver.IntOps{}),
		rational: solver.New[quadratic.Rational64](n, limits.Rational, solver.RationalOps{}),
		rq:       solver.New[quadratic.RationalQuadratic](n, limits.RationalQuadratic, solver.RQOps{}),
		phase:    PhaseNone,
		digit:    1,
		maxDepth: maxDepth,
	}
}

// SetTarget fixes the value the integer phase-2 back-off search chases; it
// is set automatically by Solve, but is exposed so a caller stepping the
// state machine by hand can engage phase 2 too.
func (d *Driver) SetTarget(target int64) {
	d.target = target
	d.hasTarget = true
}

// SetVerbose turns on a single Info line per digit count searched.
func (d *Driver) SetVerbose(v bool) { d.verbose = v }

// Digit reports the digit count the driver is currently working on (or just
// finished, once Solve returns).
func (d *Driver) Digit() int { return d.digit }

// maxDigit is the widest digit count any of the three domains will still
// search; once the driver's digit counter passes it every domain's own
// Limits.MaxDigits has been exhausted.
func (d *Driver) maxDigit() int {
	m := d.limits.Integral.MaxDigits
	if d.limits.Rational.MaxDigits > m {
		m = d.limits.Rational.MaxDigits
	}
	if d.limits.RationalQuadratic.MaxDigits > m {
		m = d.limits.RationalQuadratic.MaxDigits
	}
	return m
}

// Step advances the state machine by exactly one phase. It reports whether
// every domain has now exhausted its own digit budget (the driver has
// nothing further to search).
//
// The cross-domain lift in PhaseIntegralPhase2 runs every round,
// unconditionally, mirroring progressive.rs's Integral phase (which lifts
// on every call to search, not just once digit reaches some floor). The
// separate integer phase-2 *back-off search* — cloning the integer table
// and racing it ahead to maxDepth looking for the fixed target — is what
// progressive.rs actually gates on "3 <= digit < maxDepth"; see the
// PhaseIntegralPhase2 case below.
func (d *Driver) Step() bool {
	switch d.phase {
	case PhaseNone:
		d.phase = PhaseIntegral
	case PhaseIntegral:
		d.integral.Search(d.digit)
		d.phase = PhaseIntegralPhase2
	case PhaseIntegralPhase2:
		liftNewNumbers(d.integral, intToRational, d.rational)
		liftNewNumbers(d.integral, intToRQ, d.rq)
		d.integral.ClearNewNumbers()
		if d.hasTarget && d.digit >= 3 && (d.maxDepth == 0 || d.digit < d.maxDepth) {
			phase2 := d.integral.Clone()
			depth := d.maxDepth
			if depth == 0 {
				depth = d.limits.Integral.MaxDigits
			}
			phase2.Solve(solver.IntValue(d.target), depth)
			d.phase2 = phase2
		}
		d.phase = PhaseRational
	case PhaseRational:
		d.rational.Search(d.digit)
		liftNewNumbers(d.rational, rationalToRQ, d.rq)
		liftNewNumbersIf(d.rational, rationalToInt, d.integral)
		d.integral.ClearNewNumbers()
		d.rational.ClearNewNumbers()
		d.rq.ClearNewNumbers()
		d.phase = PhaseRationalQuadratic
	case PhaseRationalQuadratic:
		d.rq.Search(d.digit)
		liftNewNumbersIf(d.rq, rqToInt, d.integral)
		liftNewNumbersIf(d.rq, rqToRational, d.rational)
		d.rq.ClearNewNumbers()
		d.integral.ClearNewNumbers()
		d.rational.ClearNewNumbers()
		d.phase = PhaseFinished
	case PhaseFinished:
		if d.verbose {
			logger.Logger().Info("progressive: digit round complete", "digit", d.digit)
		}
		d.digit++
		d.phase = PhaseNone
		return d.digit > d.maxDigit()
	}
	return false
}

// runDigit drives every phase of the current digit count to completion.
func (d *Driver) runDigit() {
	for d.phase != PhaseFinished {
		d.Step()
	}
}

// intToRational converts an integer-domain value into the equal Rational64,
// for lifting an integer discovery into the rational domain.
func intToRational(v solver.IntValue) quadratic.Rational64 {
	return quadratic.RationalFromInt(int64(v))
}

// intToRQ converts an integer-domain value into the equal, purely-rational
// RationalQuadratic, for lifting an integer discovery into the widest domain.
func intToRQ(v solver.IntValue) quadratic.RationalQuadratic {
	return quadratic.RQFromInt(int64(v))
}

// rationalToRQ converts a Rational64 into the purely-rational RationalQuadratic
// equal to it, for lifting a rational-domain discovery into the wider domain.
func rationalToRQ(r quadratic.Rational64) quadratic.RationalQuadratic {
	return quadratic.RQFromRational(r)
}

// rationalToInt converts a Rational64 back into an IntValue when it happens
// to be a whole number, for lifting a rational-domain discovery back down
// into the integer domain.
func rationalToInt(r quadratic.Rational64) (solver.IntValue, bool) {
	v, ok := r.ToInt()
	return solver.IntValue(v), ok
}

// rqToInt converts a RationalQuadratic back into an IntValue when it carries
// no radical and is a whole number, for lifting a rational-quadratic
// discovery back down into the integer domain.
func rqToInt(x quadratic.RationalQuadratic) (solver.IntValue, bool) {
	v, ok := x.ToInt()
	return solver.IntValue(v), ok
}

// rqToRational converts a RationalQuadratic back into a Rational64 when it
// carries no radical, for lifting a rational-quadratic discovery back down
// into the rational domain.
func rqToRational(x quadratic.RationalQuadratic) (quadratic.Rational64, bool) {
	if !x.IsRational() {
		return quadratic.Rational64{}, false
	}
	return x.Rational, true
}

// liftNewNumbers copies every value from's search admitted this round into
// into as a same-cost seed, retyping both the value (via convert) and its
// witness expression tree (via expression.Retype). It does not chase sqrt or
// factorial on the lifted value: into's own search will rediscover those
// derivations on its own turn if they are still worthwhile there.
func liftNewNumbers[S solver.Number, T solver.Number](from *solver.Solver[S], convert func(S) T, into *solver.Solver[T]) {
	for _, v := range from.NewNumbers() {
		expr, digits, ok := from.Lookup(v)
		if !ok {
			continue
		}
		target := convert(v)
		into.TryInsert(target, digits, func() *expression.Expression[T] {
			return expression.Retype(expr, convert)
		})
	}
}

// liftNewNumbersIf is liftNewNumbers for a convert that can fail (e.g.
// rational-to-integer, which only succeeds on whole numbers): it still
// lifts the witness expression tree unconditionally via expression.Retype,
// because every leaf of that tree is a digit concatenation of n and so is
// always convertible even when the tree's aggregate value is not; convert
// is only consulted per-node through that total leaf wrapper, so Retype
// itself can never observe a failure.
func liftNewNumbersIf[S solver.Number, T solver.Number](from *solver.Solver[S], convert func(S) (T, bool), into *solver.Solver[T]) {
	leaf := func(s S) T {
		t, _ := convert(s)
		return t
	}
	for _, v := range from.NewNumbers() {
		target, ok := convert(v)
		if !ok {
			continue
		}
		expr, digits, ok := from.Lookup(v)
		if !ok {
			continue
		}
		into.TryInsert(target, digits, func() *expression.Expression[T] {
			return expression.Retype(expr, leaf)
		})
	}
}

// Solve drives the state machine until target is found in some domain or
// every domain's digit budget is exhausted.
func (d *Driver) Solve(target int64, maxDigit int) (Solution, bool) {
	d.SetTarget(target)
	if maxDigit > d.maxDigit() {
		maxDigit = d.maxDigit()
	}
	for d.digit <= maxDigit {
		d.runDigit()
		if sol, ok := d.GetSolution(target); ok {
			return sol, true
		}
		if done := d.Step(); done {
			break
		}
	}
	return Solution{}, false
}

// GetSolution reports the cheapest expression found so far for target across
// all three domains. When two domains tie on digit count the narrower
// domain wins (integral over rational over rational-quadratic); a wider
// domain's answer only displaces a narrower one when it is strictly
// cheaper. This mirrors progressive.rs's get_solution, which prefers the
// plain-integer witness unless a later phase genuinely improves on it.
func (d *Driver) GetSolution(target int64) (Solution, bool) {
	var best Solution
	found := false
	if _, digits, ok := d.integral.Lookup(solver.IntValue(target)); ok {
		best = Solution{Digits: digits, Domain: PhaseIntegral}
		found = true
	}
	if _, digits, ok := d.rational.Lookup(quadratic.RationalFromInt(target)); ok {
		if !found || digits < best.Digits {
			best = Solution{Digits: digits, Domain: PhaseRational}
			found = true
		}
	}
	if _, digits, ok := d.rq.Lookup(quadratic.RQFromInt(target)); ok {
		if !found || digits < best.Digits {
			best = Solution{Digits: digits, Domain: PhaseRationalQuadratic}
			found = true
		}
	}
	// The phase-2 back-off table only displaces the domain-priority result
	// above when it is strictly cheaper, matching progressive.rs's
	// get_solution: a tie still goes to the regular search.
	if d.phase2 != nil {
		if _, digits, ok := d.phase2.Lookup(solver.IntValue(target)); ok {
			if !found || digits < best.Digits {
				best = Solution{Digits: digits, Domain: PhaseIntegralPhase2}
				found = true
			}
		}
	}
	return best, found
}

// LookupIntegral returns the witness expression for target in the integer
// domain's own table, if any.
func (d *Driver) LookupIntegral(target int64) (*expression.Expression[solver.IntValue], int, bool) {
	return d.integral.Lookup(solver.IntValue(target))
}

// LookupRational returns the witness expression for target in the rational
// domain's own table, if any.
func (d *Driver) LookupRational(target int64) (*expression.Expression[quadratic.Rational64], int, bool) {
	return d.rational.Lookup(quadratic.RationalFromInt(target))
}

// LookupRationalQuadratic returns the witness expression for target in the
// rational-quadratic domain's own table, if any.
func (d *Driver) LookupRationalQuadratic(target int64) (*expression.Expression[quadratic.RationalQuadratic], int, bool) {
	return d.rq.Lookup(quadratic.RQFromInt(target))
}

// LookupIntegralPhase2 returns the witness expression for target in the
// phase-2 back-off solver's table, if a back-off search has run at all.
func (d *Driver) LookupIntegralPhase2(target int64) (*expression.Expression[solver.IntValue], int, bool) {
	if d.phase2 == nil {
		return nil, 0, false
	}
	return d.phase2.Lookup(solver.IntValue(target))
}
