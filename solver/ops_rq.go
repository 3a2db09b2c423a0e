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

package solver

import "github.com/getamis/tchisla/quadratic"

// RQOps is the Ops[quadratic.RationalQuadratic] strategy for the
// rational-quadratic domain (spec.md §4.B), the last and widest of the
// three progressive phases.
type RQOps struct{}

func (RQOps) FromInt(n int64) quadratic.RationalQuadratic { return quadratic.RQFromInt(n) }

func (RQOps) IsZero(x quadratic.RationalQuadratic) bool     { return x.IsZero() }
func (RQOps) IsInteger(x quadratic.RationalQuadratic) bool  { return x.IsInteger() }
func (RQOps) IsRational(x quadratic.RationalQuadratic) bool { return x.IsRational() }
func (RQOps) IsPositive(x quadratic.RationalQuadratic) bool { return x.IsPositive() }
func (RQOps) ToInt(x quadratic.RationalQuadratic) (int64, bool) { return x.ToInt() }

func (RQOps) RangeCheck(x quadratic.RationalQuadratic, limits Limits) bool {
	if x.Power > limits.MaxQuadraticPower {
		return false
	}
	limit := magnitudeLimit(limits.MaxDigits)
	return withinMagnitude(x.Rational.Num, limit) && withinMagnitude(x.Rational.Den, limit)
}

// Add requires x and y to share a radical (or either be zero); a mismatched
// pair is not an error, just a dead end for this particular combination
// (spec.md §7), so it is checked here rather than left to
// RationalQuadratic.Add's panic, which guards a genuine precondition
// violation instead.
func (RQOps) Add(x, y quadratic.RationalQuadratic) (quadratic.RationalQuadratic, bool) {
	if !x.IsZero() && !y.IsZero() && !quadratic.SameRadical(x, y) {
		return quadratic.RationalQuadratic{}, false
	}
	return x.Add(y), true
}

func (RQOps) Sub(x, y quadratic.RationalQuadratic) (quadratic.RationalQuadratic, bool) {
	if !x.IsZero() && !y.IsZero() && !quadratic.SameRadical(x, y) {
		return quadratic.RationalQuadratic{}, false
	}
	return x.Sub(y), true
}

func (RQOps) Mul(x, y quadratic.RationalQuadratic) (quadratic.RationalQuadratic, bool) {
	result := x.Mul(y)
	if !withinMagnitude(result.Rational.Num, defaultMagnitudeLimit) || !withinMagnitude(result.Rational.Den, defaultMagnitudeLimit) {
		return quadratic.RationalQuadratic{}, false
	}
	return result, true
}

func (RQOps) Div(x, y quadratic.RationalQuadratic) (quadratic.RationalQuadratic, bool) {
	if y.IsZero() {
		return quadratic.RationalQuadratic{}, false
	}
	result := x.Div(y)
	if !withinMagnitude(result.Rational.Num, defaultMagnitudeLimit) || !withinMagnitude(result.Rational.Den, defaultMagnitudeLimit) {
		return quadratic.RationalQuadratic{}, false
	}
	return result, true
}

func (RQOps) Pow(base, exponent quadratic.RationalQuadratic, limits Limits) (quadratic.RationalQuadratic, bool) {
	p, ok := exponent.ToInt()
	if !ok || p > maxPowExponent || p < -maxPowExponent {
		return quadratic.RationalQuadratic{}, false
	}
	if p == 0 {
		if base.IsZero() {
			return quadratic.RationalQuadratic{}, false
		}
		return quadratic.OneRQ, true
	}
	if base.IsZero() && p < 0 {
		return quadratic.RationalQuadratic{}, false
	}
	result := base.Pow(p)
	if result.Power > limits.MaxQuadraticPower {
		return quadratic.RationalQuadratic{}, false
	}
	limit := magnitudeLimit(limits.MaxDigits)
	if !withinMagnitude(result.Rational.Num, limit) || !withinMagnitude(result.Rational.Den, limit) {
		return quadratic.RationalQuadratic{}, false
	}
	return result, true
}

func (RQOps) TrySqrt(x quadratic.RationalQuadratic, limits Limits) (quadratic.RationalQuadratic, bool) {
	if x.Power+1 > limits.MaxQuadraticPower {
		return quadratic.RationalQuadratic{}, false
	}
	return x.TrySqrt()
}
