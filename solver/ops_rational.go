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

import (
	"github.com/getamis/tchisla/numbertheory"
	"github.com/getamis/tchisla/quadratic"
)

// RationalOps is the Ops[quadratic.Rational64] strategy for the rational
// domain (spec.md §4.B), reached once the integer domain's search for a
// given digit budget is exhausted.
type RationalOps struct{}

func (RationalOps) FromInt(n int64) quadratic.Rational64 { return quadratic.RationalFromInt(n) }

func (RationalOps) IsZero(x quadratic.Rational64) bool     { return x.IsZero() }
func (RationalOps) IsInteger(x quadratic.Rational64) bool  { return x.IsInteger() }
func (RationalOps) IsRational(quadratic.Rational64) bool   { return true }
func (RationalOps) IsPositive(x quadratic.Rational64) bool { return x.IsPositive() }
func (RationalOps) ToInt(x quadratic.Rational64) (int64, bool) { return x.ToInt() }

func (RationalOps) RangeCheck(x quadratic.Rational64, limits Limits) bool {
	limit := magnitudeLimit(limits.MaxDigits)
	return withinMagnitude(x.Num, limit) && withinMagnitude(x.Den, limit)
}

func (RationalOps) Add(x, y quadratic.Rational64) (quadratic.Rational64, bool) {
	n1, ok := mulInt64(x.Num, y.Den)
	if !ok {
		return quadratic.Rational64{}, false
	}
	n2, ok := mulInt64(y.Num, x.Den)
	if !ok {
		return quadratic.Rational64{}, false
	}
	num, ok := addInt64(n1, n2)
	if !ok {
		return quadratic.Rational64{}, false
	}
	den, ok := mulInt64(x.Den, y.Den)
	if !ok {
		return quadratic.Rational64{}, false
	}
	return quadratic.NewRational64(num, den), true
}

func (RationalOps) Sub(x, y quadratic.Rational64) (quadratic.Rational64, bool) {
	n1, ok := mulInt64(x.Num, y.Den)
	if !ok {
		return quadratic.Rational64{}, false
	}
	n2, ok := mulInt64(y.Num, x.Den)
	if !ok {
		return quadratic.Rational64{}, false
	}
	num, ok := subInt64(n1, n2)
	if !ok {
		return quadratic.Rational64{}, false
	}
	den, ok := mulInt64(x.Den, y.Den)
	if !ok {
		return quadratic.Rational64{}, false
	}
	return quadratic.NewRational64(num, den), true
}

func (RationalOps) Mul(x, y quadratic.Rational64) (quadratic.Rational64, bool) {
	num, ok := mulInt64(x.Num, y.Num)
	if !ok {
		return quadratic.Rational64{}, false
	}
	den, ok := mulInt64(x.Den, y.Den)
	if !ok {
		return quadratic.Rational64{}, false
	}
	return quadratic.NewRational64(num, den), true
}

func (RationalOps) Div(x, y quadratic.Rational64) (quadratic.Rational64, bool) {
	if y.IsZero() {
		return quadratic.Rational64{}, false
	}
	num, ok := mulInt64(x.Num, y.Den)
	if !ok {
		return quadratic.Rational64{}, false
	}
	den, ok := mulInt64(x.Den, y.Num)
	if !ok {
		return quadratic.Rational64{}, false
	}
	return quadratic.NewRational64(num, den), true
}

func (o RationalOps) Pow(base, exponent quadratic.Rational64, _ Limits) (quadratic.Rational64, bool) {
	p, ok := exponent.ToInt()
	if !ok || p > maxPowExponent || p < -maxPowExponent {
		return quadratic.Rational64{}, false
	}
	if p == 0 {
		if base.IsZero() {
			return quadratic.Rational64{}, false
		}
		return quadratic.OneRational, true
	}
	if base.IsZero() && p < 0 {
		return quadratic.Rational64{}, false
	}
	b := base
	if p < 0 {
		b = b.Inv()
		p = -p
	}
	result := quadratic.OneRational
	for ; p > 0; p-- {
		var ok bool
		result, ok = o.Mul(result, b)
		if !ok {
			return quadratic.Rational64{}, false
		}
	}
	return result, true
}

// TrySqrt succeeds only when both the (already-reduced) numerator and
// denominator are themselves perfect squares; this domain carries no
// radical representation, unlike RationalQuadratic.TrySqrt.
func (RationalOps) TrySqrt(x quadratic.Rational64, _ Limits) (quadratic.Rational64, bool) {
	if x.IsNegative() {
		return quadratic.Rational64{}, false
	}
	num, ok := numbertheory.TryISqrt(x.Num)
	if !ok {
		return quadratic.Rational64{}, false
	}
	den, ok := numbertheory.TryISqrt(x.Den)
	if !ok {
		return quadratic.Rational64{}, false
	}
	return quadratic.NewRational64(num, den), true
}
