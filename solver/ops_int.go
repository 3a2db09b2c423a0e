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

import "github.com/getamis/tchisla/numbertheory"

// IntValue is the integer domain's number type: a thin int64 wrapper so it
// can satisfy expression.Valuer and Number (comparable) and be used
// directly as the solver's T, without the non-generic big.Int-style
// pointer-mutating numbers this repo's original crypto code used.
type IntValue int64

// ToInt implements expression.Valuer: every IntValue is its own integer.
func (v IntValue) ToInt() (int64, bool) { return int64(v), true }

// IntOps is the Ops[IntValue] strategy for the integer domain (spec.md
// §4.A): the solver's base case, searched before any value is lifted into
// the rational or rational-quadratic domains.
type IntOps struct{}

func (IntOps) FromInt(n int64) IntValue { return IntValue(n) }

func (IntOps) IsZero(x IntValue) bool     { return x == 0 }
func (IntOps) IsInteger(IntValue) bool    { return true }
func (IntOps) IsRational(IntValue) bool   { return true }
func (IntOps) IsPositive(x IntValue) bool { return x > 0 }
func (IntOps) ToInt(x IntValue) (int64, bool) { return int64(x), true }

func (IntOps) RangeCheck(x IntValue, _ Limits) bool {
	return withinMagnitude(int64(x), intMagnitudeLimit)
}

func (IntOps) Add(x, y IntValue) (IntValue, bool) {
	v, ok := addInt64(int64(x), int64(y))
	return IntValue(v), ok
}

func (IntOps) Sub(x, y IntValue) (IntValue, bool) {
	v, ok := subInt64(int64(x), int64(y))
	return IntValue(v), ok
}

func (IntOps) Mul(x, y IntValue) (IntValue, bool) {
	v, ok := mulInt64(int64(x), int64(y))
	return IntValue(v), ok
}

// Div returns x/y only when the division is exact: spec.md's integer domain
// never produces a fractional intermediate (that is what the rational
// domain is for).
func (IntOps) Div(x, y IntValue) (IntValue, bool) {
	if y == 0 || int64(x)%int64(y) != 0 {
		return 0, false
	}
	return x / y, true
}

func (IntOps) Pow(base, exponent IntValue, _ Limits) (IntValue, bool) {
	p := int64(exponent)
	if p == 0 {
		if base == 0 {
			return 0, false
		}
		return 1, true
	}
	if p < 0 || p > maxPowExponent {
		return 0, false
	}
	result := int64(1)
	for ; p > 0; p-- {
		var ok bool
		result, ok = mulInt64(result, int64(base))
		if !ok {
			return 0, false
		}
	}
	return IntValue(result), true
}

func (IntOps) TrySqrt(x IntValue, _ Limits) (IntValue, bool) {
	r, ok := numbertheory.TryISqrt(int64(x))
	return IntValue(r), ok
}
