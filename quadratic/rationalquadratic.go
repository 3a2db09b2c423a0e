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

// Package quadratic implements the exact number tower the solver searches
// over: int64-backed exact rationals (Rational64) and rational-quadratic
// numbers of the form r*sqrt^k(m) (RationalQuadratic), where m is factored
// over a fixed fifteen-prime base. Both types are plain comparable value
// structs, never pointers, so that solver tables can use them directly as
// map keys (spec.md §3, invariant 5).
//
// The arithmetic here is translated field-for-field from
// xuanyan0x7c7/rust-tchisla-solver's src/quadratic/rational.rs.
package quadratic

import (
	"strconv"

	"github.com/getamis/tchisla/numbertheory"
)

// NumPrimes is the size of the fixed prime base radicands are factored
// over. Recommended by spec.md §4.B: the first 15 primes.
const NumPrimes = 15

// Primes is the fixed prime base, in increasing order.
var Primes = [NumPrimes]int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// RationalQuadratic represents rational_part * sqrt(sqrt(...sqrt(m)...))
// with Power nested square roots, where m = prod(Primes[i]^Exponents[i]).
//
// Invariants (spec.md §3):
//  1. Power == 0 implies every exponent is 0.
//  2. Power > 0 implies at least one exponent is odd.
//  3. every exponent is < 1<<Power.
//  4. Rational == zero implies the canonical zero representation (Power 0,
//     all exponents 0).
type RationalQuadratic struct {
	Rational  Rational64
	Exponents [NumPrimes]uint8
	Power     uint8
}

// ZeroRQ is the canonical zero.
var ZeroRQ = RationalQuadratic{Rational: ZeroRational}

// OneRQ is the canonical one.
var OneRQ = RationalQuadratic{Rational: OneRational}

// RQFromInt builds a purely rational RationalQuadratic equal to n.
func RQFromInt(n int64) RationalQuadratic {
	return RationalQuadratic{Rational: RationalFromInt(n)}
}

// RQFromRational builds a purely rational RationalQuadratic equal to r.
func RQFromRational(r Rational64) RationalQuadratic {
	return RationalQuadratic{Rational: r}
}

// IsZero reports whether x is the canonical zero.
func (x RationalQuadratic) IsZero() bool { return x.Rational.IsZero() }

// IsOne reports whether x equals one.
func (x RationalQuadratic) IsOne() bool { return x.Power == 0 && x.Rational.IsOne() }

// IsRational reports whether x carries no radical (Power == 0).
func (x RationalQuadratic) IsRational() bool { return x.Power == 0 }

// IsInteger reports whether x is a rational with denominator 1.
func (x RationalQuadratic) IsInteger() bool { return x.Power == 0 && x.Rational.IsInteger() }

// ToInt returns the integer value of x, and whether x is in fact an
// integer.
func (x RationalQuadratic) ToInt() (int64, bool) {
	if !x.IsInteger() {
		return 0, false
	}
	return x.Rational.Num, true
}

// IsPositive reports whether x > 0.
func (x RationalQuadratic) IsPositive() bool { return x.Rational.IsPositive() }

// IsNegative reports whether x < 0.
func (x RationalQuadratic) IsNegative() bool { return x.Rational.IsNegative() }

// Signum returns the pure rational sign of x (-1, 0 or 1 — never a
// radical-bearing value), mirroring rational.rs's Signed::signum.
func (x RationalQuadratic) Signum() RationalQuadratic {
	return RQFromRational(x.Rational.Signum())
}

// Abs returns |x|: the radical is untouched, since by construction it is
// never negative (invariants 1-3).
func (x RationalQuadratic) Abs() RationalQuadratic {
	return RationalQuadratic{Rational: x.Rational.Abs(), Exponents: x.Exponents, Power: x.Power}
}

// Neg returns -x.
func (x RationalQuadratic) Neg() RationalQuadratic {
	return RationalQuadratic{Rational: x.Rational.Neg(), Exponents: x.Exponents, Power: x.Power}
}

// SameRadical reports whether x and y carry the same radical (same Power,
// same Exponents) and are therefore compatible operands for Add/Sub.
func SameRadical(x, y RationalQuadratic) bool {
	if x.Power != y.Power {
		return false
	}
	return x.Exponents == y.Exponents
}

// Add returns x + y. x and y must either be zero or share a radical
// (SameRadical); this is a precondition enforced by the solver's combinator
// layer (spec.md §9 Open Question), and Add panics when it is violated.
func (x RationalQuadratic) Add(y RationalQuadratic) RationalQuadratic {
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	if !SameRadical(x, y) {
		panic("quadratic: Add of incompatible radicals")
	}
	rational := x.Rational.Add(y.Rational)
	if rational.IsZero() {
		return ZeroRQ
	}
	return RationalQuadratic{Rational: rational, Exponents: x.Exponents, Power: x.Power}
}

// Sub returns x - y, under the same preconditions as Add.
func (x RationalQuadratic) Sub(y RationalQuadratic) RationalQuadratic {
	if x.IsZero() {
		return y.Neg()
	}
	if y.IsZero() {
		return x
	}
	if !SameRadical(x, y) {
		panic("quadratic: Sub of incompatible radicals")
	}
	rational := x.Rational.Sub(y.Rational)
	if rational.IsZero() {
		return ZeroRQ
	}
	return RationalQuadratic{Rational: rational, Exponents: x.Exponents, Power: x.Power}
}

// normalizeCarry folds any exponent that reached 1<<power back into the
// rational part (spec.md §3 invariant 3), then flattens the radical while
// every exponent stays even (invariant 2).
func normalizeCarry(rational Rational64, exponents [NumPrimes]uint8, power uint8) RationalQuadratic {
	if power > 0 {
		limit := uint8(1) << power
		for i := 0; i < NumPrimes; i++ {
			if exponents[i] >= limit {
				exponents[i] -= limit
				rational = rational.Mul(RationalFromInt(Primes[i]))
			}
		}
		for power > 0 {
			allEven := true
			for i := 0; i < NumPrimes; i++ {
				if exponents[i]%2 != 0 {
					allEven = false
					break
				}
			}
			if !allEven {
				break
			}
			power--
			for i := 0; i < NumPrimes; i++ {
				exponents[i] >>= 1
			}
		}
	}
	if power == 0 {
		exponents = [NumPrimes]uint8{}
	}
	return RationalQuadratic{Rational: rational, Exponents: exponents, Power: power}
}

// Mul returns x * y.
func (x RationalQuadratic) Mul(y RationalQuadratic) RationalQuadratic {
	rational := x.Rational.Mul(y.Rational)
	if rational.IsZero() {
		return ZeroRQ
	}
	power := x.Power
	if y.Power > power {
		power = y.Power
	}
	var exponents [NumPrimes]uint8
	if power > 0 {
		for i := 0; i < NumPrimes; i++ {
			exponents[i] = (x.Exponents[i] << (power - x.Power)) + (y.Exponents[i] << (power - y.Power))
		}
	}
	return normalizeCarry(rational, exponents, power)
}

// Inv returns 1/x. The caller must ensure x is non-zero.
func (x RationalQuadratic) Inv() RationalQuadratic {
	rational := x.Rational.Inv()
	var exponents [NumPrimes]uint8
	limit := uint8(1) << x.Power
	for i := 0; i < NumPrimes; i++ {
		if x.Exponents[i] > 0 {
			rational = rational.Div(RationalFromInt(Primes[i]))
			exponents[i] = limit - x.Exponents[i]
		}
	}
	return RationalQuadratic{Rational: rational, Exponents: exponents, Power: x.Power}
}

// Div returns x / y. The caller must ensure y is non-zero.
func (x RationalQuadratic) Div(y RationalQuadratic) RationalQuadratic {
	rational := x.Rational.Div(y.Rational)
	if rational.IsZero() {
		return ZeroRQ
	}
	power := x.Power
	if y.Power > power {
		power = y.Power
	}
	var exponents [NumPrimes]uint8
	if power > 0 {
		for i := 0; i < NumPrimes; i++ {
			xi := x.Exponents[i] << (power - x.Power)
			yi := y.Exponents[i] << (power - y.Power)
			if xi < yi {
				rational = rational.Div(RationalFromInt(Primes[i]))
				exponents[i] = (uint8(1) << power) + xi - yi
			} else {
				exponents[i] = xi - yi
			}
		}
	}
	return normalizeCarry(rational, exponents, power)
}

// Pow raises x to an integer power p (spec.md §4.B).
func (x RationalQuadratic) Pow(p int64) RationalQuadratic {
	if p == 0 {
		return OneRQ
	}
	rational := x.Rational.Pow(p)
	power := x.Power
	for power > 0 && p%2 == 0 {
		power--
		p /= 2
	}
	var exponents [NumPrimes]uint8
	mod := int64(1) << power
	for i := 0; i < NumPrimes; i++ {
		product := int64(x.Exponents[i]) * p
		quotient := floorDiv(product, mod)
		remainder := product - quotient*mod
		rational = rational.Mul(RationalFromInt(Primes[i]).Pow(quotient))
		exponents[i] = uint8(remainder)
	}
	return normalizeCarry(rational, exponents, power)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// TrySqrt attempts an exact square root of x (spec.md §4.B). It fails
// (returns false) when x is negative, or when what remains under the
// radical after factoring out Primes is not a perfect square.
func (x RationalQuadratic) TrySqrt() (RationalQuadratic, bool) {
	if x.Rational.IsZero() {
		return x, true
	}
	if x.Rational.IsNegative() {
		return RationalQuadratic{}, false
	}
	p := x.Rational.Num
	q := x.Rational.Den
	exponents := x.Exponents
	power := x.Power + 1
	var numerator, denominator int64 = 1, 1
	for i := 0; i < NumPrimes; i++ {
		prime := Primes[i]
		for p%(prime*prime) == 0 {
			numerator *= prime
			p /= prime * prime
		}
		if p%prime == 0 {
			exponents[i] |= 1 << (power - 1)
			p /= prime
		}
		for q%(prime*prime) == 0 {
			denominator *= prime
			q /= prime * prime
		}
		if q%prime == 0 {
			denominator *= prime
			exponents[i] |= 1 << (power - 1)
			q /= prime
		}
	}
	sqrtP, ok := numbertheory.TryISqrt(p)
	if !ok {
		return RationalQuadratic{}, false
	}
	numerator *= sqrtP
	sqrtQ, ok := numbertheory.TryISqrt(q)
	if !ok {
		return RationalQuadratic{}, false
	}
	denominator *= sqrtQ
	allZero := true
	for i := 0; i < NumPrimes; i++ {
		if exponents[i] != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		power = 0
		exponents = [NumPrimes]uint8{}
	}
	return RationalQuadratic{
		Rational:  NewRational64(numerator, denominator),
		Exponents: exponents,
		Power:     power,
	}, true
}

// String renders x for debugging.
func (x RationalQuadratic) String() string {
	if x.IsRational() {
		return x.Rational.String()
	}
	radicand := int64(1)
	for i := 0; i < NumPrimes; i++ {
		for e := uint8(0); e < x.Exponents[i]; e++ {
			radicand *= Primes[i]
		}
	}
	s := ""
	for i := uint8(0); i < x.Power; i++ {
		s += "sqrt("
	}
	s += strconv.FormatInt(radicand, 10)
	for i := uint8(0); i < x.Power; i++ {
		s += ")"
	}
	if x.Rational.IsOne() {
		return s
	}
	return x.Rational.String() + "*" + s
}
