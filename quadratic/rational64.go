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

package quadratic

import "strconv"

// Rational64 is an exact rational number backed by two int64s, always kept
// in lowest terms with a strictly positive denominator. It is a plain
// comparable value type (not a pointer, not math/big.Rat) so that it can be
// used directly as a map key by the solver's table (§3 of spec.md requires
// values to be hashable/comparable).
type Rational64 struct {
	Num int64
	Den int64
}

// ZeroRational is the canonical zero.
var ZeroRational = Rational64{Num: 0, Den: 1}

// OneRational is the canonical one.
var OneRational = Rational64{Num: 1, Den: 1}

func gcdInt64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// NewRational64 builds a reduced Rational64 from a numerator and a
// (possibly negative or zero) denominator.
func NewRational64(num, den int64) Rational64 {
	if den == 0 {
		panic("quadratic: zero denominator")
	}
	if num == 0 {
		return ZeroRational
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcdInt64(num, den); g > 1 {
		num /= g
		den /= g
	}
	return Rational64{Num: num, Den: den}
}

// RationalFromInt builds a Rational64 equal to the integer n.
func RationalFromInt(n int64) Rational64 {
	return Rational64{Num: n, Den: 1}
}

// IsZero reports whether r is the canonical zero.
func (r Rational64) IsZero() bool { return r.Num == 0 }

// IsOne reports whether r equals one.
func (r Rational64) IsOne() bool { return r.Num == 1 && r.Den == 1 }

// IsInteger reports whether r has no fractional part.
func (r Rational64) IsInteger() bool { return r.Den == 1 }

// ToInt returns the integer value of r, and whether r is in fact an integer.
func (r Rational64) ToInt() (int64, bool) {
	if !r.IsInteger() {
		return 0, false
	}
	return r.Num, true
}

// Sign returns -1, 0 or 1 according to the sign of r.
func (r Rational64) Sign() int {
	switch {
	case r.Num < 0:
		return -1
	case r.Num > 0:
		return 1
	default:
		return 0
	}
}

// IsPositive reports whether r > 0.
func (r Rational64) IsPositive() bool { return r.Num > 0 }

// IsNegative reports whether r < 0.
func (r Rational64) IsNegative() bool { return r.Num < 0 }

// Neg returns -r.
func (r Rational64) Neg() Rational64 { return Rational64{Num: -r.Num, Den: r.Den} }

// Abs returns |r|.
func (r Rational64) Abs() Rational64 {
	if r.Num < 0 {
		return r.Neg()
	}
	return r
}

// Signum returns the pure rational sign of r: -1, 0 or 1.
func (r Rational64) Signum() Rational64 { return RationalFromInt(int64(r.Sign())) }

// Inv returns 1/r. The caller must ensure r is non-zero.
func (r Rational64) Inv() Rational64 {
	if r.Num < 0 {
		return NewRational64(-r.Den, -r.Num)
	}
	return NewRational64(r.Den, r.Num)
}

// Add returns r + s.
func (r Rational64) Add(s Rational64) Rational64 {
	return NewRational64(r.Num*s.Den+s.Num*r.Den, r.Den*s.Den)
}

// Sub returns r - s.
func (r Rational64) Sub(s Rational64) Rational64 {
	return NewRational64(r.Num*s.Den-s.Num*r.Den, r.Den*s.Den)
}

// Mul returns r * s.
func (r Rational64) Mul(s Rational64) Rational64 {
	return NewRational64(r.Num*s.Num, r.Den*s.Den)
}

// Div returns r / s. The caller must ensure s is non-zero.
func (r Rational64) Div(s Rational64) Rational64 {
	return NewRational64(r.Num*s.Den, r.Den*s.Num)
}

// Pow raises r to an integer power p, including negative p (via Inv).
func (r Rational64) Pow(p int64) Rational64 {
	if p == 0 {
		return OneRational
	}
	base := r
	if p < 0 {
		base = r.Inv()
		p = -p
	}
	result := OneRational
	for ; p > 0; p-- {
		result = result.Mul(base)
	}
	return result
}

// Cmp compares r and s: -1, 0 or 1.
func (r Rational64) Cmp(s Rational64) int {
	lhs := r.Num * s.Den
	rhs := s.Num * r.Den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// String renders r as "a/b", or "a" when it is an integer.
func (r Rational64) String() string {
	if r.IsInteger() {
		return strconv.FormatInt(r.Num, 10)
	}
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}
