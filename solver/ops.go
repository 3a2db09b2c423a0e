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
	"math"

	"github.com/getamis/tchisla/expression"
)

// Number is the constraint every solved domain's value type must satisfy:
// comparable so it can key the solver's table directly (spec.md §3
// invariant 5), and Valuer so expression trees can inspect Number leaves.
type Number interface {
	comparable
	expression.Valuer
}

// Ops is the strategy interface through which a Solver performs
// domain-specific arithmetic and range checks on T. Go's type parameters
// can't express per-domain static factories as methods on T itself (T is
// plain data), so Ops plays the role each of
// xuanyan0x7c7/rust-tchisla-solver's per-domain Number impls plays: one
// concrete Ops[T] per domain (IntOps, RationalOps, RQOps), injected into a
// shared Solver[T].
//
// Every arithmetic method reports ok=false instead of erroring when the
// operation is undefined or would leave the domain's representable range
// (division by zero, overflow, incompatible radicals, non-integer
// exponents); a Solver reads a false result as "no candidate here", not as
// a failure (spec.md §7).
type Ops[T Number] interface {
	FromInt(n int64) T

	IsZero(x T) bool
	IsInteger(x T) bool
	IsRational(x T) bool
	IsPositive(x T) bool
	ToInt(x T) (int64, bool)

	RangeCheck(x T, limits Limits) bool

	Add(x, y T) (T, bool)
	Sub(x, y T) (T, bool)
	Mul(x, y T) (T, bool)
	Div(x, y T) (T, bool)
	Pow(base, exponent T, limits Limits) (T, bool)
	TrySqrt(x T, limits Limits) (T, bool)
}

// log2Of10 turns a decimal digit budget into an equivalent bit-length bound
// (spec.md §4.D: "the rational domain bounds numerator and denominator's bit
// lengths by ~max_digits · log₂ 10").
const log2Of10 = 3.321928094887362

// maxSafeBits caps the bit length magnitudeLimit ever returns: two values
// bounded to this many bits can be multiplied together without the product
// itself overflowing int64, which is what RQOps's Mul/Div rely on before
// RangeCheck gets a chance to inspect the result (those methods have no
// Limits of their own to consult; RationalOps's arithmetic is overflow-checked
// through mulInt64/addInt64/subInt64 instead).
const maxSafeBits = 31

// defaultMagnitudeLimit is the fixed envelope RQOps's Mul and Div check
// their own (otherwise unchecked) int64 arithmetic against, since the Ops
// interface doesn't thread Limits through those methods. RQOps.Pow checks
// against magnitudeLimit(limits.MaxDigits) instead.
// RangeCheck's own, MaxDigits-derived bound (magnitudeLimit) is always at
// most this wide, so nothing RangeCheck would reject can have slipped past
// this guard first.
const defaultMagnitudeLimit = int64(1) << maxSafeBits

// magnitudeLimit derives the rational/rational-quadratic numerator and
// denominator envelope from a domain's MaxDigits (spec.md §4.D), clamped to
// maxSafeBits so growth within one domain's own configured digit budget
// can never exceed what a single safe multiplication already assumes.
func magnitudeLimit(maxDigits int) int64 {
	bits := int(math.Ceil(float64(maxDigits) * log2Of10))
	if bits < 1 {
		bits = 1
	}
	if bits > maxSafeBits {
		bits = maxSafeBits
	}
	return int64(1) << uint(bits)
}

// intMagnitudeLimit bounds the integer domain's admissible values directly
// by magnitude (spec.md §4.D: "the integer domain bounds by magnitude"),
// independent of MaxDigits. Unlike the rational/rational-quadratic domains,
// the integer domain's own arithmetic is already exactly overflow-checked
// (addInt64/subInt64/mulInt64), so this only needs to stay within int64's
// own range rather than track a digit-derived bit length; it is set wide
// enough that MaxFactorial's documented default of 20 (20! = 2,432,902,008,
// 176,640,000) is never rejected as out of range.
const intMagnitudeLimit = int64(1) << 62

func withinMagnitude(v, limit int64) bool {
	return v > -limit && v < limit
}

// maxPowExponent bounds the exponent a pow combinator will raise a base to,
// independent of Limits.MaxDigits, so that a pathological operand can't spin
// the solver into a long multiplication loop before RangeCheck gets a
// chance to reject the result.
const maxPowExponent = 4096
