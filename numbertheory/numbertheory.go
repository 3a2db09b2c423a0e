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

// Package numbertheory provides the handful of exact integer-theoretic
// primitives the rest of the solver is built on: an exact integer square
// root, and factorial / factorial-quotient computed with big.Int
// intermediates so that overflow is detected rather than silently wrapped.
package numbertheory

import "math/big"

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
)

// TryISqrt returns the exact integer square root of n: r such that r*r == n.
// It only accepts non-negative n; for negative n, or for n with no exact
// integer root, it returns (0, false).
func TryISqrt(n int64) (int64, bool) {
	if n < 0 {
		return 0, false
	}
	if n == 0 {
		return 0, true
	}
	r := new(big.Int).Sqrt(big.NewInt(n))
	if new(big.Int).Mul(r, r).Cmp(big.NewInt(n)) != 0 {
		return 0, false
	}
	return r.Int64(), true
}

// Factorial computes n! for n >= 0, as a big.Int so that the solver can
// range-check the result before narrowing it to int64. Callers are
// responsible for bounding n via the solver's max_factorial limit before
// calling this; it is not bounded here.
func Factorial(n int64) *big.Int {
	result := new(big.Int).Set(big1)
	for i := int64(2); i <= n; i++ {
		result.Mul(result, big.NewInt(i))
	}
	return result
}

// FactorialDivide computes a!/b! for a > b >= 0 as the product
// (b+1)*(b+2)*...*a, without ever forming either factorial on its own. The
// caller (the solver's factorial_divide combinator) is responsible for
// ensuring the product does not overflow int64 before narrowing.
func FactorialDivide(a, b int64) *big.Int {
	result := new(big.Int).Set(big1)
	for i := b + 1; i <= a; i++ {
		result.Mul(result, big.NewInt(i))
	}
	return result
}

// FitsInt64 reports whether x is representable as an int64, and returns the
// narrowed value when it is.
func FitsInt64(x *big.Int) (int64, bool) {
	if !x.IsInt64() {
		return 0, false
	}
	return x.Int64(), true
}
