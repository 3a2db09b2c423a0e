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

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("RationalQuadratic", func() {
	It("satisfies x + y - y == x for same-radical operands", func() {
		x, ok := RQFromInt(2).TrySqrt()
		Expect(ok).Should(BeTrue())
		y := x.Mul(RQFromInt(3))
		Expect(x.Add(y).Sub(y)).Should(Equal(x))
	})

	It("satisfies (x * y) / y == x for y != 0", func() {
		x := RQFromInt(6)
		y := RQFromInt(3)
		Expect(x.Mul(y).Div(y)).Should(Equal(x))
	})

	It("satisfies x * inv(x) == 1 for x != 0", func() {
		x, ok := RQFromInt(12).TrySqrt()
		Expect(ok).Should(BeTrue())
		Expect(x.Mul(x.Inv())).Should(Equal(OneRQ))
	})

	It("produces a sound square root: r * r == x", func() {
		for _, n := range []int64{1, 4, 9, 12, 18, 50, 72} {
			x := RQFromInt(n)
			r, ok := x.TrySqrt()
			Expect(ok).Should(BeTrue(), "n=%d", n)
			Expect(r.Mul(r)).Should(Equal(x), "n=%d", n)
		}
	})

	It("fails to find a root when a prime outside the base remains under the radical", func() {
		_, ok := RQFromInt(53).TrySqrt()
		Expect(ok).Should(BeFalse())
	})

	It("fails to find a root for negative values", func() {
		_, ok := RQFromInt(-4).TrySqrt()
		Expect(ok).Should(BeFalse())
	})

	It("keeps the radical normalized after a perfect-square factors out", func() {
		// sqrt(12) = 2*sqrt(3): the exponent of 2 must be fully carried
		// out, not left dangling inside the radical.
		x, ok := RQFromInt(12).TrySqrt()
		Expect(ok).Should(BeTrue())
		Expect(x.Rational).Should(Equal(RationalFromInt(2)))
		Expect(x.Power).Should(Equal(uint8(1)))
		wantExponents := [NumPrimes]uint8{}
		wantExponents[1] = 1 // factor of 3
		Expect(x.Exponents).Should(Equal(wantExponents))
	})

	It("satisfies the power law x^a * x^b == x^(a+b) (avoiding overflow)", func() {
		x, ok := RQFromInt(2).TrySqrt()
		Expect(ok).Should(BeTrue())
		Expect(x.Pow(3).Mul(x.Pow(4))).Should(Equal(x.Pow(7)))
		Expect(x.Pow(-2).Mul(x.Pow(5))).Should(Equal(x.Pow(3)))
	})

	It("is idempotent under repeated normalization", func() {
		x, _ := RQFromInt(8).TrySqrt()
		once := x.Mul(OneRQ)
		twice := once.Mul(OneRQ)
		Expect(once).Should(Equal(twice))
	})

	It("is equal-and-hashable consistently: usable as a map key", func() {
		x, _ := RQFromInt(2).TrySqrt()
		y, _ := RQFromInt(2).TrySqrt()
		table := map[RationalQuadratic]int{}
		table[x] = 1
		Expect(table[y]).Should(Equal(1))
	})

	It("reduces to the canonical zero whatever the radical", func() {
		x, _ := RQFromInt(2).TrySqrt()
		zeroed := x.Mul(ZeroRQ)
		Expect(zeroed).Should(Equal(ZeroRQ))
	})

	It("returns a purely rational signum even for radical-bearing values", func() {
		x, _ := RQFromInt(2).TrySqrt()
		Expect(x.Signum()).Should(Equal(RQFromInt(1)))
		Expect(x.Neg().Signum()).Should(Equal(RQFromInt(-1)))
	})
})
