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
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Rational64", func() {
	DescribeTable("reduces to lowest terms",
		func(num, den, wantNum, wantDen int64) {
			r := NewRational64(num, den)
			Expect(r.Num).Should(Equal(wantNum))
			Expect(r.Den).Should(Equal(wantDen))
		},
		Entry("already reduced", int64(3), int64(4), int64(3), int64(4)),
		Entry("common factor", int64(6), int64(8), int64(3), int64(4)),
		Entry("negative denominator", int64(1), int64(-2), int64(-1), int64(2)),
		Entry("zero numerator", int64(0), int64(5), int64(0), int64(1)),
	)

	It("satisfies x + y - y == x", func() {
		x := NewRational64(2, 3)
		y := NewRational64(5, 7)
		Expect(x.Add(y).Sub(y)).Should(Equal(x))
	})

	It("satisfies (x * y) / y == x for y != 0", func() {
		x := NewRational64(2, 3)
		y := NewRational64(5, 7)
		Expect(x.Mul(y).Div(y)).Should(Equal(x))
	})

	It("satisfies x * inv(x) == 1 for x != 0", func() {
		x := NewRational64(2, 3)
		Expect(x.Mul(x.Inv())).Should(Equal(OneRational))
	})

	It("satisfies the power law x^a * x^b == x^(a+b)", func() {
		x := NewRational64(3, 2)
		Expect(x.Pow(2).Mul(x.Pow(3))).Should(Equal(x.Pow(5)))
		Expect(x.Pow(-2).Mul(x.Pow(3))).Should(Equal(x.Pow(1)))
	})

	It("is reflexive and stable across repeated normalization", func() {
		x := NewRational64(6, 8)
		y := NewRational64(NewRational64(6, 8).Num, NewRational64(6, 8).Den)
		Expect(x).Should(Equal(y))
		Expect(x).Should(Equal(x))
	})
})
