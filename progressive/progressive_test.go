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

package progressive_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/getamis/tchisla/progressive"
	"github.com/getamis/tchisla/solver"
)

func smallLimits() progressive.Limits {
	return progressive.Limits{
		Integral:          solver.Limits{MaxDigits: 8, MaxFactorial: 6},
		Rational:          solver.Limits{MaxDigits: 8, MaxFactorial: 6},
		RationalQuadratic: solver.Limits{MaxDigits: 8, MaxFactorial: 6, MaxQuadraticPower: 2},
	}
}

var _ = Describe("Driver", func() {
	It("solves n=1, target=1 in exactly 1 digit from the integer domain", func() {
		d := progressive.NewDriver(1, smallLimits(), 0)
		sol, ok := d.Solve(1, 8)
		Expect(ok).Should(BeTrue())
		Expect(sol.Digits).Should(Equal(1))
		Expect(sol.Domain).Should(Equal(progressive.PhaseIntegral))
	})

	It("solves n=3, target=2 in exactly 2 digits (6/3)", func() {
		d := progressive.NewDriver(3, smallLimits(), 0)
		sol, ok := d.Solve(2, 8)
		Expect(ok).Should(BeTrue())
		Expect(sol.Digits).Should(Equal(2))
		Expect(sol.Domain).Should(Equal(progressive.PhaseIntegral))
	})

	It("prefers the integer domain's own answer on a tie with the wider domains", func() {
		d := progressive.NewDriver(2, smallLimits(), 0)
		sol, ok := d.Solve(4, 8)
		Expect(ok).Should(BeTrue())
		Expect(sol.Digits).Should(Equal(2))
		Expect(sol.Domain).Should(Equal(progressive.PhaseIntegral))
	})

	It("solves n=2, target=11 within a modest digit budget", func() {
		d := progressive.NewDriver(2, smallLimits(), 0)
		sol, ok := d.Solve(11, 8)
		Expect(ok).Should(BeTrue())
		Expect(sol.Digits).Should(BeNumerically("<=", 7))
	})

	It("lifts the digit-1 leaf and its factorial cascade into the wider domains the same round they're found", func() {
		// The PhaseIntegralPhase2 lift runs every round unconditionally (no
		// digit floor); only the separate integer back-off search gates on
		// digit >= 3. So at digit 1, 3/3!=6/6!=720 already land in the
		// rational and rational-quadratic tables as same-cost seeds, without
		// waiting for those domains' own Search to rediscover them.
		limits := progressive.Limits{
			Integral:          solver.Limits{MaxDigits: 4, MaxFactorial: 6},
			Rational:          solver.Limits{MaxDigits: 4, MaxFactorial: 6},
			RationalQuadratic: solver.Limits{MaxDigits: 4, MaxFactorial: 6, MaxQuadraticPower: 2},
		}
		d := progressive.NewDriver(3, limits, 0)
		Expect(d.Step()).Should(BeFalse()) // None -> Integral
		Expect(d.Step()).Should(BeFalse()) // Integral: Search(1) finds 3, 3!=6, 6!=720
		Expect(d.Step()).Should(BeFalse()) // IntegralPhase2: lifts into rational/rq; back-off search skipped below digit 3

		_, digits, ok := d.LookupRational(3)
		Expect(ok).Should(BeTrue())
		Expect(digits).Should(Equal(1))

		_, digits, ok = d.LookupRational(6)
		Expect(ok).Should(BeTrue())
		Expect(digits).Should(Equal(1))

		_, digits, ok = d.LookupRationalQuadratic(720)
		Expect(ok).Should(BeTrue())
		Expect(digits).Should(Equal(1))
	})

	It("runs the integer phase-2 back-off search once a round reaches 3 digits and prefers it only when strictly better", func() {
		// Factorials are capped at 2 so that 3! = 6 is unavailable and 6/3
		// cannot reach 2 in two digits.
		limits := progressive.Limits{
			Integral:          solver.Limits{MaxDigits: 6, MaxFactorial: 2},
			Rational:          solver.Limits{MaxDigits: 6, MaxFactorial: 2},
			RationalQuadratic: solver.Limits{MaxDigits: 6, MaxFactorial: 2, MaxQuadraticPower: 2},
		}
		d := progressive.NewDriver(3, limits, 0)
		sol, ok := d.Solve(2, 6)
		Expect(ok).Should(BeTrue())
		// 3 - 3/3 = 2, reachable in the integer domain at 3 digits; the
		// phase-2 table races to the same depth and cannot beat it, so
		// GetSolution keeps the regular result rather than the phase-2 one.
		Expect(sol.Digits).Should(Equal(3))
		Expect(sol.Domain).Should(Equal(progressive.PhaseIntegral))
	})

	It("holds 1 in the integer domain's own table within 4 digits after Solve", func() {
		// 3/3 = 1 is found by the integer domain's own search at 2 digits,
		// so Solve stops after that round with 1 already in the integer
		// table.
		limits := progressive.Limits{
			Integral:          solver.Limits{MaxDigits: 6, MaxFactorial: 6},
			Rational:          solver.Limits{MaxDigits: 6, MaxFactorial: 6},
			RationalQuadratic: solver.Limits{MaxDigits: 6, MaxFactorial: 6, MaxQuadraticPower: 2},
		}
		d := progressive.NewDriver(3, limits, 0)
		d.Solve(1, 6)

		_, digits, ok := d.LookupIntegral(1)
		Expect(ok).Should(BeTrue())
		Expect(digits).Should(BeNumerically("<=", 4))
	})

	It("reports every step exhausted once every domain's digit budget is spent", func() {
		limits := progressive.Limits{
			Integral:          solver.Limits{MaxDigits: 1, MaxFactorial: 2},
			Rational:          solver.Limits{MaxDigits: 1, MaxFactorial: 2},
			RationalQuadratic: solver.Limits{MaxDigits: 1, MaxFactorial: 2, MaxQuadraticPower: 1},
		}
		d := progressive.NewDriver(7, limits, 0)
		done := false
		for i := 0; i < 10 && !done; i++ {
			done = d.Step()
		}
		Expect(done).Should(BeTrue())
	})
})
