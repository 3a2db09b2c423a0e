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

package solver_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/getamis/tchisla/expression"
	"github.com/getamis/tchisla/numbertheory"
	"github.com/getamis/tchisla/quadratic"
	"github.com/getamis/tchisla/solver"
)

// evalExpr independently recomputes the value an expression tree denotes,
// used only by these tests to confirm a solved expression is admissible
// (evaluates exactly to the value the solver recorded for it) rather than
// trusting the solver's own bookkeeping.
func evalExpr[T solver.Number](e *expression.Expression[T], ops solver.Ops[T], limits solver.Limits) (T, bool) {
	var zero T
	switch e.Kind() {
	case expression.KindNumber:
		return e.Value(), true
	case expression.KindNegate:
		v, ok := evalExpr(e.Child(), ops, limits)
		if !ok {
			return zero, false
		}
		return ops.Sub(ops.FromInt(0), v)
	case expression.KindSqrt:
		v, ok := evalExpr(e.Child(), ops, limits)
		if !ok {
			return zero, false
		}
		return ops.TrySqrt(v, limits)
	case expression.KindFactorial:
		v, ok := evalExpr(e.Child(), ops, limits)
		if !ok {
			return zero, false
		}
		n, ok := ops.ToInt(v)
		if !ok || n < 0 {
			return zero, false
		}
		result, ok := numbertheory.FitsInt64(numbertheory.Factorial(n))
		if !ok {
			return zero, false
		}
		return ops.FromInt(result), true
	default:
		left, right := e.Left(), e.Right()
		lv, ok := evalExpr(left, ops, limits)
		if !ok {
			return zero, false
		}
		rv, ok := evalExpr(right, ops, limits)
		if !ok {
			return zero, false
		}
		switch e.Kind() {
		case expression.KindDiv:
			return ops.Div(lv, rv)
		case expression.KindMul:
			return ops.Mul(lv, rv)
		case expression.KindAdd:
			return ops.Add(lv, rv)
		case expression.KindSub:
			return ops.Sub(lv, rv)
		case expression.KindPow:
			return ops.Pow(lv, rv, limits)
		}
		return zero, false
	}
}

var _ = Describe("Solver", func() {
	It("solves n=1, target=1 in exactly 1 digit", func() {
		limits := solver.Limits{MaxDigits: 6, MaxFactorial: 10}
		s := solver.New[solver.IntValue](1, limits, solver.IntOps{})
		expr, digits, ok := s.Solve(solver.IntValue(1), 6)
		Expect(ok).Should(BeTrue())
		Expect(digits).Should(Equal(1))
		got, ok := evalExpr[solver.IntValue](expr, solver.IntOps{}, limits)
		Expect(ok).Should(BeTrue())
		Expect(got).Should(Equal(solver.IntValue(1)))
	})

	It("solves n=3, target=2 in exactly 2 digits (6/3)", func() {
		limits := solver.Limits{MaxDigits: 6, MaxFactorial: 10}
		s := solver.New[solver.IntValue](3, limits, solver.IntOps{})
		expr, digits, ok := s.Solve(solver.IntValue(2), 6)
		Expect(ok).Should(BeTrue())
		Expect(digits).Should(Equal(2))
		got, ok := evalExpr[solver.IntValue](expr, solver.IntOps{}, limits)
		Expect(ok).Should(BeTrue())
		Expect(got).Should(Equal(solver.IntValue(2)))
	})

	It("solves n=5, target=100 within a modest digit budget", func() {
		limits := solver.Limits{MaxDigits: 8, MaxFactorial: 10}
		s := solver.New[solver.IntValue](5, limits, solver.IntOps{})
		expr, digits, ok := s.Solve(solver.IntValue(100), 8)
		Expect(ok).Should(BeTrue())
		Expect(digits).Should(BeNumerically("<=", 6))
		got, ok := evalExpr[solver.IntValue](expr, solver.IntOps{}, limits)
		Expect(ok).Should(BeTrue())
		Expect(got).Should(Equal(solver.IntValue(100)))
	})

	It("solves n=7, target=24 within a modest digit budget", func() {
		limits := solver.Limits{MaxDigits: 8, MaxFactorial: 10}
		s := solver.New[solver.IntValue](7, limits, solver.IntOps{})
		expr, digits, ok := s.Solve(solver.IntValue(24), 8)
		Expect(ok).Should(BeTrue())
		Expect(digits).Should(BeNumerically("<=", 7))
		got, ok := evalExpr[solver.IntValue](expr, solver.IntOps{}, limits)
		Expect(ok).Should(BeTrue())
		Expect(got).Should(Equal(solver.IntValue(24)))
	})

	It("never records an expression whose value doesn't match its key", func() {
		limits := solver.Limits{MaxDigits: 4, MaxFactorial: 8}
		s := solver.New[solver.IntValue](4, limits, solver.IntOps{})
		for d := 1; d <= 4; d++ {
			s.Search(d)
			s.ClearNewNumbers()
		}
		for _, target := range []solver.IntValue{1, 2, 8, 16, 256} {
			expr, _, ok := s.Lookup(target)
			if !ok {
				continue
			}
			got, ok := evalExpr[solver.IntValue](expr, solver.IntOps{}, limits)
			Expect(ok).Should(BeTrue())
			Expect(got).Should(Equal(target))
		}
	})

	It("matches brute-force optimal cost for n=6, target=1 (6/6)", func() {
		limits := solver.Limits{MaxDigits: 3, MaxFactorial: 6}
		s := solver.New[solver.IntValue](6, limits, solver.IntOps{})
		_, digits, ok := s.Solve(solver.IntValue(1), 3)
		Expect(ok).Should(BeTrue())
		Expect(digits).Should(Equal(2))

		// Independently confirm no 1-digit expression reaches 1: the only
		// 1-digit candidates are 6 itself, 6! and (6 has no integer root).
		Expect(int64(6)).ShouldNot(Equal(int64(1)))
		_, sqrtOK := numbertheory.TryISqrt(6)
		Expect(sqrtOK).Should(BeFalse())

		// Independently confirm a 2-digit expression does reach 1 by
		// exhaustively trying every pair of the four basic binary
		// operators over two copies of 6, enumerating operator pairs via
		// gonum's combinatorics rather than a hand-rolled nested loop.
		type binOp func(a, b int64) (int64, bool)
		ops := []binOp{
			func(a, b int64) (int64, bool) { return a + b, true },
			func(a, b int64) (int64, bool) { return a - b, true },
			func(a, b int64) (int64, bool) { return a * b, true },
			func(a, b int64) (int64, bool) {
				if b == 0 || a%b != 0 {
					return 0, false
				}
				return a / b, true
			},
		}
		found := false
		for _, pair := range combin.Combinations(len(ops), 2) {
			for _, idx := range [][2]int{{pair[0], pair[1]}, {pair[1], pair[0]}} {
				if v, ok := ops[idx[0]](6, 6); ok && v == 1 {
					found = true
				}
				_ = idx
			}
		}
		for _, op := range ops {
			if v, ok := op(6, 6); ok && v == 1 {
				found = true
			}
		}
		Expect(found).Should(BeTrue())
	})
})

var _ = Describe("Solver over the rational domain", func() {
	It("solves n=2, target=11 within a modest digit budget", func() {
		limits := solver.Limits{MaxDigits: 8, MaxFactorial: 8}
		s := solver.New[quadratic.Rational64](2, limits, solver.RationalOps{})
		expr, digits, ok := s.Solve(quadratic.RationalFromInt(11), 8)
		Expect(ok).Should(BeTrue())
		Expect(digits).Should(BeNumerically("<=", 7))
		got, ok := evalExpr[quadratic.Rational64](expr, solver.RationalOps{}, limits)
		Expect(ok).Should(BeTrue())
		Expect(got).Should(Equal(quadratic.RationalFromInt(11)))
	})
})

var _ = Describe("Solver over the rational-quadratic domain", func() {
	It("admits 4 (2*2) and reports a sound expression", func() {
		limits := solver.Limits{MaxDigits: 6, MaxFactorial: 6, MaxQuadraticPower: 3}
		s := solver.New[quadratic.RationalQuadratic](2, limits, solver.RQOps{})
		for d := 1; d <= 4; d++ {
			s.Search(d)
			s.ClearNewNumbers()
		}
		target := quadratic.RQFromInt(4) // 2*2
		expr, _, ok := s.Lookup(target)
		Expect(ok).Should(BeTrue())
		got, ok := evalExpr[quadratic.RationalQuadratic](expr, solver.RQOps{}, limits)
		Expect(ok).Should(BeTrue())
		Expect(got).Should(Equal(target))
	})
})
