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

package main

import (
	"fmt"

	"github.com/getamis/tchisla/expression"
)

// renderExpr renders e as a parenthesized infix expression, for the CLI's
// own debug output. This is deliberately not part of the expression package
// itself (spec.md §1 scopes printing out of the core).
func renderExpr[T expression.Valuer](e *expression.Expression[T]) string {
	switch e.Kind() {
	case expression.KindNumber:
		return fmt.Sprintf("%v", e.Value())
	case expression.KindNegate:
		return "-" + renderExpr(e.Child())
	case expression.KindSqrt:
		return "sqrt(" + renderExpr(e.Child()) + ")"
	case expression.KindFactorial:
		return renderExpr(e.Child()) + "!"
	case expression.KindAdd:
		return "(" + renderExpr(e.Left()) + "+" + renderExpr(e.Right()) + ")"
	case expression.KindSub:
		return "(" + renderExpr(e.Left()) + "-" + renderExpr(e.Right()) + ")"
	case expression.KindMul:
		return "(" + renderExpr(e.Left()) + "*" + renderExpr(e.Right()) + ")"
	case expression.KindDiv:
		return "(" + renderExpr(e.Left()) + "/" + renderExpr(e.Right()) + ")"
	default: // expression.KindPow
		return "(" + renderExpr(e.Left()) + "^" + renderExpr(e.Right()) + ")"
	}
}
