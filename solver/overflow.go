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
	"math/big"

	"github.com/getamis/tchisla/numbertheory"
)

// addInt64, subInt64 and mulInt64 perform the named operation with a
// big.Int intermediate and report ok=false on int64 overflow, the same
// narrow-after-computing idiom numbertheory.Factorial uses for the same
// reason: int64's arithmetic operators wrap silently, and silent wraparound
// would let an inadmissible expression masquerade as a solution.
func addInt64(a, b int64) (int64, bool) {
	return numbertheory.FitsInt64(new(big.Int).Add(big.NewInt(a), big.NewInt(b)))
}

func subInt64(a, b int64) (int64, bool) {
	return numbertheory.FitsInt64(new(big.Int).Sub(big.NewInt(a), big.NewInt(b)))
}

func mulInt64(a, b int64) (int64, bool) {
	return numbertheory.FitsInt64(new(big.Int).Mul(big.NewInt(a), big.NewInt(b)))
}
