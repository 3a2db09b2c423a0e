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

// Limits bounds a single domain's search: how many digits of n may be spent,
// how large a factorial argument is considered, and (for the
// rational-quadratic domain) how deeply radicals may nest.
//
// Recommended defaults (spec.md §6): MaxDigits 20/30/40 for the integer,
// rational and rational-quadratic domains respectively, MaxFactorial 20
// across domains, MaxQuadraticPower 3.
type Limits struct {
	MaxDigits         int
	MaxFactorial      int64
	MaxQuadraticPower uint8
}
