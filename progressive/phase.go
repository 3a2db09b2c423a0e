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

package progressive

// Phase names a step of the driver's state machine. Each digit round walks
// every phase in order before advancing to the next digit count.
type Phase int

const (
	// PhaseNone is the driver's rest state, before a round has begun and
	// after one has finished.
	PhaseNone Phase = iota
	// PhaseIntegral searches the integer domain at the current digit count.
	PhaseIntegral
	// PhaseIntegralPhase2 first lifts every value the integer search just
	// found into the rational and rational-quadratic tables as same-cost
	// seeds, before those wider domains search this digit count themselves.
	// It then runs the integer back-off search: once the round has reached
	// 3 digits, the integer table is cloned and raced ahead, independent of
	// the progressive digit count, to the configured max depth looking for
	// the driver's own query target.
	PhaseIntegralPhase2
	// PhaseRational searches the rational domain, then lifts its fresh
	// discoveries into the rational-quadratic table.
	PhaseRational
	// PhaseRationalQuadratic searches the rational-quadratic domain, the
	// widest of the three.
	PhaseRationalQuadratic
	// PhaseFinished closes out the current digit count and advances to the
	// next one.
	PhaseFinished
)

// String renders p for logging.
func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseIntegral:
		return "integral"
	case PhaseIntegralPhase2:
		return "integral-phase2"
	case PhaseRational:
		return "rational"
	case PhaseRationalQuadratic:
		return "rational-quadratic"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}
