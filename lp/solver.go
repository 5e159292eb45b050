// Copyright 2024 The lpkit Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lp

import (
	"fmt"
)

// Solver is the external back end that searches for a solution to a
// fully populated problem.
//
// A Solver reads the objective, the constraints and the variable bounds
// and categories, writes variable values and reduced costs, constraint
// dual prices and slacks (via the setters or the Problem.Assign*
// helpers), and returns a terminal status. Timeout and cancellation
// policy, if any, belongs to the Solver implementation.
type Solver interface {
	Solve(p *Problem) (Status, error)
}

// Solve hands the problem to the given solver and records the returned
// status on the problem. The solver is expected to mutate the problem's
// variables and constraints with its outputs.
//
// A solver that reports both a status and an explicit solution status
// should call AssignStatusWithSolution itself; Solve will not overwrite
// a status the solver already assigned with the same value it returned.
func (p *Problem) Solve(s Solver) (Status, error) {
	if s == nil {
		return StatusNotSolved, fmt.Errorf("solving problem %s: %w", p.name, ErrNilSolver)
	}
	st, err := s.Solve(p)
	if err != nil {
		return st, fmt.Errorf("solving problem %s: %w", p.name, err)
	}
	if p.status != st {
		p.AssignStatus(st)
	}
	return st, nil
}
