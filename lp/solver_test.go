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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSolver writes a canned solution into the problem and returns the
// configured status, exercising the full write-back surface a real back
// end would use.
type stubSolver struct {
	values map[string]float64
	djs    map[string]float64
	pis    map[string]float64
	slacks map[string]float64
	status Status
	err    error
}

func (s *stubSolver) Solve(p *Problem) (Status, error) {
	if s.err != nil {
		return StatusNotSolved, s.err
	}
	if err := p.AssignValues(s.values); err != nil {
		return StatusNotSolved, err
	}
	if err := p.AssignReducedCosts(s.djs); err != nil {
		return StatusNotSolved, err
	}
	if err := p.AssignDualPrices(s.pis); err != nil {
		return StatusNotSolved, err
	}
	if err := p.AssignSlacks(s.slacks); err != nil {
		return StatusNotSolved, err
	}
	return s.status, nil
}

func newDietProblem(t *testing.T) *Problem {
	t.Helper()
	x := mustVariable(t, "x", 0, 10, Continuous)
	y := mustVariable(t, "y", 0, 10, Continuous)
	p := NewProblem("diet", Minimize)
	p.AddVariables(x, y)
	p.SetObjective(NewLinearExpr().AddTerm(x, 2).AddTerm(y, 3))
	p.AddGreaterOrEqual("protein", Sum(x, y), 4)
	return p
}

func TestProblemSolve_RecordsSolution(t *testing.T) {
	p := newDietProblem(t)
	s := &stubSolver{
		values: map[string]float64{"x": 4, "y": 0},
		djs:    map[string]float64{"x": 0, "y": 1},
		pis:    map[string]float64{"protein": 2},
		slacks: map[string]float64{"protein": 0},
		status: StatusOptimal,
	}

	st, err := p.Solve(s)
	require.NoError(t, err)

	assert.Equal(t, StatusOptimal, st)
	assert.Equal(t, StatusOptimal, p.Status())
	assert.Equal(t, SolutionOptimal, p.SolutionStatus())
	assert.True(t, p.Valid(1e-6))
	assert.Equal(t, 0.0, p.InfeasibilityGap(p.IsMIP()))

	x, _ := p.Variable("x")
	val, ok := x.Value()
	require.True(t, ok)
	assert.Equal(t, 4.0, val)

	c, _ := p.Constraint("protein")
	pi, ok := c.DualValue()
	require.True(t, ok)
	assert.Equal(t, 2.0, pi)
}

func TestProblemSolve_KeepsSolverAssignedStatus(t *testing.T) {
	p := newDietProblem(t)
	s := solverFunc(func(p *Problem) (Status, error) {
		p.AssignStatusWithSolution(StatusOptimal, SolutionIntegerFeasible)
		return StatusOptimal, nil
	})

	_, err := p.Solve(s)
	require.NoError(t, err)

	// The solver's finer-grained solution status must survive Solve's
	// own bookkeeping.
	assert.Equal(t, SolutionIntegerFeasible, p.SolutionStatus())
}

func TestProblemSolve_NilSolver(t *testing.T) {
	p := newDietProblem(t)
	st, err := p.Solve(nil)

	assert.ErrorIs(t, err, ErrNilSolver)
	assert.Equal(t, StatusNotSolved, st)
	assert.Equal(t, StatusNotSolved, p.Status())
}

func TestProblemSolve_WrapsSolverError(t *testing.T) {
	p := newDietProblem(t)
	boom := errors.New("license expired")

	_, err := p.Solve(&stubSolver{err: boom})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "diet")
}

// solverFunc adapts a plain function to the Solver interface.
type solverFunc func(p *Problem) (Status, error)

func (f solverFunc) Solve(p *Problem) (Status, error) { return f(p) }
