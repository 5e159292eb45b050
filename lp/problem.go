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
	"math"
	"sort"
	"strings"

	log "github.com/golang/glog"
)

// Problem aggregates an objective, named constraints and the decision
// variables they reference, plus the terminal status written by a Solver.
//
// Variables referenced by constraints or the objective are not registered
// automatically; the caller registers them with AddVariable(s).
// Registration and constraint insertion are silent last-write-wins by
// identifier; re-adding a name replaces the prior entry without error.
//
// Mutation is not synchronized: the design assumes a single writer during
// model construction and solving, with read-only fan-out afterwards.
type Problem struct {
	name        string
	sense       Sense
	objective   *LinearExpr
	constraints map[string]*Constraint
	order       []string
	vars        map[string]*Variable
	status      Status
	solStatus   SolutionStatus
	lastUnused  int
}

// NewProblem creates an empty problem with the given name and
// optimization sense. Spaces in the name are replaced by underscores.
func NewProblem(name string, sense Sense) *Problem {
	if strings.Contains(name, " ") {
		log.Warningf("spaces are not permitted in the problem name; converted to '_'")
		name = strings.ReplaceAll(name, " ", "_")
	}
	return &Problem{
		name:        name,
		sense:       sense,
		constraints: make(map[string]*Constraint),
		vars:        make(map[string]*Variable),
		status:      StatusNotSolved,
		solStatus:   SolutionNoSolutionFound,
	}
}

// Name returns the name of the problem.
func (p *Problem) Name() string { return p.name }

// Sense returns the optimization direction.
func (p *Problem) Sense() Sense { return p.sense }

// AddVariable registers a variable under its name, replacing any prior
// variable with the same name.
func (p *Problem) AddVariable(v *Variable) {
	p.vars[v.Name()] = v
}

// AddVariables registers all given variables.
func (p *Problem) AddVariables(vs ...*Variable) {
	for _, v := range vs {
		p.AddVariable(v)
	}
}

// Variable returns the registered variable with the given name.
func (p *Problem) Variable(name string) (*Variable, bool) {
	v, ok := p.vars[name]
	return v, ok
}

// Variables returns the registered variables sorted by name.
func (p *Problem) Variables() []*Variable {
	vs := make([]*Variable, 0, len(p.vars))
	for _, v := range p.vars {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].Name() < vs[j].Name() })
	return vs
}

// VariableCount returns the number of registered variables.
func (p *Problem) VariableCount() int { return len(p.vars) }

// AddConstraint registers the constraint under name, replacing any prior
// constraint with the same name while keeping its position. An empty
// name falls back to the constraint's own name, then to a generated
// "_C<n>" name. Returns the registered constraint.
func (p *Problem) AddConstraint(name string, c *Constraint) *Constraint {
	if name == "" {
		name = c.name
	}
	if name == "" {
		name = p.unusedConstraintName()
	}
	c.name = name
	if _, exists := p.constraints[name]; !exists {
		p.order = append(p.order, name)
	}
	p.constraints[name] = c
	return c
}

// AddLessOrEqual adds the constraint expr <= rhs.
func (p *Problem) AddLessOrEqual(name string, la LinearArgument, rhs float64) *Constraint {
	return p.AddConstraint(name, NewConstraint(la, LessEq, rhs))
}

// AddGreaterOrEqual adds the constraint expr >= rhs.
func (p *Problem) AddGreaterOrEqual(name string, la LinearArgument, rhs float64) *Constraint {
	return p.AddConstraint(name, NewConstraint(la, GreaterEq, rhs))
}

// AddEquality adds the constraint expr = rhs.
func (p *Problem) AddEquality(name string, la LinearArgument, rhs float64) *Constraint {
	return p.AddConstraint(name, NewConstraint(la, Equal, rhs))
}

func (p *Problem) unusedConstraintName() string {
	for {
		p.lastUnused++
		name := fmt.Sprintf("_C%d", p.lastUnused)
		if _, exists := p.constraints[name]; !exists {
			return name
		}
	}
}

// Constraint returns the registered constraint with the given name.
func (p *Problem) Constraint(name string) (*Constraint, bool) {
	c, ok := p.constraints[name]
	return c, ok
}

// Constraints returns the registered constraints in insertion order.
func (p *Problem) Constraints() []*Constraint {
	cs := make([]*Constraint, 0, len(p.order))
	for _, name := range p.order {
		cs = append(cs, p.constraints[name])
	}
	return cs
}

// ConstraintCount returns the number of registered constraints.
func (p *Problem) ConstraintCount() int { return len(p.constraints) }

// SetObjective replaces the objective with a copy of the given
// expression.
func (p *Problem) SetObjective(la LinearArgument) {
	p.objective = Sum(la)
}

// Objective returns the objective expression, nil when none is set.
func (p *Problem) Objective() *LinearExpr { return p.objective }

// IsMIP reports whether any registered variable is integral.
func (p *Problem) IsMIP() bool {
	for _, v := range p.vars {
		if v.IsInteger() {
			return true
		}
	}
	return false
}

// RoundSolution repairs all registered variables in place, snapping
// near-bound values and rounding near-integral values. See
// Variable.Round.
func (p *Problem) RoundSolution(epsInt, eps float64) {
	for _, v := range p.vars {
		v.Round(epsInt, eps)
	}
}

// Valid reports whether every registered variable and constraint is
// satisfied by the current assignment within tolerance eps.
func (p *Problem) Valid(eps float64) bool {
	for _, v := range p.vars {
		if !v.Valid(eps) {
			return false
		}
	}
	for _, c := range p.constraints {
		if !c.Valid(p.vars, eps) {
			return false
		}
	}
	return true
}

// InfeasibilityGap returns the magnitude of the worst violation across
// all registered variables and constraints, 0 when everything is
// satisfied. Constraints are selected by strict validity (eps = 0) and
// report their raw violation |value - rhs|.
func (p *Problem) InfeasibilityGap(mip bool) float64 {
	gap := 0.0
	for _, v := range p.vars {
		gap = math.Max(gap, math.Abs(v.InfeasibilityGap(mip)))
	}
	for _, c := range p.constraints {
		if !c.Valid(p.vars, 0) {
			gap = math.Max(gap, math.Abs(c.ValueOrDefault(p.vars)-c.RHS()))
		}
	}
	return gap
}

// Status returns the terminal status of the problem.
func (p *Problem) Status() Status { return p.status }

// SolutionStatus returns the solution status of the problem.
func (p *Problem) SolutionStatus() SolutionStatus { return p.solStatus }

// AssignStatus records the terminal status and derives the matching
// solution status. Normally called by a Solver, or by Problem.Solve on
// its behalf.
func (p *Problem) AssignStatus(st Status) {
	p.status = st
	p.solStatus = st.solutionStatus()
}

// AssignStatusWithSolution records the terminal status together with an
// explicit solution status, for solvers that distinguish the two.
func (p *Problem) AssignStatusWithSolution(st Status, sol SolutionStatus) {
	p.status = st
	p.solStatus = sol
}

// AssignValues writes solver values into the registered variables, keyed
// by variable name. Unknown names error with ErrUnknownVariable.
func (p *Problem) AssignValues(vals map[string]float64) error {
	for name, val := range vals {
		v, ok := p.vars[name]
		if !ok {
			return fmt.Errorf("assigning value to %q: %w", name, ErrUnknownVariable)
		}
		v.SetValue(val)
	}
	return nil
}

// AssignReducedCosts writes solver reduced costs into the registered
// variables, keyed by variable name.
func (p *Problem) AssignReducedCosts(djs map[string]float64) error {
	for name, dj := range djs {
		v, ok := p.vars[name]
		if !ok {
			return fmt.Errorf("assigning reduced cost to %q: %w", name, ErrUnknownVariable)
		}
		v.SetReducedCost(dj)
	}
	return nil
}

// AssignDualPrices writes solver dual prices into the registered
// constraints, keyed by constraint name.
func (p *Problem) AssignDualPrices(pis map[string]float64) error {
	for name, pi := range pis {
		c, ok := p.constraints[name]
		if !ok {
			return fmt.Errorf("assigning dual price to %q: %w", name, ErrUnknownConstraint)
		}
		c.SetDualValue(pi)
	}
	return nil
}

// AssignSlacks writes solver slacks into the registered constraints,
// keyed by constraint name.
func (p *Problem) AssignSlacks(slacks map[string]float64) error {
	for name, slack := range slacks {
		c, ok := p.constraints[name]
		if !ok {
			return fmt.Errorf("assigning slack to %q: %w", name, ErrUnknownConstraint)
		}
		c.SetSlack(slack)
	}
	return nil
}

// String renders the problem deterministically: the name, the direction
// keyword, the objective, a SUBJECT TO section with the constraints in
// insertion order, and a VARIABLES section sorted by name.
func (p *Problem) String() string {
	var b strings.Builder
	b.WriteString(p.name)
	b.WriteString(":\n")
	if p.sense == Minimize {
		b.WriteString("MINIMIZE\n")
	} else {
		b.WriteString("MAXIMIZE\n")
	}
	obj := p.objective
	if obj == nil {
		obj = NewLinearExpr()
	}
	b.WriteString(obj.String())
	b.WriteString("\n")
	if len(p.order) > 0 {
		b.WriteString("SUBJECT TO\n")
		for _, name := range p.order {
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(p.constraints[name].String())
			b.WriteString("\n")
		}
	}
	b.WriteString("VARIABLES\n")
	for _, v := range p.Variables() {
		b.WriteString(v.BoundsString())
		b.WriteString(" ")
		b.WriteString(v.Category().String())
		b.WriteString("\n")
	}
	return b.String()
}
