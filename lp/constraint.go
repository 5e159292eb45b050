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
	"math"
)

// Constraint pairs a linear expression with a comparison sense and a
// right-hand side, representing a linear equality or inequality.
//
// The dual price and slack fields start empty and are only written by a
// Solver.
type Constraint struct {
	expr     *LinearExpr
	sense    ConstraintSense
	rhs      float64
	name     string
	dual     float64
	hasDual  bool
	slack    float64
	hasSlack bool
}

// NewConstraint creates a constraint over a copy of the given expression,
// so later mutation of la does not affect the constraint.
func NewConstraint(la LinearArgument, sense ConstraintSense, rhs float64) *Constraint {
	return &Constraint{expr: Sum(la), sense: sense, rhs: rhs}
}

// WithName sets the name of the constraint and returns it.
func (c *Constraint) WithName(name string) *Constraint {
	c.name = name
	return c
}

// Name returns the name of the constraint.
func (c *Constraint) Name() string { return c.name }

// Sense returns the comparison sense of the constraint.
func (c *Constraint) Sense() ConstraintSense { return c.sense }

// RHS returns the right-hand-side constant.
func (c *Constraint) RHS() float64 { return c.rhs }

// ChangeRHS alters the right-hand side so the constraint can be modified
// between solves.
func (c *Constraint) ChangeRHS(rhs float64) {
	c.rhs = rhs
}

// Expr returns the constraint's expression. The returned expression is
// the constraint's own; mutating it mutates the constraint.
func (c *Constraint) Expr() *LinearExpr { return c.expr }

// LowerBound returns the lower bound implied by the sense: the right-hand
// side for GreaterEq and Equal constraints, false otherwise.
func (c *Constraint) LowerBound() (float64, bool) {
	if c.sense == GreaterEq || c.sense == Equal {
		return c.rhs, true
	}
	return 0, false
}

// UpperBound returns the upper bound implied by the sense: the right-hand
// side for LessEq and Equal constraints, false otherwise.
func (c *Constraint) UpperBound() (float64, bool) {
	if c.sense == LessEq || c.sense == Equal {
		return c.rhs, true
	}
	return 0, false
}

// Value evaluates the constraint's expression against vars, false when
// any referenced variable is missing or unassigned.
func (c *Constraint) Value(vars map[string]*Variable) (float64, bool) {
	return c.expr.Value(vars)
}

// ValueOrDefault evaluates the constraint's expression against vars,
// substituting defaults for missing data.
func (c *Constraint) ValueOrDefault(vars map[string]*Variable) float64 {
	return c.expr.ValueOrDefault(vars)
}

// Valid reports whether the constraint holds against vars within
// tolerance eps. Missing values contribute defaults rather than failing.
func (c *Constraint) Valid(vars map[string]*Variable, eps float64) bool {
	v := c.expr.ValueOrDefault(vars)
	switch c.sense {
	case Equal:
		return math.Abs(v-c.rhs) <= eps
	case LessEq:
		return v <= c.rhs+eps
	default:
		return v >= c.rhs-eps
	}
}

// DualValue returns the dual price (shadow price) written by the solver,
// false if none has been assigned.
func (c *Constraint) DualValue() (float64, bool) {
	return c.dual, c.hasDual
}

// SetDualValue overwrites the dual price. Normally called by a Solver.
func (c *Constraint) SetDualValue(pi float64) {
	c.dual = pi
	c.hasDual = true
}

// Slack returns the slack written by the solver, false if none has been
// assigned.
func (c *Constraint) Slack() (float64, bool) {
	return c.slack, c.hasSlack
}

// SetSlack overwrites the slack. Normally called by a Solver.
func (c *Constraint) SetSlack(slack float64) {
	c.slack = slack
	c.hasSlack = true
}

// String renders the constraint as "terms sense rhs" with any constant
// term of the expression folded into the displayed right-hand side,
// e.g. "x + 2*y <= 10".
func (c *Constraint) String() string {
	return c.expr.termsString() + " " + c.sense.String() + " " + formatFloat(c.rhs-c.expr.constant)
}
