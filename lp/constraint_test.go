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
	"testing"
)

func TestConstraint_Bounds(t *testing.T) {
	x := mustVariable(t, "x", 0, 10, Continuous)

	testCases := []struct {
		name    string
		sense   ConstraintSense
		wantLow bool
		wantUp  bool
	}{
		{name: "LessEq", sense: LessEq, wantLow: false, wantUp: true},
		{name: "Equal", sense: Equal, wantLow: true, wantUp: true},
		{name: "GreaterEq", sense: GreaterEq, wantLow: true, wantUp: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewConstraint(x, tc.sense, 5)
			low, okLow := c.LowerBound()
			if okLow != tc.wantLow {
				t.Errorf("LowerBound() ok = %v, want %v", okLow, tc.wantLow)
			}
			if okLow && low != 5 {
				t.Errorf("LowerBound() = %v, want 5", low)
			}
			up, okUp := c.UpperBound()
			if okUp != tc.wantUp {
				t.Errorf("UpperBound() ok = %v, want %v", okUp, tc.wantUp)
			}
			if okUp && up != 5 {
				t.Errorf("UpperBound() = %v, want 5", up)
			}
		})
	}
}

func TestConstraint_Valid(t *testing.T) {
	x := mustVariable(t, "x", 0, 10, Continuous)
	vars := map[string]*Variable{"x": x}

	testCases := []struct {
		name  string
		sense ConstraintSense
		rhs   float64
		value float64
		eps   float64
		want  bool
	}{
		{name: "LessEqHolds", sense: LessEq, rhs: 5, value: 4, want: true},
		{name: "LessEqTight", sense: LessEq, rhs: 5, value: 5, want: true},
		{name: "LessEqViolated", sense: LessEq, rhs: 5, value: 6, want: false},
		{name: "LessEqWithinEps", sense: LessEq, rhs: 5, value: 5.05, eps: 0.1, want: true},
		{name: "GreaterEqHolds", sense: GreaterEq, rhs: 5, value: 6, want: true},
		{name: "GreaterEqViolated", sense: GreaterEq, rhs: 5, value: 4, want: false},
		{name: "GreaterEqWithinEps", sense: GreaterEq, rhs: 5, value: 4.95, eps: 0.1, want: true},
		{name: "EqualHolds", sense: Equal, rhs: 5, value: 5, want: true},
		{name: "EqualViolatedBelow", sense: Equal, rhs: 5, value: 4.5, want: false},
		{name: "EqualViolatedAbove", sense: Equal, rhs: 5, value: 5.5, want: false},
		{name: "EqualWithinEps", sense: Equal, rhs: 5, value: 5.05, eps: 0.1, want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			x.SetValue(tc.value)
			c := NewConstraint(x, tc.sense, tc.rhs)
			if got := c.Valid(vars, tc.eps); got != tc.want {
				t.Errorf("Valid(%v) = %v, want %v", tc.eps, got, tc.want)
			}
		})
	}
}

func TestConstraint_ValidUnassignedUsesDefaults(t *testing.T) {
	// An unassigned variable contributes its feasible default, so the
	// check does not fail outright on missing data.
	x := mustVariable(t, "x", 2, 10, Continuous)
	c := NewConstraint(x, GreaterEq, 2)

	if !c.Valid(map[string]*Variable{"x": x}, 0) {
		t.Errorf("Valid() = false for an unassigned variable defaulting to its lower bound")
	}
}

func TestConstraint_Value(t *testing.T) {
	x := mustVariable(t, "x", 0, 10, Continuous)
	y := mustVariable(t, "y", 0, 10, Continuous)
	e := NewLinearExpr().AddTerm(x, 2).Add(y).AddConstant(1)
	c := NewConstraint(e, LessEq, 10)
	vars := map[string]*Variable{"x": x, "y": y}

	if _, ok := c.Value(vars); ok {
		t.Errorf("Value() with unassigned variables returned a value")
	}

	x.SetValue(3)
	y.SetValue(2)
	got, ok := c.Value(vars)
	if !ok {
		t.Fatalf("Value() returned no value for a full assignment")
	}
	if want := 2.0*3 + 2 + 1; got != want {
		t.Errorf("Value() = %v, want %v", got, want)
	}
	if got := c.ValueOrDefault(vars); got != 9 {
		t.Errorf("ValueOrDefault() = %v, want 9", got)
	}
}

func TestConstraint_ChangeRHS(t *testing.T) {
	x := mustVariable(t, "x", 0, 10, Continuous)
	x.SetValue(7)
	c := NewConstraint(x, LessEq, 5)
	vars := map[string]*Variable{"x": x}

	if c.Valid(vars, 0) {
		t.Fatalf("Valid() = true before relaxing the right-hand side")
	}
	c.ChangeRHS(8)
	if got := c.RHS(); got != 8 {
		t.Errorf("RHS() = %v, want 8", got)
	}
	if !c.Valid(vars, 0) {
		t.Errorf("Valid() = false after relaxing the right-hand side")
	}
}

func TestConstraint_CopiesItsExpression(t *testing.T) {
	x := mustVariable(t, "x", 0, 10, Continuous)
	e := NewLinearExpr().AddTerm(x, 2)
	c := NewConstraint(e, LessEq, 10)

	e.AddTerm(x, 5)

	if got := c.Expr().Coefficient("x"); got != 2 {
		t.Errorf("constraint coefficient = %v after mutating the source expression, want 2", got)
	}
}

func TestConstraint_WithName(t *testing.T) {
	x := mustVariable(t, "x", 0, 10, Continuous)
	c := NewConstraint(x, LessEq, 10).WithName("capacity")

	if got, want := c.Name(), "capacity"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestConstraint_DualAndSlack(t *testing.T) {
	x := mustVariable(t, "x", 0, 10, Continuous)
	c := NewConstraint(x, LessEq, 10)

	if _, ok := c.DualValue(); ok {
		t.Errorf("DualValue() ok = true before any solve")
	}
	if _, ok := c.Slack(); ok {
		t.Errorf("Slack() ok = true before any solve")
	}

	c.SetDualValue(0.5)
	c.SetSlack(3)
	if pi, ok := c.DualValue(); !ok || pi != 0.5 {
		t.Errorf("DualValue() = (%v, %v), want (0.5, true)", pi, ok)
	}
	if s, ok := c.Slack(); !ok || s != 3 {
		t.Errorf("Slack() = (%v, %v), want (3, true)", s, ok)
	}
}

func TestConstraint_String(t *testing.T) {
	x := mustVariable(t, "x", 0, 10, Continuous)
	y := mustVariable(t, "y", 0, 10, Continuous)

	testCases := []struct {
		name string
		c    *Constraint
		want string
	}{
		{
			name: "LessEq",
			c:    NewConstraint(NewLinearExpr().Add(x).AddTerm(y, 2), LessEq, 10),
			want: "x + 2*y <= 10",
		},
		{
			name: "GreaterEq",
			c:    NewConstraint(x, GreaterEq, 3),
			want: "x >= 3",
		},
		{
			name: "Equal",
			c:    NewConstraint(NewLinearExpr().Add(x).Sub(y), Equal, 0),
			want: "x - y = 0",
		},
		{
			name: "ConstantFoldsIntoRHS",
			c:    NewConstraint(NewLinearExpr().Add(x).Add(y).AddConstant(2), LessEq, 10),
			want: "x + y <= 8",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
