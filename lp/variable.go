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
	"strconv"
)

// Variable is a named scalar unknown with bounds and a category. Missing
// bounds are represented as math.Inf(-1) and math.Inf(1).
//
// The value and reduced cost fields start empty and are normally written
// by a Solver after the problem is handed off. A Variable's identity
// within a Problem is its name; expressions reference variables by name
// and resolve them through the problem's registry at evaluation time.
type Variable struct {
	name     string
	low, up  float64
	cat      Category
	origLow  float64
	origUp   float64
	value    float64
	hasValue bool
	dj       float64
	hasDj    bool
}

// NewVariable creates a variable with the given bounds and category.
// Use math.Inf(-1) and math.Inf(1) for missing bounds.
//
// A Binary category forces the bounds to [0, 1] and stores the variable
// as an Integer with that bound pair; the bounds requested by the caller
// are still recorded and can be retrieved with OriginalBounds.
//
// Returns ErrInvalidBounds if low > up.
func NewVariable(name string, low, up float64, cat Category) (*Variable, error) {
	if low > up {
		return nil, fmt.Errorf("variable %s: bounds [%v, %v]: %w", name, low, up, ErrInvalidBounds)
	}
	v := &Variable{
		name:    name,
		low:     low,
		up:      up,
		cat:     cat,
		origLow: low,
		origUp:  up,
	}
	if cat == Binary {
		v.low, v.up = 0, 1
		v.cat = Integer
	}
	return v, nil
}

// NewContinuousVariable creates a continuous variable with the given bounds.
func NewContinuousVariable(name string, low, up float64) (*Variable, error) {
	return NewVariable(name, low, up, Continuous)
}

// NewIntegerVariable creates an integer variable with the given bounds.
func NewIntegerVariable(name string, low, up float64) (*Variable, error) {
	return NewVariable(name, low, up, Integer)
}

// NewBinaryVariable creates an integer variable with bounds fixed to [0, 1].
func NewBinaryVariable(name string) *Variable {
	v, _ := NewVariable(name, 0, 1, Binary)
	return v
}

// Name returns the identifier of the variable.
func (v *Variable) Name() string { return v.name }

// Category returns the stored category of the variable. Note that Binary
// variables are stored as Integer with [0, 1] bounds.
func (v *Variable) Category() Category { return v.cat }

// LowerBound returns the lower bound, math.Inf(-1) if the variable is
// unbounded below.
func (v *Variable) LowerBound() float64 { return v.low }

// UpperBound returns the upper bound, math.Inf(1) if the variable is
// unbounded above.
func (v *Variable) UpperBound() float64 { return v.up }

// OriginalBounds returns the bounds requested at construction, before any
// binary coercion or later SetBounds/FixValue calls.
func (v *Variable) OriginalBounds() (low, up float64) {
	return v.origLow, v.origUp
}

// SetBounds overwrites both bounds. Returns ErrInvalidBounds if low > up.
func (v *Variable) SetBounds(low, up float64) error {
	if low > up {
		return fmt.Errorf("variable %s: bounds [%v, %v]: %w", v.name, low, up, ErrInvalidBounds)
	}
	v.low, v.up = low, up
	return nil
}

// Positive sets the lower bound to 0 and clears the upper bound.
func (v *Variable) Positive() {
	v.low, v.up = 0, math.Inf(1)
}

// Value returns the assigned value, false if no value has been assigned.
func (v *Variable) Value() (float64, bool) {
	return v.value, v.hasValue
}

// SetValue overwrites the assigned value unconditionally.
func (v *Variable) SetValue(val float64) {
	v.value = val
	v.hasValue = true
}

// ClearValue removes the assigned value.
func (v *Variable) ClearValue() {
	v.value = 0
	v.hasValue = false
}

// SetInitialValue assigns a warm-start value. With check set, it returns
// ErrValueOutOfBounds when val lies outside the bounds; without check an
// out-of-bounds value is silently ignored.
func (v *Variable) SetInitialValue(val float64, check bool) error {
	if val < v.low || val > v.up {
		if check {
			return fmt.Errorf("variable %s: initial value %v with bounds [%v, %v]: %w",
				v.name, val, v.low, v.up, ErrValueOutOfBounds)
		}
		return nil
	}
	v.SetValue(val)
	return nil
}

// FixValue pins both bounds to the assigned value, if there is one.
func (v *Variable) FixValue() {
	if v.hasValue {
		v.low, v.up = v.value, v.value
	}
}

// IsFixed reports whether the bounds pin the variable to a single value.
func (v *Variable) IsFixed() bool { return v.IsConstant() }

// UnfixValue restores the bounds requested at construction.
func (v *Variable) UnfixValue() {
	v.low, v.up = v.origLow, v.origUp
}

// Round repairs a near-feasible value in place: a value within eps above
// the upper bound snaps to the upper bound, a value within eps below the
// lower bound snaps to the lower bound, and afterwards an Integer
// variable within epsInt of an integer is rounded to it. Does nothing
// when no value is assigned.
func (v *Variable) Round(epsInt, eps float64) {
	if !v.hasValue {
		return
	}
	if v.value > v.up && v.value <= v.up+eps {
		v.value = v.up
	} else if v.value < v.low && v.value >= v.low-eps {
		v.value = v.low
	}
	if v.cat == Integer && math.Abs(math.Round(v.value)-v.value) <= epsInt {
		v.value = math.Round(v.value)
	}
}

// RoundedValue returns the integer-rounded value when the category is
// Integer and the value lies within eps of an integer; otherwise it
// returns the value unchanged. The second return is false when no value
// is assigned.
func (v *Variable) RoundedValue(eps float64) (float64, bool) {
	if v.cat == Integer && v.hasValue && math.Abs(v.value-math.Round(v.value)) <= eps {
		return math.Round(v.value), true
	}
	return v.value, v.hasValue
}

// ValueOrDefault returns the assigned value, or a deterministic default
// when none is assigned: 0 if 0 lies within the bounds, otherwise the
// bound closest to zero.
func (v *Variable) ValueOrDefault() float64 {
	if v.hasValue {
		return v.value
	}
	hasLow := !math.IsInf(v.low, -1)
	hasUp := !math.IsInf(v.up, 1)
	switch {
	case hasLow && hasUp:
		if v.low <= 0 && 0 <= v.up {
			return 0
		}
		if v.low >= 0 {
			return v.low
		}
		return v.up
	case hasLow:
		if v.low <= 0 {
			return 0
		}
		return v.low
	case hasUp:
		if v.up >= 0 {
			return 0
		}
		return v.up
	default:
		return 0
	}
}

// Valid reports whether the assigned value respects the bounds and, for
// Integer variables, integrality, all within tolerance eps. An unassigned
// variable is invalid.
func (v *Variable) Valid(eps float64) bool {
	if !v.hasValue {
		return false
	}
	if v.value > v.up+eps {
		return false
	}
	if v.value < v.low-eps {
		return false
	}
	if v.cat == Integer && math.Abs(math.Round(v.value)-v.value) > eps {
		return false
	}
	return true
}

// InfeasibilityGap returns the signed magnitude of the worst violation of
// the assigned value: the excess over the upper bound, else the deficit
// under the lower bound, else, when mip is set and the category is
// Integer, the distance to the nearest integer. Bound violations take
// precedence over integrality. Returns 0 when unassigned or feasible.
func (v *Variable) InfeasibilityGap(mip bool) float64 {
	if !v.hasValue {
		return 0
	}
	if v.value > v.up {
		return v.value - v.up
	}
	if v.value < v.low {
		return v.value - v.low
	}
	if mip && v.cat == Integer && math.Round(v.value) != v.value {
		return math.Round(v.value) - v.value
	}
	return 0
}

// IsBinary reports whether the variable is an integer with [0, 1] bounds.
func (v *Variable) IsBinary() bool {
	return v.cat == Integer && v.low == 0 && v.up == 1
}

// IsInteger reports whether the variable is integral.
func (v *Variable) IsInteger() bool { return v.cat == Integer }

// IsFree reports whether the variable has no bounds.
func (v *Variable) IsFree() bool {
	return math.IsInf(v.low, -1) && math.IsInf(v.up, 1)
}

// IsConstant reports whether the bounds pin the variable to a single value.
func (v *Variable) IsConstant() bool {
	return !math.IsInf(v.low, -1) && v.low == v.up
}

// IsPositive reports whether the variable is bounded below by 0 and
// unbounded above.
func (v *Variable) IsPositive() bool {
	return v.low == 0 && math.IsInf(v.up, 1)
}

// ReducedCost returns the reduced cost written by the solver, false if
// none has been assigned.
func (v *Variable) ReducedCost() (float64, bool) {
	return v.dj, v.hasDj
}

// SetReducedCost overwrites the reduced cost. Normally called by a Solver.
func (v *Variable) SetReducedCost(dj float64) {
	v.dj = dj
	v.hasDj = true
}

func (v *Variable) String() string { return v.name }

// BoundsString renders the variable with its bounds, e.g. "0 <= x <= 10",
// "x free" or "x = 3".
func (v *Variable) BoundsString() string {
	if v.IsFree() {
		return v.name + " free"
	}
	if v.IsConstant() {
		return v.name + " = " + formatFloat(v.low)
	}
	var s string
	switch {
	case math.IsInf(v.low, -1):
		s = "-inf <= "
	case v.low == 0 && v.cat == Continuous:
		s = ""
	default:
		s = formatFloat(v.low) + " <= "
	}
	s += v.name
	if !math.IsInf(v.up, 1) {
		s += " <= " + formatFloat(v.up)
	}
	return s
}

// addToLinearExpr makes Variable a LinearArgument with coefficient 1.
func (v *Variable) addToLinearExpr(e *LinearExpr, coeff float64) {
	e.addTerm(v.name, coeff)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
