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
	"sort"
	"strings"

	log "github.com/golang/glog"
)

// LinearArgument provides an interface for Variable and LinearExpr, so
// that both can be used interchangeably when composing expressions and
// constraints.
type LinearArgument interface {
	addToLinearExpr(e *LinearExpr, coeff float64)
}

// LinearExpr is a sparse linear combination of variables plus a constant:
// coefficients are keyed by variable name, so equality of terms is
// deterministic across copies. A coefficient of exactly 0 may remain
// present after cancellation; operations tolerate both presence and
// absence.
//
// The builder methods mutate the receiver and return it for chaining.
// Use Copy (or the Sum package function) to combine without mutating.
type LinearExpr struct {
	terms    map[string]float64
	constant float64
}

// NewLinearExpr creates a new empty LinearExpr.
func NewLinearExpr() *LinearExpr {
	return &LinearExpr{terms: make(map[string]float64)}
}

// NewConstant creates a LinearExpr holding the numerical constant c.
func NewConstant(c float64) *LinearExpr {
	e := NewLinearExpr()
	e.constant = c
	return e
}

// Copy returns a deep copy of the expression.
func (e *LinearExpr) Copy() *LinearExpr {
	c := NewConstant(e.constant)
	for name, coeff := range e.terms {
		c.terms[name] = coeff
	}
	return c
}

// addTerm accumulates coeff into the existing coefficient for name.
func (e *LinearExpr) addTerm(name string, coeff float64) {
	e.terms[name] += coeff
}

// Add adds the linear argument to the expression and returns the receiver.
func (e *LinearExpr) Add(la LinearArgument) *LinearExpr {
	return e.AddTerm(la, 1)
}

// Sub subtracts the linear argument from the expression and returns the
// receiver.
func (e *LinearExpr) Sub(la LinearArgument) *LinearExpr {
	return e.AddTerm(la, -1)
}

// AddConstant adds c to the constant term and returns the receiver.
func (e *LinearExpr) AddConstant(c float64) *LinearExpr {
	e.constant += c
	return e
}

// AddTerm merges the linear argument scaled by coeff into the receiver,
// accumulating per key, and returns the receiver. With coeff +1/-1 this
// is the signed in-place addition the arithmetic helpers are built on.
func (e *LinearExpr) AddTerm(la LinearArgument, coeff float64) *LinearExpr {
	la.addToLinearExpr(e, coeff)
	return e
}

// AddSum adds all linear arguments to the expression and returns the
// receiver.
func (e *LinearExpr) AddSum(las ...LinearArgument) *LinearExpr {
	for _, la := range las {
		e.Add(la)
	}
	return e
}

// AddWeightedSum adds the linear arguments with the corresponding
// coefficients and returns the receiver.
func (e *LinearExpr) AddWeightedSum(las []LinearArgument, coeffs []float64) *LinearExpr {
	if len(coeffs) != len(las) {
		log.Fatalf("las and coeffs must be the same length: %v != %v", len(las), len(coeffs))
	}
	for i, la := range las {
		e.AddTerm(la, coeffs[i])
	}
	return e
}

// addToLinearExpr merges the expression scaled by coeff into e.
func (e *LinearExpr) addToLinearExpr(dst *LinearExpr, coeff float64) {
	dst.constant += e.constant * coeff
	for name, x := range e.terms {
		dst.addTerm(name, x*coeff)
	}
}

// Negated returns a new expression with the constant and every
// coefficient negated.
func (e *LinearExpr) Negated() *LinearExpr {
	n := NewConstant(-e.constant)
	for name, coeff := range e.terms {
		n.terms[name] = -coeff
	}
	return n
}

// Scale multiplies the constant and every coefficient by k in place and
// returns the receiver.
func (e *LinearExpr) Scale(k float64) *LinearExpr {
	e.constant *= k
	for name := range e.terms {
		e.terms[name] *= k
	}
	return e
}

// Div divides the constant and every coefficient by k in place. Returns
// ErrDivisionByZero when k is 0, leaving the expression untouched.
func (e *LinearExpr) Div(k float64) (*LinearExpr, error) {
	if k == 0 {
		return nil, fmt.Errorf("dividing expression %s: %w", e, ErrDivisionByZero)
	}
	return e.Scale(1 / k), nil
}

// Sum folds the linear arguments into a fresh expression. Sum() of
// nothing is the zero expression.
func Sum(las ...LinearArgument) *LinearExpr {
	return NewLinearExpr().AddSum(las...)
}

// WeightedSum folds the linear arguments with the corresponding
// coefficients into a fresh expression.
func WeightedSum(las []LinearArgument, coeffs []float64) *LinearExpr {
	return NewLinearExpr().AddWeightedSum(las, coeffs)
}

// Value evaluates the expression against the variables in vars. It
// returns false when any referenced identifier is missing from vars or
// has no assigned value; missing data propagates rather than defaulting.
func (e *LinearExpr) Value(vars map[string]*Variable) (float64, bool) {
	s := e.constant
	for name, coeff := range e.terms {
		v, ok := vars[name]
		if !ok {
			return 0, false
		}
		val, ok := v.Value()
		if !ok {
			return 0, false
		}
		s += val * coeff
	}
	return s, true
}

// ValueOrDefault evaluates the expression against the variables in vars.
// Identifiers missing from vars contribute 0; registered variables with
// no assigned value contribute their ValueOrDefault.
func (e *LinearExpr) ValueOrDefault(vars map[string]*Variable) float64 {
	s := e.constant
	for name, coeff := range e.terms {
		if v, ok := vars[name]; ok {
			s += v.ValueOrDefault() * coeff
		}
	}
	return s
}

// IsAtomic reports whether the expression is exactly one term with
// coefficient 1 and constant 0.
func (e *LinearExpr) IsAtomic() bool {
	if len(e.terms) != 1 || e.constant != 0 {
		return false
	}
	for _, coeff := range e.terms {
		if coeff != 1 {
			return false
		}
	}
	return true
}

// IsNumericalConstant reports whether the expression has no terms.
func (e *LinearExpr) IsNumericalConstant() bool {
	return len(e.terms) == 0
}

// Atom returns the identifier of the expression's first term in name
// order, or "" when there is none. Only meaningful for atomic
// expressions.
func (e *LinearExpr) Atom() string {
	names := e.sortedNames()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// Len returns the number of stored terms, zero coefficients included.
func (e *LinearExpr) Len() int { return len(e.terms) }

// Constant returns the constant term.
func (e *LinearExpr) Constant() float64 { return e.constant }

// Coefficient returns the stored coefficient for the named variable,
// 0 when absent.
func (e *LinearExpr) Coefficient(name string) float64 {
	return e.terms[name]
}

// Terms returns a copy of the coefficient mapping.
func (e *LinearExpr) Terms() map[string]float64 {
	t := make(map[string]float64, len(e.terms))
	for name, coeff := range e.terms {
		t[name] = coeff
	}
	return t
}

func (e *LinearExpr) sortedNames() []string {
	names := make([]string, 0, len(e.terms))
	for name := range e.terms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// termsString renders the terms without the constant, "0" when empty.
func (e *LinearExpr) termsString() string {
	var b strings.Builder
	for _, name := range e.sortedNames() {
		coeff := e.terms[name]
		if coeff < 0 {
			if b.Len() != 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString("-")
			}
			coeff = -coeff
		} else if b.Len() != 0 {
			b.WriteString(" + ")
		}
		if coeff == 1 {
			b.WriteString(name)
		} else {
			b.WriteString(formatFloat(coeff))
			b.WriteString("*")
			b.WriteString(name)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// String renders the expression deterministically with terms sorted by
// variable name, e.g. "2*x + 3*y + 4".
func (e *LinearExpr) String() string {
	if len(e.terms) == 0 {
		return formatFloat(e.constant)
	}
	s := e.termsString()
	if e.constant < 0 {
		s += " - " + formatFloat(-e.constant)
	} else if e.constant > 0 {
		s += " + " + formatFloat(e.constant)
	}
	return s
}
