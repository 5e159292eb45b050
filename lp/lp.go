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

// Package lp offers a user-friendly API to build linear and mixed-integer
// programming models.
//
// The `Problem` struct aggregates an objective, named constraints and the
// decision variables they reference. The `Variable`, `LinearExpr` and
// `Constraint` structs provide helper methods for composing linear
// expressions and attaching relational constraints to the problem.
//
// The package only represents a problem and evaluates candidate
// assignments against it; finding a solution is delegated to an external
// back end implementing the `Solver` interface, which writes variable
// values, reduced costs, dual prices, slacks and a terminal status back
// into the model.
package lp

import (
	"errors"
)

// Errors reported by construction-time and scaling operations. All query
// operations are pure and never fail on a well-formed model.
var (
	// ErrInvalidBounds holds the error when a lower bound greater than the
	// upper bound is supplied to a variable.
	ErrInvalidBounds = errors.New("lower bound is greater than upper bound")
	// ErrDivisionByZero holds the error when an expression is divided by zero.
	ErrDivisionByZero = errors.New("division of an expression by zero")
	// ErrValueOutOfBounds holds the error when an initial value lies outside
	// the variable's bounds.
	ErrValueOutOfBounds = errors.New("value lies outside the variable bounds")
	// ErrUnknownVariable holds the error when a solver writes back a value
	// for a variable identifier that was never registered.
	ErrUnknownVariable = errors.New("variable is not registered in the problem")
	// ErrUnknownConstraint holds the error when a solver writes back a dual
	// or slack for a constraint name that was never registered.
	ErrUnknownConstraint = errors.New("constraint is not registered in the problem")
	// ErrNilSolver holds the error when Problem.Solve is called without a
	// back end.
	ErrNilSolver = errors.New("no solver provided")
)

// Category is the numeric category of a decision variable.
type Category int

const (
	// Continuous variables may take any value between their bounds.
	Continuous Category = iota
	// Integer variables are restricted to integral values.
	Integer
	// Binary variables are integer variables with bounds fixed to [0, 1].
	// The category is normalized to Integer at construction; IsBinary
	// recognizes the bound pattern.
	Binary
)

func (c Category) String() string {
	switch c {
	case Continuous:
		return "Continuous"
	case Integer:
		return "Integer"
	case Binary:
		return "Binary"
	}
	return "Unknown"
}

// Sense is the optimization direction of a problem.
type Sense int

const (
	Minimize Sense = 1
	Maximize Sense = -1
)

func (s Sense) String() string {
	if s == Maximize {
		return "Maximize"
	}
	return "Minimize"
}

// ConstraintSense is the comparison operator of a constraint.
type ConstraintSense int

const (
	LessEq    ConstraintSense = -1
	Equal     ConstraintSense = 0
	GreaterEq ConstraintSense = 1
)

func (s ConstraintSense) String() string {
	switch s {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	}
	return "="
}

// Status is the terminal state of a problem as reported by a solver.
type Status int

const (
	StatusNotSolved  Status = 0
	StatusOptimal    Status = 1
	StatusInfeasible Status = -1
	StatusUnbounded  Status = -2
	StatusUndefined  Status = -3
)

func (s Status) String() string {
	switch s {
	case StatusNotSolved:
		return "Not Solved"
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusUndefined:
		return "Undefined"
	}
	return "Unknown"
}

// SolutionStatus qualifies the solution attached to a terminal Status.
// Solvers that distinguish "proved optimal" from "stopped with an integer
// feasible incumbent" report the difference here.
type SolutionStatus int

const (
	SolutionNoSolutionFound SolutionStatus = 0
	SolutionOptimal         SolutionStatus = 1
	SolutionIntegerFeasible SolutionStatus = 2
	SolutionInfeasible      SolutionStatus = -1
	SolutionUnbounded       SolutionStatus = -2
)

func (s SolutionStatus) String() string {
	switch s {
	case SolutionNoSolutionFound:
		return "No Solution Found"
	case SolutionOptimal:
		return "Optimal Solution Found"
	case SolutionIntegerFeasible:
		return "Solution Found"
	case SolutionInfeasible:
		return "No Solution Exists"
	case SolutionUnbounded:
		return "Solution is Unbounded"
	}
	return "Unknown"
}

// solutionStatus maps a terminal status to the solution status implied
// when the solver does not report one explicitly.
func (s Status) solutionStatus() SolutionStatus {
	switch s {
	case StatusOptimal:
		return SolutionOptimal
	case StatusInfeasible:
		return SolutionInfeasible
	case StatusUnbounded:
		return SolutionUnbounded
	default:
		return SolutionNoSolutionFound
	}
}
