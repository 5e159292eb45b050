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

// The knapsack command builds a 0-1 knapsack model and solves it with a
// small exhaustive back end implementing the lp.Solver interface.
package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/lpkit/lpkit/lp"
)

// bruteForceSolver enumerates every 0-1 assignment of the problem's
// binary variables and keeps the feasible one with the best objective.
// It is only suitable for toy models but exercises the full solver
// contract: writing values back and reporting a terminal status.
type bruteForceSolver struct{}

func (bruteForceSolver) Solve(p *lp.Problem) (lp.Status, error) {
	vars := p.Variables()
	for _, v := range vars {
		if !v.IsBinary() {
			return lp.StatusNotSolved, fmt.Errorf("variable %s is not binary", v.Name())
		}
	}

	registry := make(map[string]*lp.Variable, len(vars))
	for _, v := range vars {
		registry[v.Name()] = v
	}

	best := make(map[string]float64, len(vars))
	bestObj := 0.0
	found := false
	for mask := 0; mask < 1<<len(vars); mask++ {
		for i, v := range vars {
			v.SetValue(float64(mask >> i & 1))
		}
		if !p.Valid(0) {
			continue
		}
		obj, ok := p.Objective().Value(registry)
		if !ok {
			continue
		}
		if !found || float64(p.Sense())*obj < float64(p.Sense())*bestObj {
			found = true
			bestObj = obj
			for _, v := range vars {
				best[v.Name()], _ = v.Value()
			}
		}
	}
	if !found {
		return lp.StatusInfeasible, nil
	}
	if err := p.AssignValues(best); err != nil {
		return lp.StatusNotSolved, err
	}
	return lp.StatusOptimal, nil
}

func knapsack() error {
	items := []struct {
		name   string
		weight float64
		value  float64
	}{
		{name: "map", weight: 9, value: 150},
		{name: "compass", weight: 13, value: 35},
		{name: "water", weight: 153, value: 200},
		{name: "sandwich", weight: 50, value: 160},
		{name: "glucose", weight: 15, value: 60},
		{name: "banana", weight: 27, value: 60},
	}

	p := lp.NewProblem("knapsack", lp.Maximize)
	objective := lp.NewLinearExpr()
	load := lp.NewLinearExpr()
	for _, item := range items {
		take := lp.NewBinaryVariable(item.name)
		p.AddVariable(take)
		objective.AddTerm(take, item.value)
		load.AddTerm(take, item.weight)
	}
	p.SetObjective(objective)
	p.AddLessOrEqual("capacity", load, 200)

	status, err := p.Solve(bruteForceSolver{})
	if err != nil {
		return fmt.Errorf("failed to solve the model: %w", err)
	}
	fmt.Printf("status: %s\n", status)
	if status != lp.StatusOptimal {
		return nil
	}

	for _, v := range p.Variables() {
		if val, ok := v.Value(); ok && val == 1 {
			fmt.Printf("take %s\n", v.Name())
		}
	}

	return nil
}

func main() {
	if err := knapsack(); err != nil {
		glog.Exitf("knapsack returned with error: %v", err)
	}
}
