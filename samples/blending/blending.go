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

// The blending command builds a cat-food blending model, checks a
// hand-picked candidate blend against it and reports the violation gap.
package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/lpkit/lpkit/lp"
)

func blending() error {
	chicken, err := lp.NewContinuousVariable("chicken", 0, 100)
	if err != nil {
		return fmt.Errorf("failed to create the chicken variable: %w", err)
	}
	beef, err := lp.NewContinuousVariable("beef", 0, 100)
	if err != nil {
		return fmt.Errorf("failed to create the beef variable: %w", err)
	}

	p := lp.NewProblem("blending", lp.Minimize)
	p.AddVariables(chicken, beef)
	p.SetObjective(lp.NewLinearExpr().AddTerm(chicken, 0.013).AddTerm(beef, 0.008))

	p.AddEquality("weight", lp.Sum(chicken, beef), 100)
	p.AddGreaterOrEqual("protein", lp.NewLinearExpr().AddTerm(chicken, 0.100).AddTerm(beef, 0.200), 8)
	p.AddGreaterOrEqual("fat", lp.NewLinearExpr().AddTerm(chicken, 0.080).AddTerm(beef, 0.100), 6)
	p.AddLessOrEqual("fibre", lp.NewLinearExpr().AddTerm(chicken, 0.001).AddTerm(beef, 0.005), 2)
	p.AddLessOrEqual("salt", lp.NewLinearExpr().AddTerm(chicken, 0.002).AddTerm(beef, 0.005), 0.4)

	fmt.Print(p)

	// Candidate blend: 34 g chicken, 66 g beef per 100 g can.
	if err := p.AssignValues(map[string]float64{"chicken": 34, "beef": 66}); err != nil {
		return fmt.Errorf("failed to assign the candidate blend: %w", err)
	}

	fmt.Printf("feasible: %v\n", p.Valid(1e-6))
	fmt.Printf("violation gap: %g\n", p.InfeasibilityGap(p.IsMIP()))
	if cost, ok := p.Objective().Value(map[string]*lp.Variable{"chicken": chicken, "beef": beef}); ok {
		fmt.Printf("cost per can: %.3f\n", cost)
	}

	return nil
}

func main() {
	if err := blending(); err != nil {
		glog.Exitf("blending returned with error: %v", err)
	}
}
