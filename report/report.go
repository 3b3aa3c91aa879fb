// Package report turns a solved problem into a post-hoc sensitivity
// commentary: which constraints bind, how much slack the others carry, and
// which strategic recommendations apply.
package report

import (
	"math"

	"github.com/alphamfg/prodplan/lp"
)

// DefaultTolerance is the slack magnitude below which a constraint counts as
// binding.
const DefaultTolerance = 1e-6

// ConstraintStatus is the post-solve classification of one constraint.
type ConstraintStatus struct {
	Name    string
	LHS     float64 // constraint activity at the solution
	RHS     float64
	Slack   float64
	Binding bool
}

// Analysis holds the sensitivity analysis of a solution against its problem.
type Analysis struct {
	Problem  *lp.Problem
	Solution *lp.Solution

	// Constraints are classified in declaration order. Empty unless the
	// solution is optimal.
	Constraints []ConstraintStatus

	// Binding lists the names of binding constraints, in declaration order.
	Binding []string
}

// Analyze recomputes each constraint's activity at the solved point and
// classifies it as binding (|slack| < tol) or slack. For a non-optimal
// solution no values exist to analyze and only the status is carried.
func Analyze(p *lp.Problem, sol *lp.Solution, tol float64) *Analysis {
	a := &Analysis{Problem: p, Solution: sol}
	if !sol.IsOptimal() {
		return a
	}
	for _, c := range p.Constraints() {
		lhs := c.Activity(sol.Values)
		slack := c.Slack(sol.Values)
		binding := math.Abs(slack) < tol
		a.Constraints = append(a.Constraints, ConstraintStatus{
			Name:    c.Name,
			LHS:     lhs,
			RHS:     c.RHS,
			Slack:   slack,
			Binding: binding,
		})
		if binding {
			a.Binding = append(a.Binding, c.Name)
		}
	}
	return a
}
