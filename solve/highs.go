// Package solve provides lp.Solver implementations backed by external
// optimization solvers. The only backend is HiGHS, via
// github.com/bartolsthoorn/gohighs.
package solve

import (
	"context"
	"math"
	"time"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/alphamfg/prodplan/logger"
	"github.com/alphamfg/prodplan/lp"
)

// integralityTol is how far from an integer a HiGHS-reported value for an
// integer variable may sit before we refuse to snap it.
const integralityTol = 1e-6

// HiGHS solves problems with the HiGHS mixed-integer solver. The zero value
// is ready to use: solver output off, no time limit.
type HiGHS struct {
	// TimeLimit caps the solve duration. Zero means no limit. A context
	// deadline, when present and tighter, takes precedence.
	TimeLimit time.Duration

	// Output enables the solver's own log output.
	Output bool
}

// Solve implements lp.Solver. Infeasible, unbounded and inconclusive models
// are reported through Solution.Status, not as errors.
func (h HiGHS) Solve(ctx context.Context, p *lp.Problem) (*lp.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vars := p.Variables()
	model := highs.Model{
		Maximize: p.Direction() == lp.Maximize,
		ColCosts: make([]float64, len(vars)),
		ColLower: make([]float64, len(vars)),
		ColUpper: make([]float64, len(vars)),
		VarTypes: make([]highs.VariableType, len(vars)),
	}

	objective := p.Objective()
	for i, v := range vars {
		model.ColCosts[i] = objective[v.Name]
		model.ColLower[i] = v.Lower
		model.ColUpper[i] = v.Upper
		if v.Integer {
			model.VarTypes[i] = highs.Integer
		}
	}

	for _, c := range p.Constraints() {
		coeffs := make([]float64, len(vars))
		for i, v := range vars {
			coeffs[i] = c.Expr[v.Name]
		}
		switch c.Sense {
		case lp.GreaterEq:
			model.AddGeRow(coeffs, c.RHS)
		case lp.Eq:
			model.AddEqRow(coeffs, c.RHS)
		default:
			model.AddLeRow(coeffs, c.RHS)
		}
	}

	opts := []highs.SolveOption{highs.WithOutput(h.Output)}
	if limit := h.timeLimit(ctx); limit > 0 {
		opts = append(opts, highs.WithTimeLimit(limit.Seconds()))
	}

	log := logger.Logger()
	start := time.Now()
	raw, err := model.Solve(opts...)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("problem", p.Name()).
		Int("vars", p.NumVars()).
		Int("constraints", p.NumConstraints()).
		Str("status", raw.Status.String()).
		Dur("took", time.Since(start)).
		Msg("highs solve")

	sol := &lp.Solution{
		Status: statusFrom(raw.Status),
		Detail: raw.Status.String(),
	}
	if sol.Status != lp.StatusOptimal {
		return sol, nil
	}

	sol.Objective = raw.Objective
	sol.Values = make(map[string]float64, len(vars))
	for i, v := range vars {
		val := raw.Value(i)
		if v.Integer {
			if rounded := math.Round(val); math.Abs(val-rounded) <= integralityTol {
				val = rounded
			}
		}
		sol.Values[v.Name] = val
	}
	return sol, nil
}

func (h HiGHS) timeLimit(ctx context.Context) time.Duration {
	limit := h.TimeLimit
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); limit == 0 || remaining < limit {
			limit = remaining
		}
	}
	return limit
}

// statusFrom collapses the HiGHS model status onto the five solve outcomes.
// UnboundedOrInfeasible is inconclusive and maps to Undefined, as do limit
// and error statuses.
func statusFrom(s highs.ModelStatus) lp.Status {
	switch s {
	case highs.ModelStatusOptimal:
		return lp.StatusOptimal
	case highs.ModelStatusInfeasible:
		return lp.StatusInfeasible
	case highs.ModelStatusUnbounded:
		return lp.StatusUnbounded
	case highs.ModelStatusNotSet:
		return lp.StatusNotSolved
	default:
		return lp.StatusUndefined
	}
}
