// Package lp models small linear and mixed-integer programs.
//
// A Problem is assembled once from named variables, a linear objective and
// named linear constraints, then handed to a Solver. Solving never mutates
// the Problem; results come back as a separate Solution.
//
//	p := lp.New("plan", lp.Maximize)
//	p.AddIntVariable("x", 0, lp.Inf())
//	p.AddIntVariable("y", 0, lp.Inf())
//	p.SetObjective(lp.Term("x", 50).Add("y", 60))
//	p.AddConstraint("capacity", lp.Term("x", 2).Add("y", 3), lp.LessEq, 120)
//
//	sol, err := solver.Solve(ctx, p)
package lp

import (
	"context"
	"fmt"
	"math"
)

// Direction is the optimization direction of a Problem.
type Direction int

const (
	// Minimize minimizes the objective.
	Minimize Direction = iota
	// Maximize maximizes the objective.
	Maximize
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Minimize:
		return "Minimize"
	case Maximize:
		return "Maximize"
	default:
		return "Unknown"
	}
}

// Sense is the comparison operator of a Constraint.
type Sense int

const (
	// LessEq constrains the expression to be <= the right-hand side.
	LessEq Sense = iota
	// GreaterEq constrains the expression to be >= the right-hand side.
	GreaterEq
	// Eq constrains the expression to equal the right-hand side.
	Eq
)

// String returns the operator as written in a model listing.
func (s Sense) String() string {
	switch s {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Eq:
		return "="
	default:
		return "?"
	}
}

// Status is the outcome of a solve. The zero value is StatusNotSolved.
type Status int

const (
	// StatusNotSolved indicates the problem has not been solved yet.
	StatusNotSolved Status = iota
	// StatusOptimal indicates a proven optimal solution was found.
	StatusOptimal
	// StatusInfeasible indicates no assignment satisfies all constraints.
	StatusInfeasible
	// StatusUnbounded indicates the objective can be improved without limit.
	StatusUnbounded
	// StatusUndefined indicates the solver stopped without a conclusive answer.
	StatusUndefined
)

// String returns a human-readable representation of the status.
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
	default:
		return "Unknown"
	}
}

// Solver is the delegated optimization capability. Implementations return a
// Solution with a non-optimal Status for infeasible, unbounded or inconclusive
// models; an error is reserved for mechanical failure of the backend itself.
// Callers must check Solution.Status before trusting variable values.
type Solver interface {
	Solve(ctx context.Context, p *Problem) (*Solution, error)
}

// Inf returns positive infinity, suitable for unbounded variable bounds.
func Inf() float64 {
	return math.Inf(1)
}

// Error describes a failure in model construction or evaluation.
type Error struct {
	Op  string // operation that failed, e.g. "AddConstraint"
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lp: %s: %s", e.Op, e.Msg)
}

func errf(op, format string, args ...any) error {
	return &Error{Op: op, Msg: fmt.Sprintf(format, args...)}
}
