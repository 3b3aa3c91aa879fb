package lp

import (
	"fmt"
	"sort"
	"strings"
)

// LinearExpr is a linear combination of variables, stored as a mapping from
// variable name to coefficient. Used both in objectives and in constraints.
type LinearExpr map[string]float64

// Term returns a new expression with a single term.
func Term(name string, coeff float64) LinearExpr {
	return LinearExpr{name: coeff}
}

// Add accumulates coeff onto the coefficient of name and returns the
// expression for chaining. Adding to an existing term sums the coefficients.
func (e LinearExpr) Add(name string, coeff float64) LinearExpr {
	e[name] += coeff
	return e
}

// Eval evaluates the expression at the given point. Variables absent from
// values contribute zero.
func (e LinearExpr) Eval(values map[string]float64) float64 {
	var sum float64
	for name, coeff := range e {
		sum += coeff * values[name]
	}
	return sum
}

// Clone returns an independent copy of the expression.
func (e LinearExpr) Clone() LinearExpr {
	c := make(LinearExpr, len(e))
	for name, coeff := range e {
		c[name] = coeff
	}
	return c
}

// String renders the expression with terms in lexical variable order,
// e.g. "2 x_A + 3 x_B".
func (e LinearExpr) String() string {
	names := make([]string, 0, len(e))
	for name, coeff := range e {
		if coeff != 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		coeff := e[name]
		if i > 0 {
			if coeff < 0 {
				b.WriteString(" - ")
				coeff = -coeff
			} else {
				b.WriteString(" + ")
			}
		} else if coeff < 0 {
			b.WriteString("- ")
			coeff = -coeff
		}
		if coeff == 1 {
			b.WriteString(name)
		} else {
			fmt.Fprintf(&b, "%g %s", coeff, name)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
