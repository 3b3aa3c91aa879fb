package lp

import "math"

// Solution contains the result of solving a Problem.
type Solution struct {
	// Status indicates the outcome of the solve. Variable values and the
	// objective are only meaningful when Status is StatusOptimal.
	Status Status

	// Objective is the objective value at the solution.
	Objective float64

	// Values maps variable names to their assigned values.
	Values map[string]float64

	// Detail carries the backend's own status text, useful when Status is
	// StatusUndefined.
	Detail string
}

// IsOptimal returns true if a proven optimal solution was found.
func (s *Solution) IsOptimal() bool {
	return s.Status == StatusOptimal
}

// Value returns the solution value of the named variable, or 0 if absent.
func (s *Solution) Value(name string) float64 {
	return s.Values[name]
}

// Verify checks the solution against the problem it came from: every
// constraint must be satisfied within tol, every variable must lie within its
// bounds within tol, and integer variables must be integral within tol.
// Returns nil for a non-optimal solution, which carries no values to check.
func (s *Solution) Verify(p *Problem, tol float64) error {
	if !s.IsOptimal() {
		return nil
	}
	for _, v := range p.Variables() {
		val := s.Values[v.Name]
		if val < v.Lower-tol || val > v.Upper+tol {
			return errf("Verify", "variable %q = %g outside bounds [%g, %g]",
				v.Name, val, v.Lower, v.Upper)
		}
		if v.Integer && math.Abs(val-math.Round(val)) > tol {
			return errf("Verify", "variable %q = %g is not integral", v.Name, val)
		}
	}
	for _, c := range p.Constraints() {
		if slack := c.Slack(s.Values); slack < -tol {
			return errf("Verify", "constraint %q violated: slack %g", c.Name, slack)
		}
	}
	obj := p.Objective().Eval(s.Values)
	if math.Abs(obj-s.Objective) > tol*math.Max(1, math.Abs(obj)) {
		return errf("Verify", "objective %g does not match expression value %g",
			s.Objective, obj)
	}
	return nil
}
