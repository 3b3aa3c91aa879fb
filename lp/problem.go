package lp

import "math"

// Variable is a decision variable of a Problem.
type Variable struct {
	// Name identifies the variable in expressions and solutions.
	Name string

	// Lower and Upper are the variable bounds. Use Inf() for no upper bound.
	Lower float64
	Upper float64

	// Integer restricts the variable to integral values.
	Integer bool
}

// Constraint is a named linear constraint: Expr Sense RHS.
type Constraint struct {
	Name  string
	Expr  LinearExpr
	Sense Sense
	RHS   float64
}

// Activity evaluates the constraint's left-hand side at the given point.
func (c *Constraint) Activity(values map[string]float64) float64 {
	return c.Expr.Eval(values)
}

// Slack is the unused capacity of the constraint at the given point:
// RHS - LHS for <=, LHS - RHS for >=, and -|LHS - RHS| for equalities.
// A feasible point has non-negative slack.
func (c *Constraint) Slack(values map[string]float64) float64 {
	lhs := c.Expr.Eval(values)
	switch c.Sense {
	case GreaterEq:
		return lhs - c.RHS
	case Eq:
		return -math.Abs(lhs - c.RHS)
	default:
		return c.RHS - lhs
	}
}

// BindingAt reports whether the constraint is satisfied with (approximately)
// zero slack at the given point, i.e. the resource is fully consumed.
func (c *Constraint) BindingAt(values map[string]float64, tol float64) bool {
	return math.Abs(c.Slack(values)) < tol
}

// Problem is an immutable linear program under construction. Variables and
// constraints are kept in declaration order. Once handed to a Solver the
// problem is only ever read.
type Problem struct {
	name        string
	direction   Direction
	objective   LinearExpr
	vars        []Variable
	varIndex    map[string]int
	constraints []Constraint
	consIndex   map[string]int
}

// New returns an empty problem with the given name and optimization direction.
func New(name string, dir Direction) *Problem {
	return &Problem{
		name:      name,
		direction: dir,
		objective: LinearExpr{},
		varIndex:  make(map[string]int),
		consIndex: make(map[string]int),
	}
}

// Name returns the problem name.
func (p *Problem) Name() string { return p.name }

// Direction returns the optimization direction.
func (p *Problem) Direction() Direction { return p.direction }

// AddVariable adds a continuous variable with the given bounds.
// The name must be non-empty and unique within the problem.
func (p *Problem) AddVariable(name string, lower, upper float64) error {
	return p.addVariable(Variable{Name: name, Lower: lower, Upper: upper})
}

// AddIntVariable adds an integer variable with the given bounds.
func (p *Problem) AddIntVariable(name string, lower, upper float64) error {
	return p.addVariable(Variable{Name: name, Lower: lower, Upper: upper, Integer: true})
}

func (p *Problem) addVariable(v Variable) error {
	if v.Name == "" {
		return errf("AddVariable", "variable name must not be empty")
	}
	if _, ok := p.varIndex[v.Name]; ok {
		return errf("AddVariable", "variable %q already exists", v.Name)
	}
	p.varIndex[v.Name] = len(p.vars)
	p.vars = append(p.vars, v)
	return nil
}

// SetObjective replaces the objective expression. Every variable referenced
// must already be declared.
func (p *Problem) SetObjective(e LinearExpr) error {
	if err := p.checkVars("SetObjective", e); err != nil {
		return err
	}
	p.objective = e.Clone()
	return nil
}

// AddConstraint appends the constraint "e sense rhs" under the given name.
// The name must be unique and every variable referenced must already be
// declared. No feasibility checking is done here; contradictory constraints
// are the solver's to reject.
func (p *Problem) AddConstraint(name string, e LinearExpr, sense Sense, rhs float64) error {
	if name == "" {
		return errf("AddConstraint", "constraint name must not be empty")
	}
	if _, ok := p.consIndex[name]; ok {
		return errf("AddConstraint", "constraint %q already exists", name)
	}
	if err := p.checkVars("AddConstraint", e); err != nil {
		return err
	}
	p.consIndex[name] = len(p.constraints)
	p.constraints = append(p.constraints, Constraint{
		Name:  name,
		Expr:  e.Clone(),
		Sense: sense,
		RHS:   rhs,
	})
	return nil
}

func (p *Problem) checkVars(op string, e LinearExpr) error {
	for name := range e {
		if _, ok := p.varIndex[name]; !ok {
			return errf(op, "unknown variable %q", name)
		}
	}
	return nil
}

// NumVars returns the number of variables in the problem.
func (p *Problem) NumVars() int { return len(p.vars) }

// NumConstraints returns the number of constraints in the problem.
func (p *Problem) NumConstraints() int { return len(p.constraints) }

// Variables returns the variables in declaration order. The slice is a copy.
func (p *Problem) Variables() []Variable {
	vars := make([]Variable, len(p.vars))
	copy(vars, p.vars)
	return vars
}

// Variable returns the variable with the given name, or false if not declared.
func (p *Problem) Variable(name string) (Variable, bool) {
	i, ok := p.varIndex[name]
	if !ok {
		return Variable{}, false
	}
	return p.vars[i], true
}

// Constraints returns the constraints in declaration order. The slice is a
// copy; the contained expressions are shared and must not be modified.
func (p *Problem) Constraints() []Constraint {
	cons := make([]Constraint, len(p.constraints))
	copy(cons, p.constraints)
	return cons
}

// Constraint returns the constraint with the given name, or false if absent.
func (p *Problem) Constraint(name string) (Constraint, bool) {
	i, ok := p.consIndex[name]
	if !ok {
		return Constraint{}, false
	}
	return p.constraints[i], true
}

// Objective returns a copy of the objective expression.
func (p *Problem) Objective() LinearExpr {
	return p.objective.Clone()
}
