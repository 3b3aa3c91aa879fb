package planner

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alphamfg/prodplan/lp"
	"github.com/alphamfg/prodplan/report"
	"github.com/alphamfg/prodplan/solve"
)

func TestDefaultScenarioProblem(t *testing.T) {
	p, err := Default().Problem()
	require.NoError(t, err)

	require.Equal(t, "Alpha Manufacturing Production Plan", p.Name())
	require.Equal(t, lp.Maximize, p.Direction())
	require.Equal(t, 2, p.NumVars())
	require.Equal(t, 3, p.NumConstraints())

	for _, v := range p.Variables() {
		require.True(t, v.Integer, "%s must be integer", v.Name)
		require.Equal(t, 0.0, v.Lower)
	}

	raw, ok := p.Constraint("Raw Material Constraint")
	require.True(t, ok)
	require.Equal(t, lp.LessEq, raw.Sense)
	require.Equal(t, 120.0, raw.RHS)
	require.Equal(t, 2.0, raw.Expr["Product_A"])
	require.Equal(t, 3.0, raw.Expr["Product_B"])

	require.Equal(t, 50.0, p.Objective()["Product_A"])
	require.Equal(t, 60.0, p.Objective()["Product_B"])
}

func TestAdviceTable(t *testing.T) {
	advice := Default().AdviceTable()
	require.Len(t, advice, 3)
	require.Contains(t, advice, "Raw Material Constraint")
	require.Contains(t, advice, "Labor Hours Constraint")
	require.Contains(t, advice, "Machine Hours Constraint")
}

func TestScenarioRejectsDuplicateProduct(t *testing.T) {
	s := Default()
	s.Products = append(s.Products, s.Products[0])
	_, err := s.Problem()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Product_A")
}

// TestDefaultScenarioOptimum solves the real model. The unique optimum is
// Product_A = 12, Product_B = 32 with profit 2520: the raw-material and labor
// rows intersect at (12, 32), which is integral, feasible and dominates the
// other vertices of the feasible region.
func TestDefaultScenarioOptimum(t *testing.T) {
	scenario := Default()
	p, err := scenario.Problem()
	require.NoError(t, err)

	sol, err := solve.HiGHS{}.Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, lp.StatusOptimal, sol.Status)

	require.InDelta(t, 12, sol.Value("Product_A"), 1e-6)
	require.InDelta(t, 32, sol.Value("Product_B"), 1e-6)
	require.InDelta(t, 2520, sol.Objective, 1e-6)

	// No constraint may be violated at a reported optimum.
	require.NoError(t, sol.Verify(p, 1e-6))
	for _, c := range p.Constraints() {
		require.GreaterOrEqual(t, c.Slack(sol.Values), -1e-6, c.Name)
	}

	a := report.Analyze(p, sol, report.DefaultTolerance)
	require.Equal(t, []string{"Raw Material Constraint", "Labor Hours Constraint"}, a.Binding)
	require.InDelta(t, 1, a.Constraints[2].Slack, 1e-6, "machine hours keep one spare hour")
}

// TestPerturbedScenarioRoundTrip changes capacities and re-solves; whatever
// comes back must still satisfy every constraint exactly.
func TestPerturbedScenarioRoundTrip(t *testing.T) {
	scenario := Default()
	scenario.Resources[1].Capacity = 80 // tighten labor
	scenario.Resources[2].Capacity = 60 // relax machine hours

	p, err := scenario.Problem()
	require.NoError(t, err)

	sol, err := solve.HiGHS{}.Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, lp.StatusOptimal, sol.Status)
	require.NoError(t, sol.Verify(p, 1e-6))
}

// TestInfeasibleScenario zeroes the machine-hour capacity alongside a demand
// floor, making the model infeasible. The report must print the status and
// never the variable values.
func TestInfeasibleScenario(t *testing.T) {
	scenario := Default()
	scenario.Resources[2].Capacity = 0

	p, err := scenario.Problem()
	require.NoError(t, err)
	// Force at least one unit of production so x = 0 is not a way out.
	require.NoError(t, p.AddConstraint("Minimum Output",
		lp.Term("Product_A", 1).Add("Product_B", 1), lp.GreaterEq, 1))

	sol, err := solve.HiGHS{}.Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, lp.StatusInfeasible, sol.Status)
	require.Empty(t, sol.Values)

	var buf strings.Builder
	a := report.Analyze(p, sol, report.DefaultTolerance)
	require.NoError(t, a.Render(&buf, scenario.AdviceTable()))
	require.Contains(t, buf.String(), "Status: Infeasible")
	require.NotContains(t, buf.String(), "Product_A =")
}
