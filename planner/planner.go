// Package planner defines production-planning scenarios and translates them
// into integer linear programs: one integer variable per product, one
// capacity constraint per resource, profit as the objective.
package planner

import (
	"github.com/pkg/errors"

	"github.com/alphamfg/prodplan/lp"
)

// Product is something the plant can make: a unit profit and the amount of
// each resource one unit consumes.
type Product struct {
	Name   string
	Profit float64

	// Usage maps resource names to per-unit consumption. Resources not
	// listed are not consumed.
	Usage map[string]float64
}

// Resource is a limited capacity shared by all products.
type Resource struct {
	Name     string
	Unit     string
	Capacity float64

	// Advice is the recommendation to surface when this resource turns out
	// to be a bottleneck (its constraint binds at the optimum).
	Advice string
}

// Scenario is a complete production-planning instance.
type Scenario struct {
	Name      string
	Products  []Product
	Resources []Resource
}

// constraintName returns the name of the capacity constraint for a resource.
func constraintName(r Resource) string {
	return r.Name + " Constraint"
}

// Problem builds the scenario's integer program. Variables and constraints
// appear in the declaration order of Products and Resources.
func (s Scenario) Problem() (*lp.Problem, error) {
	p := lp.New(s.Name, lp.Maximize)

	profit := lp.LinearExpr{}
	for _, prod := range s.Products {
		if err := p.AddIntVariable(prod.Name, 0, lp.Inf()); err != nil {
			return nil, errors.Wrapf(err, "product %q", prod.Name)
		}
		profit.Add(prod.Name, prod.Profit)
	}
	if err := p.SetObjective(profit); err != nil {
		return nil, errors.Wrap(err, "objective")
	}

	for _, res := range s.Resources {
		usage := lp.LinearExpr{}
		for _, prod := range s.Products {
			if amount := prod.Usage[res.Name]; amount != 0 {
				usage.Add(prod.Name, amount)
			}
		}
		if err := p.AddConstraint(constraintName(res), usage, lp.LessEq, res.Capacity); err != nil {
			return nil, errors.Wrapf(err, "resource %q", res.Name)
		}
	}
	return p, nil
}

// AdviceTable returns the static recommendation lookup table for the report,
// keyed by constraint name. Adding a resource extends the table without any
// code change.
func (s Scenario) AdviceTable() map[string]string {
	advice := make(map[string]string, len(s.Resources))
	for _, res := range s.Resources {
		if res.Advice != "" {
			advice[constraintName(res)] = res.Advice
		}
	}
	return advice
}

// Default returns the Alpha Manufacturing Co. scenario: two products, three
// resources.
//
//	Resource       | Product A | Product B | Capacity
//	Raw Material   | 2 kg      | 3 kg      | 120 kg
//	Labor Hours    | 3 h       | 2 h       | 100 h
//	Machine Hours  | 1 h       | 1 h       | 45 h
//	Profit         | $50       | $60       |
func Default() Scenario {
	return Scenario{
		Name: "Alpha Manufacturing Production Plan",
		Products: []Product{
			{
				Name:   "Product_A",
				Profit: 50,
				Usage: map[string]float64{
					"Raw Material":  2,
					"Labor Hours":   3,
					"Machine Hours": 1,
				},
			},
			{
				Name:   "Product_B",
				Profit: 60,
				Usage: map[string]float64{
					"Raw Material":  3,
					"Labor Hours":   2,
					"Machine Hours": 1,
				},
			},
		},
		Resources: []Resource{
			{
				Name:     "Raw Material",
				Unit:     "kg",
				Capacity: 120,
				Advice: "Consider sourcing more raw materials or finding more efficient ways " +
					"to use them, as this is a bottleneck.",
			},
			{
				Name:     "Labor Hours",
				Unit:     "hours",
				Capacity: 100,
				Advice: "Explore options to increase labor availability (e.g. overtime, hiring, " +
					"automation) if feasible, as labor hours are fully consumed.",
			},
			{
				Name:     "Machine Hours",
				Unit:     "hours",
				Capacity: 45,
				Advice: "Evaluate machine capacity. If this is consistently a bottleneck, " +
					"investing in more machinery or optimizing machine usage could be beneficial.",
			},
		},
	}
}
