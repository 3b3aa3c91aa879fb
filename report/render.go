package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/alphamfg/prodplan/lp"
)

// noBindingAdvice is emitted when no constraint binds at the optimum.
const noBindingAdvice = "The current solution does not fully utilize any resource. " +
	"This might indicate an opportunity to introduce new products or increase demand, " +
	"or to re-evaluate resource allocation."

// Render writes the analysis as a plain-text report. advice maps constraint
// names to recommendation text; a recommendation is emitted for each binding
// constraint that has an entry. For a non-optimal solution only the status
// and a short explanation are written, never variable values.
func (a *Analysis) Render(w io.Writer, advice map[string]string) error {
	if !a.Solution.IsOptimal() {
		_, err := fmt.Fprintf(w, "Status: %s\n\nNo optimal solution available (solver reported %q); skipping solution details.\n",
			a.Solution.Status, a.Solution.Detail)
		return err
	}

	var b strings.Builder
	money := message.NewPrinter(language.English)

	fmt.Fprintf(&b, "Status: %s\n\n", a.Solution.Status)

	b.WriteString("Optimal Quantities:\n")
	for _, v := range a.Problem.Variables() {
		val := a.Solution.Value(v.Name)
		if v.Integer {
			fmt.Fprintf(&b, "  %s = %d\n", v.Name, int64(math.Round(val)))
		} else {
			fmt.Fprintf(&b, "  %s = %g\n", v.Name, val)
		}
	}

	label := "Objective Value"
	if a.Problem.Direction() == lp.Maximize {
		label = "Maximum Total Profit"
	}
	fmt.Fprintf(&b, "\n%s = %s\n", label, money.Sprintf("$%.2f", a.Solution.Objective))

	b.WriteString("\nConstraint Analysis:\n")
	for _, c := range a.Constraints {
		fmt.Fprintf(&b, "%s:\n", c.Name)
		fmt.Fprintf(&b, "  Left Hand Side (LHS) = %.2f\n", c.LHS)
		fmt.Fprintf(&b, "  Right Hand Side (RHS) = %.2f\n", c.RHS)
		fmt.Fprintf(&b, "  Slack = %.2f\n", c.Slack)
		if c.Binding {
			b.WriteString("  This constraint is BINDING (fully utilized).\n")
		} else {
			b.WriteString("  This constraint has SLACK (not fully utilized).\n")
		}
		b.WriteString(strings.Repeat("-", 30))
		b.WriteByte('\n')
	}

	if len(a.Binding) > 0 {
		fmt.Fprintf(&b, "\nFully utilized resources (bottlenecks): %s.\n", strings.Join(a.Binding, ", "))
		b.WriteString("Increasing the capacity of these resources could lead to higher profits.\n")
	} else {
		b.WriteString("\nNo constraints are fully utilized; there is excess capacity in every resource.\n")
	}

	b.WriteString("\nResource Utilization:\n")
	for _, c := range a.Constraints {
		fmt.Fprintf(&b, "  - %s: %.2f used of %.2f available (slack %.2f)\n",
			c.Name, c.LHS, c.RHS, c.Slack)
	}

	b.WriteString("\nStrategic Recommendations:\n")
	emitted := 0
	for _, name := range a.Binding {
		if text, ok := advice[name]; ok {
			fmt.Fprintf(&b, "- %s\n", text)
			emitted++
		}
	}
	if len(a.Binding) == 0 {
		fmt.Fprintf(&b, "- %s\n", noBindingAdvice)
	} else if emitted == 0 {
		b.WriteString("- No recommendations on file for the binding constraints.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
