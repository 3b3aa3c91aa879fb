package lp

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteLP renders the problem in CPLEX LP text format, for logging and for
// feeding external tooling. Names are sanitized: characters that are illegal
// in LP identifiers (notably spaces) become underscores.
func WriteLP(w io.Writer, p *Problem) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\\ %s\n", p.Name())
	if p.Direction() == Maximize {
		b.WriteString("Maximize\n")
	} else {
		b.WriteString("Minimize\n")
	}
	fmt.Fprintf(&b, " obj: %s\n", sanitizeExpr(p.Objective()))

	b.WriteString("Subject To\n")
	for _, c := range p.Constraints() {
		fmt.Fprintf(&b, " %s: %s %s %g\n",
			sanitizeName(c.Name), sanitizeExpr(c.Expr), c.Sense, c.RHS)
	}

	var bounds, generals []string
	for _, v := range p.Variables() {
		name := sanitizeName(v.Name)
		if v.Integer {
			generals = append(generals, name)
		}
		switch {
		case v.Lower == 0 && math.IsInf(v.Upper, 1):
			// LP format default, nothing to declare.
		case math.IsInf(v.Lower, -1) && math.IsInf(v.Upper, 1):
			bounds = append(bounds, fmt.Sprintf(" %s free", name))
		case math.IsInf(v.Upper, 1):
			bounds = append(bounds, fmt.Sprintf(" %g <= %s", v.Lower, name))
		default:
			bounds = append(bounds, fmt.Sprintf(" %g <= %s <= %g", v.Lower, name, v.Upper))
		}
	}
	if len(bounds) > 0 {
		b.WriteString("Bounds\n")
		for _, line := range bounds {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	if len(generals) > 0 {
		b.WriteString("Generals\n")
		fmt.Fprintf(&b, " %s\n", strings.Join(generals, " "))
	}
	b.WriteString("End\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func sanitizeExpr(e LinearExpr) string {
	clean := make(LinearExpr, len(e))
	for name, coeff := range e {
		clean[sanitizeName(name)] = coeff
	}
	return clean.String()
}

func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}
