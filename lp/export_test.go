package lp

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWriteLP(t *testing.T) {
	p := New("Alpha Manufacturing Production Plan", Maximize)
	require.NoError(t, p.AddIntVariable("Product_A", 0, Inf()))
	require.NoError(t, p.AddIntVariable("Product_B", 0, Inf()))
	require.NoError(t, p.SetObjective(Term("Product_A", 50).Add("Product_B", 60)))
	require.NoError(t, p.AddConstraint("Raw Material Constraint",
		Term("Product_A", 2).Add("Product_B", 3), LessEq, 120))
	require.NoError(t, p.AddConstraint("Labor Hours Constraint",
		Term("Product_A", 3).Add("Product_B", 2), LessEq, 100))

	var buf strings.Builder
	require.NoError(t, WriteLP(&buf, p))

	want := `\ Alpha Manufacturing Production Plan
Maximize
 obj: 50 Product_A + 60 Product_B
Subject To
 Raw_Material_Constraint: 2 Product_A + 3 Product_B <= 120
 Labor_Hours_Constraint: 3 Product_A + 2 Product_B <= 100
Generals
 Product_A Product_B
End
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteLP mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteLPBounds(t *testing.T) {
	p := New("bounds", Minimize)
	require.NoError(t, p.AddVariable("x", 1, 4))
	require.NoError(t, p.AddVariable("y", -Inf(), Inf()))
	require.NoError(t, p.AddVariable("z", 2, Inf()))
	require.NoError(t, p.SetObjective(Term("x", 1).Add("y", 1).Add("z", 1)))
	require.NoError(t, p.AddConstraint("c", Term("x", 1).Add("y", -1), GreaterEq, 0))

	var buf strings.Builder
	require.NoError(t, WriteLP(&buf, p))

	out := buf.String()
	require.Contains(t, out, "Minimize\n")
	require.Contains(t, out, " c: x - y >= 0\n")
	require.Contains(t, out, " 1 <= x <= 4\n")
	require.Contains(t, out, " y free\n")
	require.Contains(t, out, " 2 <= z\n")
	require.NotContains(t, out, "Generals")
}
