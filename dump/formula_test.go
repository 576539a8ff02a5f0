package dump

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupFormula(t *testing.T) {
	cases := []struct {
		name  string
		nzone int
		want  int
	}{
		{"R", 10, 11},
		{"RCM", 10, 12},
		{"U", 10, 11},
		{"PRES", 10, 10},
		{"RHO", 10, 10},
		{"TE", 10, 10},
		{"TI", 10, 10},
		{"QTOT", 10, 10},
		{"STRTOT", 10, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			formula, ok := LookupFormula(tc.name)
			require.True(t, ok)
			require.Equal(t, tc.want, formula(tc.nzone))
		})
	}
}

func TestLookupFormula_Unsupported(t *testing.T) {
	for _, name := range []string{"", "XLASER", "pres"} {
		formula, ok := LookupFormula(name)
		require.False(t, ok, "name %q must be unsupported", name)
		require.Nil(t, formula)
	}
}

func TestSupportedArrayNames(t *testing.T) {
	names := SupportedArrayNames()
	require.Len(t, names, len(arraySizes))
	require.IsIncreasing(t, names)
	require.Contains(t, names, "PRES")
	require.Contains(t, names, "STRTOT")
}
