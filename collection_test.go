package ppf

import (
	"testing"

	"github.com/arloliu/ppf/dump"
	"github.com/arloliu/ppf/errs"
	"github.com/arloliu/ppf/internal/dumptest"
	"github.com/stretchr/testify/require"
)

// loadCollection builds a file from cfgs and loads it in strict mode, so
// fixture mistakes surface as test failures.
func loadCollection(t *testing.T, cfgs ...dumptest.Config) *Collection {
	t.Helper()

	c, err := LoadBytes(dumptest.BuildFile(cfgs...), WithStrictMode())
	require.NoError(t, err)

	return c
}

func TestCollection_Times(t *testing.T) {
	c := loadCollection(t,
		dumptest.Config{Time: 1e-9},
		dumptest.Config{Time: 2e-9},
		dumptest.Config{Time: 5e-9},
	)

	require.Equal(t, []float64{1e-9, 2e-9, 5e-9}, c.Times())
}

func TestCollection_NearestIndex(t *testing.T) {
	c := loadCollection(t,
		dumptest.Config{Time: 1.0},
		dumptest.Config{Time: 3.0},
		dumptest.Config{Time: 7.0},
	)

	cases := []struct {
		name string
		t    float64
		want int
	}{
		{"BeforeFirst", -5.0, 0},
		{"AtFirst", 1.0, 0},
		{"AfterLast", 100.0, 2},
		{"AtLast", 7.0, 2},
		{"Interior", 2.9, 1},
		{"TieBreaksLow", 2.0, 0},
		{"TieBreaksLowUpper", 5.0, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, c.NearestIndex(tc.t))
		})
	}
}

func TestCollection_Collect(t *testing.T) {
	const nzone = 3

	cfg := func(j int) dumptest.Config {
		return dumptest.Config{
			Time:       float64(j),
			NZONE:      nzone,
			ArrayNames: []string{"RCM", "PRES"},
			ArrayData: map[string][]float64{
				"PRES": {float64(j*10 + 0), float64(j*10 + 1), float64(j*10 + 2)},
			},
		}
	}

	c := loadCollection(t, cfg(0), cfg(1), cfg(2))

	t.Run("ZoneCentered", func(t *testing.T) {
		grid, err := c.Collect("PRES")
		require.NoError(t, err)
		require.Len(t, grid, nzone)
		for i := range grid {
			require.Len(t, grid[i], c.Count())
		}

		// grid[zone][dump]
		require.Equal(t, 0.0, grid[0][0])
		require.Equal(t, 12.0, grid[2][1])
		require.Equal(t, 21.0, grid[1][2])
	})

	t.Run("EdgeCentered", func(t *testing.T) {
		grid, err := c.Collect("RCM")
		require.NoError(t, err)
		require.Len(t, grid, nzone+2)
		for i := range grid {
			require.Len(t, grid[i], c.Count())
		}
	})

	t.Run("UnknownName", func(t *testing.T) {
		_, err := c.Collect("RHO")
		require.ErrorIs(t, err, errs.ErrArrayNotFound)
	})

	t.Run("EmptyCollection", func(t *testing.T) {
		empty, err := LoadBytes(nil)
		require.NoError(t, err)

		_, err = empty.Collect("PRES")
		require.ErrorIs(t, err, errs.ErrEmptyCollection)
	})
}

func TestCollection_Validate(t *testing.T) {
	t.Run("Clean", func(t *testing.T) {
		c := loadCollection(t, dumptest.Config{
			NREG:  2,
			NZONE: 3,
			IREG:  []int32{1, 1, 2},
		})

		require.Empty(t, c.Validate())
	})

	t.Run("MismatchDeduplicated", func(t *testing.T) {
		bad := dumptest.Config{
			NREG:  2,
			NZONE: 3,
			IREG:  []int32{1, 1, 1},
		}

		// Three dumps sharing the same violation produce exactly one
		// message.
		c := loadCollection(t, bad, bad, bad)
		require.Len(t, c.Validate(), 1)
	})

	t.Run("DistinctMessagesKept", func(t *testing.T) {
		c := loadCollection(t,
			dumptest.Config{NREG: 2, NZONE: 3, IREG: []int32{1, 1, 1}},
			dumptest.Config{NREG: 3, NZONE: 3, IREG: []int32{1, 1, 1}},
		)

		require.Len(t, c.Validate(), 2)
	})
}

func TestCollection_Accessors(t *testing.T) {
	materials := [][]dump.Element{
		{{Fraction: 1.0, Number: 13.0, Weight: 26.98}},
		{{Fraction: 1.0, Number: 1.0, Weight: 1.008}},
	}

	c := loadCollection(t,
		dumptest.Config{
			NREG:      2,
			NZONE:     4,
			IREG:      []int32{1, 1, 2, 2},
			Materials: materials,
		},
		dumptest.Config{
			NREG:      2,
			NZONE:     4,
			IREG:      []int32{1, 1, 2, 2},
			Materials: materials,
			Time:      1e-9,
		},
	)

	require.Equal(t, 4, c.ZoneCount())
	require.Equal(t, []string{"R", "PRES"}, c.ArrayNames())
	require.Equal(t, []int32{1, 1, 2, 2}, c.RegionMask())
	require.Equal(t, materials, c.MaterialTable())

	t.Run("ReturnedSlicesAreCopies", func(t *testing.T) {
		names := c.ArrayNames()
		names[0] = "mutated"
		require.Equal(t, []string{"R", "PRES"}, c.ArrayNames())

		mask := c.RegionMask()
		mask[0] = 99
		require.Equal(t, []int32{1, 1, 2, 2}, c.RegionMask())
	})
}
