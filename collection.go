package ppf

import (
	"fmt"
	"math"

	"github.com/arloliu/ppf/dump"
	"github.com/arloliu/ppf/errs"
)

// Collection is the ordered sequence of dumps decoded from one source, in
// file order (which is simulation-time order).
//
// A Collection is built once by Load and is immutable afterwards. All
// dumps in a collection share the dimensions of the first dump (zone
// count, array names, region layout); the queries rely on this and do not
// re-verify it per dump.
type Collection struct {
	dumps []*dump.Dump

	bytesConsumed int
	bytesTotal    int
	diagnostics   []string
}

// Count returns the number of decoded dumps.
func (c *Collection) Count() int {
	return len(c.dumps)
}

// Dump returns the i-th decoded dump.
func (c *Collection) Dump(i int) *dump.Dump {
	return c.dumps[i]
}

// ZoneCount returns the zone count of the problem, taken from the first
// dump. It returns 0 for an empty collection.
func (c *Collection) ZoneCount() int {
	if len(c.dumps) == 0 {
		return 0
	}

	return int(c.dumps[0].Header.ZoneCount)
}

// ArrayNames returns the declared post-processor array names, taken from
// the first dump.
func (c *Collection) ArrayNames() []string {
	if len(c.dumps) == 0 {
		return nil
	}

	names := make([]string, len(c.dumps[0].Header.ArrayNames))
	copy(names, c.dumps[0].Header.ArrayNames)

	return names
}

// RegionMask returns the per-zone region-id array, taken from the first
// dump.
func (c *Collection) RegionMask() []int32 {
	if len(c.dumps) == 0 {
		return nil
	}

	mask := make([]int32, len(c.dumps[0].RegionIDs))
	copy(mask, c.dumps[0].RegionIDs)

	return mask
}

// MaterialTable returns the per-region element composition, taken from the
// first dump. Index 0 is region 1.
func (c *Collection) MaterialTable() [][]dump.Element {
	if len(c.dumps) == 0 {
		return nil
	}

	return c.dumps[0].Materials
}

// Times returns the simulation time of every dump, in collection order.
func (c *Collection) Times() []float64 {
	times := make([]float64, len(c.dumps))
	for i, d := range c.dumps {
		times[i] = d.Header.Time
	}

	return times
}

// NearestIndex returns the index of the dump whose simulation time has the
// minimum absolute difference from t. Ties resolve to the lowest index.
// It returns -1 for an empty collection.
func (c *Collection) NearestIndex(t float64) int {
	best := -1
	bestDiff := math.Inf(1)

	for i, d := range c.dumps {
		diff := math.Abs(d.Header.Time - t)
		if diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}

	return best
}

// Collect gathers a named array across every dump into a 2-D grid shaped
// [zones][dumps]: row i holds element i of the array at every dump time.
//
// Returns:
//   - [][]float64: The gathered grid; rows equal the array's decoded
//     length (the size formula applied to the zone count)
//   - error: errs.ErrArrayNotFound if any dump lacks the array
func (c *Collection) Collect(name string) ([][]float64, error) {
	if len(c.dumps) == 0 {
		return nil, errs.ErrEmptyCollection
	}

	first, ok := c.dumps[0].Arrays[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q missing from dump 0", errs.ErrArrayNotFound, name)
	}

	grid := make([][]float64, len(first))
	for i := range grid {
		grid[i] = make([]float64, len(c.dumps))
	}

	for j, d := range c.dumps {
		values, ok := d.Arrays[name]
		if !ok || len(values) != len(first) {
			return nil, fmt.Errorf("%w: %q missing from dump %d", errs.ErrArrayNotFound, name, j)
		}

		for i, v := range values {
			grid[i][j] = v
		}
	}

	return grid, nil
}

// Validate checks every dump's soft invariants and returns the
// deduplicated diagnostic messages, never an error.
//
// The only check is RegionCountMismatch: the count of distinct region ids
// in a dump's IREG array should equal the header's declared region count.
// Violations are a known artifact of certain material-ionization
// configurations, so they are reported rather than rejected, and repeated
// occurrences of the same message collapse to one entry.
func (c *Collection) Validate() []string {
	var messages []string
	seen := make(map[string]struct{})

	for _, d := range c.dumps {
		distinct := d.DistinctRegionIDs()
		if distinct == int(d.Header.RegionCount) {
			continue
		}

		msg := fmt.Sprintf(
			"region ids cover %d distinct regions but the header declares %d; known artifact of material ionization settings",
			distinct, d.Header.RegionCount)
		if _, ok := seen[msg]; ok {
			continue
		}

		seen[msg] = struct{}{}
		messages = append(messages, msg)
	}

	return messages
}

// Diagnostics returns the messages recorded during a non-strict load, such
// as a truncated trailing dump.
func (c *Collection) Diagnostics() []string {
	return c.diagnostics
}

// BytesConsumed returns the number of source bytes covered by successfully
// decoded dumps (including separators).
func (c *Collection) BytesConsumed() int {
	return c.bytesConsumed
}

// BytesTotal returns the total size of the decompressed source.
func (c *Collection) BytesTotal() int {
	return c.bytesTotal
}
