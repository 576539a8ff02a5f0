package dump

import "sort"

// SizeFormula computes a post-processor array's element count from the
// dump's zone count. Edge-centered quantities carry one or two extra
// elements beyond the zone count.
type SizeFormula func(nzone int) int

// arraySizes is the closed name-to-formula table for the array names the
// format is known to emit. It is static configuration and is never mutated
// at runtime; a name absent from this table is an Unsupported array.
var arraySizes = map[string]SizeFormula{
	"R":      func(n int) int { return n + 1 }, // zone boundary positions
	"RCM":    func(n int) int { return n + 2 }, // zone center-of-mass positions
	"U":      func(n int) int { return n + 1 }, // velocity
	"PRES":   func(n int) int { return n },     // pressure
	"RHO":    func(n int) int { return n },     // density
	"TE":     func(n int) int { return n },     // electron temperature
	"TI":     func(n int) int { return n },     // ion temperature
	"QTOT":   func(n int) int { return n },     // total heating rate
	"STRTOT": func(n int) int { return n + 2 }, // total stress
}

// LookupFormula resolves an array name against the closed formula table.
// The boolean distinguishes the Known and Unsupported variants; callers
// must treat Unsupported as an explicit branch, not a generic failure.
func LookupFormula(name string) (SizeFormula, bool) {
	f, ok := arraySizes[name]

	return f, ok
}

// SupportedArrayNames returns the names in the formula table in sorted
// order.
func SupportedArrayNames() []string {
	names := make([]string, 0, len(arraySizes))
	for name := range arraySizes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
