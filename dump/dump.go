// Package dump decodes single simulation snapshots ("dumps") from the ppf
// wire format.
//
// A dump is decoded in five fixed, position-dependent phases: structural
// bounds, header, material composition, global scalars, and named
// post-processor arrays. The field order within each phase is load-bearing:
// the format has no self-describing schema, sizes are computed from fields
// read earlier in the same stream, and several padding regions must be
// skipped at their exact byte positions even though their meaning is not
// recoverable.
//
// Decoding borrows a packet.Reader only for the duration of one Decode
// call; the resulting Dump is a fully detached, immutable value that never
// retains the cursor.
package dump

// Bounds holds the structural limits the simulation was compiled with.
// They bound the dump's variable-length sections; in particular MaxArrays
// sizes the padding after the array-name block and MaxGroups sizes the
// photon group arrays.
type Bounds struct {
	MaxGroups    int32 // maximum number of photon groups
	MaxIons      int32 // maximum number of ion types
	MaxLevels    int32 // maximum number of atomic physics levels
	MaxMaterials int32 // maximum number of material elements per region
	MaxArrays    int32 // maximum number of post-processor arrays
	MaxParticles int32 // maximum number of transport particles
	MaxReactions int32 // maximum number of transport reactions
	MaxRegions   int32 // maximum number of regions
	MaxZones     int32 // maximum number of zones
}

// Header holds one dump's metadata. String fields are stored with their
// fixed-width space padding trimmed.
type Header struct {
	Name     string // problem name
	TimeBuf  string // wall-clock time the dump was written
	DateBuf  string // date the dump was written
	Version1 string
	Version2 string
	Machine  string // id of the machine that ran the simulation

	Time  float64 // simulation time, no unit conversion applied
	Cycle int32   // cycle number
	Alpha int32   // alpha flag

	RegionCount int32 // NREG: number of regions in the problem
	ZoneCount   int32 // NZONE: number of zones in the problem
	GroupCount  int32 // NGROUP: number of photon groups
	ArrayCount  int32 // NPPARY: number of declared post-processor arrays

	// ArrayNames lists the declared post-processor arrays in wire order.
	// It always has exactly ArrayCount entries.
	ArrayNames []string

	// GroupBounds and GroupCenters are the photon group boundary and
	// center arrays, each MaxGroups long.
	GroupBounds  []float32
	GroupCenters []float32
}

// Element is one material component of a region.
type Element struct {
	Fraction float64 // atomic fraction
	Number   float64 // atomic number
	Weight   float64 // atomic weight
}

// Dump is one fully decoded simulation snapshot.
type Dump struct {
	Bounds Bounds
	Header Header

	// RegionIDs holds one region id per zone (the IREG array),
	// Header.ZoneCount long.
	RegionIDs []int32

	// Materials holds the ordered element composition of each region, in
	// region order (Materials[0] is region 1).
	Materials [][]Element

	// Globals is the fixed block of 48 positional diagnostic scalars.
	// Their individual physical meanings are not interpreted here.
	Globals []float64

	// Arrays maps each declared array name to its decoded values. The
	// value length is the name's size formula applied to ZoneCount.
	Arrays map[string][]float64

	// Checksum is the xxHash64 of the raw byte region this dump was
	// decoded from.
	Checksum uint64
}

// DistinctRegionIDs returns the number of distinct region ids appearing in
// RegionIDs. For a well-formed dump it equals Header.RegionCount; certain
// material-ionization configurations are known to violate this, which is
// why the mismatch is validated post-hoc instead of rejected during decode.
func (d *Dump) DistinctRegionIDs() int {
	seen := make(map[int32]struct{}, len(d.Materials))
	for _, id := range d.RegionIDs {
		seen[id] = struct{}{}
	}

	return len(seen)
}
