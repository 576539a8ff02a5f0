package dump

import (
	"fmt"
	"strings"

	"github.com/arloliu/ppf/errs"
	"github.com/arloliu/ppf/internal/hash"
	"github.com/arloliu/ppf/packet"
)

// globalScalarPackets is the fixed width of the global scalar block:
// 96 packets holding 48 doubles.
const globalScalarPackets = 96

// Decoder decodes one dump at a time from a shared packet cursor.
//
// Note: The Decoder is NOT thread-safe. Every field's byte offset depends
// on values read earlier from the same cursor, so decoding cannot be
// reordered or parallelized within a dump.
type Decoder struct {
	r *packet.Reader
}

// NewDecoder creates a Decoder reading from the given cursor. The cursor
// must be positioned at the first packet of a dump record.
func NewDecoder(r *packet.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode decodes exactly one dump from the cursor.
//
// On success the cursor is positioned directly after the dump's last
// packet and the returned Dump is fully detached from the reader. On
// failure the cursor position is unspecified and the in-progress dump is
// discarded.
//
// Returns:
//   - *Dump: The decoded snapshot
//   - error: errs.ErrStreamExhausted, errs.ErrMalformedPacketCount,
//     errs.ErrArrayNameCount, or errs.ErrUnsupportedArrayName wrapped with
//     phase context
func (d *Decoder) Decode() (*Dump, error) {
	start := d.r.Pos()
	dmp := &Dump{}

	if err := d.decodeBounds(dmp); err != nil {
		return nil, fmt.Errorf("bounds: %w", err)
	}

	if err := d.decodeHeader(dmp); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	if err := d.decodeMaterials(dmp); err != nil {
		return nil, fmt.Errorf("materials: %w", err)
	}

	if err := d.decodeGlobals(dmp); err != nil {
		return nil, fmt.Errorf("global scalars: %w", err)
	}

	if err := d.decodeArrays(dmp); err != nil {
		return nil, fmt.Errorf("arrays: %w", err)
	}

	dmp.Checksum = hash.Region(d.r.BytesFrom(start))

	return dmp, nil
}

// decodeBounds reads the structural limits block: a one-packet marker,
// nine bound integers, and a two-packet trailer of unknown meaning whose
// position must be preserved.
func (d *Decoder) decodeBounds(dmp *Dump) error {
	if err := d.r.Skip(1); err != nil {
		return err
	}

	vals, err := d.r.ReadInts(9)
	if err != nil {
		return err
	}

	dmp.Bounds = Bounds{
		MaxGroups:    vals[0],
		MaxIons:      vals[1],
		MaxLevels:    vals[2],
		MaxMaterials: vals[3],
		MaxArrays:    vals[4],
		MaxParticles: vals[5],
		MaxReactions: vals[6],
		MaxRegions:   vals[7],
		MaxZones:     vals[8],
	}

	return d.r.Skip(2)
}

// decodeHeader reads the dump metadata. The discard schedule between
// fields is fixed by the format and must not be reordered.
func (d *Decoder) decodeHeader(dmp *Dump) error {
	h := &dmp.Header

	var err error
	if h.Name, err = d.readPadded(8); err != nil {
		return err
	}
	if h.TimeBuf, err = d.readPadded(2); err != nil {
		return err
	}
	if h.DateBuf, err = d.readPadded(2); err != nil {
		return err
	}

	if err = d.r.Skip(1); err != nil {
		return err
	}

	if h.Version1, err = d.readPadded(2); err != nil {
		return err
	}
	if h.Version2, err = d.readPadded(2); err != nil {
		return err
	}
	if h.Machine, err = d.readPadded(2); err != nil {
		return err
	}

	if h.Time, err = d.r.ReadDouble(); err != nil {
		return err
	}
	if h.Cycle, err = d.r.ReadInt(); err != nil {
		return err
	}
	if h.Alpha, err = d.r.ReadInt(); err != nil {
		return err
	}
	if h.RegionCount, err = d.r.ReadInt(); err != nil {
		return err
	}
	if h.ZoneCount, err = d.r.ReadInt(); err != nil {
		return err
	}
	if h.GroupCount, err = d.r.ReadInt(); err != nil {
		return err
	}

	if err = d.r.Skip(5); err != nil {
		return err
	}

	if h.ArrayCount, err = d.r.ReadInt(); err != nil {
		return err
	}

	if err = d.r.Skip(8); err != nil {
		return err
	}

	nameBlock, err := d.r.ReadString(2 * int(h.ArrayCount))
	if err != nil {
		return err
	}

	h.ArrayNames = strings.Fields(nameBlock)
	if len(h.ArrayNames) != int(h.ArrayCount) {
		return fmt.Errorf("%w: declared %d, found %d",
			errs.ErrArrayNameCount, h.ArrayCount, len(h.ArrayNames))
	}

	// The name block is allocated for MaxArrays entries; skip the unused
	// remainder.
	if err = d.r.Skip(2 * int(dmp.Bounds.MaxArrays-h.ArrayCount)); err != nil {
		return err
	}

	if h.GroupBounds, err = d.r.ReadFloats(int(dmp.Bounds.MaxGroups)); err != nil {
		return err
	}
	if h.GroupCenters, err = d.r.ReadFloats(int(dmp.Bounds.MaxGroups)); err != nil {
		return err
	}

	return nil
}

// decodeMaterials reads the per-zone region-id array and each region's
// ordered element composition.
func (d *Decoder) decodeMaterials(dmp *Dump) error {
	if err := d.r.Skip(3); err != nil {
		return err
	}

	var err error
	if dmp.RegionIDs, err = d.r.ReadInts(int(dmp.Header.ZoneCount)); err != nil {
		return err
	}

	if err = d.r.Skip(1); err != nil {
		return err
	}

	dmp.Materials = make([][]Element, dmp.Header.RegionCount)
	for reg := range dmp.Materials {
		count, err := d.r.ReadInt()
		if err != nil {
			return err
		}

		elements := make([]Element, 0, max(count, 0))
		for i := int32(0); i < count; i++ {
			var el Element
			if el.Fraction, err = d.r.ReadDouble(); err != nil {
				return err
			}
			if el.Number, err = d.r.ReadDouble(); err != nil {
				return err
			}
			if el.Weight, err = d.r.ReadDouble(); err != nil {
				return err
			}

			elements = append(elements, el)
		}

		dmp.Materials[reg] = elements
	}

	return nil
}

// decodeGlobals reads the fixed global scalar block. The values are stored
// positionally and are not interpreted.
func (d *Decoder) decodeGlobals(dmp *Dump) error {
	var err error
	dmp.Globals, err = d.r.ReadDoubles(globalScalarPackets)

	return err
}

// decodeArrays reads every declared post-processor array in declared
// order, each preceded by a two-packet pad.
//
// A name absent from the formula table aborts the dump: the format carries
// no per-array length, so the unknown payload's extent cannot be
// determined and every later field would be read from a desynchronized
// cursor.
func (d *Decoder) decodeArrays(dmp *Dump) error {
	if err := d.r.Skip(2); err != nil {
		return err
	}

	h := &dmp.Header
	dmp.Arrays = make(map[string][]float64, len(h.ArrayNames))

	for _, name := range h.ArrayNames {
		if err := d.r.Skip(2); err != nil {
			return err
		}

		formula, ok := LookupFormula(name)
		if !ok {
			return fmt.Errorf("%w: %q at offset %d (supported: %s)",
				errs.ErrUnsupportedArrayName, name, d.r.Pos(),
				strings.Join(SupportedArrayNames(), " "))
		}

		values, err := d.r.ReadDoubles(2 * formula(int(h.ZoneCount)))
		if err != nil {
			return err
		}

		dmp.Arrays[name] = values
	}

	return nil
}

// readPadded reads a fixed-width string field and trims its trailing
// space and NUL padding.
func (d *Decoder) readPadded(packets int) (string, error) {
	s, err := d.r.ReadString(packets)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(s, " \x00"), nil
}
