// Package dumptest fabricates wire-exact dump bytes for tests.
//
// The module never encodes the dump format for real use, but tests need
// well-formed (and deliberately malformed) sources. The builder mirrors
// the decoder's phase schedule byte for byte, so a buffer it produces is
// positionally identical to one written by the originating simulation
// code.
package dumptest

import (
	"math"
	"strings"

	"github.com/arloliu/ppf/dump"
	"github.com/arloliu/ppf/endian"
	"github.com/arloliu/ppf/format"
)

// GlobalScalarCount is the number of doubles in the global scalar block.
const GlobalScalarCount = 48

// Config describes one synthetic dump. Zero-valued fields are filled with
// usable defaults by Build.
type Config struct {
	Name     string
	TimeBuf  string
	DateBuf  string
	Version1 string
	Version2 string
	Machine  string

	Time  float64
	Cycle int32
	Alpha int32

	NREG  int32
	NZONE int32

	// IREG holds one region id per zone; defaults to all zones in
	// region 1.
	IREG []int32

	// ArrayNames lists the declared post-processor arrays in wire order.
	// Defaults to {"R", "PRES"}.
	ArrayNames []string

	// ArrayData overrides the payload for a named array. A missing entry
	// gets a deterministic fill derived from the array's position and the
	// dump time.
	ArrayData map[string][]float64

	// Materials holds each region's element list; defaults to one
	// hydrogen-like element per region.
	Materials [][]dump.Element

	// Globals holds the 48 global scalars; defaults to 0,1,2,...
	Globals []float64

	MaxGroups int32 // defaults to 2
	MaxArrays int32 // defaults to 12
}

func (c *Config) withDefaults() {
	if c.Name == "" {
		c.Name = "test problem"
	}
	if c.TimeBuf == "" {
		c.TimeBuf = "12:00:00"
	}
	if c.DateBuf == "" {
		c.DateBuf = "01/02/26"
	}
	if c.Version1 == "" {
		c.Version1 = "PP.11.0"
	}
	if c.Version2 == "" {
		c.Version2 = "PP.11.0"
	}
	if c.Machine == "" {
		c.Machine = "testbox"
	}
	if c.NREG == 0 {
		c.NREG = 1
	}
	if c.NZONE == 0 {
		c.NZONE = 4
	}
	if c.IREG == nil {
		c.IREG = make([]int32, c.NZONE)
		for i := range c.IREG {
			c.IREG[i] = 1
		}
	}
	if c.ArrayNames == nil {
		c.ArrayNames = []string{"R", "PRES"}
	}
	if c.Materials == nil {
		c.Materials = make([][]dump.Element, c.NREG)
		for i := range c.Materials {
			c.Materials[i] = []dump.Element{{Fraction: 1.0, Number: 1.0, Weight: 1.008}}
		}
	}
	if c.Globals == nil {
		c.Globals = make([]float64, GlobalScalarCount)
		for i := range c.Globals {
			c.Globals[i] = float64(i)
		}
	}
	if c.MaxGroups == 0 {
		c.MaxGroups = 2
	}
	if c.MaxArrays == 0 {
		c.MaxArrays = 12
	}
}

// arrayFill is the deterministic default payload for array idx of a dump.
func arrayFill(cfg *Config, idx, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = cfg.Time*1e9 + float64(idx*1000+i)
	}

	return values
}

// Builder accumulates packet-aligned bytes in wire order.
type Builder struct {
	buf    []byte
	engine endian.EndianEngine
}

// NewBuilder creates an empty little-endian builder.
func NewBuilder() *Builder {
	return &Builder{engine: endian.GetLittleEndianEngine()}
}

// Bytes returns the accumulated source.
func (b *Builder) Bytes() []byte {
	return b.buf
}

func (b *Builder) putInt(v int32) {
	b.buf = b.engine.AppendUint32(b.buf, uint32(v))
}

func (b *Builder) putInts(vs ...int32) {
	for _, v := range vs {
		b.putInt(v)
	}
}

func (b *Builder) putDouble(v float64) {
	b.buf = b.engine.AppendUint64(b.buf, math.Float64bits(v))
}

func (b *Builder) putDoubles(vs ...float64) {
	for _, v := range vs {
		b.putDouble(v)
	}
}

func (b *Builder) putFloat(v float32) {
	b.buf = b.engine.AppendUint32(b.buf, math.Float32bits(v))
}

// putString appends s space-padded to exactly packets packets.
// Panics if s does not fit; fixture configs control their own widths.
func (b *Builder) putString(s string, packets int) {
	width := packets * format.PacketSize
	if len(s) > width {
		panic("dumptest: string " + s + " exceeds field width")
	}

	b.buf = append(b.buf, s...)
	b.buf = append(b.buf, strings.Repeat(" ", width-len(s))...)
}

// Separator appends the fixed 4-byte inter-dump separator.
func (b *Builder) Separator() {
	b.putInt(0)
}

// AppendDump appends one complete dump record for cfg.
func (b *Builder) AppendDump(cfg Config) {
	cfg.withDefaults()

	// Phase A: marker, nine bounds, two-packet trailer.
	b.putInt(-1)
	b.putInts(cfg.MaxGroups, 5, 5, 5, cfg.MaxArrays, 0, 0, cfg.NREG, cfg.NZONE)
	b.putInts(0, 0)

	// Phase B: header.
	b.putString(cfg.Name, 8)
	b.putString(cfg.TimeBuf, 2)
	b.putString(cfg.DateBuf, 2)
	b.putInt(0)
	b.putString(cfg.Version1, 2)
	b.putString(cfg.Version2, 2)
	b.putString(cfg.Machine, 2)
	b.putDouble(cfg.Time)
	b.putInts(cfg.Cycle, cfg.Alpha, cfg.NREG, cfg.NZONE, cfg.MaxGroups)
	b.putInts(0, 0, 0, 0, 0)
	b.putInt(int32(len(cfg.ArrayNames)))
	b.putInts(0, 0, 0, 0, 0, 0, 0, 0)
	b.putString(strings.Join(cfg.ArrayNames, " "), 2*len(cfg.ArrayNames))
	b.putString("", 2*(int(cfg.MaxArrays)-len(cfg.ArrayNames)))
	for i := int32(0); i < 2*cfg.MaxGroups; i++ {
		b.putFloat(float32(i))
	}

	// Phase C: material composition.
	b.putInts(0, 0, 0)
	b.putInts(cfg.IREG...)
	b.putInt(0)
	for _, elements := range cfg.Materials {
		b.putInt(int32(len(elements)))
		for _, el := range elements {
			b.putDoubles(el.Fraction, el.Number, el.Weight)
		}
	}

	// Phase D: global scalars.
	b.putDoubles(cfg.Globals...)

	// Phase E: named arrays, each preceded by a pad double.
	b.putDouble(0)
	for i, name := range cfg.ArrayNames {
		b.putDouble(0)

		values, ok := cfg.ArrayData[name]
		if !ok {
			formula, known := dump.LookupFormula(name)
			if !known {
				// An unsupported name has no payload the decoder could
				// reach; it aborts at the name lookup.
				continue
			}
			values = arrayFill(&cfg, i, formula(int(cfg.NZONE)))
		}

		b.putDoubles(values...)
	}
}

// BuildFile assembles a complete source: each dump followed by the 4-byte
// separator, matching what the simulation code writes.
func BuildFile(cfgs ...Config) []byte {
	b := NewBuilder()
	for _, cfg := range cfgs {
		b.AppendDump(cfg)
		b.Separator()
	}

	return b.Bytes()
}
