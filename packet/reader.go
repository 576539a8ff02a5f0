// Package packet provides low-level cursor reads over the 4-byte packet
// unit of the ppf dump format.
//
// Every read size in the format is declared in packets. A packet count and
// an item type together determine the item count of a read:
//
//	byteCount = packets * format.PacketSize
//	itemCount = byteCount / itemType.Size()
//
// All multi-byte items are little-endian. The Reader holds the single
// shared cursor the decoder threads through a file: reads advance it and
// there is no way to move it backwards.
package packet

import (
	"fmt"
	"math"

	"github.com/arloliu/ppf/endian"
	"github.com/arloliu/ppf/errs"
	"github.com/arloliu/ppf/format"
)

// Reader decodes typed items from an in-memory byte source in packet
// units, advancing a single cursor.
//
// Note: The Reader is NOT thread-safe. Decoding is inherently sequential;
// every field's offset depends on values read earlier from the same cursor.
type Reader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewReader creates a Reader over the given byte source positioned at
// offset zero. The dump format is little-endian, so the reader always uses
// the little-endian engine.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Pos returns the current cursor position in bytes from the start of the
// source.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the total size of the source in bytes.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// BytesFrom returns the raw bytes between a previously observed cursor
// position and the current one. The slice aliases the source; callers must
// not modify it.
func (r *Reader) BytesFrom(start int) []byte {
	return r.data[start:r.pos]
}

// take consumes packets*PacketSize bytes from the cursor and returns the
// raw region together with the item count for the given type.
//
// Returns errs.ErrMalformedPacketCount when the byte count is not evenly
// divisible by the item size, and errs.ErrStreamExhausted when fewer bytes
// remain than requested. The cursor only advances on success.
func (r *Reader) take(packets int, typ format.ItemType) ([]byte, int, error) {
	itemSize := typ.Size()
	if itemSize == 0 {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrInvalidItemType, typ)
	}

	byteCount := packets * format.PacketSize
	if byteCount < 0 || byteCount%itemSize != 0 {
		return nil, 0, fmt.Errorf("%w: %d packets (%d bytes) as %s items of %d bytes",
			errs.ErrMalformedPacketCount, packets, byteCount, typ, itemSize)
	}

	if byteCount > r.Remaining() {
		return nil, 0, fmt.Errorf("%w: need %d bytes at offset %d, %d remain",
			errs.ErrStreamExhausted, byteCount, r.pos, r.Remaining())
	}

	buf := r.data[r.pos : r.pos+byteCount]
	r.pos += byteCount

	return buf, byteCount / itemSize, nil
}

// ReadInt reads a single 4-byte integer from one packet.
func (r *Reader) ReadInt() (int32, error) {
	buf, _, err := r.take(1, format.TypeInt)
	if err != nil {
		return 0, err
	}

	return int32(r.engine.Uint32(buf)), nil
}

// ReadInts reads packets 4-byte integers, one per packet.
func (r *Reader) ReadInts(packets int) ([]int32, error) {
	buf, items, err := r.take(packets, format.TypeInt)
	if err != nil {
		return nil, err
	}

	values := make([]int32, items)
	for i := range values {
		values[i] = int32(r.engine.Uint32(buf[i*4:]))
	}

	return values, nil
}

// ReadDouble reads a single float64 spanning two packets.
func (r *Reader) ReadDouble() (float64, error) {
	buf, _, err := r.take(2, format.TypeDouble)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(r.engine.Uint64(buf)), nil
}

// ReadDoubles reads packets/2 float64 values, each spanning two packets.
// The packet count must be even.
func (r *Reader) ReadDoubles(packets int) ([]float64, error) {
	buf, items, err := r.take(packets, format.TypeDouble)
	if err != nil {
		return nil, err
	}

	values := make([]float64, items)
	for i := range values {
		values[i] = math.Float64frombits(r.engine.Uint64(buf[i*8:]))
	}

	return values, nil
}

// ReadFloats reads packets float32 values, one per packet.
func (r *Reader) ReadFloats(packets int) ([]float32, error) {
	buf, items, err := r.take(packets, format.TypeFloat)
	if err != nil {
		return nil, err
	}

	values := make([]float32, items)
	for i := range values {
		values[i] = math.Float32frombits(r.engine.Uint32(buf[i*4:]))
	}

	return values, nil
}

// ReadString reads packets*PacketSize bytes and decodes the whole region
// as one UTF-8 string. Fixed-width string fields are space padded; callers
// trim or split on whitespace as the field requires.
func (r *Reader) ReadString(packets int) (string, error) {
	buf, _, err := r.take(packets, format.TypeChar)
	if err != nil {
		return "", err
	}

	return string(buf), nil
}

// Skip advances the cursor past packets packets without decoding them.
// Used for the format's padding regions, whose byte positions are fixed
// but whose meaning is not recoverable.
func (r *Reader) Skip(packets int) error {
	_, _, err := r.take(packets, format.TypeChar)

	return err
}
