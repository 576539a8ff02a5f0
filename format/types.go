// Package format defines the closed type tables of the ppf dump format.
//
// The tables are static configuration: they describe the externally fixed
// wire format and are never mutated at runtime.
package format

type (
	ItemType        uint8
	CompressionType uint8
)

// PacketSize is the fixed addressing unit of the dump format in bytes.
// Every read size in the format is declared in packets; multi-byte items
// span one or more whole packets.
const PacketSize = 4

const (
	TypeChar   ItemType = 0x1 // TypeChar is a 1-byte character; char reads span whole packets.
	TypeInt    ItemType = 0x2 // TypeInt is a 4-byte little-endian integer, one per packet.
	TypeDouble ItemType = 0x3 // TypeDouble is an 8-byte little-endian float64 spanning two packets.
	TypeFloat  ItemType = 0x4 // TypeFloat is a 4-byte little-endian float32, one per packet.

	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed source.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard frame.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2/snappy framed stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame.
)

// Size returns the number of bytes one item of type t occupies on the wire.
// It returns 0 for item types outside the closed table.
func (t ItemType) Size() int {
	switch t {
	case TypeChar:
		return 1
	case TypeInt, TypeFloat:
		return 4
	case TypeDouble:
		return 8
	default:
		return 0
	}
}

func (t ItemType) String() string {
	switch t {
	case TypeChar:
		return "Char"
	case TypeInt:
		return "Int"
	case TypeDouble:
		return "Double"
	case TypeFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
