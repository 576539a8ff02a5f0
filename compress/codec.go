// Package compress provides whole-file codecs for archived dump sources.
//
// Simulation runs are routinely compressed for long-term storage. The
// collection loader sniffs the frame magic of a source and transparently
// decompresses it before decoding, so consumers never handle compression
// themselves. The dump wire format itself is never re-encoded; the
// compress side of each codec exists for archiving and test fixtures.
//
// All codecs use self-describing frame formats (not raw block formats) so
// that Detect can classify a source from its leading bytes alone.
package compress

import (
	"bytes"
	"fmt"

	"github.com/arloliu/ppf/errs"
	"github.com/arloliu/ppf/format"
)

// Compressor compresses a complete in-memory source.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a complete in-memory source.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// bytes. It returns an error if the data is corrupted or was not
	// produced by the matching Compressor.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Frame magics of the supported formats, in stream byte order.
var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	s2Magic   = []byte{0xFF, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

// Detect classifies a source by its leading frame magic. A source that
// matches no known magic is treated as uncompressed.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, s2Magic):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
}
