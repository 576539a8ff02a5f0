// Package ppf decodes the binary dump files written by a
// radiation-hydrodynamics simulation code into a time-ordered collection
// of snapshots.
//
// A dump file is a strictly sequential, offset-dependent byte stream with
// no self-describing schema: every field is packed in a fixed order, sizes
// are computed from fields read earlier in the same stream, and several
// padding regions carry no recoverable meaning. The decoder reproduces
// this externally fixed wire format byte for byte; the decoded collection
// is the module's only output surface.
//
// # Basic Usage
//
//	collection, err := ppf.Load("run.ppf")
//	if err != nil {
//	    return err
//	}
//
//	times := collection.Times()
//	pres, err := collection.Collect("PRES") // [zones][dumps]
//	idx := collection.NearestIndex(1e-9)
//
//	for _, msg := range collection.Validate() {
//	    fmt.Println(msg)
//	}
//
// By default Load keeps every dump decoded before the first failure and
// records a diagnostic instead of failing; pass WithStrictMode() to make
// decode failures propagate. Sources compressed as Zstd, LZ4, or S2 frames
// are detected by magic and decompressed transparently.
//
// # Package Structure
//
// The packet package holds the low-level 4-byte packet cursor, the dump
// package the five-phase single-dump decoder, and the compress package the
// source codecs. This package drives the cursor across a whole file and
// exposes the aggregation queries.
package ppf

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/ppf/compress"
	"github.com/arloliu/ppf/dump"
	"github.com/arloliu/ppf/format"
	"github.com/arloliu/ppf/internal/options"
	"github.com/arloliu/ppf/packet"
)

// loadConfig holds the options applied to one Load call.
type loadConfig struct {
	strict      bool
	compression format.CompressionType // zero value means auto-detect
}

// LoadOption represents a functional option for configuring Load.
type LoadOption = options.Option[*loadConfig]

// WithStrictMode makes decode failures propagate to the caller instead of
// truncating the collection at the last successful dump.
func WithStrictMode() LoadOption {
	return options.NoError(func(c *loadConfig) {
		c.strict = true
	})
}

// WithCompression forces the source to be treated as the given compression
// type, bypassing frame-magic detection.
func WithCompression(compression format.CompressionType) LoadOption {
	return options.New(func(c *loadConfig) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		c.compression = compression

		return nil
	})
}

// Load opens the dump file at path and decodes every dump in it.
//
// The file is held open only for the duration of the read and closed on
// every exit path. See LoadBytes for decode semantics.
func Load(path string, opts ...LoadOption) (*Collection, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return LoadBytes(data, opts...)
}

// LoadBytes decodes every dump in an in-memory source.
//
// Dumps are decoded strictly one at a time in file order (which is
// simulation-time order), each followed by a fixed 4-byte separator. In
// the default non-strict mode a decode failure stops accumulation: all
// prior dumps are kept and a diagnostic recording bytes-consumed versus
// total is attached to the collection. With WithStrictMode() the failure
// is returned instead.
//
// Returns:
//   - *Collection: The immutable decoded collection
//   - error: Option validation errors, decompression errors, or (strict
//     mode only) the wrapped decode failure
func LoadBytes(data []byte, opts ...LoadOption) (*Collection, error) {
	cfg := &loadConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	compression := cfg.compression
	if compression == 0 {
		compression = compress.Detect(data)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress %s source: %w", compression, err)
	}

	r := packet.NewReader(raw)
	decoder := dump.NewDecoder(r)
	c := &Collection{bytesTotal: r.Len()}

	for r.Remaining() > 0 {
		dmp, err := decoder.Decode()
		if err != nil {
			if cfg.strict {
				return nil, fmt.Errorf("dump %d: %w", len(c.dumps), err)
			}

			c.diagnostics = append(c.diagnostics, fmt.Sprintf(
				"decoding stopped at dump %d: %v (consumed %d of %d bytes)",
				len(c.dumps), err, c.bytesConsumed, c.bytesTotal))

			break
		}

		c.dumps = append(c.dumps, dmp)

		// A well-formed file may end exactly after the last dump; the
		// separator is only present when more bytes follow.
		if r.Remaining() >= format.PacketSize {
			if err := r.Skip(1); err != nil {
				return nil, err
			}
		}

		c.bytesConsumed = r.Pos()
	}

	return c, nil
}
