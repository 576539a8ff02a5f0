// Package errs defines the sentinel error values shared across the ppf
// module.
//
// Callers match these with errors.Is; decoding code wraps them with
// positional context via fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrStreamExhausted is returned when a read requests more bytes than
	// remain in the source. It aborts the dump being decoded.
	ErrStreamExhausted = errors.New("dump stream exhausted")

	// ErrMalformedPacketCount is returned when a requested packet count
	// produces a byte count that is not evenly divisible by the size of the
	// target item type. It is fatal to the dump being decoded.
	ErrMalformedPacketCount = errors.New("packet count not divisible by item size")

	// ErrUnsupportedArrayName is returned when a dump declares a
	// post-processor array whose size formula is unknown. The format carries
	// no per-array length, so the cursor cannot be re-synchronized past the
	// unknown payload and the dump aborts.
	ErrUnsupportedArrayName = errors.New("unsupported post-processor array name")

	// ErrArrayNameCount is returned when the header's array-name block does
	// not split into exactly the declared number of names.
	ErrArrayNameCount = errors.New("array name count does not match declared count")

	// ErrArrayNotFound is returned by Collection.Collect when a dump does
	// not contain the requested array.
	ErrArrayNotFound = errors.New("array not found in dump")

	// ErrEmptyCollection is returned by collection queries that need at
	// least one decoded dump.
	ErrEmptyCollection = errors.New("collection contains no dumps")

	// ErrUnknownCompression is returned when a source requests a
	// compression type with no registered codec.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrInvalidItemType is returned when a packet read specifies an item
	// type outside the closed type table.
	ErrInvalidItemType = errors.New("invalid packet item type")
)
