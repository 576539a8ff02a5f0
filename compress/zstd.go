package compress

// ZstdCompressor provides Zstandard frame compression for archived dump
// sources.
//
// Zstd gives the best ratio of the supported codecs and is the usual
// choice for cold storage of finished runs. Two implementations back this
// type: a cgo build uses valyala/gozstd, and a pure-Go build falls back to
// klauspost/compress/zstd. Both produce standard zstd frames, so archives
// are interchangeable between builds.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstandard compressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
