package packet

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/arloliu/ppf/errs"
	"github.com/stretchr/testify/require"
)

func appendInt(buf []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(buf, uint32(v))
}

func appendDouble(buf []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
}

func appendFloat(buf []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
}

func TestReader_ReadInt(t *testing.T) {
	var buf []byte
	buf = appendInt(buf, 42)
	buf = appendInt(buf, -7)

	r := NewReader(buf)

	v, err := r.ReadInt()
	require.NoError(t, err)
	require.Equal(t, int32(42), v)
	require.Equal(t, 4, r.Pos())

	v, err = r.ReadInt()
	require.NoError(t, err)
	require.Equal(t, int32(-7), v)
	require.Equal(t, 0, r.Remaining())
}

func TestReader_ReadInts(t *testing.T) {
	var buf []byte
	for i := int32(0); i < 5; i++ {
		buf = appendInt(buf, i*10)
	}

	r := NewReader(buf)
	values, err := r.ReadInts(5)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 10, 20, 30, 40}, values)
	require.Equal(t, 20, r.Pos())
}

func TestReader_ReadDouble(t *testing.T) {
	t.Run("SpansTwoPackets", func(t *testing.T) {
		buf := appendDouble(nil, 3.14159)

		r := NewReader(buf)
		v, err := r.ReadDouble()
		require.NoError(t, err)
		require.Equal(t, 3.14159, v)
		require.Equal(t, 8, r.Pos())
	})

	t.Run("OddPacketCount", func(t *testing.T) {
		buf := make([]byte, 12)

		r := NewReader(buf)
		_, err := r.ReadDoubles(3)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrMalformedPacketCount)
		require.Equal(t, 0, r.Pos(), "cursor must not advance on failure")
	})
}

func TestReader_ReadDoubles(t *testing.T) {
	want := []float64{1.5, -2.25, 1e-9}
	var buf []byte
	for _, v := range want {
		buf = appendDouble(buf, v)
	}

	r := NewReader(buf)
	values, err := r.ReadDoubles(6)
	require.NoError(t, err)
	require.Equal(t, want, values)
}

func TestReader_ReadFloats(t *testing.T) {
	want := []float32{0.5, 100, -3}
	var buf []byte
	for _, v := range want {
		buf = appendFloat(buf, v)
	}

	r := NewReader(buf)
	values, err := r.ReadFloats(3)
	require.NoError(t, err)
	require.Equal(t, want, values)
}

func TestReader_ReadString(t *testing.T) {
	r := NewReader([]byte("PRES RHO    "))

	s, err := r.ReadString(3)
	require.NoError(t, err)
	require.Equal(t, "PRES RHO    ", s)
	require.Equal(t, 12, r.Pos())
}

func TestReader_Skip(t *testing.T) {
	r := NewReader(make([]byte, 16))

	require.NoError(t, r.Skip(3))
	require.Equal(t, 12, r.Pos())
	require.Equal(t, 4, r.Remaining())

	err := r.Skip(2)
	require.ErrorIs(t, err, errs.ErrStreamExhausted)
	require.Equal(t, 12, r.Pos())
}

func TestReader_StreamExhausted(t *testing.T) {
	r := NewReader(make([]byte, 7))

	_, err := r.ReadInts(2)
	require.ErrorIs(t, err, errs.ErrStreamExhausted)

	// A read that still fits must succeed afterwards.
	v, err := r.ReadInt()
	require.NoError(t, err)
	require.Equal(t, int32(0), v)
}

func TestReader_BytesFrom(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	r := NewReader(buf)

	require.NoError(t, r.Skip(1))
	start := r.Pos()
	_, err := r.ReadInt()
	require.NoError(t, err)

	require.Equal(t, []byte{5, 6, 7, 8}, r.BytesFrom(start))
}
