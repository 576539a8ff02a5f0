package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemType_Size(t *testing.T) {
	require.Equal(t, 1, TypeChar.Size())
	require.Equal(t, 4, TypeInt.Size())
	require.Equal(t, 8, TypeDouble.Size())
	require.Equal(t, 4, TypeFloat.Size())
	require.Equal(t, 0, ItemType(0xFF).Size())
}

func TestStringers(t *testing.T) {
	require.Equal(t, "Double", TypeDouble.String())
	require.Equal(t, "Unknown", ItemType(0).String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
