package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegion(t *testing.T) {
	data := []byte("dump region bytes")

	require.Equal(t, Region(data), Region(data))
	require.NotEqual(t, Region(data), Region(data[:len(data)-1]))
	require.NotZero(t, Region(data))
}
