package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atd/internal/structures"
)

func TestZstdCompressor_RoundTrip(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	original := []byte(`{"TrackingData":{"C:\\proj\\gear.ipt":{}}}`)
	compressed, err := c.Compress(original)
	require.NoError(t, err)
	assert.NotEqual(t, original, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestZstdCompressor_DecompressGarbage(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Decompress([]byte("definitely not a zstd frame"))
	assert.Error(t, err)
}

func TestNoopCompression_Identity(t *testing.T) {
	c := NoopCompression{}

	data := []byte("plain json stays plain")
	out, err := c.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	out, err = c.Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestNewCompressor_SelectsByConfig(t *testing.T) {
	c, err := NewCompressor(&structures.Config{})
	require.NoError(t, err)
	assert.IsType(t, NoopCompression{}, c)

	conf := &structures.Config{Persistence: structures.Persistence{Compress: true}}
	c, err = NewCompressor(conf)
	require.NoError(t, err)
	assert.IsType(t, &ZstdCompression{}, c)
	c.Close()
}
