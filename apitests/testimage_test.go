package apitests

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltImageIsDecodablePNG(t *testing.T) {
	data := testImagePNG()

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "built image should be a valid PNG")

	bounds := img.Bounds()
	assert.Equal(t, 1, bounds.Dx())
	assert.Equal(t, 1, bounds.Dy())

	r, g, b, _ := img.At(bounds.Min.X, bounds.Min.Y).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
}

func TestBuiltImageStartsWithPNGSignature(t *testing.T) {
	data := testImagePNG()
	require.Greater(t, len(data), len(pngSignature))
	assert.Equal(t, pngSignature, data[:len(pngSignature)])
}

func TestBase64FormDecodesToSameBytes(t *testing.T) {
	decoded, err := base64.StdEncoding.DecodeString(testImageBase64())
	require.NoError(t, err)
	assert.Equal(t, testImagePNG(), decoded)
}
