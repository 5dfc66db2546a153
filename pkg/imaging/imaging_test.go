package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1)), nil))
	return buf.Bytes()
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("image/jpeg"))
	assert.True(t, Allowed("image/jpg"))
	assert.True(t, Allowed("IMAGE/PNG"))
	assert.False(t, Allowed("image/gif"))
	assert.False(t, Allowed("text/plain"))
}

func TestExt(t *testing.T) {
	assert.Equal(t, ".png", Ext("image/png"))
	assert.Equal(t, ".jpg", Ext("image/jpeg"))
	assert.Equal(t, ".jpg", Ext("image/jpg"))
}

func TestVerifyMatchingPayload(t *testing.T) {
	assert.NoError(t, Verify(encodePNG(t), "image/png"))
	assert.NoError(t, Verify(encodeJPEG(t), "image/jpeg"))
	// image/jpg is an alias for jpeg
	assert.NoError(t, Verify(encodeJPEG(t), "image/jpg"))
}

func TestVerifyMismatchedPayload(t *testing.T) {
	assert.Error(t, Verify(encodePNG(t), "image/jpeg"))
	assert.Error(t, Verify(encodeJPEG(t), "image/png"))
}

func TestVerifyGarbagePayload(t *testing.T) {
	assert.Error(t, Verify([]byte("definitely not an image"), "image/png"))
}

func TestVerifyUnsupportedType(t *testing.T) {
	assert.Error(t, Verify(encodePNG(t), "image/gif"))
}
