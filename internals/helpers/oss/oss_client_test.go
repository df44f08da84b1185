package helper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestConvertToWebPDownscales(t *testing.T) {
	data := pngBytes(t, 64, 32)

	out, err := convertToWebP(data, "photo.png", WebPOptions{MaxW: 16, MaxH: 16, Quality: 80})
	require.NoError(t, err)

	decoded, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	b := decoded.Bounds()
	assert.LessOrEqual(t, b.Dx(), 16)
	assert.LessOrEqual(t, b.Dy(), 16)
	// aspect ratio preserved
	assert.Equal(t, b.Dx()/2, b.Dy())
}

func TestConvertToWebPKeepsSmallImages(t *testing.T) {
	data := pngBytes(t, 8, 8)

	out, err := convertToWebP(data, "icon.png", WebPOptions{MaxW: 100, MaxH: 100, Quality: 80})
	require.NoError(t, err)

	decoded, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 8, decoded.Bounds().Dx())
}

func TestConvertToWebPRejectsGarbage(t *testing.T) {
	_, err := convertToWebP([]byte("definitely not an image"), "file.txt", WebPOptions{})
	assert.Error(t, err)

	_, err = convertToWebP(nil, "empty.png", WebPOptions{})
	assert.Error(t, err)
}

func TestRandomizeFilename(t *testing.T) {
	got := randomizeFilename("photo.png")
	assert.NotEqual(t, "photo.png", got)
	assert.Contains(t, got, "photo-")
	assert.Contains(t, got, ".png")
}

func TestWebpFilename(t *testing.T) {
	assert.Equal(t, "photo.webp", webpFilename("photo.png"))
	assert.Equal(t, "deck.webp", webpFilename("/tmp/deck.jpeg"))
}
