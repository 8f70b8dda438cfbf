package media

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestNormalize_ShrinksLongestSide(t *testing.T) {
	out, err := Normalize(pngOf(t, 400, 200), 100, 0)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestNormalize_KeepsSmallImages(t *testing.T) {
	out, err := Normalize(pngOf(t, 40, 60), 512, 10_000)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 60, cfg.Height)
}

func TestNormalize_RejectsGarbage(t *testing.T) {
	_, err := Normalize(strings.NewReader("definitely not an image"), 100, 0)
	assert.ErrorIs(t, err, ErrUnsupported)
}

// pngHeader is a PNG signature plus an IHDR chunk declaring w x h 8-bit
// grayscale. There is no pixel data, so only DecodeConfig can succeed on it.
func pngHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	chunk := make([]byte, 0, 17)
	chunk = append(chunk, "IHDR"...)
	chunk = binary.BigEndian.AppendUint32(chunk, w)
	chunk = binary.BigEndian.AppendUint32(chunk, h)
	chunk = append(chunk, 8, 0, 0, 0, 0)

	_ = binary.Write(&buf, binary.BigEndian, uint32(len(chunk)-4))
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestNormalize_RejectsHugeDimensionsBeforeDecoding(t *testing.T) {
	header := pngHeader(60000, 60000)

	cfg, err := png.DecodeConfig(bytes.NewReader(header))
	require.NoError(t, err)
	require.Equal(t, 60000, cfg.Width)

	_, err = Normalize(bytes.NewReader(header), 512, 25_000_000)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestNormalize_PixelCapIsInclusive(t *testing.T) {
	_, err := Normalize(pngOf(t, 50, 40), 512, 2000)
	require.NoError(t, err)

	_, err = Normalize(pngOf(t, 50, 41), 512, 2000)
	assert.ErrorIs(t, err, ErrTooLarge)
}
