package imageutil

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyway-ai/skyway-go/chat"
)

// makePNG encodes a solid-color PNG of the given size.
func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// pngHeader builds just a PNG signature and IHDR chunk declaring the
// given dimensions. Enough for DecodeConfig; there is no pixel data.
func pngHeader(w, h int) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a})

	data := make([]byte, 13)
	binary.BigEndian.PutUint32(data[0:4], uint32(w))
	binary.BigEndian.PutUint32(data[4:8], uint32(h))
	data[8] = 8 // bit depth
	data[9] = 6 // RGBA
	// compression, filter, interlace all zero

	var length [4]byte
	binary.BigEndian.PutUint32(length[:], 13)
	buf.Write(length[:])
	buf.WriteString("IHDR")
	buf.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte("IHDR"))
	crc.Write(data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	buf.Write(sum[:])

	return buf.Bytes()
}

func decodeSize(t *testing.T, pngBytes []byte) (int, int) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	require.Equal(t, "png", format)
	return cfg.Width, cfg.Height
}

func TestResize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxSize      int
		wantW, wantH int
	}{
		{name: "landscape scales to width", w: 1000, h: 750, maxSize: 800, wantW: 800, wantH: 600},
		{name: "portrait scales to height", w: 750, h: 1000, maxSize: 800, wantW: 600, wantH: 800},
		{name: "wide aspect", w: 1920, h: 1080, maxSize: 800, wantW: 800, wantH: 450},
		{name: "already within bounds unchanged", w: 600, h: 400, maxSize: 800, wantW: 600, wantH: 400},
		{name: "square", w: 1600, h: 1600, maxSize: 400, wantW: 400, wantH: 400},
		{name: "extreme aspect never rounds to zero", w: 5000, h: 2, maxSize: 100, wantW: 100, wantH: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Resize(makePNG(t, tt.w, tt.h), tt.maxSize)
			require.NoError(t, err)

			gotW, gotH := decodeSize(t, out)
			assert.Equal(t, tt.wantW, gotW)
			assert.Equal(t, tt.wantH, gotH)
		})
	}
}

func TestResizeErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Resize(nil, 800)
		assert.ErrorIs(t, err, ErrEmptyImage)
	})

	t.Run("non-positive max size", func(t *testing.T) {
		for _, size := range []int{0, -1} {
			_, err := Resize(makePNG(t, 10, 10), size)
			assert.ErrorIs(t, err, ErrInvalidSize)
		}
	})

	t.Run("not an image", func(t *testing.T) {
		_, err := Resize([]byte("definitely not an image"), 800)
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})
}

func TestCheckDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{name: "at the limit", w: MaxDimension, h: MaxDimension},
		{name: "width over", w: MaxDimension + 1, h: 100, wantErr: true},
		{name: "height over", w: 100, h: MaxDimension + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkDimensions(pngHeader(tt.w, tt.h))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var dimErr *DimensionError
			require.ErrorAs(t, err, &dimErr)
			assert.Equal(t, tt.w, dimErr.Width)
			assert.Equal(t, tt.h, dimErr.Height)
			assert.Contains(t, err.Error(), "8192x8192")
		})
	}
}

func TestResizeRejectsOversizedHeader(t *testing.T) {
	// Header-only input: rejected by the dimension check before pixel
	// decoding is ever attempted.
	_, err := Resize(pngHeader(100000, 100000), 800)

	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 100000, dimErr.Width)
}

func TestToPNGBase64(t *testing.T) {
	b64, err := ToPNGBase64(makePNG(t, 20, 10))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(b64)
	require.NoError(t, err)

	w, h := decodeSize(t, raw)
	assert.Equal(t, 20, w)
	assert.Equal(t, 10, h)
}

func TestToContentPart(t *testing.T) {
	t.Run("data uri", func(t *testing.T) {
		part, err := ToContentPart(makePNG(t, 10, 10))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(part.ImageURL.URL, "data:image/png;base64,"))
		assert.Empty(t, part.ImageURL.Detail)
	})

	t.Run("with detail and max size", func(t *testing.T) {
		part, err := ToContentPart(makePNG(t, 1000, 500),
			WithMaxSize(100), WithDetail(chat.DetailLow))
		require.NoError(t, err)

		assert.Equal(t, chat.DetailLow, part.ImageURL.Detail)

		b64 := strings.TrimPrefix(part.ImageURL.URL, "data:image/png;base64,")
		raw, err := base64.StdEncoding.DecodeString(b64)
		require.NoError(t, err)

		w, h := decodeSize(t, raw)
		assert.Equal(t, 100, w)
		assert.Equal(t, 50, h)
	})

	t.Run("error propagates", func(t *testing.T) {
		_, err := ToContentPart(nil)
		assert.ErrorIs(t, err, ErrEmptyImage)
	})
}
