// Package imageutil converts raster images into base64-encoded PNG
// content parts for multimodal chat messages.
//
// Any format with a registered decoder is accepted (PNG, JPEG, GIF, plus
// WebP, BMP and TIFF via golang.org/x/image) and re-encoded as PNG.
// Images whose header declares a dimension beyond MaxDimension are
// rejected before pixel decoding, so a compact file claiming an enormous
// uncompressed size cannot force a large allocation.
//
//	jpegBytes, _ := os.ReadFile("photo.jpg")
//
//	// Convert to a PNG data-URI content part
//	part, err := imageutil.ToContentPart(jpegBytes)
//
//	// Resize to max 800px (proportional) with a detail level
//	part, err = imageutil.ToContentPart(jpegBytes,
//	    imageutil.WithMaxSize(800), imageutil.WithDetail(chat.DetailHigh))
//
//	// Resize only (raw PNG bytes)
//	pngBytes, err := imageutil.Resize(jpegBytes, 800)
package imageutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	"golang.org/x/image/draw"

	"github.com/skyway-ai/skyway-go/chat"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxDimension is the largest width or height accepted, in pixels.
// A 16384x16384 RGBA image is ~1 GB in memory; capping at 8192 keeps a
// decompression bomb from allocating it.
const MaxDimension = 8192

// Option configures a conversion.
type Option func(*options)

type options struct {
	maxSize int
	detail  chat.Detail
}

// WithMaxSize resizes the image proportionally so neither dimension
// exceeds px before encoding.
func WithMaxSize(px int) Option {
	return func(o *options) {
		o.maxSize = px
	}
}

// WithDetail sets the detail level on the produced content part.
func WithDetail(d chat.Detail) Option {
	return func(o *options) {
		o.detail = d
	}
}

// Resize decodes imageBytes, scales it proportionally so the larger
// dimension equals maxSize, and returns PNG-encoded bytes. An image
// already within maxSize in both dimensions is returned re-encoded as
// PNG, unchanged. The aspect ratio is always preserved.
//
//	// 4000x3000 at max 800 -> 800x600
//	// 3000x4000 at max 800 -> 600x800
//	// 1920x1080 at max 800 -> 800x450
//	// 600x400 at max 800   -> 600x400 (no change)
func Resize(imageBytes []byte, maxSize int) ([]byte, error) {
	if len(imageBytes) == 0 {
		return nil, ErrEmptyImage
	}
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSize, maxSize)
	}

	if err := checkDimensions(imageBytes); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}

	return encodePNG(scaleDown(img, maxSize))
}

// ToPNGBase64 converts imageBytes (any supported format) to a
// base64-encoded PNG string, resizing first when WithMaxSize is given.
func ToPNGBase64(imageBytes []byte, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var pngBytes []byte
	var err error
	if o.maxSize != 0 {
		pngBytes, err = Resize(imageBytes, o.maxSize)
	} else {
		pngBytes, err = reencode(imageBytes)
	}
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(pngBytes), nil
}

// ToContentPart converts imageBytes to an image content part whose URL
// is a data:image/png;base64 URI, honoring WithMaxSize and WithDetail.
//
//	part, err := imageutil.ToContentPart(jpegBytes, imageutil.WithMaxSize(800))
//	msg := chat.UserMessageParts(chat.Text("Describe this"), part)
func ToContentPart(imageBytes []byte, opts ...Option) (chat.ImagePart, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	b64, err := ToPNGBase64(imageBytes, opts...)
	if err != nil {
		return chat.ImagePart{}, err
	}

	if o.detail != "" {
		return chat.ImageBase64WithDetail("image/png", b64, o.detail), nil
	}
	return chat.ImageBase64("image/png", b64), nil
}

// reencode decodes and re-encodes as PNG without resizing.
func reencode(imageBytes []byte) ([]byte, error) {
	if len(imageBytes) == 0 {
		return nil, ErrEmptyImage
	}

	if err := checkDimensions(imageBytes); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}

	return encodePNG(img)
}

// scaleDown scales img proportionally so the larger dimension fits
// within maxSize. Returns img unchanged when already within bounds.
func scaleDown(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w <= maxSize && h <= maxSize {
		return img
	}

	scale := float64(maxSize) / float64(max(w, h))
	newW := max(1, int(math.Round(float64(w)*scale)))
	newH := max(1, int(math.Round(float64(h)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// checkDimensions reads only the image header and rejects dimensions
// beyond MaxDimension. Runs before full pixel decoding so oversized
// inputs are refused without allocating their pixel buffers.
func checkDimensions(imageBytes []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageBytes))
	if err != nil {
		return &DecodeError{Cause: err}
	}
	if cfg.Width > MaxDimension || cfg.Height > MaxDimension {
		return &DimensionError{Width: cfg.Width, Height: cfg.Height}
	}
	return nil
}
