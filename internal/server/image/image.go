// Package image validates and normalizes uploaded cover art. Every
// accepted upload is re-encoded to JPEG, which both bounds storage size
// and strips anything that is not pixel data.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register webp decoding
)

// Processing limits
const (
	MaxUploadBytes = 10 * 1024 * 1024 // 10 MiB
	MaxInputPixels = 40_000_000
	MaxWidth       = 5000
	MaxHeight      = 5000

	jpegQuality = 85
)

var (
	// ErrUnsupportedFormat indicates the upload is not a JPEG, PNG or WebP image
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrTooLarge indicates the upload exceeds the byte or pixel limits
	ErrTooLarge = errors.New("image too large")

	// ErrInvalidImage indicates the data could not be decoded
	ErrInvalidImage = errors.New("invalid or corrupt image")
)

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Processed is the normalized result of a validated upload.
type Processed struct {
	ContentType string
	Data        []byte
	Width       int
	Height      int
}

// Process validates raw upload bytes and returns the normalized cover:
// content sniffed (not trusting the client's declared type), pixel count
// capped, downscaled to fit MaxWidth x MaxHeight, re-encoded as JPEG.
func Process(data []byte) (*Processed, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrInvalidImage)
	}
	if len(data) > MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrTooLarge, len(data), MaxUploadBytes)
	}

	contentType := http.DetectContentType(data)
	if !allowedContentTypes[contentType] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, contentType)
	}

	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if config.Width*config.Height > MaxInputPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds the pixel limit", ErrTooLarge, config.Width, config.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	// Fit keeps the aspect ratio and never enlarges
	if img.Bounds().Dx() > MaxWidth || img.Bounds().Dy() > MaxHeight {
		img = imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)
	}

	var out bytes.Buffer
	if err := imaging.Encode(&out, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode cover: %w", err)
	}

	return &Processed{
		Data:        out.Bytes(),
		ContentType: "image/jpeg",
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
	}, nil
}
