// Package imaging decodes uploaded images, downscales oversized ones and
// re-encodes them for storage. Decoding also strips any EXIF metadata.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Upper bound on decoded pixel data. A crafted header can claim 65535x65535
// and make image.Decode allocate ~16GB, so dimensions are checked before
// the full decode.
const maxDecodedBytes = 256 << 20

type Processed struct {
	Data     []byte
	MimeType string
	Ext      string
	Width    int
	Height   int
}

// Downscale decodes an image, scales it down so neither dimension exceeds
// maxSize (aspect ratio preserved, never upscaled) and re-encodes it in its
// source format. JPEG output uses the given quality; GIF animations collapse
// to their first frame.
func Downscale(r io.ReadSeeker, maxSize, jpegQuality int) (*Processed, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image dimensions: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height)*4 > maxDecodedBytes {
		return nil, fmt.Errorf("image too large: %dx%d pixels", cfg.Width, cfg.Height)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind image data: %w", err)
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = scaleDown(img, maxSize)
	bounds := img.Bounds()

	var buf bytes.Buffer
	var mimeType, ext string
	switch format {
	case "png":
		mimeType, ext = "image/png", ".png"
		err = png.Encode(&buf, img)
	case "gif":
		mimeType, ext = "image/gif", ".gif"
		err = gif.Encode(&buf, img, &gif.Options{NumColors: 256})
	default:
		mimeType, ext = "image/jpeg", ".jpg"
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &Processed{
		Data:     buf.Bytes(),
		MimeType: mimeType,
		Ext:      ext,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, nil
}

func scaleDown(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxSize && h <= maxSize {
		return img
	}

	ratio := float64(maxSize) / float64(w)
	if hr := float64(maxSize) / float64(h); hr < ratio {
		ratio = hr
	}
	dw := int(float64(w) * ratio)
	dh := int(float64(h) * ratio)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
