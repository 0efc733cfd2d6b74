package platform

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultThumbnailSide bounds the longer edge of gallery thumbnails
const DefaultThumbnailSide = 320

// DecodeImage decodes any registered format (png, jpeg, gif, bmp, tiff, webp)
func DecodeImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Thumbnail scales src so its longer edge is at most maxSide.
// Images already within bounds are returned unchanged.
func Thumbnail(src image.Image, maxSide int) image.Image {
	if src == nil || maxSide <= 0 {
		return src
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return src
	}

	var tw, th int
	if w >= h {
		tw = maxSide
		th = h * maxSide / w
	} else {
		th = maxSide
		tw = w * maxSide / h
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
