package render

import (
	"image"
	"image/png"
	"io"
)

// WritePNG encodes the raster image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
