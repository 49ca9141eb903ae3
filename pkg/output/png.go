package output

import (
	"fmt"
	"image/png"
	"io"

	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

// WritePNG encodes the canvas as an 8-bit PNG with the same transfer as WritePPM
func WritePNG(w io.Writer, canvas *renderer.Canvas) error {
	if err := png.Encode(w, canvas.ToImage()); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
