package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

// WritePPM writes the canvas as a plain-text (P3) PPM image, rows from the top
func WritePPM(w io.Writer, canvas *renderer.Canvas) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", canvas.Width, canvas.Height); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	for y := 0; y < canvas.Height; y++ {
		for _, pixel := range canvas.Row(y) {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n",
				core.ToByte(pixel.R), core.ToByte(pixel.G), core.ToByte(pixel.B)); err != nil {
				return fmt.Errorf("writing PPM row %d: %w", y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing PPM: %w", err)
	}
	return nil
}
