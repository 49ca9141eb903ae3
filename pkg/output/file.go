package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

// ErrUnknownFormat is returned for output formats other than png and ppm
var ErrUnknownFormat = errors.New("output: unknown format")

// Format names an image encoding
type Format string

const (
	FormatPNG Format = "png"
	FormatPPM Format = "ppm"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatPNG, FormatPPM:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Write encodes the canvas in the given format
func Write(w io.Writer, canvas *renderer.Canvas, format Format) error {
	switch format {
	case FormatPNG:
		return WritePNG(w, canvas)
	case FormatPPM:
		return WritePPM(w, canvas)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DefaultPath returns output/<scene>/render_<timestamp>.<format>
func DefaultPath(sceneName string, format Format, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.%s", timestamp, format))
}

// Save writes the canvas to path, creating parent directories as needed
func Save(path string, canvas *renderer.Canvas, format Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := Write(file, canvas, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
