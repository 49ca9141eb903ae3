package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/integrator"
)

// ErrInvalidConfig is returned when a scene's sampling configuration cannot be rendered
var ErrInvalidConfig = errors.New("renderer: invalid configuration")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 10,
		MaxDepth:        25,
	}
}

// Validate reports whether the configuration describes a renderable image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: %d samples per pixel", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: negative max depth %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetSky() integrator.SkyGradient
	GetSamplingConfig() SamplingConfig
}

// Config controls how a render is scheduled
type Config struct {
	Workers       int   // Number of row bands rendered in parallel
	Seed          int64 // Base seed; worker i samples with Seed+i
	ProgressEvery int   // Log progress every N finished scanlines per worker (0 disables)
}

// DefaultConfig returns one worker per spare CPU and a fixed seed
func DefaultConfig() Config {
	return Config{
		Workers:       WorkerCount(),
		Seed:          42,
		ProgressEvery: 25,
	}
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	camera     *Camera
	world      geometry.Shape
	sampling   SamplingConfig
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a new raytracer for the scene
func NewRaytracer(scene Scene, config Config, logger core.Logger) (*Raytracer, error) {
	sampling := scene.GetSamplingConfig()
	if err := sampling.Validate(); err != nil {
		return nil, err
	}
	if scene.GetWorld() == nil {
		return nil, fmt.Errorf("%w: scene has no world", ErrInvalidConfig)
	}
	if config.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoWorkers, config.Workers)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:      scene,
		camera:     scene.GetCamera(),
		world:      scene.GetWorld(),
		sampling:   sampling,
		integrator: integrator.NewPathTracingIntegrator(scene.GetSky()),
		config:     config,
		logger:     logger,
	}, nil
}

// SamplingConfig returns the sampling configuration taken from the scene
func (rt *Raytracer) SamplingConfig() SamplingConfig {
	return rt.sampling
}

// Render renders the whole image on a pool of workers and returns the canvas
func (rt *Raytracer) Render() (*Canvas, RenderStats, error) {
	start := time.Now()
	canvas := NewCanvas(rt.sampling.Width, rt.sampling.Height)

	pool, err := NewWorkerPool(rt, rt.config.Workers)
	if err != nil {
		return nil, RenderStats{}, err
	}

	rt.logger.Printf("Rendering %dx%d, %d spp, max depth %d on %d workers\n",
		rt.sampling.Width, rt.sampling.Height, rt.sampling.SamplesPerPixel, rt.sampling.MaxDepth, pool.GetNumWorkers())

	stats := pool.Render(canvas)
	stats.SamplesPerPixel = rt.sampling.SamplesPerPixel
	stats.Duration = time.Since(start)

	rt.logger.Printf("Render complete in %v (%d pixels, %d samples)\n",
		stats.Duration.Round(time.Millisecond), stats.TotalPixels, stats.TotalSamples)

	return canvas, stats, nil
}

// RenderPixel averages SamplesPerPixel jittered camera rays through pixel (x, y).
// Row 0 is the top of the image, so the vertical coordinate is flipped for the camera.
func (rt *Raytracer) RenderPixel(x, y int, sampler core.Sampler) core.Color {
	width := float64(rt.sampling.Width)
	height := float64(rt.sampling.Height)

	colorAccum := core.Black
	for sample := 0; sample < rt.sampling.SamplesPerPixel; sample++ {
		u := (float64(x) + sampler.Get1D()) / width
		v := 1.0 - (float64(y)+sampler.Get1D())/height

		ray := rt.camera.GetRay(u, v, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, rt.sampling.MaxDepth, sampler))
	}

	return colorAccum.Multiply(1.0 / float64(rt.sampling.SamplesPerPixel))
}

// RenderRows renders the rows of a band into the canvas.
// onRow is called after each finished scanline with the number of rows done so far.
func (rt *Raytracer) RenderRows(canvas *Canvas, rows RowRange, sampler core.Sampler, onRow func(done int)) RenderStats {
	stats := RenderStats{Workers: 1}

	for y := rows.Start; y < rows.End; y++ {
		row := canvas.Row(y)
		for x := range row {
			row[x] = rt.RenderPixel(x, y, sampler)
		}
		stats.TotalPixels += len(row)
		stats.TotalSamples += len(row) * rt.sampling.SamplesPerPixel

		if onRow != nil {
			onRow(y - rows.Start + 1)
		}
	}

	return stats
}
