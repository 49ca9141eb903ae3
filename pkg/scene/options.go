package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by ByName for names that are not built in
var ErrUnknownScene = errors.New("scene: unknown scene")

// DefaultSeed seeds scene generation when Options leaves Seed unset
const DefaultSeed int64 = 42

// Options overrides parts of a built-in scene's defaults. Zero values keep the default,
// so a MaxDepth of 0 means the scene's own depth rather than a depth of zero bounces.
type Options struct {
	Width           int                // Image width; height follows from the scene's aspect ratio
	SamplesPerPixel int                // Rays per pixel
	MaxDepth        int                // Maximum ray bounce depth
	Seed            int64              // Seed for random scene layout and the BVH build
	Heuristic       geometry.Heuristic // BVH split heuristic; the zero value is random axis
}

// apply merges the overrides into a scene's camera and sampling configuration
func (o Options) apply(cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) (renderer.CameraConfig, renderer.SamplingConfig) {
	if o.Width > 0 {
		cameraConfig.Width = o.Width
	}
	if o.SamplesPerPixel > 0 {
		samplingConfig.SamplesPerPixel = o.SamplesPerPixel
	}
	if o.MaxDepth > 0 {
		samplingConfig.MaxDepth = o.MaxDepth
	}

	samplingConfig.Width = cameraConfig.Width
	samplingConfig.Height = cameraConfig.Height()
	return cameraConfig, samplingConfig
}

func (o Options) seed() int64 {
	if o.Seed == 0 {
		return DefaultSeed
	}
	return o.Seed
}

// builder creates an unprocessed scene
type builder func(opts Options) (*Scene, error)

var builtins = map[string]builder{
	"random-spheres": NewRandomSpheresScene,
	"default":        NewDefaultScene,
	"single-sphere":  NewSingleSphereScene,
	"glass":          NewGlassScene,
	"quads":          NewQuadsScene,
	"sphere-grid":    NewSphereGridScene,
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named scene and preprocesses it so it is ready to render
func ByName(name string, opts Options, logger core.Logger) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	s, err := build(opts)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}
	if err := s.Preprocess(logger); err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}
	return s, nil
}
