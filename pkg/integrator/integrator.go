package integrator

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray with at most depth bounces
	RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Color
}

// SkyGradient is the ambient light seen by rays that leave the scene.
// It blends vertically from Bottom (looking straight down) to Top (straight up).
type SkyGradient struct {
	Top    core.Color
	Bottom core.Color
}

// DefaultSky returns the white-to-sky-blue gradient
func DefaultSky() SkyGradient {
	return SkyGradient{
		Top:    core.NewColor(0.5, 0.7, 1.0),
		Bottom: core.White,
	}
}

// Color returns the sky radiance for a ray direction
func (s SkyGradient) Color(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return s.Bottom.Lerp(s.Top, t)
}
