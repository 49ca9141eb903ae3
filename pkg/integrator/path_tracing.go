package integrator

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance; it keeps scattered rays from re-hitting their own origin
const ShadowAcneEpsilon = 1e-3

// PathTracingIntegrator implements recursive unidirectional path tracing.
// Paths longer than the depth budget are cut off to black.
type PathTracingIntegrator struct {
	sky SkyGradient
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(sky SkyGradient) *PathTracingIntegrator {
	return &PathTracingIntegrator{sky: sky}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Black
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.sky.Color(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Black
	}

	return scatter.Attenuation.MultiplyColor(pt.RayColor(scatter.Scattered, world, depth-1, sampler))
}
