package material

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// Glossy is a diffuse surface that turns mirror-like at grazing angles.
// A hit reflects with probability 1 - |d̂·n| and scatters like Lambertian otherwise.
type Glossy struct {
	Albedo core.Color
}

// NewGlossy creates a new glossy material
func NewGlossy(albedo core.Color) *Glossy {
	return &Glossy{Albedo: albedo}
}

// Scatter implements the Material interface for glossy scattering
func (g *Glossy) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflectProbability := 1.0 - math.Abs(rayIn.Direction.Normalize().Dot(hit.Normal))

	var scatterDirection core.Vec3
	if sampler.Get1D() < reflectProbability {
		scatterDirection = reflect(rayIn.Direction, hit.Normal)
	} else {
		scatterDirection = hit.Normal.Add(core.SampleUnitVector(sampler))
	}

	if scatterDirection.IsNearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: g.Albedo,
	}, true
}
