package scene

import (
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

// NewRandomSpheresScene creates the cover scene: a ground sphere, a grid of small random
// spheres and three large spheres of glass, diffuse and polished metal
func NewRandomSpheresScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewPoint(13, 2, 3),
		LookAt:        core.NewPoint(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         1200,
		AspectRatio:   3.0 / 2.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 500,
		MaxDepth:        25,
	}

	s := newScene(cameraConfig, samplingConfig, opts)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(s.Seed)))

	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	glass := material.NewDielectric(1.5)

	s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewPoint(0, -1000, 0), 1000, ground))

	// Keep the small spheres clear of the big metal sphere
	clearing := core.NewPoint(4, 0.2, 0)

	for x := -11; x < 11; x++ {
		for z := -11; z < 11; z++ {
			chooseMat := sampler.Get1D()
			center := core.NewPoint(
				float64(x)+0.9*sampler.Get1D(),
				0.2,
				float64(z)+0.9*sampler.Get1D(),
			)

			if center.Subtract(clearing).LengthSquared() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.SampleColor(sampler, 0, 1).MultiplyColor(core.SampleColor(sampler, 0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.SampleColor(sampler, 0.5, 1)
				fuzz := core.SampleRange(sampler, 0, 0.5)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = glass
			}

			s.Shapes = append(s.Shapes, geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewPoint(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewPoint(-4, 1, 0), 1, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewPoint(4, 1, 0), 1, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0)),
	)

	return s, nil
}
