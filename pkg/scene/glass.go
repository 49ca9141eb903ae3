package scene

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

// NewGlassScene creates a row of dielectric spheres with increasing refractive index
// over a checker of diffuse tiles, plus a tinted and a hollow sphere
func NewGlassScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewPoint(0, 1.5, 5),
		LookAt:        core.NewPoint(0, 0.5, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         600,
		AspectRatio:   2.0,
		VFov:          35.0,
		Aperture:      0.0,
		FocusDistance: 0.0,
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 200,
		MaxDepth:        25,
	}

	s := newScene(cameraConfig, samplingConfig, opts)

	// Checker floor so refraction is visible through the spheres
	light := material.NewLambertian(core.NewColor(0.8, 0.8, 0.8))
	dark := material.NewLambertian(core.NewColor(0.2, 0.3, 0.1))
	const tiles = 8
	const tileSize = 1.0
	for i := 0; i < tiles; i++ {
		for j := 0; j < tiles; j++ {
			mat := light
			if (i+j)%2 == 1 {
				mat = dark
			}
			corner := core.NewPoint(float64(i-tiles/2)*tileSize, 0, float64(j-tiles/2)*tileSize)
			tile, err := geometry.NewQuad(corner, core.NewVec3(0, 0, tileSize), core.NewVec3(tileSize, 0, 0), mat)
			if err != nil {
				return nil, err
			}
			s.Shapes = append(s.Shapes, tile)
		}
	}

	// Water, glass, sapphire and diamond
	for i, ior := range []float64{1.33, 1.5, 1.77, 2.42} {
		center := core.NewPoint(-1.8+1.2*float64(i), 0.5, 0)
		s.Shapes = append(s.Shapes, geometry.NewSphere(center, 0.5, material.NewDielectric(ior)))
	}

	tinted := material.NewTintedDielectric(core.NewColor(0.7, 0.9, 1.0), 1.5)
	s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewPoint(-0.6, 0.3, 1.2), 0.3, tinted))

	// A thin glass shell reads as a bubble
	shell := material.NewDielectric(1.5)
	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewPoint(0.6, 0.3, 1.2), 0.3, shell),
		geometry.NewSphere(core.NewPoint(0.6, 0.3, 1.2), -0.28, shell),
	)

	return s, nil
}
