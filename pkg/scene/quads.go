package scene

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

// NewQuadsScene creates five colored quads arranged around the view axis
func NewQuadsScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewPoint(0, 0, 9),
		LookAt:      core.NewPoint(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0, // Square aspect ratio
		VFov:        80.0,
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        25,
	}

	s := newScene(cameraConfig, samplingConfig, opts)

	// Create materials
	leftRed := material.NewLambertian(core.NewColor(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewColor(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewColor(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewColor(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewColor(0.2, 0.8, 0.8))

	walls := []struct {
		corner core.Point
		u, v   core.Vec3
		mat    material.Material
	}{
		// Left wall - YZ plane at x=-3
		{core.NewPoint(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed},
		// Back wall - XY plane at z=0
		{core.NewPoint(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen},
		// Right wall - YZ plane at x=3
		{core.NewPoint(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue},
		// Ceiling - XZ plane at y=3
		{core.NewPoint(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange},
		// Floor - XZ plane at y=-3
		{core.NewPoint(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal},
	}

	for _, wall := range walls {
		quad, err := geometry.NewQuad(wall.corner, wall.u, wall.v, wall.mat)
		if err != nil {
			return nil, err
		}
		s.Shapes = append(s.Shapes, quad)
	}

	return s, nil
}
