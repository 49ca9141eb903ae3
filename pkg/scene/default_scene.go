package scene

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewPoint(0, 0.75, 2), // Position camera higher and farther back
		LookAt:        core.NewPoint(0, 0.5, -1), // Look at the sphere center
		Up:            core.NewVec3(0, 1, 0),     // Standard up direction
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0, // Narrower field of view for focus effect
		Aperture:      0.05, // Strong depth of field blur
		FocusDistance: 0.0,  // Auto-calculate focus distance
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        25,
	}

	s := newScene(cameraConfig, samplingConfig, opts)

	// Create materials
	lambertianGreen := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	metalSilver := material.NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)
	glossyRed := material.NewGlossy(core.NewColor(0.65, 0.25, 0.2))

	// Create ground quad instead of infinite plane (large but finite for proper bounds)
	groundQuad, err := NewGroundQuad(core.NewPoint(0, 0, 0), 10000.0, lambertianGreen)
	if err != nil {
		return nil, err
	}

	// Create spheres with different materials
	sphereCenter := geometry.NewSphere(core.NewPoint(0, 0.5, -1), 0.5, glossyRed)
	sphereLeft := geometry.NewSphere(core.NewPoint(-1, 0.5, -1), 0.5, metalSilver)
	sphereRight := geometry.NewSphere(core.NewPoint(1, 0.5, -1), 0.5, metalGold)
	solidGlassSphere := geometry.NewSphere(core.NewPoint(0.5, 0.25, -0.5), 0.25, materialGlass)

	// Hollow glass sphere with a blue sphere inside; the negative radius flips the inner shell's normals
	hollowGlassOuter := geometry.NewSphere(core.NewPoint(-0.5, 0.25, -0.5), 0.25, materialGlass)
	hollowGlassInner := geometry.NewSphere(core.NewPoint(-0.5, 0.25, -0.5), -0.24, materialGlass)
	hollowGlassCenter := geometry.NewSphere(core.NewPoint(-0.5, 0.25, -0.5), 0.20, lambertianBlue)

	s.Shapes = append(s.Shapes, sphereCenter, sphereLeft, sphereRight, groundQuad,
		solidGlassSphere, hollowGlassOuter, hollowGlassInner, hollowGlassCenter)

	return s, nil
}

// NewSingleSphereScene creates one diffuse sphere against the sky gradient
func NewSingleSphereScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewPoint(0, 0, 0),
		LookAt:      core.NewPoint(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        25,
	}

	s := newScene(cameraConfig, samplingConfig, opts)
	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewPoint(0, 0, -1), 0.5, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))))

	return s, nil
}
