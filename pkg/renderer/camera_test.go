package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func TestCameraGetCameraForward(t *testing.T) {
	config := CameraConfig{
		Center:      core.NewPoint(0, 0, 0),
		LookAt:      core.NewPoint(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        45.0,
	}
	camera := NewCamera(config)

	forward := camera.GetCameraForward()
	expected := core.NewVec3(0, 0, -1)
	if forward.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected forward direction %v, got %v", expected, forward)
	}
}

func TestCameraGetRay_PinholeCorners(t *testing.T) {
	config := CameraConfig{
		Center:        core.NewPoint(0, 0, 0),
		LookAt:        core.NewPoint(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         200,
		AspectRatio:   2.0,
		VFov:          90.0,
		FocusDistance: 1.0,
	}
	camera := NewCamera(config)
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			if ray.Origin != config.Center {
				t.Errorf("Expected pinhole origin %v, got %v", config.Center, ray.Origin)
			}
			if ray.Direction.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCameraGetRay_LensStaysOnAperture(t *testing.T) {
	config := CameraConfig{
		Center:        core.NewPoint(13, 2, 3),
		LookAt:        core.NewPoint(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         300,
		AspectRatio:   1.5,
		VFov:          20,
		Aperture:      0.1,
		FocusDistance: 10,
	}
	camera := NewCamera(config)
	sampler := core.NewSeededSampler(3)
	focusPoint := config.Center.Add(camera.GetCameraForward().Multiply(10))

	for i := 0; i < 200; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		offset := ray.Origin.Subtract(config.Center)
		if offset.Length() >= 0.05+1e-12 {
			t.Fatalf("Lens offset %f exceeds radius", offset.Length())
		}
		if math.Abs(offset.Dot(camera.GetCameraForward())) > 1e-9 {
			t.Fatalf("Lens offset %v leaves the lens plane", offset)
		}
		// Every ray through the image center converges on the focus plane's center
		if ray.At(1).Subtract(focusPoint).Length() > 1e-9 {
			t.Fatalf("Ray misses the focus point: %v", ray.At(1))
		}
	}
}

func TestCameraConfig_Height(t *testing.T) {
	config := CameraConfig{Width: 1200, AspectRatio: 1.5}
	if h := config.Height(); h != 800 {
		t.Errorf("Expected height 800, got %d", h)
	}
}
