package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// absorber is a material that never scatters
type absorber struct{}

func (absorber) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// countingMaterial reflects straight back and counts its invocations
type countingMaterial struct {
	attenuation core.Color
	calls       int
}

func (m *countingMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	m.calls++
	return material.ScatterResult{
		Scattered:   core.NewRay(hit.Point, hit.Normal),
		Attenuation: m.attenuation,
	}, true
}

func colorsAlmostEqual(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance && math.Abs(a.G-b.G) <= tolerance && math.Abs(a.B-b.B) <= tolerance
}

// createTestWorld creates a BVH over a single sphere for testing
func createTestWorld(t *testing.T, mat material.Material) geometry.Shape {
	t.Helper()
	sphere := geometry.NewSphere(core.NewPoint(0, 0, -1), 0.5, mat)
	world, err := geometry.NewBVH([]geometry.Shape{sphere}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}
	return world
}

func TestPathTracing_DepthTermination(t *testing.T) {
	world := createTestWorld(t, material.NewLambertian(core.NewColor(0.7, 0.3, 0.3)))
	integrator := NewPathTracingIntegrator(DefaultSky())
	sampler := core.NewSeededSampler(42)

	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))

	for _, depth := range []int{0, -1} {
		if c := integrator.RayColor(ray, world, depth, sampler); c != core.Black {
			t.Errorf("Expected black for depth %d, got %v", depth, c)
		}
	}

	if c := integrator.RayColor(ray, world, 10, sampler); c == core.Black {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestPathTracing_MissReturnsSkyGradient(t *testing.T) {
	world := createTestWorld(t, absorber{})
	sky := DefaultSky()
	integrator := NewPathTracingIntegrator(sky)
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"straight up", core.NewVec3(0, 1, 0), sky.Top},
		{"straight down", core.NewVec3(0, -1, 0), sky.Bottom},
		{"horizon", core.NewVec3(1, 0, 0), core.NewColor(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewPoint(0, 0, 5), tt.direction)
			got := integrator.RayColor(ray, world, 5, sampler)
			if !colorsAlmostEqual(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracing_AbsorptionIsBlack(t *testing.T) {
	world := createTestWorld(t, absorber{})
	integrator := NewPathTracingIntegrator(DefaultSky())

	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))
	if c := integrator.RayColor(ray, world, 10, core.NewSeededSampler(1)); c != core.Black {
		t.Errorf("Expected black for absorbing material, got %v", c)
	}
}

func TestPathTracing_AttenuationMultipliesAlongPath(t *testing.T) {
	mat := &countingMaterial{attenuation: core.NewColor(0.5, 0.25, 1.0)}
	world := createTestWorld(t, mat)
	sky := SkyGradient{Top: core.White, Bottom: core.White}
	integrator := NewPathTracingIntegrator(sky)

	// Hits the sphere head on, reflects straight back into open sky
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))
	got := integrator.RayColor(ray, world, 10, core.NewSeededSampler(1))

	if mat.calls != 1 {
		t.Fatalf("Expected exactly one scatter, got %d", mat.calls)
	}
	if !colorsAlmostEqual(got, mat.attenuation, 1e-12) {
		t.Errorf("Expected %v, got %v", mat.attenuation, got)
	}

	// With a budget of one, the scattered ray has no bounces left
	mat.calls = 0
	if c := integrator.RayColor(ray, world, 1, core.NewSeededSampler(1)); c != core.Black {
		t.Errorf("Expected truncated path to be black, got %v", c)
	}
}

func TestPathTracing_ReproducibleForSeed(t *testing.T) {
	world := createTestWorld(t, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5)))
	integrator := NewPathTracingIntegrator(DefaultSky())
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0.1, 0.05, -1))

	a := core.NewSeededSampler(7)
	b := core.NewSeededSampler(7)
	for i := 0; i < 100; i++ {
		ca := integrator.RayColor(ray, world, 25, a)
		cb := integrator.RayColor(ray, world, 25, b)
		if ca != cb {
			t.Fatalf("Sample %d differs for identical seeds: %v vs %v", i, ca, cb)
		}
	}
}
