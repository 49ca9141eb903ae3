package material

import (
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
		{"Clamp large negative", -10.0, 0.0},
	}

	albedo := core.NewColor(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewColor(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewSeededSampler(42)

	tests := []struct {
		name      string
		direction core.Vec3
		normal    core.Vec3
	}{
		{"45 degrees", core.NewVec3(0, -1, -1).Normalize(), core.NewVec3(0, 0, 1)},
		{"head on", core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0)},
		{"oblique", core.NewVec3(0.3, -0.8, 0.52).Normalize(), core.NewVec3(0.1, 1, -0.2).Normalize()},
		{"unnormalized direction", core.NewVec3(3, -3, 0), core.NewVec3(0, 1, 0)},
		{"long camera ray", core.NewVec3(-2, -7, 10), core.NewVec3(0, 0.6, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rayIn := core.NewRay(core.NewPoint(0, 1, 1), tt.direction)
			hit := HitRecord{Point: core.NewPoint(0, 0, 0), Normal: tt.normal, FrontFace: true}

			scatter, ok := metal.Scatter(rayIn, hit, sampler)
			if !ok {
				t.Fatal("Metal should scatter")
			}

			d, n := tt.direction, tt.normal
			expected := d.Subtract(n.Multiply(2 * d.Dot(n)))
			if !vecAlmostEqual(scatter.Scattered.Direction, expected, 1e-12) {
				t.Errorf("Expected %v, got %v", expected, scatter.Scattered.Direction)
			}
			if scatter.Attenuation != albedo {
				t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
			}
		})
	}
}

func TestMetal_PerfectReflectionConsumesNoRandomness(t *testing.T) {
	metal := NewMetal(core.NewColor(1, 1, 1), 0)
	sampler := &sequenceSampler{values: []float64{0.1}}
	hit := HitRecord{Point: core.NewPoint(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	metal.Scatter(core.NewRay(core.NewPoint(0, 1, 0), core.NewVec3(1, -1, 0)), hit, sampler)
	if sampler.next != 0 {
		t.Errorf("Expected no random draws for a perfect mirror, got %d", sampler.next)
	}
}

func TestMetal_FuzzyReflectionStaysWithinFuzzRadius(t *testing.T) {
	fuzz := 0.5
	metal := NewMetal(core.NewColor(0.8, 0.8, 0.8), fuzz)
	sampler := core.NewSeededSampler(42)

	rayIn := core.NewRay(core.NewPoint(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{Point: core.NewPoint(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	mirror := core.NewVec3(0, 0, 1)

	sawPerturbation := false
	for i := 0; i < 200; i++ {
		scatter, ok := metal.Scatter(rayIn, hit, sampler)
		if !ok {
			t.Fatal("Fuzzy metal should always scatter")
		}
		offset := scatter.Scattered.Direction.Subtract(mirror).Length()
		if offset >= fuzz {
			t.Fatalf("Perturbation %f exceeds fuzz radius %f", offset, fuzz)
		}
		if offset > 1e-6 {
			sawPerturbation = true
		}
	}
	if !sawPerturbation {
		t.Error("Expected fuzzy reflections to differ from the mirror direction")
	}
}

func TestMetal_ScattersEvenBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewColor(1, 1, 1), 1.0)
	// Grazing ray; fuzz sample (0,-0.9,0) pushes the reflection under the surface
	sampler := &sequenceSampler{values: []float64{0.5, 0.05, 0.5}}
	hit := HitRecord{Point: core.NewPoint(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	rayIn := core.NewRay(core.NewPoint(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))

	scatter, ok := metal.Scatter(rayIn, hit, sampler)
	if !ok {
		t.Fatal("Metal must scatter even when the fuzzed ray points into the surface")
	}
	if scatter.Scattered.Direction.Dot(hit.Normal) >= 0 {
		t.Errorf("Expected a below-surface direction for this sample, got %v", scatter.Scattered.Direction)
	}
}

func TestMetal_FuzzIsAbsoluteForLongRays(t *testing.T) {
	fuzz := 0.5
	metal := NewMetal(core.NewColor(0.8, 0.8, 0.8), fuzz)
	sampler := core.NewSeededSampler(7)

	// Camera rays span the focus distance, so they arrive far from unit length
	rayIn := core.NewRay(core.NewPoint(0, 0, 10), core.NewVec3(0, 0, -10))
	hit := HitRecord{Point: core.NewPoint(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	mirror := core.NewVec3(0, 0, 10)

	for i := 0; i < 200; i++ {
		scatter, _ := metal.Scatter(rayIn, hit, sampler)
		if offset := scatter.Scattered.Direction.Subtract(mirror).Length(); offset >= fuzz {
			t.Fatalf("Perturbation %f exceeds fuzz radius %f around the unnormalized reflection", offset, fuzz)
		}
	}
}
