package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by a fresh generator for the given seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// SampleRange returns a uniform value in [lo, hi)
func SampleRange(sampler Sampler, lo, hi float64) float64 {
	return lo + (hi-lo)*sampler.Get1D()
}

// SampleVec3 returns a vector whose components are uniform in [lo, hi)
func SampleVec3(sampler Sampler, lo, hi float64) Vec3 {
	return Vec3{
		X: SampleRange(sampler, lo, hi),
		Y: SampleRange(sampler, lo, hi),
		Z: SampleRange(sampler, lo, hi),
	}
}

// SampleInUnitSphere rejection-samples a point strictly inside the unit sphere
func SampleInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := SampleVec3(sampler, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// SampleUnitVector returns a direction uniformly distributed on the unit sphere
func SampleUnitVector(sampler Sampler) Vec3 {
	for {
		p := SampleInUnitSphere(sampler)
		// The origin itself has no direction; draw again
		if p.LengthSquared() > 0 {
			return p.Normalize()
		}
	}
}

// SampleInUnitDisk rejection-samples a point inside the unit disk on the z=0 plane (for depth of field)
func SampleInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := NewVec3(SampleRange(sampler, -1, 1), SampleRange(sampler, -1, 1), 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// SampleColor returns a color with channels uniform in [lo, hi)
func SampleColor(sampler Sampler, lo, hi float64) Color {
	v := SampleVec3(sampler, lo, hi)
	return Color{R: v.X, G: v.Y, B: v.Z}
}
