package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	// U × V points down (-Y), so rays travelling upward hit the front face
	quad, err := NewQuad(core.NewPoint(-1, 0, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), nil)
	if err != nil {
		t.Fatalf("NewQuad failed: %v", err)
	}

	tests := []struct {
		name          string
		ray           core.Ray
		expectHit     bool
		expectedT     float64
		expectedFront bool
	}{
		{"from below through center", core.NewRay(core.NewPoint(0, -1, 0), core.NewVec3(0, 1, 0)), true, 1, true},
		{"from above through center", core.NewRay(core.NewPoint(0, 2, 0), core.NewVec3(0, -1, 0)), true, 2, false},
		{"outside the edges", core.NewRay(core.NewPoint(1.5, 2, 0), core.NewVec3(0, -1, 0)), false, 0, false},
		{"parallel to plane", core.NewRay(core.NewPoint(0, 1, 0), core.NewVec3(1, 0, 0)), false, 0, false},
		{"pointing away", core.NewRay(core.NewPoint(0, 1, 0), core.NewVec3(0, 1, 0)), false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := quad.Hit(tt.ray, 0.001, 1000)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
		})
	}
}

func TestQuad_BoundingBoxIsPadded(t *testing.T) {
	quad, err := NewQuad(core.NewPoint(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), nil)
	if err != nil {
		t.Fatalf("NewQuad failed: %v", err)
	}

	box, ok := quad.BoundingBox()
	if !ok {
		t.Fatal("Expected quad to be bounded")
	}
	if box.Max.Y-box.Min.Y <= 0 {
		t.Errorf("Expected padded thickness on Y, got %v", box)
	}

	// A ray crossing the plane must pass the box test, otherwise a BVH would hide the quad
	ray := core.NewRay(core.NewPoint(0.5, 1, 0.5), core.NewVec3(0, -1, 0))
	if !box.Hit(ray, 0.001, 1000) {
		t.Error("Expected ray through the quad to hit its bounding box")
	}
}

func TestNewQuad_Degenerate(t *testing.T) {
	_, err := NewQuad(core.NewPoint(0, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(2, 2, 0), nil)
	if !errors.Is(err, ErrDegenerateQuad) {
		t.Errorf("Expected ErrDegenerateQuad, got %v", err)
	}
}
