package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-12
			if tt.result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", v)
	}
}

func TestVec3_NormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when normalizing the zero vector")
		}
	}()
	Vec3{}.Normalize()
}

func TestVec3_IsNearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).IsNearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).IsNearZero() {
		t.Error("Expected vector with one large component not to be near zero")
	}
}

func TestPoint_Displacement(t *testing.T) {
	p := NewPoint(1, 1, 1)
	q := p.Add(NewVec3(0, 2, -1))

	if q != NewPoint(1, 3, 0) {
		t.Errorf("Expected (1,3,0), got %v", q)
	}
	if d := q.Subtract(p); d != NewVec3(0, 2, -1) {
		t.Errorf("Expected displacement (0,2,-1), got %v", d)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewPoint(0, 0, 5), NewVec3(0, 0, -1))
	if p := ray.At(4); p != NewPoint(0, 0, 1) {
		t.Errorf("Expected (0,0,1), got %v", p)
	}
}

func TestColor_OutputTransfer(t *testing.T) {
	tests := []struct {
		name     string
		channel  float64
		expected uint8
	}{
		{"negative clamps to zero", -0.5, 0},
		{"zero", 0, 0},
		{"quarter is gamma encoded to half", 0.25, 128},
		{"one saturates", 1, 255},
		{"overexposed saturates", 4, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToByte(tt.channel); got != tt.expected {
				t.Errorf("ToByte(%f) = %d, expected %d", tt.channel, got, tt.expected)
			}
		})
	}
}

func TestColor_AccumulationIsUnclamped(t *testing.T) {
	c := NewColor(0.8, 0.8, 0.8).Add(NewColor(0.8, -1, 0))
	if c.R <= 1 || c.G >= 0 {
		t.Errorf("Expected intermediate color outside [0,1], got %v", c)
	}
	clamped := c.Clamp()
	if clamped != NewColor(1, 0, 0.8) {
		t.Errorf("Expected clamped (1,0,0.8), got %v", clamped)
	}
}
