package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// quadPadding keeps axis-aligned quads from producing flat bounding boxes
const quadPadding = 1e-4

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Point        // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Unit normal (U × V normalized)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: n·p = d
	W        core.Vec3         // Cached n / (n·(U×V)) for barycentric coordinates
	bounds   core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner core.Point, u, v core.Vec3, material material.Material) (*Quad, error) {
	cross := u.Cross(v)
	if cross.IsNearZero() {
		return nil, fmt.Errorf("%w: u=%v v=%v", ErrDegenerateQuad, u, v)
	}

	normal := cross.Normalize()

	diagonal := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	antiDiagonal := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner.Vec()),
		W:        cross.Divide(cross.Dot(cross)),
		bounds:   diagonal.Union(antiDiagonal).Pad(quadPadding),
	}, nil
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray is parallel to the quad's plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Vec().Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the padded bounding box of the quad
func (q *Quad) BoundingBox() (core.AABB, bool) {
	return q.bounds, true
}
