package core

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Point // Minimum corner
	Max Point // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Point) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Point) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box.Min = MinPoint(box.Min, point)
		box.Max = MaxPoint(box.Max, point)
	}

	return box
}

// Hit tests if a ray intersects with this AABB using the slab method.
// Zero direction components produce infinite slab distances, which the
// comparisons below handle without a special case.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invDirection := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (aabb.Min.Axis(axis) - origin) * invDirection
		t1 := (aabb.Max.Axis(axis) - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: MinPoint(aabb.Min, other.Min),
		Max: MaxPoint(aabb.Max, other.Max),
	}
}

// Pad returns a box widened by delta on every axis whose extent is smaller than delta
func (aabb AABB) Pad(delta float64) AABB {
	padded := aabb
	half := delta / 2
	if aabb.Max.X-aabb.Min.X < delta {
		padded.Min.X -= half
		padded.Max.X += half
	}
	if aabb.Max.Y-aabb.Min.Y < delta {
		padded.Min.Y -= half
		padded.Max.Y += half
	}
	if aabb.Max.Z-aabb.Min.Z < delta {
		padded.Min.Z -= half
		padded.Max.Z += half
	}
	return padded
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Point {
	return aabb.Min.Add(aabb.Max.Subtract(aabb.Min).Multiply(0.5))
}

// SurfaceArea returns the total area of the box's six faces
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Max.Subtract(aabb.Min)
	return 2 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) along which the box is widest.
// Ties go to the lower axis.
func (aabb AABB) LongestAxis() int {
	size := aabb.Max.Subtract(aabb.Min)
	switch {
	case size.X >= size.Y && size.X >= size.Z:
		return 0
	case size.Y >= size.Z:
		return 1
	default:
		return 2
	}
}

// Contains reports whether other lies entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
