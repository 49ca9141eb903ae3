package core

// Point represents a position in world space.
// It is kept apart from Vec3 so positions and directions cannot be mixed by accident.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the point displaced by a vector
func (p Point) Add(offset Vec3) Point {
	return Point{p.X + offset.X, p.Y + offset.Y, p.Z + offset.Z}
}

// Subtract returns the displacement from other to p
func (p Point) Subtract(other Point) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Vec returns the displacement of p from the origin
func (p Point) Vec() Vec3 {
	return Vec3(p)
}

// Axis returns the coordinate for axis 0=X, 1=Y, 2=Z
func (p Point) Axis(axis int) float64 {
	return Vec3(p).Axis(axis)
}

// MinPoint returns the component-wise minimum of two points
func MinPoint(a, b Point) Point {
	return Point{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// MaxPoint returns the component-wise maximum of two points
func MaxPoint(a, b Point) Point {
	return Point{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}
