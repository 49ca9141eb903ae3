package geometry

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// HittableList is a flat aggregate that tests every member in order
type HittableList struct {
	objects []Shape
}

// NewHittableList creates an aggregate over the given shapes
func NewHittableList(objects ...Shape) *HittableList {
	return &HittableList{objects: append([]Shape(nil), objects...)}
}

// Add appends a shape to the aggregate
func (l *HittableList) Add(shape Shape) {
	l.objects = append(l.objects, shape)
}

// Objects returns a snapshot of the aggregate's members
func (l *HittableList) Objects() []Shape {
	return append([]Shape(nil), l.objects...)
}

// Len returns the number of members
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Hit returns the closest intersection over all members
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.objects {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of the members' boxes.
// An empty list, or one holding an unbounded member, has no box.
func (l *HittableList) BoundingBox() (core.AABB, bool) {
	if len(l.objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, shape := range l.objects {
		shapeBox, ok := shape.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = shapeBox
		} else {
			box = box.Union(shapeBox)
		}
	}

	return box, true
}
