package geometry

import (
	"errors"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// BoundingBox reports false for shapes without finite bounds.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() (core.AABB, bool)
}

var (
	// ErrEmptyBVH is returned when a BVH is requested over no shapes
	ErrEmptyBVH = errors.New("bvh: no shapes to build from")
	// ErrUnboundedShape is returned when a shape without a bounding box reaches the BVH builder
	ErrUnboundedShape = errors.New("bvh: shape has no bounding box")
	// ErrUnknownHeuristic is returned for BVH split heuristics that do not exist
	ErrUnknownHeuristic = errors.New("bvh: unknown split heuristic")
	// ErrDegenerateQuad is returned for quads whose edges are parallel
	ErrDegenerateQuad = errors.New("quad: edge vectors are linearly dependent")
)
