package geometry

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Children are either further nodes or the scene's shapes themselves; a
// single-shape range stores that shape in both children.
type BVHNode struct {
	Left        Shape
	Right       Shape
	boundingBox core.AABB
	aliased     bool // Left and Right are the same shape
}

// Heuristic selects how the BVH builder chooses the split of every node
type Heuristic int

const (
	// RandomAxis sorts along a uniformly random axis and splits at the median
	RandomAxis Heuristic = iota
	// LongestAxis sorts along the widest axis of the node's bounds and splits at the median
	LongestAxis
	// SurfaceArea picks the axis and split position with the lowest summed surface area cost
	SurfaceArea
)

var heuristicNames = map[Heuristic]string{
	RandomAxis:  "random",
	LongestAxis: "longest",
	SurfaceArea: "sah",
}

// String returns the name accepted by ParseHeuristic
func (h Heuristic) String() string {
	if name, ok := heuristicNames[h]; ok {
		return name
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// ParseHeuristic maps "random", "longest" or "sah" to a Heuristic
func ParseHeuristic(name string) (Heuristic, error) {
	for h, n := range heuristicNames {
		if n == name {
			return h, nil
		}
	}
	return RandomAxis, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// NewBVH constructs a BVH over the given shapes using random axis splits.
// The split axis of every node is drawn from random, so two builds may differ
// in shape while answering every query identically.
func NewBVH(shapes []Shape, random *rand.Rand) (*BVHNode, error) {
	return NewBVHWithHeuristic(shapes, RandomAxis, random)
}

// NewBVHWithHeuristic constructs a BVH over the given shapes with the chosen split heuristic.
// random is only drawn from by RandomAxis and may be nil for the others.
func NewBVHWithHeuristic(shapes []Shape, heuristic Heuristic, random *rand.Rand) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}
	if _, ok := heuristicNames[heuristic]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownHeuristic, heuristic)
	}
	if heuristic == RandomAxis && random == nil {
		return nil, fmt.Errorf("bvh: random axis heuristic needs a random source")
	}

	// Cache each shape's box once; this also rejects unbounded shapes before any node exists
	entries := make([]bvhEntry, len(shapes))
	for i, shape := range shapes {
		box, ok := shape.BoundingBox()
		if !ok {
			return nil, fmt.Errorf("%w: shape %d (%T)", ErrUnboundedShape, i, shape)
		}
		entries[i] = bvhEntry{shape: shape, box: box}
	}

	builder := &bvhBuilder{entries: entries, heuristic: heuristic, random: random}
	return builder.build(0, len(entries)), nil
}

// bvhEntry pairs a shape with its precomputed bounding box
type bvhEntry struct {
	shape Shape
	box   core.AABB
}

// bvhBuilder holds the state shared by every recursive build step
type bvhBuilder struct {
	entries   []bvhEntry
	heuristic Heuristic
	random    *rand.Rand
}

// lessOnAxis orders entries by their bounding box minimum along axis
func lessOnAxis(axis int) func(a, b bvhEntry) bool {
	return func(a, b bvhEntry) bool {
		return a.box.Min.Axis(axis) < b.box.Min.Axis(axis)
	}
}

// rangeBounds returns the union of the boxes in entries[start:end]
func (b *bvhBuilder) rangeBounds(start, end int) core.AABB {
	bounds := b.entries[start].box
	for _, entry := range b.entries[start+1 : end] {
		bounds = bounds.Union(entry.box)
	}
	return bounds
}

// chooseSplit returns the axis to order entries[start:end] by and the index where the right half begins
func (b *bvhBuilder) chooseSplit(start, end int) (int, int) {
	mid := start + (end-start)/2
	switch b.heuristic {
	case LongestAxis:
		return b.rangeBounds(start, end).LongestAxis(), mid
	case SurfaceArea:
		if end-start > 2 {
			return b.bestAreaSplit(start, end)
		}
		return b.rangeBounds(start, end).LongestAxis(), mid
	default:
		return b.random.Intn(3), mid
	}
}

// bestAreaSplit tries every axis and split position of entries[start:end] and returns the one minimising
// leftCount·Σarea(left) + rightCount·Σarea(right). The entries are left sorted along the winning axis.
func (b *bvhBuilder) bestAreaSplit(start, end int) (int, int) {
	n := end - start
	bestAxis, bestSplit := 0, 1
	bestCost := math.Inf(1)
	var bestOrder []bvhEntry

	prefix := make([]float64, n+1)
	for axis := 0; axis < 3; axis++ {
		order := append([]bvhEntry(nil), b.entries[start:end]...)
		sortEntriesByAxis(order, lessOnAxis(axis))

		for i, entry := range order {
			prefix[i+1] = prefix[i] + entry.box.SurfaceArea()
		}

		for split := 1; split < n-1; split++ {
			left := prefix[split]
			right := prefix[n] - prefix[split]
			cost := float64(split)*left + float64(n-split)*right
			if cost < bestCost {
				bestAxis, bestSplit, bestCost = axis, split, cost
				bestOrder = order
			}
		}
	}

	copy(b.entries[start:end], bestOrder)
	return bestAxis, start + bestSplit
}

// build recursively builds the node covering entries[start:end]
func (b *bvhBuilder) build(start, end int) *BVHNode {
	axis, split := b.chooseSplit(start, end)
	less := lessOnAxis(axis)

	node := &BVHNode{}
	var leftBox, rightBox core.AABB

	switch span := end - start; span {
	case 1:
		entry := b.entries[start]
		node.Left, node.Right = entry.shape, entry.shape
		node.aliased = true
		leftBox, rightBox = entry.box, entry.box
	case 2:
		first, second := b.entries[start], b.entries[start+1]
		if !less(first, second) {
			first, second = second, first
		}
		node.Left, node.Right = first.shape, second.shape
		leftBox, rightBox = first.box, second.box
	default:
		if b.heuristic != SurfaceArea {
			sortEntriesByAxis(b.entries[start:end], less)
		}
		left := b.build(start, split)
		right := b.build(split, end)
		node.Left, node.Right = left, right
		leftBox, rightBox = left.boundingBox, right.boundingBox
	}

	node.boundingBox = leftBox.Union(rightBox)
	return node
}

// sortEntriesByAxis sorts entries by their bounding box minimum along the chosen axis
func sortEntriesByAxis(entries []bvhEntry, less func(a, b bvhEntry) bool) {
	sort.Slice(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
}

// Hit tests if a ray intersects any shape below this node.
// The right subtree is searched only up to the left hit, so a right hit is always the closer one.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.boundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the cached box enclosing both children
func (n *BVHNode) BoundingBox() (core.AABB, bool) {
	return n.boundingBox, true
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int // Interior nodes
	LeafNodes  int // Nodes whose children are shapes rather than nodes
	MaxDepth   int
	Shapes     int // Distinct shape references reachable from leaves
}

// Stats walks the tree and returns its statistics
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	left, leftIsNode := n.Left.(*BVHNode)
	right, rightIsNode := n.Right.(*BVHNode)
	if !leftIsNode && !rightIsNode {
		stats.LeafNodes++
	}

	if leftIsNode {
		left.collectStats(depth+1, stats)
	} else {
		stats.Shapes++
	}

	// An aliased single shape is counted once
	if rightIsNode {
		right.collectStats(depth+1, stats)
	} else if !n.aliased {
		stats.Shapes++
	}
}
