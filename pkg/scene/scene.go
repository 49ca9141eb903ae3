package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/integrator"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	Shapes         []geometry.Shape   // Objects in the scene
	World          *geometry.BVHNode  // Acceleration structure built by Preprocess
	Sky            integrator.SkyGradient
	SamplingConfig renderer.SamplingConfig
	CameraConfig   renderer.CameraConfig
	Seed           int64 // Seeds scene generation and the BVH build
	Heuristic      geometry.Heuristic
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() geometry.Shape {
	if s.World == nil {
		return nil
	}
	return s.World
}

// GetSky implements renderer.Scene
func (s *Scene) GetSky() integrator.SkyGradient {
	return s.Sky
}

// GetSamplingConfig implements renderer.Scene
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.SamplingConfig
}

// NewGroundQuad creates a large quad to replace infinite ground planes
// Creates a horizontal quad centered at the given point with normal pointing up (0,1,0)
func NewGroundQuad(center core.Point, size float64, mat material.Material) (*geometry.Quad, error) {
	// Create corner at the most negative x/z of the quad
	corner := core.NewPoint(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0) which normalizes to (0,1,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}

// Preprocess prepares the scene for rendering by building the BVH over its shapes
func (s *Scene) Preprocess(logger core.Logger) error {
	if logger == nil {
		logger = core.NopLogger{}
	}

	world, err := geometry.NewBVHWithHeuristic(s.Shapes, s.Heuristic, rand.New(rand.NewSource(s.Seed)))
	if err != nil {
		return fmt.Errorf("scene: building BVH: %w", err)
	}
	s.World = world

	stats := world.Stats()
	logger.Printf("BVH (%v) built over %d shapes: %d nodes, %d leaves, depth %d\n",
		s.Heuristic, len(s.Shapes), stats.TotalNodes, stats.LeafNodes, stats.MaxDepth)

	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, descending into flat aggregates
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.HittableList:
		count := 0
		for _, member := range obj.Objects() {
			count += countPrimitivesInShape(member)
		}
		return count
	default:
		// Regular shapes count as 1 primitive each
		return 1
	}
}

// newScene assembles a scene from its camera and sampling configuration
func newScene(cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig, opts Options) *Scene {
	cameraConfig, samplingConfig = opts.apply(cameraConfig, samplingConfig)

	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		Shapes:         make([]geometry.Shape, 0),
		Sky:            integrator.DefaultSky(),
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
		Seed:           opts.seed(),
		Heuristic:      opts.Heuristic,
	}
}
