// Package scene holds a fully parsed scene: the index-addressable arenas
// of distributions, materials, lights and primitives that the loader
// populates and the renderer consumes, plus the BVH built over the
// primitive arena.
package scene

import (
	"github.com/dpeeke/lambda-spectral/pkg/camera"
	"github.com/dpeeke/lambda-spectral/pkg/colorsys"
	"github.com/dpeeke/lambda-spectral/pkg/geometry"
	"github.com/dpeeke/lambda-spectral/pkg/light"
	"github.com/dpeeke/lambda-spectral/pkg/material"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

// RenderParams holds the scene file's render header: the output image
// dimensions and the number of samples to take per pixel.
type RenderParams struct {
	Width   int
	Height  int
	Samples int
}

// Scene is the fully resolved, immutable description of everything the
// renderer needs: it is built once by the loader and then read concurrently
// by every render worker.
type Scene struct {
	Params RenderParams

	ColorSystem   colorsys.System
	Camera        camera.Camera
	Distributions []spectral.Distribution
	Materials     []material.Material
	Lights        []light.Light
	Primitives    []geometry.Primitive

	BVH *geometry.BVH
}

// Build finalizes a scene's BVH over its primitive arena. The BVH may
// reorder the Primitives slice, so callers must use the primitive indices
// recorded in BVH hits (core.Hit.Primitive) to index into BVH.Primitives,
// not the slice passed in here.
func (s *Scene) Build() {
	s.BVH = geometry.Build(s.Primitives)
	s.Primitives = s.BVH.Primitives
}
