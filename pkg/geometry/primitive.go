// Package geometry implements the renderer's bounded primitives (sphere,
// triangle) and the flat bounding-volume-hierarchy acceleration structure
// used to intersect them efficiently.
package geometry

import (
	"github.com/dpeeke/lambda-spectral/pkg/core"
)

// Subtype identifies a primitive's concrete type in the scene file, per the
// binary scene format (spec §6).
type Subtype uint32

const (
	SubtypeSphere   Subtype = 0
	SubtypeTriangle Subtype = 1
)

// Primitive is a bounded piece of geometry the BVH can index. Every
// primitive must be intersectable, have a surface normal defined at any
// point on its surface, and have a well-defined bounding box and centroid.
type Primitive interface {
	// Intersect returns the closest intersection distance along ray, or a
	// negative value if the ray does not intersect the primitive.
	Intersect(ray core.Ray) float64

	// Normal returns the outward surface normal at the given point, which
	// must lie on the primitive's surface.
	Normal(point core.Vec3) core.Vec3

	// BoundingBox returns the primitive's axis-aligned bounding box. This
	// must be stable across calls.
	BoundingBox() core.AABB

	// Centroid returns the primitive's centroid, used only to choose BVH
	// split partitions. It must be stable across calls.
	Centroid() core.Vec3

	// MaterialIndex returns the index into the scene's material slice, or
	// -1 if the primitive has no material.
	MaterialIndex() int

	// LightIndex returns the index into the scene's light slice, or -1 if
	// the primitive is not a light source.
	LightIndex() int
}

// Base holds the material/light references shared by every primitive type,
// mirroring the scene-file primitive header (material index, light index).
type Base struct {
	Material int
	Light    int
}

// MaterialIndex implements Primitive.
func (b Base) MaterialIndex() int { return b.Material }

// LightIndex implements Primitive.
func (b Base) LightIndex() int { return b.Light }
