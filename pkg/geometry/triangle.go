package geometry

import (
	"github.com/dpeeke/lambda-spectral/pkg/core"
)

// Triangle is a flat triangular primitive defined by three vertices.
type Triangle struct {
	Base
	V0, V1, V2 core.Vec3

	edge1, edge2 core.Vec3
	normal       core.Vec3
	bbox         core.AABB
	centroid     core.Vec3
}

// NewTriangle creates a triangle primitive, precomputing its edges, normal,
// bounding box and centroid.
func NewTriangle(v0, v1, v2 core.Vec3, material, light int) *Triangle {
	t := &Triangle{
		Base: Base{Material: material, Light: light},
		V0:   v0, V1: v1, V2: v2,
	}

	t.edge1 = v1.Subtract(v0)
	t.edge2 = v2.Subtract(v0)
	t.normal = t.edge1.Cross(t.edge2).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	t.centroid = v0.Add(v1).Add(v2).Multiply(1.0 / 3.0)

	return t
}

// Intersect finds the ray-triangle intersection distance using the
// Moeller-Trumbore algorithm, returning a negative value on miss.
func (t *Triangle) Intersect(ray core.Ray) float64 {
	const epsilon = 1e-5

	distance := ray.Origin.Subtract(t.V0)
	s := ray.Direction.Cross(t.edge2)
	d := 1.0 / s.Dot(t.edge1)

	u := distance.Dot(s) * d
	if u <= -epsilon || u >= 1+epsilon {
		return -1.0
	}

	s = distance.Cross(t.edge1)
	v := ray.Direction.Dot(s) * d
	if v <= -epsilon || u+v >= 1+epsilon {
		return -1.0
	}

	return t.edge2.Dot(s) * d
}

// Normal returns the triangle's (flat, constant) surface normal.
func (t *Triangle) Normal(point core.Vec3) core.Vec3 {
	return t.normal
}

// BoundingBox returns the triangle's axis-aligned bounding box.
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Centroid returns the triangle's centroid.
func (t *Triangle) Centroid() core.Vec3 {
	return t.centroid
}
