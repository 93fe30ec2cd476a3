package geometry

import (
	"math"

	"github.com/dpeeke/lambda-spectral/pkg/core"
)

// Sphere is a geometric sphere primitive, defined by a center and radius.
type Sphere struct {
	Base
	Center core.Vec3
	Radius float64
}

// NewSphere creates a sphere primitive.
func NewSphere(center core.Vec3, radius float64, material, light int) *Sphere {
	return &Sphere{Base: Base{Material: material, Light: light}, Center: center, Radius: radius}
}

// Intersect finds the closest ray-sphere intersection using the analytic
// quadratic solution.
func (s *Sphere) Intersect(ray core.Ray) float64 {
	toCenter := s.Center.Subtract(ray.Origin)
	sd := toCenter.Dot(ray.Direction)
	ss := toCenter.Dot(toCenter)

	disc := sd*sd - ss + s.Radius*s.Radius
	if disc < 0 {
		return -1.0
	}

	sqrtDisc := math.Sqrt(disc)
	p1 := sd - sqrtDisc
	p2 := sd + sqrtDisc
	if p1 < 0 {
		return p2
	}
	if p2 < 0 {
		return p1
	}
	return math.Min(p1, p2)
}

// Normal returns the outward unit normal at a point on the sphere's surface.
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Multiply(1.0 / s.Radius)
}

// BoundingBox returns the sphere's axis-aligned bounding box.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// Centroid returns the sphere's center.
func (s *Sphere) Centroid() core.Vec3 {
	return s.Center
}
