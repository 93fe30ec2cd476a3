package camera

import (
	"math"

	"github.com/dpeeke/lambda-spectral/pkg/core"
)

// upwards is the conventional world-space up vector used to build a
// perspective camera's orthonormal basis.
var upwards = core.Vec3{X: 0, Y: 1, Z: 0}

// Perspective is a standard pinhole perspective camera with no depth of
// field or other lens effects. It precomputes the four corners of its
// focal plane at construction time, so tracing a ray is a cheap bilinear
// interpolation.
type Perspective struct {
	position   core.Vec3
	focalPlane [4]core.Vec3
}

// NewPerspective creates a perspective camera at position, looking towards
// target, with the given (horizontal and vertical) field of view in
// radians.
func NewPerspective(position, target core.Vec3, fieldOfView float64) *Perspective {
	p := &Perspective{position: position}
	p.buildFocalPlane(target, fieldOfView)
	return p
}

func (p *Perspective) buildFocalPlane(target core.Vec3, fieldOfView float64) {
	zAxis := target.Subtract(p.position).Normalize()
	xAxis := upwards.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis).Normalize()

	fov := math.Tan(fieldOfView * 0.5)

	corner := func(sx, sy float64) core.Vec3 {
		local := core.Vec3{X: sx * fov, Y: sy * fov, Z: 1}
		return core.Vec3{
			X: local.X*xAxis.X + local.Y*yAxis.X + local.Z*zAxis.X,
			Y: local.X*xAxis.Y + local.Y*yAxis.Y + local.Z*zAxis.Y,
			Z: local.X*xAxis.Z + local.Y*yAxis.Z + local.Z*zAxis.Z,
		}
	}

	p.focalPlane[0] = corner(-1, -1)
	p.focalPlane[1] = corner(+1, -1)
	p.focalPlane[2] = corner(+1, +1)
	p.focalPlane[3] = corner(-1, +1)
}

// Trace returns the camera ray for normalized screen coordinates u, v,
// bilinearly interpolated across the precomputed focal plane corners.
func (p *Perspective) Trace(u, v float64) core.Ray {
	su := (u + 1.0) * 0.5
	sv := (1.0 - v) * 0.5

	top := lerp(p.focalPlane[0], p.focalPlane[1], su)
	bottom := lerp(p.focalPlane[3], p.focalPlane[2], su)
	direction := lerp(top, bottom, sv).Normalize()

	return core.NewRay(p.position, direction)
}

func lerp(a, b core.Vec3, t float64) core.Vec3 {
	return a.Add(b.Subtract(a).Multiply(t))
}
