package core

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a new AABB from min and max points.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}
	return AABB{Min: min, Max: max}
}

// Intersect tests a ray against the box using the slab method, returning the
// near/far intersection distances. The BVH traversal needs the distances (not
// just a hit/miss bool) to prune subtrees that are farther than the closest
// hit found so far.
func (b AABB) Intersect(ray Ray, tMin, tMax float64) (tNear, tFar float64, hit bool) {
	tNear, tFar = tMin, tMax

	for axis := 0; axis < 3; axis++ {
		var lo, hi, origin, dir float64
		switch axis {
		case 0:
			lo, hi, origin, dir = b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X
		case 1:
			lo, hi, origin, dir = b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y
		default:
			lo, hi, origin, dir = b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z
		}

		if math.Abs(dir) < 1e-12 {
			if origin < lo || origin > hi {
				return tNear, tFar, false
			}
			continue
		}

		invDir := 1.0 / dir
		t1 := (lo - origin) * invDir
		t2 := (hi - origin) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tNear = math.Max(tNear, t1)
		tFar = math.Min(tFar, t2)
		if tNear > tFar {
			return tNear, tFar, false
		}
	}

	return tNear, tFar, true
}

// Union returns an AABB that bounds both this AABB and another.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)},
	}
}

// Center returns the center point of the AABB.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// SurfaceArea returns the surface area of the AABB.
func (b AABB) SurfaceArea() float64 {
	s := b.Size()
	return 2.0 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
func (b AABB) LongestAxis() int {
	s := b.Size()
	if s.X > s.Y && s.X > s.Z {
		return 0
	}
	if s.Y > s.Z {
		return 1
	}
	return 2
}

// AxisValue returns the component of v along the given axis (0=X, 1=Y, 2=Z).
func AxisValue(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
