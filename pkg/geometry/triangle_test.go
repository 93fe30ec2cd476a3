package geometry

import (
	"math"
	"testing"

	"github.com/dpeeke/lambda-spectral/pkg/core"
)

func TestTriangleIntersectHitsCenter(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		0, -1,
	)
	ray := core.NewRay(core.NewVec3(0, -0.3, -5), core.NewVec3(0, 0, 1))

	d := tri.Intersect(ray)
	if d <= 0 {
		t.Fatalf("expected a hit, got distance %v", d)
	}
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("distance = %v, want 5", d)
	}
}

func TestTriangleIntersectMissOutsideEdges(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		0, -1,
	)
	ray := core.NewRay(core.NewVec3(5, 5, -5), core.NewVec3(0, 0, 1))

	if d := tri.Intersect(ray); d > 0 {
		t.Errorf("expected miss, got distance %v", d)
	}
}

func TestTriangleIntersectParallelRay(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		0, -1,
	)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 1, 0))

	if d := tri.Intersect(ray); d > 0 {
		t.Errorf("expected miss for a ray parallel to the triangle's plane, got %v", d)
	}
}

func TestTriangleNormalIsConstant(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		0, -1,
	)
	want := core.NewVec3(0, 0, 1)
	if n := tri.Normal(core.NewVec3(0.2, 0.2, 0)); !n.Equals(want) {
		t.Errorf("Normal = %v, want %v", n, want)
	}
	if n := tri.Normal(core.NewVec3(99, 99, 99)); !n.Equals(want) {
		t.Errorf("Normal should be constant regardless of point, got %v", n)
	}
}

func TestTriangleCentroid(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(3, 0, 0),
		core.NewVec3(0, 3, 0),
		0, -1,
	)
	want := core.NewVec3(1, 1, 0)
	if !tri.Centroid().Equals(want) {
		t.Errorf("Centroid = %v, want %v", tri.Centroid(), want)
	}
}

func TestTriangleBoundingBox(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, 0, 2),
		core.NewVec3(3, -2, -1),
		core.NewVec3(0, 4, 0),
		0, -1,
	)
	box := tri.BoundingBox()
	if !box.Min.Equals(core.NewVec3(-1, -2, -1)) || !box.Max.Equals(core.NewVec3(3, 4, 2)) {
		t.Errorf("BoundingBox = %v", box)
	}
}
