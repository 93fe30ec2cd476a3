package geometry

import (
	"github.com/dpeeke/lambda-spectral/pkg/core"
)

// leafThreshold is the maximum primitive count stored in a BVH leaf before
// the builder tries to split further.
const leafThreshold = 4

// node is one entry of the flat BVH array. A node is a leaf when PrimCount
// > 0; its primitives occupy Primitives[Start:Start+PrimCount]. An internal
// node's left child is always node+1; its right child is node+RightOffset.
type node struct {
	BBox        core.AABB
	Start       int
	PrimCount   int
	RightOffset int
	Axis        int
}

// BVH is a flat, contiguous bounding volume hierarchy over a scene's
// primitives, built once and traversed many times by many goroutines
// without further mutation - matching the BVHFlatNode layout of the
// original reference implementation rather than a pointer-based tree, so
// traversal is an iterative array walk with good cache locality.
type BVH struct {
	nodes      []node
	Primitives []Primitive
}

// Build constructs a BVH over the given primitives. The primitive slice is
// reordered in place to group each node's primitives contiguously; the
// caller should use the BVH's Primitives field (not its original slice)
// after calling Build.
func Build(primitives []Primitive) *BVH {
	bvh := &BVH{Primitives: primitives}
	if len(primitives) == 0 {
		return bvh
	}

	centroids := make([]core.Vec3, len(primitives))
	bounds := make([]core.AABB, len(primitives))
	for i, p := range primitives {
		centroids[i] = p.Centroid()
		bounds[i] = p.BoundingBox()
	}

	type workItem struct {
		start, count int
		parent       int
		isRight      bool
	}

	stack := []workItem{{start: 0, count: len(primitives), parent: -1}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Nodes are appended in pop order, so a left child (always popped
		// right after its parent) lands at parent+1.
		nodeIndex := len(bvh.nodes)
		bvh.nodes = append(bvh.nodes, node{})

		bbox := bounds[item.start]
		for i := item.start + 1; i < item.start+item.count; i++ {
			bbox = bbox.Union(bounds[i])
		}

		if item.parent >= 0 && item.isRight {
			bvh.nodes[item.parent].RightOffset = nodeIndex - item.parent
		}

		if item.count <= leafThreshold {
			bvh.nodes[nodeIndex] = node{BBox: bbox, Start: item.start, PrimCount: item.count}
			continue
		}

		axis := bbox.LongestAxis()
		split := core.AxisValue(bbox.Center(), axis)

		mid := partition(primitives, centroids, bounds, item.start, item.count, axis, split)
		if mid == item.start || mid == item.start+item.count {
			// Degenerate split (e.g. all centroids coincide on this axis):
			// fall back to a median split so the tree always makes progress.
			mid = item.start + item.count/2
		}

		bvh.nodes[nodeIndex] = node{BBox: bbox, PrimCount: 0, Axis: axis}

		// Push right first so the left child (and its subtree) is processed
		// first, keeping spatially-near nodes closer together in the array.
		stack = append(stack, workItem{start: mid, count: item.start + item.count - mid, parent: nodeIndex, isRight: true})
		stack = append(stack, workItem{start: item.start, count: mid - item.start, parent: nodeIndex, isRight: false})
	}

	return bvh
}

// partition reorders primitives[start:start+count] (and the parallel
// centroids/bounds slices) so that every primitive with a centroid below
// split along axis comes first, returning the index of the first
// primitive on the "at or above split" side.
func partition(primitives []Primitive, centroids []core.Vec3, bounds []core.AABB, start, count int, axis int, split float64) int {
	i, j := start, start+count-1
	for i <= j {
		if core.AxisValue(centroids[i], axis) < split {
			i++
			continue
		}
		primitives[i], primitives[j] = primitives[j], primitives[i]
		centroids[i], centroids[j] = centroids[j], centroids[i]
		bounds[i], bounds[j] = bounds[j], bounds[i]
		j--
	}
	return i
}

// Hit finds the closest ray-primitive intersection in [tMin, tMax],
// traversing the flat node array iteratively with an explicit stack,
// pruning subtrees whose bounding box does not overlap the current best
// distance.
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64) (core.Hit, bool) {
	if len(b.nodes) == 0 {
		return core.Hit{}, false
	}

	var best core.Hit
	found := false
	closest := tMax

	var stack [64]int
	sp := 0
	stack[sp] = 0
	sp++

	for sp > 0 {
		sp--
		idx := stack[sp]
		n := &b.nodes[idx]

		if _, _, hit := n.BBox.Intersect(ray, tMin, closest); !hit {
			continue
		}

		if n.PrimCount > 0 {
			for i := n.Start; i < n.Start+n.PrimCount; i++ {
				t := b.Primitives[i].Intersect(ray)
				if t > tMin && t < closest {
					closest = t
					point := ray.At(t)
					best = core.Hit{
						Point:     point,
						Normal:    b.Primitives[i].Normal(point),
						T:         t,
						Primitive: i,
					}
					found = true
				}
			}
			continue
		}

		near, far := idx+1, idx+n.RightOffset
		if core.AxisValue(ray.Direction, n.Axis) < 0 {
			near, far = far, near
		}
		stack[sp] = far
		sp++
		stack[sp] = near
		sp++
	}

	return best, found
}

// AnyHit reports whether the ray intersects any primitive within [tMin,
// tMax], returning as soon as one is found (used for shadow/occlusion
// queries rather than closest-hit queries).
func (b *BVH) AnyHit(ray core.Ray, tMin, tMax float64) bool {
	if len(b.nodes) == 0 {
		return false
	}

	var stack [64]int
	sp := 0
	stack[sp] = 0
	sp++

	for sp > 0 {
		sp--
		idx := stack[sp]
		n := &b.nodes[idx]

		if _, _, hit := n.BBox.Intersect(ray, tMin, tMax); !hit {
			continue
		}

		if n.PrimCount > 0 {
			for i := n.Start; i < n.Start+n.PrimCount; i++ {
				if t := b.Primitives[i].Intersect(ray); t > tMin && t < tMax {
					return true
				}
			}
			continue
		}

		near, far := idx+1, idx+n.RightOffset
		if core.AxisValue(ray.Direction, n.Axis) < 0 {
			near, far = far, near
		}
		stack[sp] = far
		sp++
		stack[sp] = near
		sp++
	}

	return false
}

// BoundingBox returns the overall bounding box of the BVH's root.
func (b *BVH) BoundingBox() core.AABB {
	if len(b.nodes) == 0 {
		return core.AABB{}
	}
	return b.nodes[0].BBox
}

// NodeCount returns the number of nodes in the flat array, for diagnostics.
func (b *BVH) NodeCount() int {
	return len(b.nodes)
}
