package collision

import "github.com/chewxy/math32"

// ParallelEpsilon is the smallest |dot(normal, direction)| treated as a
// crossing. Below it a segment is considered parallel to a plane.
const ParallelEpsilon = 1e-6

// SphereSphere reports whether two spheres touch or overlap.
func SphereSphere(a, b Sphere) bool {
	return b.Center.Sub(a.Center).Length() <= a.Radius+b.Radius
}

// SpherePlane reports whether a sphere touches or crosses a plane.
func SpherePlane(s Sphere, p Plane) bool {
	return math32.Abs(p.SignedDistance(s.Center)) <= s.Radius
}

// SegmentPlane reports whether a segment crosses a plane.
// A segment parallel to the plane never collides, even when it lies in it.
func SegmentPlane(s Segment, p Plane) bool {
	dot := p.Normal.Dot(s.Diff)
	if math32.Abs(dot) < ParallelEpsilon {
		return false
	}

	t := (p.Distance - s.Origin.Dot(p.Normal)) / dot
	return t >= 0 && t <= 1
}

// TriangleSegment reports whether a segment passes through a triangle.
// Points on an edge count as inside.
func TriangleSegment(tri Triangle, s Segment) bool {
	normal := tri.Normal()
	dir := s.Diff.Normalize()

	dotND := normal.Dot(dir)
	if math32.Abs(dotND) < ParallelEpsilon {
		return false
	}

	// Distance along dir to the triangle's plane.
	t := normal.Dot(tri.Vertices[0].Sub(s.Origin)) / dotND
	if t < 0 || t > s.Diff.Length() {
		return false
	}

	hit := s.Origin.Add(dir.Scale(t))

	v0, v1, v2 := tri.Vertices[0], tri.Vertices[1], tri.Vertices[2]
	c0 := v1.Sub(v0).Cross(hit.Sub(v0))
	c1 := v2.Sub(v1).Cross(hit.Sub(v1))
	c2 := v0.Sub(v2).Cross(hit.Sub(v2))

	return c0.Dot(normal) >= 0 && c1.Dot(normal) >= 0 && c2.Dot(normal) >= 0
}

// AABBAABB reports whether two boxes touch or overlap on every axis.
func AABBAABB(a, b AABB) bool {
	return (a.Min.X <= b.Max.X && a.Max.X >= b.Min.X) &&
		(a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y) &&
		(a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z)
}

// SphereSegment reports whether a segment passes within the sphere's radius
// of its center.
func SphereSegment(s Sphere, seg Segment) bool {
	return seg.ClosestPointClamped(s.Center).Sub(s.Center).Length() <= s.Radius
}

// AABBSphere reports whether a sphere touches or overlaps a box.
func AABBSphere(b AABB, s Sphere) bool {
	return b.ClosestPoint(s.Center).Sub(s.Center).Length() <= s.Radius
}

// AABBSegment reports whether a segment touches a box, using the slab test.
//
// An axis on which Diff is zero is handled without dividing: the segment is
// parallel to that slab and collides only if its origin lies within it.
func AABBSegment(b AABB, s Segment) bool {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	var ok bool
	if tmin, tmax, ok = slab(s.Origin.X, s.Diff.X, b.Min.X, b.Max.X, tmin, tmax); !ok {
		return false
	}
	if tmin, tmax, ok = slab(s.Origin.Y, s.Diff.Y, b.Min.Y, b.Max.Y, tmin, tmax); !ok {
		return false
	}
	if tmin, tmax, ok = slab(s.Origin.Z, s.Diff.Z, b.Min.Z, b.Max.Z, tmin, tmax); !ok {
		return false
	}

	return tmin <= tmax && tmax >= 0 && tmin <= 1
}

// slab narrows [tmin, tmax] to the parameter range inside one axis slab.
// ok is false when a parallel segment lies outside the slab.
func slab(origin, diff, lo, hi, tmin, tmax float32) (float32, float32, bool) {
	if diff == 0 {
		return tmin, tmax, origin >= lo && origin <= hi
	}

	near := (lo - origin) / diff
	far := (hi - origin) / diff
	if near > far {
		near, far = far, near
	}
	return max(tmin, near), min(tmax, far), true
}
