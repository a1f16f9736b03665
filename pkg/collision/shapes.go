// Package collision provides primitive shapes and pairwise intersection tests.
//
// All shapes are plain values. Intersection is a closed table of typed
// functions (SphereSphere, AABBSegment, ...); Collide dispatches over the
// same table for callers holding shapes of unknown type.
package collision

import "github.com/Faultbox/geomkit/pkg/math"

// Kind names a shape type.
type Kind string

// Shape kinds.
const (
	KindSphere   Kind = "sphere"
	KindPlane    Kind = "plane"
	KindSegment  Kind = "segment"
	KindAABB     Kind = "aabb"
	KindTriangle Kind = "triangle"
)

// Shape is implemented only by the shape types of this package.
type Shape interface {
	Kind() Kind
	shape()
}

func (Segment) shape()  {}
func (Plane) shape()    {}
func (Sphere) shape()   {}
func (AABB) shape()     {}
func (Triangle) shape() {}

// Segment is the set of points Origin + t*Diff for t in [0, 1].
// Diff is the displacement to the end point, not a unit direction.
type Segment struct {
	Origin math.Vec3
	Diff   math.Vec3
}

// Kind implements Shape.
func (Segment) Kind() Kind { return KindSegment }

// End returns Origin + Diff.
func (s Segment) End() math.Vec3 {
	return s.Origin.Add(s.Diff)
}

// PointAt returns Origin + t*Diff.
func (s Segment) PointAt(t float32) math.Vec3 {
	return s.Origin.Add(s.Diff.Scale(t))
}

// ClosestPoint returns the point closest to p on the infinite line through
// the segment. The result may lie outside [Origin, End]; use
// ClosestPointClamped for the closest point on the segment itself.
// A zero-length segment returns Origin.
func (s Segment) ClosestPoint(p math.Vec3) math.Vec3 {
	return s.PointAt(s.closestT(p))
}

// ClosestPointClamped is ClosestPoint with t clamped to [0, 1].
func (s Segment) ClosestPointClamped(p math.Vec3) math.Vec3 {
	return s.PointAt(min(max(s.closestT(p), 0), 1))
}

func (s Segment) closestT(p math.Vec3) float32 {
	sq := s.Diff.Dot(s.Diff)
	if sq == 0 {
		return 0
	}
	return p.Sub(s.Origin).Dot(s.Diff) / sq
}

// Plane is the set of points p with Dot(Normal, p) == Distance.
// Normal is expected to be unit length.
type Plane struct {
	Normal   math.Vec3
	Distance float32
}

// Kind implements Shape.
func (Plane) Kind() Kind { return KindPlane }

// SignedDistance returns Dot(Normal, p) - Distance.
func (p Plane) SignedDistance(point math.Vec3) float32 {
	return p.Normal.Dot(point) - p.Distance
}

// Sphere is a ball with non-negative Radius.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// Kind implements Shape.
func (Sphere) Kind() Kind { return KindSphere }

// AABB is an axis-aligned box. Min must not exceed Max on any axis.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// Kind implements Shape.
func (AABB) Kind() Kind { return KindAABB }

// NewAABB creates an AABB from two opposite corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: math.Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

// ClosestPoint clamps p into the box.
func (b AABB) ClosestPoint(p math.Vec3) math.Vec3 {
	return math.Vec3{
		X: min(max(p.X, b.Min.X), b.Max.X),
		Y: min(max(p.Y, b.Min.Y), b.Max.Y),
		Z: min(max(p.Z, b.Min.Z), b.Max.Z),
	}
}

// Corners returns the eight corners; bit 0 of the index selects Max.X,
// bit 1 Max.Y and bit 2 Max.Z.
func (b AABB) Corners() [8]math.Vec3 {
	var c [8]math.Vec3
	for i := range c {
		c[i] = b.Min
		if i&1 != 0 {
			c[i].X = b.Max.X
		}
		if i&2 != 0 {
			c[i].Y = b.Max.Y
		}
		if i&4 != 0 {
			c[i].Z = b.Max.Z
		}
	}
	return c
}

// Triangle is three corner points. The winding decides the normal sign.
type Triangle struct {
	Vertices [3]math.Vec3
}

// Kind implements Shape.
func (Triangle) Kind() Kind { return KindTriangle }

// Normal returns the unit face normal (v1-v0) x (v2-v0).
func (t Triangle) Normal() math.Vec3 {
	edge1 := t.Vertices[1].Sub(t.Vertices[0])
	edge2 := t.Vertices[2].Sub(t.Vertices[0])
	return edge1.Cross(edge2).Normalize()
}

// Area returns the triangle's area.
func (t Triangle) Area() float32 {
	edge1 := t.Vertices[1].Sub(t.Vertices[0])
	edge2 := t.Vertices[2].Sub(t.Vertices[0])
	return 0.5 * edge1.Cross(edge2).Length()
}
