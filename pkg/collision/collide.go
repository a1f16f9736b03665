package collision

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedPair is returned by Collide for shape pairs without a test.
	ErrUnsupportedPair = errors.New("unsupported shape pair")
	ErrNilShape        = errors.New("nil shape")
)

// Collide tests any two shapes, in either order, against the pairwise table:
//
//	sphere   - sphere, plane, segment, aabb
//	segment  - plane, triangle, aabb
//	aabb     - aabb
func Collide(a, b Shape) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNilShape
	}
	if hit, ok := collide(a, b); ok {
		return hit, nil
	}
	if hit, ok := collide(b, a); ok {
		return hit, nil
	}
	return false, fmt.Errorf("%w: %s vs %s", ErrUnsupportedPair, a.Kind(), b.Kind())
}

// Supported reports whether Collide has a test for the two kinds.
func Supported(a, b Kind) bool {
	_, ok := pairs[[2]Kind{a, b}]
	if !ok {
		_, ok = pairs[[2]Kind{b, a}]
	}
	return ok
}

var pairs = map[[2]Kind]struct{}{
	{KindSphere, KindSphere}:    {},
	{KindSphere, KindPlane}:     {},
	{KindSphere, KindSegment}:   {},
	{KindSegment, KindPlane}:    {},
	{KindTriangle, KindSegment}: {},
	{KindAABB, KindAABB}:        {},
	{KindAABB, KindSphere}:      {},
	{KindAABB, KindSegment}:     {},
}

// collide runs the test for (a, b) in this order only.
func collide(a, b Shape) (hit, ok bool) {
	switch a := a.(type) {
	case Sphere:
		switch b := b.(type) {
		case Sphere:
			return SphereSphere(a, b), true
		case Plane:
			return SpherePlane(a, b), true
		case Segment:
			return SphereSegment(a, b), true
		}
	case Segment:
		if b, isPlane := b.(Plane); isPlane {
			return SegmentPlane(a, b), true
		}
	case Triangle:
		if b, isSegment := b.(Segment); isSegment {
			return TriangleSegment(a, b), true
		}
	case AABB:
		switch b := b.(type) {
		case AABB:
			return AABBAABB(a, b), true
		case Sphere:
			return AABBSphere(a, b), true
		case Segment:
			return AABBSegment(a, b), true
		}
	}
	return false, false
}
