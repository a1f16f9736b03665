// Package picking turns screen positions into world segments and finds the
// shapes under them.
package picking

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/geomkit/pkg/collision"
	"github.com/Faultbox/geomkit/pkg/math"
)

// ScreenSegment unprojects pixel (x, y) at the near (depth 0) and far
// (depth 1) planes. inverseScreen is the inverse of
// view-projection × viewport.
func ScreenSegment(x, y float32, inverseScreen math.Mat4) (collision.Segment, error) {
	near, err := math.TryTransform(math.Vec3{X: x, Y: y, Z: 0}, inverseScreen)
	if err != nil {
		return collision.Segment{}, fmt.Errorf("unprojecting near point: %w", err)
	}
	far, err := math.TryTransform(math.Vec3{X: x, Y: y, Z: 1}, inverseScreen)
	if err != nil {
		return collision.Segment{}, fmt.Errorf("unprojecting far point: %w", err)
	}
	return collision.Segment{Origin: near, Diff: far.Sub(near)}, nil
}

// Pick returns the indices of shapes the segment collides with, in input
// order. Other segments have no test against a segment and are skipped.
func Pick(seg collision.Segment, shapes []collision.Shape) []int {
	var hits []int
	for i, s := range shapes {
		hit, err := collision.Collide(seg, s)
		if err != nil {
			continue
		}
		if hit {
			hits = append(hits, i)
		}
	}
	return hits
}

// IntersectPlaneY intersects the segment with the horizontal plane at the
// given height. Returns the intersection (X, Z) and whether it lies on the
// segment.
func IntersectPlaneY(seg collision.Segment, planeY float32) (x, z float32, ok bool) {
	if math32.Abs(seg.Diff.Y) < collision.ParallelEpsilon {
		return 0, 0, false
	}

	t := (planeY - seg.Origin.Y) / seg.Diff.Y
	if t < 0 || t > 1 {
		return 0, 0, false
	}

	p := seg.PointAt(t)
	return p.X, p.Z, true
}
