package scene

import (
	"github.com/Faultbox/geomkit/internal/engine/debug"
	"github.com/Faultbox/geomkit/pkg/collision"
	"github.com/Faultbox/geomkit/pkg/math"
)

// DrawOptions selects what Draw puts on the wireframe.
type DrawOptions struct {
	Grid            bool
	GridHalfWidth   float32
	GridSubdivision int
	ControlPoints   bool
	CurveSegments   int
}

// DefaultDrawOptions returns the grid, control points and 100-segment curves.
func DefaultDrawOptions() DrawOptions {
	return DrawOptions{
		Grid:            true,
		GridHalfWidth:   debug.GridHalfWidth,
		GridSubdivision: debug.GridSubdivision,
		ControlPoints:   true,
		CurveSegments:   debug.CurveSegments,
	}
}

// Draw adds the grid, every shape and the control point curve to w, in that
// order.
func (s *Scene) Draw(w *debug.Wireframe, opts DrawOptions) {
	if opts.Grid {
		w.Grid(opts.GridHalfWidth, opts.GridSubdivision, debug.GridColor)
	}

	for _, ns := range s.Shapes {
		w.Shape(ns.Shape, ns.Color)
	}

	if opts.ControlPoints {
		for _, p := range s.ControlPoints {
			w.ControlPoint(p)
		}
	}

	s.drawCurve(w, opts.CurveSegments)
}

// drawCurve draws a Catmull-Rom spline through every control point, or
// quadratic Bezier pieces sharing end points (p0 p1 p2, p2 p3 p4, ...).
func (s *Scene) drawCurve(w *debug.Wireframe, segments int) {
	p := s.ControlPoints
	switch s.Curve {
	case CurveBezier:
		for i := 0; i+2 < len(p); i += 2 {
			w.Bezier(p[i], p[i+1], p[i+2], segments, s.CurveColor)
		}
	default:
		if len(p) < 2 {
			return
		}
		for i := 0; i+1 < len(p); i++ {
			w.CatmullRom(at(p, i-1), p[i], p[i+1], at(p, i+2), segments, s.CurveColor)
		}
	}
}

// at clamps i into p so end spans reuse their end point as the missing
// neighbor.
func at(p []math.Vec3, i int) math.Vec3 {
	return p[max(0, min(i, len(p)-1))]
}

// Labels places each shape's name at its projected anchor point.
func (s *Scene) Labels(color uint32) []debug.Label {
	screen := s.ScreenMatrix()
	var labels []debug.Label
	for _, ns := range s.Shapes {
		p, err := math.TryTransform(anchor(ns.Shape), screen)
		if err != nil {
			continue
		}
		labels = append(labels, debug.Label{At: p.XY(), Text: ns.Name, Color: color})
	}
	return labels
}

// anchor is the point a shape's label is drawn at.
func anchor(s collision.Shape) math.Vec3 {
	switch s := s.(type) {
	case collision.Sphere:
		return s.Center
	case collision.Plane:
		return s.Normal.Scale(s.Distance)
	case collision.Segment:
		return s.Origin
	case collision.AABB:
		return s.Max
	case collision.Triangle:
		v := s.Vertices
		return v[0].Add(v[1]).Add(v[2]).Scale(1.0 / 3)
	}
	return math.Vec3{}
}
