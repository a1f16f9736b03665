// Package debug provides wireframe visualization of scenes and shapes.
package debug

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/geomkit/internal/engine/camera"
	"github.com/Faultbox/geomkit/pkg/collision"
	"github.com/Faultbox/geomkit/pkg/math"
)

// Defaults for the reference grid, spheres and curves.
const (
	GridHalfWidth      = 2.0
	GridSubdivision    = 10
	GridColor          = 0x6F6F6FFF
	SphereSubdivision  = 20
	CurveSegments      = 100
	ControlPointRadius = 0.01
	ControlPointColor  = 0x000000FF
	PlaneExtent        = 2.0
)

// Line is a projected line in pixel space with a packed 0xRRGGBBAA color.
type Line struct {
	A, B  math.Vec2
	Color uint32
}

// Wireframe accumulates projected lines through a fixed screen matrix
// (view-projection × viewport).
type Wireframe struct {
	screen math.Mat4

	// Lines drawn so far, in call order.
	Lines []Line
	// Skipped counts points that could not be projected (w == 0).
	// Every line touching such a point is dropped.
	Skipped int
}

// NewWireframe creates an empty wireframe projecting through screen.
func NewWireframe(screen math.Mat4) *Wireframe {
	return &Wireframe{screen: screen}
}

// Reset drops all lines and the skip count, keeping the matrix.
func (w *Wireframe) Reset() {
	w.Lines = w.Lines[:0]
	w.Skipped = 0
}

func (w *Wireframe) project(p math.Vec3) (math.Vec2, bool) {
	s, err := camera.Project(p, w.screen)
	if err != nil {
		w.Skipped++
		return math.Vec2{}, false
	}
	return s, true
}

// Line3 projects a world-space line.
func (w *Wireframe) Line3(a, b math.Vec3, color uint32) {
	sa, okA := w.project(a)
	sb, okB := w.project(b)
	if okA && okB {
		w.Lines = append(w.Lines, Line{A: sa, B: sb, Color: color})
	}
}

// polyline joins consecutive points.
func (w *Wireframe) polyline(points []math.Vec3, color uint32) {
	screen := make([]math.Vec2, len(points))
	ok := make([]bool, len(points))
	for i, p := range points {
		screen[i], ok[i] = w.project(p)
	}
	for i := 1; i < len(points); i++ {
		if ok[i-1] && ok[i] {
			w.Lines = append(w.Lines, Line{A: screen[i-1], B: screen[i], Color: color})
		}
	}
}

// Grid draws a square grid on the XZ plane centered on the origin with
// subdivision+1 lines along each axis.
func (w *Wireframe) Grid(halfWidth float32, subdivision int, color uint32) {
	if subdivision < 1 {
		subdivision = 1
	}
	every := halfWidth * 2 / float32(subdivision)
	for i := 0; i <= subdivision; i++ {
		pos := -halfWidth + every*float32(i)
		w.Line3(math.Vec3{X: pos, Z: -halfWidth}, math.Vec3{X: pos, Z: halfWidth}, color)
		w.Line3(math.Vec3{X: -halfWidth, Z: pos}, math.Vec3{X: halfWidth, Z: pos}, color)
	}
}

// Sphere draws latitude and longitude lines, subdivision steps each way.
func (w *Wireframe) Sphere(s collision.Sphere, subdivision int, color uint32) {
	if subdivision < 1 {
		subdivision = 1
	}
	latStep := math32.Pi / float32(subdivision)
	lonStep := 2 * math32.Pi / float32(subdivision)

	point := func(lat, lon float32) math.Vec3 {
		sinLat, cosLat := math32.Sincos(lat)
		sinLon, cosLon := math32.Sincos(lon)
		return math.Vec3{
			X: s.Center.X + s.Radius*cosLat*cosLon,
			Y: s.Center.Y + s.Radius*sinLat,
			Z: s.Center.Z + s.Radius*cosLat*sinLon,
		}
	}

	for latIndex := 0; latIndex < subdivision; latIndex++ {
		lat := -math32.Pi/2 + float32(latIndex)*latStep
		for lonIndex := 0; lonIndex < subdivision; lonIndex++ {
			lon := float32(lonIndex) * lonStep
			a := point(lat, lon)
			w.Line3(a, point(lat+latStep, lon), color)
			w.Line3(a, point(lat, lon+lonStep), color)
		}
	}
}

// Plane draws a square of half size PlaneExtent around the point of the
// plane closest to the origin.
func (w *Wireframe) Plane(p collision.Plane, color uint32) {
	center := p.Normal.Scale(p.Distance)
	perp := p.Normal.Perpendicular().Normalize()
	side := p.Normal.Cross(perp)

	var corners [4]math.Vec3
	for i, dir := range [4]math.Vec3{perp, perp.Negate(), side, side.Negate()} {
		corners[i] = center.Add(dir.Scale(PlaneExtent))
	}

	w.polyline([]math.Vec3{corners[0], corners[2], corners[1], corners[3], corners[0]}, color)
}

// Triangle draws the triangle's three edges.
func (w *Wireframe) Triangle(t collision.Triangle, color uint32) {
	v := t.Vertices
	w.polyline([]math.Vec3{v[0], v[1], v[2], v[0]}, color)
}

// aabbEdges lists box edges as pairs of AABB.Corners indices.
var aabbEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 5}, {2, 3},
	{2, 6}, {3, 7}, {4, 5}, {4, 6}, {5, 7}, {6, 7},
}

// AABB draws the box's twelve edges.
func (w *Wireframe) AABB(b collision.AABB, color uint32) {
	corners := b.Corners()
	var screen [8]math.Vec2
	var ok [8]bool
	for i, c := range corners {
		screen[i], ok[i] = w.project(c)
	}
	for _, e := range aabbEdges {
		if ok[e[0]] && ok[e[1]] {
			w.Lines = append(w.Lines, Line{A: screen[e[0]], B: screen[e[1]], Color: color})
		}
	}
}

// Segment draws a segment from its origin to its end.
func (w *Wireframe) Segment(s collision.Segment, color uint32) {
	w.Line3(s.Origin, s.End(), color)
}

// Bezier draws a quadratic Bezier curve.
func (w *Wireframe) Bezier(p0, p1, p2 math.Vec3, segments int, color uint32) {
	w.polyline(math.SampleBezier(p0, p1, p2, segments), color)
}

// CatmullRom draws the Catmull-Rom span between p1 and p2.
func (w *Wireframe) CatmullRom(p0, p1, p2, p3 math.Vec3, segments int, color uint32) {
	w.polyline(math.SampleCatmullRom(p0, p1, p2, p3, segments), color)
}

// ControlPoint marks p with a tiny black sphere.
func (w *Wireframe) ControlPoint(p math.Vec3) {
	w.Sphere(collision.Sphere{Center: p, Radius: ControlPointRadius}, SphereSubdivision, ControlPointColor)
}

// Shape draws any collision shape.
func (w *Wireframe) Shape(s collision.Shape, color uint32) {
	switch s := s.(type) {
	case collision.Sphere:
		w.Sphere(s, SphereSubdivision, color)
	case collision.Plane:
		w.Plane(s, color)
	case collision.Segment:
		w.Segment(s, color)
	case collision.AABB:
		w.AABB(s, color)
	case collision.Triangle:
		w.Triangle(s, color)
	}
}
