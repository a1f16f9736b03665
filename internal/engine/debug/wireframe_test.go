package debug

import (
	"testing"

	"github.com/Faultbox/geomkit/internal/engine/camera"
	"github.com/Faultbox/geomkit/pkg/collision"
	"github.com/Faultbox/geomkit/pkg/math"
)

func defaultScreen() math.Mat4 {
	return camera.Default().ScreenMatrix(math.Identity())
}

func TestWireframeLineCounts(t *testing.T) {
	box := collision.AABB{Min: math.Vec3{}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	tri := collision.Triangle{Vertices: [3]math.Vec3{{}, {X: 1}, {Y: 1}}}
	p0, p1, p2, p3 := math.Vec3{X: -1}, math.Vec3{Y: 1}, math.Vec3{X: 1}, math.Vec3{X: 2, Y: 1}

	tests := []struct {
		name string
		draw func(w *Wireframe)
		want int
	}{
		{"grid", func(w *Wireframe) { w.Grid(GridHalfWidth, GridSubdivision, GridColor) }, 2 * (GridSubdivision + 1)},
		{"sphere", func(w *Wireframe) {
			w.Sphere(collision.Sphere{Radius: 1}, SphereSubdivision, 0xFFFFFFFF)
		}, 2 * SphereSubdivision * SphereSubdivision},
		{"plane", func(w *Wireframe) { w.Plane(collision.Plane{Normal: math.Vec3{Y: 1}}, 0xFFFFFFFF) }, 4},
		{"triangle", func(w *Wireframe) { w.Triangle(tri, 0xFFFFFFFF) }, 3},
		{"aabb", func(w *Wireframe) { w.AABB(box, 0xFFFFFFFF) }, 12},
		{"segment", func(w *Wireframe) {
			w.Segment(collision.Segment{Diff: math.Vec3{X: 1}}, 0xFFFFFFFF)
		}, 1},
		{"bezier", func(w *Wireframe) { w.Bezier(p0, p1, p2, CurveSegments, 0xFFFFFFFF) }, CurveSegments},
		{"catmull-rom", func(w *Wireframe) { w.CatmullRom(p0, p1, p2, p3, 16, 0xFFFFFFFF) }, 16},
		{"control point", func(w *Wireframe) { w.ControlPoint(p1) }, 2 * SphereSubdivision * SphereSubdivision},
		{"shape dispatch", func(w *Wireframe) { w.Shape(box, 0xFFFFFFFF) }, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWireframe(defaultScreen())
			tt.draw(w)
			if len(w.Lines) != tt.want {
				t.Errorf("got %d lines, want %d", len(w.Lines), tt.want)
			}
			if w.Skipped != 0 {
				t.Errorf("Skipped = %d, want 0", w.Skipped)
			}
		})
	}
}

func TestWireframeProjectsEndpoints(t *testing.T) {
	screen := defaultScreen()
	w := NewWireframe(screen)
	a, b := math.Vec3{X: -1, Z: 1}, math.Vec3{X: 1, Y: 0.5, Z: 2}
	w.Line3(a, b, 0x12345678)

	if len(w.Lines) != 1 {
		t.Fatalf("got %d lines", len(w.Lines))
	}
	wantA, _ := camera.Project(a, screen)
	wantB, _ := camera.Project(b, screen)
	got := w.Lines[0]
	if got.A != wantA || got.B != wantB || got.Color != 0x12345678 {
		t.Errorf("line = %+v, want %v -> %v", got, wantA, wantB)
	}
}

func TestWireframeGridColor(t *testing.T) {
	w := NewWireframe(defaultScreen())
	w.Grid(GridHalfWidth, GridSubdivision, GridColor)
	for i, l := range w.Lines {
		if l.Color != 0x6F6F6FFF {
			t.Fatalf("line %d color = %#x", i, l.Color)
		}
	}
}

func TestWireframeSkipsZeroW(t *testing.T) {
	c := camera.Default()
	c.Rotate = math.Vec3{}
	c.Translate = math.Vec3{}
	w := NewWireframe(c.ScreenMatrix(math.Identity()))

	// z = 0 in view space cannot be projected
	w.Line3(math.Vec3{X: 1}, math.Vec3{Z: 5}, 0xFFFFFFFF)
	if len(w.Lines) != 0 || w.Skipped != 1 {
		t.Errorf("lines = %d, skipped = %d; want 0, 1", len(w.Lines), w.Skipped)
	}

	// A triangle with one bad vertex keeps the opposite edge
	w.Reset()
	w.Triangle(collision.Triangle{Vertices: [3]math.Vec3{{X: 1}, {Z: 5}, {X: 1, Z: 5}}}, 0xFFFFFFFF)
	if len(w.Lines) != 1 {
		t.Errorf("lines = %d, want 1", len(w.Lines))
	}
	if w.Skipped == 0 {
		t.Error("Skipped not counted")
	}
}

func TestWireframeReset(t *testing.T) {
	w := NewWireframe(defaultScreen())
	w.Grid(1, 2, GridColor)
	w.Skipped = 3
	w.Reset()
	if len(w.Lines) != 0 || w.Skipped != 0 {
		t.Errorf("after Reset: %d lines, %d skipped", len(w.Lines), w.Skipped)
	}
}
