package camera

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/geomkit/pkg/math"
)

func near(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.FovY != 0.45 || c.Near != 0.1 || c.Far != 100 {
		t.Errorf("lens = (%v, %v, %v)", c.FovY, c.Near, c.Far)
	}
	if c.Width != 1280 || c.Height != 720 {
		t.Errorf("viewport = %dx%d", c.Width, c.Height)
	}
	if c.Translate != (math.Vec3{Y: 1.9, Z: -6.49}) {
		t.Errorf("translate = %v", c.Translate)
	}
}

func TestViewInvertsMatrix(t *testing.T) {
	c := Default()
	got := c.View().Mul(c.Matrix())
	if !got.ApproxEqual(math.Identity(), 1e-4) {
		t.Errorf("View × Matrix = %v, want identity", got)
	}
}

func TestAimMatchesRotation(t *testing.T) {
	// Straight ahead along +Z, the aimed camera equals the unrotated one
	free := Default()
	free.Rotate = math.Vec3{}
	free.Translate = math.Vec3{X: 1, Y: 2, Z: -5}

	aimed := free
	aimed.Rotate = math.Vec3{X: 1, Y: 2, Z: 3}
	aimed.Aim = true
	aimed.Target = math.Vec3{X: 1, Y: 2, Z: 10}

	if !aimed.View().ApproxEqual(free.View(), 1e-4) {
		t.Errorf("aimed view = %v, want %v", aimed.View(), free.View())
	}
	if !aimed.View().Mul(aimed.Matrix()).ApproxEqual(math.Identity(), 1e-4) {
		t.Error("aimed View × Matrix is not identity")
	}
}

func TestAimCentersTarget(t *testing.T) {
	c := Default()
	c.Aim = true
	c.Translate = math.Vec3{X: 3, Y: 4, Z: -6}
	c.Target = math.Vec3{X: -1, Y: 0.5, Z: 2}

	p, err := Project(c.Target, c.ScreenMatrix(math.Identity()))
	if err != nil {
		t.Fatal(err)
	}
	if !near(p.X, 640, 1e-2) || !near(p.Y, 360, 1e-2) {
		t.Errorf("target projected to %v, want (640, 360)", p)
	}
}

func TestForward(t *testing.T) {
	tests := []struct {
		name string
		cam  Camera
		want math.Vec3
	}{
		{"unrotated", Camera{}, math.Vec3{Z: 1}},
		{"yaw quarter turn", Camera{Rotate: math.Vec3{Y: gomath.Pi / 2}}, math.Vec3{X: 1}},
		{"aimed ahead", Camera{Aim: true, Translate: math.Vec3{Y: 5}, Target: math.Vec3{Y: 5, Z: 5}}, math.Vec3{Z: 1}},
		{"aimed sideways", Camera{Aim: true, Target: math.Vec3{X: -2}}, math.Vec3{X: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cam.Forward()
			if got.Sub(tt.want).Length() > 1e-4 {
				t.Errorf("Forward() = %v, want %v", got, tt.want)
			}
		})
	}

	// Translation does not move a direction
	c := Default()
	moved := c
	moved.Translate = math.Vec3{X: 100, Y: -50, Z: 7}
	if c.Forward().Sub(moved.Forward()).Length() > 1e-5 {
		t.Errorf("Forward changed with translation: %v vs %v", c.Forward(), moved.Forward())
	}
}

func TestProjectCenter(t *testing.T) {
	c := Default()
	c.Rotate = math.Vec3{}
	c.Translate = math.Vec3{}

	screen := c.ScreenMatrix(math.Identity())
	p, err := Project(math.Vec3{Z: 5}, screen)
	if err != nil {
		t.Fatal(err)
	}
	if !near(p.X, 640, 1e-3) || !near(p.Y, 360, 1e-3) {
		t.Errorf("point ahead projected to %v, want (640, 360)", p)
	}

	// Up in the world is up on screen, which is smaller y
	up, err := Project(math.Vec3{Y: 1, Z: 5}, screen)
	if err != nil {
		t.Fatal(err)
	}
	if up.Y >= p.Y {
		t.Errorf("point above projected to y=%v, want < %v", up.Y, p.Y)
	}
}

func TestProjectDefaultOriginVisible(t *testing.T) {
	c := Default()
	p, err := Project(math.Vec3{}, c.ScreenMatrix(math.Identity()))
	if err != nil {
		t.Fatal(err)
	}
	if gomath.IsNaN(float64(p.X)) || gomath.IsNaN(float64(p.Y)) {
		t.Fatalf("origin projected to %v", p)
	}
	if !near(p.X, 640, 1e-2) {
		t.Errorf("origin x = %v, want centered", p.X)
	}
	if p.Y < 0 || p.Y > float32(c.Height) {
		t.Errorf("origin y = %v, outside viewport", p.Y)
	}
}

func TestProjectDepthRange(t *testing.T) {
	c := Default()
	c.Rotate = math.Vec3{}
	c.Translate = math.Vec3{}
	screen := c.ScreenMatrix(math.Identity())

	tests := []struct {
		z    float32
		want float32
	}{
		{c.Near, 0},
		{c.Far, 1},
	}
	for _, tt := range tests {
		s := math.Transform(math.Vec3{Z: tt.z}, screen)
		if !near(s.Z, tt.want, 1e-4) {
			t.Errorf("depth at z=%v = %v, want %v", tt.z, s.Z, tt.want)
		}
	}
}

func TestProjectOnCameraPlane(t *testing.T) {
	c := Default()
	c.Rotate = math.Vec3{}
	c.Translate = math.Vec3{}

	// w = z, so points with z = 0 cannot be divided
	_, err := Project(math.Vec3{X: 1}, c.ScreenMatrix(math.Identity()))
	if !errors.Is(err, math.ErrZeroW) {
		t.Errorf("Project error = %v, want ErrZeroW", err)
	}
}

func TestWorldMatrixMovesScene(t *testing.T) {
	c := Default()
	c.Rotate = math.Vec3{}
	c.Translate = math.Vec3{}

	// Inverse(world) is applied, so a world shifted by +x shows points at -x
	world := math.Translate(math.Vec3{X: 1})
	p, err := Project(math.Vec3{X: 1, Z: 5}, c.ScreenMatrix(world))
	if err != nil {
		t.Fatal(err)
	}
	if !near(p.X, 640, 1e-3) {
		t.Errorf("x = %v, want 640", p.X)
	}
}

func TestZoom(t *testing.T) {
	c := Default()
	z := c.Zoom(120)
	if !near(z.Translate.Z, c.Translate.Z+1.2, 1e-5) {
		t.Errorf("Zoom(120) z = %v, want %v", z.Translate.Z, c.Translate.Z+1.2)
	}
	if c.Translate.Z != -6.49 {
		t.Error("Zoom modified the receiver")
	}
}

func TestOrbit(t *testing.T) {
	r := Orbit(math.Vec3{X: 0.1}, 10, -5)
	if !near(r.Y, 0.1, 1e-6) || !near(r.X, 0.05, 1e-6) || r.Z != 0 {
		t.Errorf("Orbit = %v, want (0.05, 0.1, 0)", r)
	}
}
