// Package camera provides the perspective camera scenes are viewed through.
package camera

import (
	"fmt"

	"github.com/Faultbox/geomkit/pkg/math"
)

// Drag and wheel sensitivities, in radians per pixel and units per notch.
const (
	OrbitSensitivity = 0.01
	ZoomSensitivity  = 0.01
)

// Camera is an Euler-angle camera with a left-handed perspective lens.
// With Aim set it sits at Translate looking at Target and Rotate is ignored.
type Camera struct {
	Rotate    math.Vec3
	Translate math.Vec3
	Aim       bool
	Target    math.Vec3

	FovY float32 // Vertical field of view, radians
	Near float32
	Far  float32

	Width    int
	Height   int
	MinDepth float32
	MaxDepth float32
}

// Default returns the camera used when a scene does not set one: slightly
// above and behind the origin, pitched down towards it.
func Default() Camera {
	return Camera{
		Rotate:    math.Vec3{X: 0.26},
		Translate: math.Vec3{Y: 1.9, Z: -6.49},
		FovY:      0.45,
		Near:      0.1,
		Far:       100,
		Width:     1280,
		Height:    720,
		MinDepth:  0,
		MaxDepth:  1,
	}
}

// Aspect returns the viewport width over height.
func (c Camera) Aspect() float32 {
	if c.Height == 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// Matrix returns the camera's placement in world space.
func (c Camera) Matrix() math.Mat4 {
	if c.Aim {
		return c.View().Inverse()
	}
	return math.Affine(math.Vec3{X: 1, Y: 1, Z: 1}, c.Rotate, c.Translate)
}

// View returns the world-to-camera matrix.
func (c Camera) View() math.Mat4 {
	if c.Aim {
		return math.LookAt(c.Translate, c.Target, math.Vec3{Y: 1})
	}
	return c.Matrix().Inverse()
}

// Forward returns the unit direction the camera looks along, in world space.
func (c Camera) Forward() math.Vec3 {
	return math.TransformDirection(math.Vec3{Z: 1}, c.Matrix()).Normalize()
}

// Projection returns the perspective projection matrix.
func (c Camera) Projection() math.Mat4 {
	return math.PerspectiveFov(c.FovY, c.Aspect(), c.Near, c.Far)
}

// ViewportMatrix maps NDC to pixels with y pointing down.
func (c Camera) ViewportMatrix() math.Mat4 {
	return math.Viewport(0, 0, float32(c.Width), float32(c.Height), c.MinDepth, c.MaxDepth)
}

// ViewProjection composes Inverse(world) × View × Projection.
func (c Camera) ViewProjection(world math.Mat4) math.Mat4 {
	return world.Inverse().Mul(c.View().Mul(c.Projection()))
}

// ScreenMatrix maps world points straight to pixels.
func (c Camera) ScreenMatrix(world math.Mat4) math.Mat4 {
	return c.ViewProjection(world).Mul(c.ViewportMatrix())
}

// Project maps p through a screen matrix (see ScreenMatrix) to pixels.
func Project(p math.Vec3, screen math.Mat4) (math.Vec2, error) {
	s, err := math.TryTransform(p, screen)
	if err != nil {
		return math.Vec2{}, fmt.Errorf("projecting %v: %w", p, err)
	}
	return s.XY(), nil
}

// Zoom returns the camera moved along Z by wheel notches.
func (c Camera) Zoom(wheel int) Camera {
	c.Translate.Z += float32(wheel) * ZoomSensitivity
	return c
}

// Orbit returns a world rotation turned by a mouse drag: horizontal motion
// spins around Y, vertical motion tilts around X.
func Orbit(rotate math.Vec3, dx, dy int) math.Vec3 {
	rotate.Y += float32(dx) * OrbitSensitivity
	rotate.X += float32(dy) * OrbitSensitivity
	return rotate
}
