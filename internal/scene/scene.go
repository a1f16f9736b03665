// Package scene loads YAML scene descriptions: a camera, a world pose,
// named collision shapes, curve control points and collision checks.
package scene

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/geomkit/internal/engine/camera"
	"github.com/Faultbox/geomkit/internal/logger"
	"github.com/Faultbox/geomkit/pkg/collision"
	"github.com/Faultbox/geomkit/pkg/math"
)

var (
	ErrUnknownShape     = errors.New("unknown shape kind")
	ErrAmbiguousShape   = errors.New("shape declares more than one kind")
	ErrUnknownReference = errors.New("check references unknown shape")
	ErrInvalidVector    = errors.New("vector must have exactly 3 components")
	ErrNegativeRadius   = errors.New("sphere radius is negative")
	ErrDuplicateName    = errors.New("duplicate shape name")
	ErrInvalidCheck     = errors.New("check must name exactly 2 shapes")
	ErrUnknownCurve     = errors.New("unknown curve type")
	ErrInvalidCamera    = errors.New("invalid camera")
)

// DefaultColor is used for shapes without an explicit color.
const DefaultColor uint32 = 0xFFFFFFFF

// Curve types for control points.
const (
	CurveCatmullRom = "catmull_rom"
	CurveBezier     = "bezier"
)

// World places the scene relative to the camera.
type World struct {
	Scale     math.Vec3
	Rotate    math.Vec3
	Translate math.Vec3
}

// Matrix returns the world's affine transform.
func (w World) Matrix() math.Mat4 {
	return math.Affine(w.Scale, w.Rotate, w.Translate)
}

// NamedShape is a shape with the name checks refer to it by.
type NamedShape struct {
	Name  string
	Shape collision.Shape
	Color uint32
}

// Scene is a parsed scene file.
type Scene struct {
	Camera        camera.Camera
	World         World
	ControlPoints []math.Vec3
	Curve         string
	CurveColor    uint32
	Shapes        []NamedShape
	Checks        [][2]string

	byName map[string]int
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}

	logger.Named("scene").Debug("loaded",
		zap.String("path", path),
		zap.Int("shapes", len(s.Shapes)),
		zap.Int("checks", len(s.Checks)),
		zap.Int("controlPoints", len(s.ControlPoints)))
	return s, nil
}

// Parse decodes a scene from YAML.
func Parse(data []byte) (*Scene, error) {
	var raw rawScene
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw.build()
}

// Shape looks up a shape by name.
func (s *Scene) Shape(name string) (collision.Shape, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return s.Shapes[i].Shape, true
}

// CollisionShapes returns the shapes in declaration order.
func (s *Scene) CollisionShapes() []collision.Shape {
	shapes := make([]collision.Shape, len(s.Shapes))
	for i, ns := range s.Shapes {
		shapes[i] = ns.Shape
	}
	return shapes
}

// ScreenMatrix returns the scene's world-to-pixel matrix.
func (s *Scene) ScreenMatrix() math.Mat4 {
	return s.Camera.ScreenMatrix(s.World.Matrix())
}
