package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/geomkit/internal/engine/camera"
	"github.com/Faultbox/geomkit/pkg/collision"
	"github.com/Faultbox/geomkit/pkg/math"
)

type rawScene struct {
	Camera        *rawCamera  `yaml:"camera"`
	World         *rawWorld   `yaml:"world"`
	ControlPoints [][]float32 `yaml:"control_points"`
	Curve         string      `yaml:"curve"`
	CurveColor    *uint32     `yaml:"curve_color"`
	Shapes        []rawShape  `yaml:"shapes"`
	Checks        [][]string  `yaml:"checks"`
}

type rawCamera struct {
	Rotate    []float32 `yaml:"rotate"`
	Translate []float32 `yaml:"translate"`
	LookAt    []float32 `yaml:"look_at"`
	FovY      *float32  `yaml:"fov_y"`
	Near      *float32  `yaml:"near"`
	Far       *float32  `yaml:"far"`
}

type rawWorld struct {
	Scale     []float32 `yaml:"scale"`
	Rotate    []float32 `yaml:"rotate"`
	Translate []float32 `yaml:"translate"`
}

type rawSphere struct {
	Center []float32 `yaml:"center"`
	Radius float32   `yaml:"radius"`
}

type rawPlane struct {
	Normal   []float32 `yaml:"normal"`
	Distance float32   `yaml:"distance"`
}

type rawSegment struct {
	Origin []float32 `yaml:"origin"`
	Diff   []float32 `yaml:"diff"`
}

type rawAABB struct {
	Min []float32 `yaml:"min"`
	Max []float32 `yaml:"max"`
}

// rawShape is one entry of the shapes list: a name, an optional color and
// exactly one shape kind key.
type rawShape struct {
	Name  string
	Color *uint32
	kind  collision.Kind
	body  *yaml.Node
	line  int
}

// UnmarshalYAML records the kind key instead of decoding into fixed fields
// so unknown kinds can be reported by name.
func (r *rawShape) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: shape must be a mapping", value.Line)
	}
	r.line = value.Line

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "name":
			if err := val.Decode(&r.Name); err != nil {
				return err
			}
		case "color":
			var c uint32
			if err := val.Decode(&c); err != nil {
				return err
			}
			r.Color = &c
		case string(collision.KindSphere), string(collision.KindPlane), string(collision.KindSegment),
			string(collision.KindAABB), string(collision.KindTriangle):
			if r.body != nil {
				return fmt.Errorf("line %d: %w: %s and %s", key.Line, ErrAmbiguousShape, r.kind, key.Value)
			}
			r.kind = collision.Kind(key.Value)
			r.body = val
		default:
			return fmt.Errorf("line %d: %w: %q", key.Line, ErrUnknownShape, key.Value)
		}
	}

	if r.body == nil {
		return fmt.Errorf("line %d: %w: no kind given", value.Line, ErrUnknownShape)
	}
	return nil
}

func (r *rawShape) shape() (collision.Shape, error) {
	switch r.kind {
	case collision.KindSphere:
		var raw rawSphere
		if err := r.body.Decode(&raw); err != nil {
			return nil, err
		}
		center, err := vec3(raw.Center, "center")
		if err != nil {
			return nil, err
		}
		if raw.Radius < 0 {
			return nil, fmt.Errorf("%w: %g", ErrNegativeRadius, raw.Radius)
		}
		return collision.Sphere{Center: center, Radius: raw.Radius}, nil

	case collision.KindPlane:
		var raw rawPlane
		if err := r.body.Decode(&raw); err != nil {
			return nil, err
		}
		normal, err := vec3(raw.Normal, "normal")
		if err != nil {
			return nil, err
		}
		return collision.Plane{Normal: normal, Distance: raw.Distance}, nil

	case collision.KindSegment:
		var raw rawSegment
		if err := r.body.Decode(&raw); err != nil {
			return nil, err
		}
		origin, err := vec3(raw.Origin, "origin")
		if err != nil {
			return nil, err
		}
		diff, err := vec3(raw.Diff, "diff")
		if err != nil {
			return nil, err
		}
		return collision.Segment{Origin: origin, Diff: diff}, nil

	case collision.KindAABB:
		var raw rawAABB
		if err := r.body.Decode(&raw); err != nil {
			return nil, err
		}
		lo, err := vec3(raw.Min, "min")
		if err != nil {
			return nil, err
		}
		hi, err := vec3(raw.Max, "max")
		if err != nil {
			return nil, err
		}
		return collision.NewAABB(lo, hi), nil

	case collision.KindTriangle:
		var raw [][]float32
		if err := r.body.Decode(&raw); err != nil {
			return nil, err
		}
		if len(raw) != 3 {
			return nil, fmt.Errorf("%w: triangle has %d vertices", ErrInvalidVector, len(raw))
		}
		var tri collision.Triangle
		for i, v := range raw {
			p, err := vec3(v, fmt.Sprintf("vertex %d", i))
			if err != nil {
				return nil, err
			}
			tri.Vertices[i] = p
		}
		return tri, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, r.kind)
}

func vec3(v []float32, field string) (math.Vec3, error) {
	if len(v) != 3 {
		return math.Vec3{}, fmt.Errorf("%s: %w (got %d)", field, ErrInvalidVector, len(v))
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// optVec3 is vec3 for optional fields; nil keeps def.
func optVec3(v []float32, field string, def math.Vec3) (math.Vec3, error) {
	if v == nil {
		return def, nil
	}
	return vec3(v, field)
}

func (raw *rawScene) build() (*Scene, error) {
	s := &Scene{
		Camera:     camera.Default(),
		World:      World{Scale: math.Vec3{X: 1, Y: 1, Z: 1}},
		Curve:      CurveCatmullRom,
		CurveColor: DefaultColor,
		byName:     make(map[string]int),
	}

	if err := raw.buildCamera(&s.Camera); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	if err := raw.buildWorld(&s.World); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	for i, v := range raw.ControlPoints {
		p, err := vec3(v, fmt.Sprintf("control point %d", i))
		if err != nil {
			return nil, err
		}
		s.ControlPoints = append(s.ControlPoints, p)
	}
	switch raw.Curve {
	case "", CurveCatmullRom:
	case CurveBezier:
		s.Curve = CurveBezier
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, raw.Curve)
	}
	if raw.CurveColor != nil {
		s.CurveColor = *raw.CurveColor
	}

	for i := range raw.Shapes {
		r := &raw.Shapes[i]
		shape, err := r.shape()
		if err != nil {
			return nil, fmt.Errorf("line %d: shape %q: %w", r.line, r.Name, err)
		}

		name := r.Name
		if name == "" {
			name = fmt.Sprintf("%s%d", r.kind, i)
		}
		if _, dup := s.byName[name]; dup {
			return nil, fmt.Errorf("line %d: %w: %q", r.line, ErrDuplicateName, name)
		}

		color := DefaultColor
		if r.Color != nil {
			color = *r.Color
		}

		s.byName[name] = len(s.Shapes)
		s.Shapes = append(s.Shapes, NamedShape{Name: name, Shape: shape, Color: color})
	}

	for _, c := range raw.Checks {
		if len(c) != 2 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCheck, c)
		}
		for _, name := range c {
			if _, ok := s.byName[name]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownReference, name)
			}
		}
		s.Checks = append(s.Checks, [2]string{c[0], c[1]})
	}

	return s, nil
}

func (raw *rawScene) buildCamera(c *camera.Camera) error {
	if raw.Camera == nil {
		return nil
	}
	rc := raw.Camera

	var err error
	if c.Rotate, err = optVec3(rc.Rotate, "rotate", c.Rotate); err != nil {
		return err
	}
	if c.Translate, err = optVec3(rc.Translate, "translate", c.Translate); err != nil {
		return err
	}
	if rc.LookAt != nil {
		if c.Target, err = vec3(rc.LookAt, "look_at"); err != nil {
			return err
		}
		// LookAt needs a view direction that is not parallel to +Y
		if c.Target.Sub(c.Translate).Cross(math.Vec3{Y: 1}) == (math.Vec3{}) {
			return fmt.Errorf("%w: look_at must not be at or straight above or below translate", ErrInvalidCamera)
		}
		c.Aim = true
	}
	if rc.FovY != nil {
		c.FovY = *rc.FovY
	}
	if rc.Near != nil {
		c.Near = *rc.Near
	}
	if rc.Far != nil {
		c.Far = *rc.Far
	}
	return nil
}

func (raw *rawScene) buildWorld(w *World) error {
	if raw.World == nil {
		return nil
	}
	rw := raw.World

	var err error
	if w.Scale, err = optVec3(rw.Scale, "scale", w.Scale); err != nil {
		return err
	}
	if w.Rotate, err = optVec3(rw.Rotate, "rotate", w.Rotate); err != nil {
		return err
	}
	if w.Translate, err = optVec3(rw.Translate, "translate", w.Translate); err != nil {
		return err
	}
	return nil
}
