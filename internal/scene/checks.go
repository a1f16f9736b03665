package scene

import (
	"fmt"

	"github.com/Faultbox/geomkit/pkg/collision"
)

// CheckResult is the outcome of one collision check. Err is set when the
// pair has no test (collision.ErrUnsupportedPair) or a name does not resolve
// (ErrUnknownReference).
type CheckResult struct {
	A, B string
	Hit  bool
	Err  error
}

// RunChecks evaluates every check in file order.
func (s *Scene) RunChecks() []CheckResult {
	results := make([]CheckResult, 0, len(s.Checks))
	for _, c := range s.Checks {
		r := CheckResult{A: c[0], B: c[1]}
		a, okA := s.Shape(c[0])
		b, okB := s.Shape(c[1])
		switch {
		case !okA:
			r.Err = fmt.Errorf("%w: %q", ErrUnknownReference, c[0])
		case !okB:
			r.Err = fmt.Errorf("%w: %q", ErrUnknownReference, c[1])
		default:
			r.Hit, r.Err = collision.Collide(a, b)
		}
		results = append(results, r)
	}
	return results
}

// Overlaps tests every supported pair of shapes and returns the colliding
// ones by name.
func (s *Scene) Overlaps() []CheckResult {
	var results []CheckResult
	for i := 0; i < len(s.Shapes); i++ {
		for j := i + 1; j < len(s.Shapes); j++ {
			a, b := s.Shapes[i], s.Shapes[j]
			if !collision.Supported(a.Shape.Kind(), b.Shape.Kind()) {
				continue
			}
			hit, err := collision.Collide(a.Shape, b.Shape)
			if err == nil && hit {
				results = append(results, CheckResult{A: a.Name, B: b.Name, Hit: true})
			}
		}
	}
	return results
}
