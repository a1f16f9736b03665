package math

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix in row-major order for row vectors.
// Element (row r, column c) lives at index r*4+c:
//
//	[m0  m1  m2  m3 ]
//	[m4  m5  m6  m7 ]
//	[m8  m9  m10 m11]
//	[m12 m13 m14 m15]
//
// A point is transformed as [x y z 1] * M, so translation sits in row 3
// and column 3 produces the homogeneous w.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 {
	return m[r*4+c]
}

// Add returns the element-wise sum m + other.
func (m Mat4) Add(other Mat4) Mat4 {
	var result Mat4
	for i := range result {
		result[i] = m[i] + other[i]
	}
	return result
}

// Sub returns the element-wise difference m - other.
func (m Mat4) Sub(other Mat4) Mat4 {
	var result Mat4
	for i := range result {
		result[i] = m[i] - other[i]
	}
	return result
}

// Mul returns the product m * other. Applying the result to a point is
// the same as applying m first and other second.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r*4+c] =
				m[r*4+0]*other[0*4+c] +
					m[r*4+1]*other[1*4+c] +
					m[r*4+2]*other[2*4+c] +
					m[r*4+3]*other[3*4+c]
		}
	}
	return result
}

// Transpose swaps rows and columns.
func (m Mat4) Transpose() Mat4 {
	var result Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[c*4+r] = m[r*4+c]
		}
	}
	return result
}

// minor returns the determinant of the 3x3 matrix left after deleting
// row r and column c.
func (m Mat4) minor(r, c int) float32 {
	var rows, cols [3]int
	for i, n := 0, 0; i < 4; i++ {
		if i != r {
			rows[n] = i
			n++
		}
	}
	for i, n := 0, 0; i < 4; i++ {
		if i != c {
			cols[n] = i
			n++
		}
	}

	a := func(i, j int) float32 { return m[rows[i]*4+cols[j]] }

	return a(0, 0)*(a(1, 1)*a(2, 2)-a(1, 2)*a(2, 1)) -
		a(0, 1)*(a(1, 0)*a(2, 2)-a(1, 2)*a(2, 0)) +
		a(0, 2)*(a(1, 0)*a(2, 1)-a(1, 1)*a(2, 0))
}

// cofactor returns the signed minor for row r, column c.
func (m Mat4) cofactor(r, c int) float32 {
	if (r+c)%2 == 1 {
		return -m.minor(r, c)
	}
	return m.minor(r, c)
}

// Determinant returns the determinant by cofactor expansion along row 0.
func (m Mat4) Determinant() float32 {
	return m[0]*m.cofactor(0, 0) +
		m[1]*m.cofactor(0, 1) +
		m[2]*m.cofactor(0, 2) +
		m[3]*m.cofactor(0, 3)
}

// Inverse returns the inverse of the matrix as the transposed cofactor
// matrix divided by the determinant.
//
// The determinant is not checked: a singular matrix produces Inf/NaN
// entries. Use TryInverse when the input may be singular.
func (m Mat4) Inverse() Mat4 {
	det := m.Determinant()

	var result Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[c*4+r] = m.cofactor(r, c) / det
		}
	}
	return result
}

// TryInverse is Inverse with a singularity check.
func (m Mat4) TryInverse() (Mat4, error) {
	if m.Determinant() == 0 {
		return Mat4{}, ErrSingularMatrix
	}
	return m.Inverse(), nil
}

// ApproxEqual reports whether every element differs from other by at most eps.
func (m Mat4) ApproxEqual(other Mat4, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// Scale returns a scale matrix.
func Scale(s Vec3) Mat4 {
	return Mat4{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(t Vec3) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		t.X, t.Y, t.Z, 1,
	}
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians.
func RotateX(angle float32) Mat4 {
	s, c := math32.Sincos(angle)

	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians.
func RotateY(angle float32) Mat4 {
	s, c := math32.Sincos(angle)

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in radians.
func RotateZ(angle float32) Mat4 {
	s, c := math32.Sincos(angle)

	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Affine composes scale, Euler rotation (X, then Y, then Z) and translation
// as S * Rx * Ry * (Rz * T).
func Affine(scale, rotate, translate Vec3) Mat4 {
	rotateZTranslate := RotateZ(rotate.Z).Mul(Translate(translate))
	return Scale(scale).Mul(RotateX(rotate.X)).Mul(RotateY(rotate.Y)).Mul(rotateZTranslate)
}

// PerspectiveFov returns a left-handed perspective projection matrix.
// fovY is in radians, aspect is width/height. View-space depth in
// [near, far] maps to [0, 1] after the divide by w = z.
func PerspectiveFov(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	depth := far / (far - near)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, depth, 1,
		0, 0, -near * depth, 0,
	}
}

// Orthographic returns an orthographic projection matrix mapping the box
// to x, y in [-1, 1] and depth in [0, 1].
func Orthographic(left, top, right, bottom, near, far float32) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 1 / (far - near), 0,
		(left + right) / (left - right), (top + bottom) / (bottom - top), near / (near - far), 1,
	}
}

// Viewport maps normalized device coordinates to pixels. Y is flipped so
// that +Y in NDC points to the top of the screen.
func Viewport(left, top, width, height, minDepth, maxDepth float32) Mat4 {
	return Mat4{
		width / 2, 0, 0, 0,
		0, -height / 2, 0, 0,
		0, 0, maxDepth - minDepth, 0,
		left + width/2, top + height/2, minDepth, 1,
	}
}

// LookAt returns a left-handed view matrix looking from eye towards target.
func LookAt(eye, target, up Vec3) Mat4 {
	z := target.Sub(eye).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}
