package math

import "errors"

var (
	ErrSingularMatrix = errors.New("matrix is singular")
	ErrZeroW          = errors.New("homogeneous w is zero")
)

// homogeneous returns [v 1] * m before the perspective divide.
func homogeneous(v Vec3, m Mat4) (x, y, z, w float32) {
	x = v.X*m[0] + v.Y*m[4] + v.Z*m[8] + m[12]
	y = v.X*m[1] + v.Y*m[5] + v.Z*m[9] + m[13]
	z = v.X*m[2] + v.Y*m[6] + v.Z*m[10] + m[14]
	w = v.X*m[3] + v.Y*m[7] + v.Z*m[11] + m[15]
	return x, y, z, w
}

// Transform transforms point v by m (w=1) and divides by the resulting w.
// It panics when w is exactly zero; callers must not pass a point that
// projects onto the eye.
func Transform(v Vec3, m Mat4) Vec3 {
	x, y, z, w := homogeneous(v, m)
	if w == 0 {
		panic("math: Transform produced w == 0")
	}
	return Vec3{x / w, y / w, z / w}
}

// TryTransform is Transform that returns ErrZeroW instead of panicking.
func TryTransform(v Vec3, m Mat4) (Vec3, error) {
	x, y, z, w := homogeneous(v, m)
	if w == 0 {
		return Vec3{}, ErrZeroW
	}
	return Vec3{x / w, y / w, z / w}, nil
}

// TransformDirection transforms a direction vector (ignores translation).
func TransformDirection(d Vec3, m Mat4) Vec3 {
	return Vec3{
		d.X*m[0] + d.Y*m[4] + d.Z*m[8],
		d.X*m[1] + d.Y*m[5] + d.Z*m[9],
		d.X*m[2] + d.Y*m[6] + d.Z*m[10],
	}
}
