package math

// Lerp performs linear interpolation: a at t=0, b at t=1.
func Lerp(a, b Vec3, t float32) Vec3 {
	return Vec3{
		a.X + t*(b.X-a.X),
		a.Y + t*(b.Y-a.Y),
		a.Z + t*(b.Z-a.Z),
	}
}

// CatmullRom evaluates a uniform Catmull-Rom segment. p0 and p3 shape the
// tangents; the curve runs from p1 at t=0 to p2 at t=1.
func CatmullRom(p0, p1, p2, p3 Vec3, t float32) Vec3 {
	t2 := t * t
	t3 := t2 * t

	eval := func(a, b, c, d float32) float32 {
		return 0.5 * (2*b +
			(-a+c)*t +
			(2*a-5*b+4*c-d)*t2 +
			(-a+3*b-3*c+d)*t3)
	}

	return Vec3{
		eval(p0.X, p1.X, p2.X, p3.X),
		eval(p0.Y, p1.Y, p2.Y, p3.Y),
		eval(p0.Z, p1.Z, p2.Z, p3.Z),
	}
}

// QuadraticBezier evaluates a quadratic Bezier curve by repeated Lerp.
func QuadraticBezier(p0, p1, p2 Vec3, t float32) Vec3 {
	return Lerp(Lerp(p0, p1, t), Lerp(p1, p2, t), t)
}

// SampleCatmullRom returns segments+1 evenly spaced points on the segment
// p1..p2. segments < 1 is treated as 1.
func SampleCatmullRom(p0, p1, p2, p3 Vec3, segments int) []Vec3 {
	return sample(segments, func(t float32) Vec3 {
		return CatmullRom(p0, p1, p2, p3, t)
	})
}

// SampleBezier returns segments+1 evenly spaced points on a quadratic Bezier.
func SampleBezier(p0, p1, p2 Vec3, segments int) []Vec3 {
	return sample(segments, func(t float32) Vec3 {
		return QuadraticBezier(p0, p1, p2, t)
	})
}

func sample(segments int, eval func(t float32) Vec3) []Vec3 {
	if segments < 1 {
		segments = 1
	}
	points := make([]Vec3, segments+1)
	for i := range points {
		points[i] = eval(float32(i) / float32(segments))
	}
	return points
}
