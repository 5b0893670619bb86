package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Lerp interpolates linearly: P(t) = (1-t)*p0 + t*p1.
func Lerp(p0, p1 mgl64.Vec3, t float64) mgl64.Vec3 {
	return p0.Mul(1 - t).Add(p1.Mul(t))
}

// CatmullRom evaluates the Catmull-Rom segment between p1 and p2:
//
//	P(t) = 0.5*[2p1 + t(-p0+p2) + t^2(2p0-5p1+4p2-p3) + t^3(-p0+3p1-3p2+p3)]
func CatmullRom(p0, p1, p2, p3 mgl64.Vec3, t float64) mgl64.Vec3 {
	t2 := t * t
	t3 := t2 * t

	a := p1.Mul(2)
	b := p2.Sub(p0).Mul(t)
	c := p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3).Mul(t2)
	d := p1.Mul(3).Sub(p0).Sub(p2.Mul(3)).Add(p3).Mul(t3)

	return a.Add(b).Add(c).Add(d).Mul(0.5)
}

// CubicBezier evaluates the cubic Bezier curve with control points p0..p3.
// t is clamped to [0,1]; mgl64 panics outside that range.
func CubicBezier(p0, p1, p2, p3 mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.CubicBezierCurve3D(mgl64.Clamp(t, 0, 1), p0, p1, p2, p3)
}
