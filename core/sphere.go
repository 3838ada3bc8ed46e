package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is a bounding sphere. A negative radius marks an empty (invalid) bound.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// EmptySphere returns an invalid sphere that ExpandBy can grow from.
func EmptySphere() Sphere {
	return Sphere{Radius: -1}
}

func (s Sphere) Valid() bool {
	return s.Radius >= 0
}

// Intersects reports whether two valid spheres overlap or touch.
func (s Sphere) Intersects(o Sphere) bool {
	if !s.Valid() || !o.Valid() {
		return false
	}
	r := s.Radius + o.Radius
	d := s.Center.Sub(o.Center)
	return d.Dot(d) <= r*r
}

// ExpandBy returns the smallest sphere enclosing both s and o.
func (s Sphere) ExpandBy(o Sphere) Sphere {
	if !o.Valid() {
		return s
	}
	if !s.Valid() {
		return o
	}

	d := o.Center.Sub(s.Center).Len()
	if d+o.Radius <= s.Radius {
		return s
	}
	if d+s.Radius <= o.Radius {
		return o
	}

	radius := (s.Radius + o.Radius + d) * 0.5
	dir := o.Center.Sub(s.Center).Mul(1.0 / d)
	return Sphere{
		Center: s.Center.Add(dir.Mul(radius - s.Radius)),
		Radius: radius,
	}
}

// TransformSphere maps s through the affine matrix m. The radius is scaled by
// the largest axis stretch of m so the result stays conservative.
func TransformSphere(m mgl32.Mat4, s Sphere) Sphere {
	if !s.Valid() {
		return s
	}

	center := m.Mul4x1(s.Center.Vec4(1)).Vec3()
	xdash := m.Mul4x1(s.Center.Add(mgl32.Vec3{s.Radius, 0, 0}).Vec4(1)).Vec3().Sub(center)
	ydash := m.Mul4x1(s.Center.Add(mgl32.Vec3{0, s.Radius, 0}).Vec4(1)).Vec3().Sub(center)
	zdash := m.Mul4x1(s.Center.Add(mgl32.Vec3{0, 0, s.Radius}).Vec4(1)).Vec3().Sub(center)

	r2 := max(xdash.Dot(xdash), ydash.Dot(ydash), zdash.Dot(zdash))
	return Sphere{
		Center: center,
		Radius: float32(math.Sqrt(float64(r2))),
	}
}
