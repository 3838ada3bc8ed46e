package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Camera is the view a cull pass renders from. ID identifies the camera
// across frames, e.g. for per-camera caches.
type Camera struct {
	ID         uuid.UUID
	Name       string
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

func NewCamera(name string) *Camera {
	return &Camera{
		ID:   uuid.New(),
		Name: name,
		View: mgl32.Ident4(),
	}
}

func (c *Camera) LookAt(eye, center, up mgl32.Vec3) *Camera {
	c.View = mgl32.LookAtV(eye, center, up)
	return c
}

func (c *Camera) SetPerspective(fovyDeg, aspect, near, far float32) *Camera {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(fovyDeg), aspect, near, far)
	return c
}

// HasProjection reports whether a projection was set. Cameras without one
// do not frustum cull.
func (c *Camera) HasProjection() bool {
	return c.Projection != mgl32.Mat4{}
}

// Frustum returns the view-space frustum planes of the camera projection.
func (c *Camera) Frustum() [6]mgl32.Vec4 {
	return ExtractFrustum(c.Projection)
}

// FlyState is a yaw/pitch camera pose, Z-up.
type FlyState struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

func (s FlyState) Forward() mgl32.Vec3 {
	// Z-up: Forward in XY plane, Z for pitch
	return mgl32.Vec3{
		float32(math.Cos(float64(s.Pitch)) * math.Sin(float64(s.Yaw))),
		float32(-math.Cos(float64(s.Pitch)) * math.Cos(float64(s.Yaw))),
		float32(math.Sin(float64(s.Pitch))),
	}
}

func (s FlyState) Right() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(-math.Sin(float64(s.Yaw))),
		float32(math.Cos(float64(s.Yaw))),
		0,
	}
}

func (s FlyState) ViewMatrix() mgl32.Mat4 {
	eye := s.Position
	return mgl32.LookAtV(eye, eye.Add(s.Forward()), mgl32.Vec3{0, 0, 1})
}

// SetFly points the camera using a fly pose.
func (c *Camera) SetFly(s FlyState) *Camera {
	c.View = s.ViewMatrix()
	return c
}

// ExtractFrustum extracts the 6 planes of the frustum from a (view-)projection matrix.
// Returns planes in order: Left, Right, Bottom, Top, Near, Far.
// Plane is Ax + By + Cz + D = 0 with the normal pointing inside.
func ExtractFrustum(m mgl32.Mat4) [6]mgl32.Vec4 {
	var planes [6]mgl32.Vec4

	row := func(r int) mgl32.Vec4 {
		return mgl32.Vec4{m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3)}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	planes[0] = r3.Add(r0) // Left
	planes[1] = r3.Sub(r0) // Right
	planes[2] = r3.Add(r1) // Bottom
	planes[3] = r3.Sub(r1) // Top
	planes[4] = r3.Add(r2) // Near (OpenGL-style -1..1)
	planes[5] = r3.Sub(r2) // Far

	for i := 0; i < 6; i++ {
		length := planes[i].Vec3().Len()
		if length > 0 {
			planes[i] = planes[i].Mul(1.0 / length)
		}
	}

	return planes
}

// SphereInFrustum reports whether s is at least partly inside the planes.
func SphereInFrustum(s Sphere, planes [6]mgl32.Vec4) bool {
	if !s.Valid() {
		return false
	}
	for _, p := range planes {
		if p.Dot(s.Center.Vec4(1)) < -s.Radius {
			return false
		}
	}
	return true
}
