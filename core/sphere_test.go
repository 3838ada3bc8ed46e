package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSphereIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Sphere
		expected bool
	}{
		{
			name:     "Overlapping",
			a:        Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 10},
			b:        Sphere{Center: mgl32.Vec3{5, 0, 0}, Radius: 2},
			expected: true,
		},
		{
			name:     "Touching",
			a:        Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 1},
			b:        Sphere{Center: mgl32.Vec3{0, 3, 0}, Radius: 2},
			expected: true,
		},
		{
			name:     "Apart",
			a:        Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 1},
			b:        Sphere{Center: mgl32.Vec3{0, 0, -10}, Radius: 2},
			expected: false,
		},
		{
			name:     "Zero radius inside",
			a:        Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 0},
			b:        Sphere{Center: mgl32.Vec3{0, 0, 1}, Radius: 2},
			expected: true,
		},
		{
			name:     "Invalid",
			a:        EmptySphere(),
			b:        Sphere{Radius: 100},
			expected: false,
		},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.a.Intersects(tc.b), tc.name)
		assert.Equal(t, tc.expected, tc.b.Intersects(tc.a), tc.name+" (swapped)")
	}
}

func TestSphereExpandBy(t *testing.T) {
	s := EmptySphere().ExpandBy(Sphere{Center: mgl32.Vec3{-5, 0, 0}, Radius: 1})
	assert.Equal(t, Sphere{Center: mgl32.Vec3{-5, 0, 0}, Radius: 1}, s)

	s = s.ExpandBy(Sphere{Center: mgl32.Vec3{5, 0, 0}, Radius: 1})
	assert.InDelta(t, 6, s.Radius, 1e-5)
	assert.InDelta(t, 0, s.Center.Len(), 1e-5)

	// Contained sphere leaves the bound unchanged.
	inner := s.ExpandBy(Sphere{Center: mgl32.Vec3{1, 0, 0}, Radius: 1})
	assert.Equal(t, s, inner)

	assert.Equal(t, s, s.ExpandBy(EmptySphere()))
}

func TestTransformSphere(t *testing.T) {
	s := Sphere{Center: mgl32.Vec3{1, 0, 0}, Radius: 2}

	moved := TransformSphere(mgl32.Translate3D(0, 10, 0), s)
	assert.True(t, moved.Center.ApproxEqual(mgl32.Vec3{1, 10, 0}))
	assert.InDelta(t, 2, moved.Radius, 1e-5)

	// Non-uniform scale takes the largest axis.
	scaled := TransformSphere(mgl32.Scale3D(1, 3, 2), s)
	assert.True(t, scaled.Center.ApproxEqual(mgl32.Vec3{1, 0, 0}))
	assert.InDelta(t, 6, scaled.Radius, 1e-5)

	rotated := TransformSphere(mgl32.HomogRotate3DZ(mgl32.DegToRad(90)), s)
	assert.True(t, rotated.Center.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5))
	assert.InDelta(t, 2, rotated.Radius, 1e-5)

	assert.False(t, TransformSphere(mgl32.Ident4(), EmptySphere()).Valid())
}
