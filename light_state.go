package lightmgr

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLightSlots is the number of fixed-function light slots a state can bind.
const MaxLightSlots = 8

// PointLight is one light bound to a slot of a LightState, with its position
// already in world space.
type PointLight struct {
	Slot     int
	Position mgl32.Vec4
	Radius   float32
	Ambient  mgl32.Vec4
	Diffuse  mgl32.Vec4
	Specular mgl32.Vec4

	ConstantAttenuation  float32
	LinearAttenuation    float32
	QuadraticAttenuation float32
}

func newPointLight(slot int, rec RegisteredLight) PointLight {
	p := rec.Source.Params
	return PointLight{
		Slot:                 slot,
		Position:             rec.World.Mul4x1(p.Position),
		Radius:               rec.Source.Radius,
		Ambient:              p.Ambient,
		Diffuse:              p.Diffuse,
		Specular:             p.Specular,
		ConstantAttenuation:  p.ConstantAttenuation,
		LinearAttenuation:    p.LinearAttenuation,
		QuadraticAttenuation: p.QuadraticAttenuation,
	}
}

// stateKey identifies an ordered light index list exactly.
type stateKey struct {
	n   uint8
	idx [MaxLightSlots]int32
}

func makeStateKey(indices []int) stateKey {
	k := stateKey{n: uint8(len(indices))}
	for i, v := range indices {
		k.idx[i] = int32(v)
	}
	return k
}

// LightState is the composite render state for one ordered light subset.
// It is immutable once built and shared by every subtree selecting the same
// subset in a frame.
type LightState struct {
	frame   uint64
	indices []int
	lights  []PointLight
}

// Frame is the registry frame the state was built in.
func (s *LightState) Frame() uint64 { return s.frame }

func (s *LightState) Len() int { return len(s.lights) }

// Slot returns the light bound to slot i.
func (s *LightState) Slot(i int) PointLight { return s.lights[i] }

// Lights returns a copy of the bound lights in slot order.
func (s *LightState) Lights() []PointLight {
	return append([]PointLight(nil), s.lights...)
}

// Indices returns a copy of the registry indices the state was built from.
func (s *LightState) Indices() []int {
	return append([]int(nil), s.indices...)
}
