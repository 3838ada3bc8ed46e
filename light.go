package lightmgr

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightParams are the renderer-facing parameters of a point light. Position
// is in the light node's local frame; w=1 marks a positional light.
type LightParams struct {
	Position mgl32.Vec4
	Ambient  mgl32.Vec4
	Diffuse  mgl32.Vec4
	Specular mgl32.Vec4

	ConstantAttenuation  float32
	LinearAttenuation    float32
	QuadraticAttenuation float32
}

func DefaultLightParams() LightParams {
	return LightParams{
		Position:            mgl32.Vec4{0, 0, 0, 1},
		Ambient:             mgl32.Vec4{0, 0, 0, 1},
		Diffuse:             mgl32.Vec4{1, 1, 1, 1},
		Specular:            mgl32.Vec4{1, 1, 1, 1},
		ConstantAttenuation: 1,
	}
}

// LightSource is a point light with a sphere of influence. It lives on a
// light node and registers with its enclosing registry every frame.
type LightSource struct {
	Radius float32
	Params LightParams
}

func NewLightSource(radius float32, params LightParams) *LightSource {
	l := &LightSource{Params: params}
	l.SetRadius(radius)
	return l
}

// SetRadius sets the radius of influence; negative values clamp to 0.
func (l *LightSource) SetRadius(r float32) {
	if r < 0 {
		r = 0
	}
	l.Radius = r
}
