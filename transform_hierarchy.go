package lightmgr

import (
	"github.com/go-gl/mathgl/mgl32"
)

// WorldMatrix accumulates the local transforms along the path from the root
// to id, including id's own local transform.
func (g *Graph) WorldMatrix(id NodeID) mgl32.Mat4 {
	world := mgl32.Ident4()
	for _, n := range g.Path(id) {
		world = world.Mul4(g.nodes[n].local.Matrix())
	}
	return world
}

// WorldPosition is the world-space origin of id.
func (g *Graph) WorldPosition(id NodeID) mgl32.Vec3 {
	return g.WorldMatrix(id).Col(3).Vec3()
}
