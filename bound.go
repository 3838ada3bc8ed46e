package lightmgr

import (
	"github.com/gekko3d/lightmgr/core"
)

// LocalBound returns the bounding sphere of the subtree at id, expressed in
// id's own coordinate frame (its local transform not applied). Drawables
// contribute their bound; lights contribute nothing. An empty subtree yields
// an invalid sphere.
func (g *Graph) LocalBound(id NodeID) core.Sphere {
	return g.localBound(id, nil)
}

// localBound memoizes into memo when it is non-nil.
func (g *Graph) localBound(id NodeID, memo map[NodeID]core.Sphere) core.Sphere {
	if b, ok := memo[id]; ok {
		return b
	}

	n := g.at(id)
	bound := core.EmptySphere()
	switch n.kind {
	case KindDrawable:
		bound = n.bound
	case KindLight:
	default:
		for _, c := range n.children {
			child := g.localBound(c, memo)
			if !child.Valid() {
				continue
			}
			bound = bound.ExpandBy(core.TransformSphere(g.nodes[c].local.Matrix(), child))
		}
	}

	if memo != nil {
		memo[id] = bound
	}
	return bound
}
