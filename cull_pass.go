package lightmgr

import (
	"fmt"

	"github.com/gekko3d/lightmgr/core"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawItem is a drawable emitted by a cull pass together with the light
// state in effect for it.
type DrawItem struct {
	Node      NodeID
	Name      string
	ModelView mgl32.Mat4
	// State is nil when no light reaches the drawable.
	State *LightState
}

type CullResult struct {
	Camera *core.Camera
	Draws  []DrawItem
	// Pushes counts light states pushed onto the state stack.
	Pushes int
	// Culled counts subtrees skipped by frustum culling.
	Culled int
}

type cullVisitor struct {
	g       *Graph
	cam     *core.Camera
	res     *CullResult
	states  StateStack
	bounds  map[NodeID]core.Sphere
	frustum *[6]mgl32.Vec4
}

// Cull runs one cull pass for cam. Selection hooks attached by decoration
// push the light state of their node for the duration of its subtree.
// Cameras with a projection also skip subtrees outside their frustum.
func (g *Graph) Cull(cam *core.Camera) (*CullResult, error) {
	if cam == nil {
		return nil, fmt.Errorf("cull: %w", ErrNilCamera)
	}

	v := &cullVisitor{
		g:      g,
		cam:    cam,
		res:    &CullResult{Camera: cam},
		bounds: make(map[NodeID]core.Sphere),
	}
	if cam.HasProjection() {
		planes := cam.Frustum()
		v.frustum = &planes
	}

	if err := v.visit(g.Root(), cam.View); err != nil {
		return nil, fmt.Errorf("cull %q: %w", cam.Name, err)
	}
	if v.states.Depth() != 0 {
		panic("lightmgr: unbalanced state stack after cull")
	}
	return v.res, nil
}

func (v *cullVisitor) viewBound(id NodeID, modelView mgl32.Mat4) core.Sphere {
	return core.TransformSphere(modelView, v.g.localBound(id, v.bounds))
}

func (v *cullVisitor) outside(b core.Sphere) bool {
	return v.frustum != nil && !core.SphereInFrustum(b, *v.frustum)
}

func (v *cullVisitor) visit(id NodeID, parentMV mgl32.Mat4) error {
	n := &v.g.nodes[id]
	modelView := parentMV.Mul4(n.local.Matrix())

	switch n.kind {
	case KindLight:
		return nil
	case KindDrawable:
		v.emit(id, n, modelView)
		return nil
	}

	var bound core.Sphere
	if v.frustum != nil || len(n.selectors) > 0 {
		bound = v.viewBound(id, modelView)
	}
	if v.outside(bound) {
		v.res.Culled++
		return nil
	}

	pushed := 0
	for _, r := range n.selectors {
		st, err := r.Select(v.cam, bound)
		if err != nil {
			return err
		}
		if st == nil {
			continue
		}
		v.states.Push(st)
		v.res.Pushes++
		pushed++
	}

	for _, c := range n.children {
		if err := v.visit(c, modelView); err != nil {
			return err
		}
	}

	for ; pushed > 0; pushed-- {
		v.states.Pop()
	}
	return nil
}

func (v *cullVisitor) emit(id NodeID, n *node, modelView mgl32.Mat4) {
	if v.outside(core.TransformSphere(modelView, n.bound)) {
		v.res.Culled++
		return
	}
	v.res.Draws = append(v.res.Draws, DrawItem{
		Node:      id,
		Name:      n.name,
		ModelView: modelView,
		State:     v.states.Top(),
	})
}
