package lightmgr

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// updateVisitor runs the per-frame update traversal: every registry resets
// before its children are visited, and every light registers with the
// nearest registry on the current path.
type updateVisitor struct {
	g          *Graph
	registries []*Registry
	errs       []error
	collected  int
}

// Update runs the update pass over the whole graph. Lights without an
// enclosing registry are skipped and reported as ErrNoEnclosingRegistry
// after the traversal completes.
func (g *Graph) Update() error {
	v := &updateVisitor{g: g}
	v.visit(g.Root(), mgl32.Ident4())
	g.Logger().Debugf("update pass collected %d lights", v.collected)
	return errors.Join(v.errs...)
}

func (v *updateVisitor) visit(id NodeID, parentWorld mgl32.Mat4) {
	n := &v.g.nodes[id]
	world := parentWorld.Mul4(n.local.Matrix())

	switch n.kind {
	case KindRegistry:
		n.registry.Reset()
		v.registries = append(v.registries, n.registry)
		defer func() { v.registries = v.registries[:len(v.registries)-1] }()
	case KindLight:
		v.collect(id, n, world)
		return
	case KindDrawable:
		return
	}

	for _, c := range n.children {
		v.visit(c, world)
	}
}

func (v *updateVisitor) collect(id NodeID, n *node, world mgl32.Mat4) {
	if len(v.registries) == 0 {
		err := fmt.Errorf("light %q (node %d): %w", n.name, id, ErrNoEnclosingRegistry)
		v.g.Logger().Errorf("%v", err)
		v.errs = append(v.errs, err)
		return
	}
	r := v.registries[len(v.registries)-1]
	if err := r.RegisterLight(id, n.light, world); err != nil {
		v.errs = append(v.errs, err)
		return
	}
	v.collected++
}
