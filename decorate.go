package lightmgr

// decorate attaches this registry's selection hook to the parent of every
// drawable in its subtree. Drawables are emitted rather than traversed by the
// cull pass, so the hook lives one level up where its push/pop brackets the
// draw. Nested registries are left to decorate their own subtree.
func (r *Registry) decorate() int {
	attached := 0
	var visit func(id NodeID)
	visit = func(id NodeID) {
		for _, c := range r.graph.Children(id) {
			switch r.graph.Kind(c) {
			case KindDrawable:
				parent := r.graph.Parent(c)
				if parent == InvalidNode {
					continue
				}
				if r.graph.attachSelection(parent, r) {
					attached++
				}
			case KindRegistry:
				continue
			default:
				visit(c)
			}
		}
	}
	visit(r.node)
	return attached
}
