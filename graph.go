package lightmgr

import (
	"fmt"

	"github.com/gekko3d/lightmgr/core"
)

// NodeID is a handle into a Graph arena.
type NodeID int

const InvalidNode NodeID = -1

type NodeKind uint8

const (
	KindGroup NodeKind = iota
	KindRegistry
	KindLight
	KindDrawable
)

func (k NodeKind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindRegistry:
		return "registry"
	case KindLight:
		return "light"
	case KindDrawable:
		return "drawable"
	}
	return fmt.Sprintf("NodeKind(%d)", k)
}

// leaf kinds cannot have children.
func (k NodeKind) leaf() bool {
	return k == KindLight || k == KindDrawable
}

type node struct {
	name     string
	kind     NodeKind
	parent   NodeID
	children []NodeID
	local    core.Transform

	light    *LightSource
	registry *Registry
	bound    core.Sphere

	// registries whose selection hook runs at this node during culling
	selectors []*Registry
}

// Graph is a scene hierarchy stored as an arena of nodes. Node 0 is the root group.
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes []node
	log   Logger
}

func NewGraph() *Graph {
	g := &Graph{log: NewNopLogger()}
	g.nodes = append(g.nodes, node{
		name:   "root",
		kind:   KindGroup,
		parent: InvalidNode,
		local:  core.NewTransform(),
	})
	return g
}

func (g *Graph) Root() NodeID { return 0 }

func (g *Graph) Len() int { return len(g.nodes) }

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

func (g *Graph) at(id NodeID) *node {
	if !g.valid(id) {
		panic(fmt.Sprintf("lightmgr: node %d does not exist", id))
	}
	return &g.nodes[id]
}

func (g *Graph) add(parent NodeID, n node) NodeID {
	p := g.at(parent)
	if p.kind.leaf() {
		panic(fmt.Sprintf("lightmgr: cannot add %q under %s node %q", n.name, p.kind, p.name))
	}

	id := NodeID(len(g.nodes))
	n.parent = parent
	if n.local == (core.Transform{}) {
		n.local = core.NewTransform()
	}
	g.nodes = append(g.nodes, n)
	// the append may have moved the arena, so p is not reused
	g.nodes[parent].children = append(g.nodes[parent].children, id)
	return id
}

func (g *Graph) AddGroup(parent NodeID, name string, local core.Transform) NodeID {
	return g.add(parent, node{name: name, kind: KindGroup, local: local})
}

// AddRegistry inserts a light registry group node.
func (g *Graph) AddRegistry(parent NodeID, name string, opts Options) (NodeID, *Registry) {
	id := g.add(parent, node{name: name, kind: KindRegistry})
	r := newRegistry(g, id, opts)
	g.nodes[id].registry = r
	return id, r
}

func (g *Graph) AddLight(parent NodeID, name string, radius float32, params LightParams) (NodeID, *LightSource) {
	src := NewLightSource(radius, params)
	id := g.add(parent, node{name: name, kind: KindLight, light: src})
	return id, src
}

// AddDrawable inserts a renderable leaf with a bound in its local frame.
func (g *Graph) AddDrawable(parent NodeID, name string, bound core.Sphere) NodeID {
	return g.add(parent, node{name: name, kind: KindDrawable, bound: bound})
}

func (g *Graph) SetLocal(id NodeID, t core.Transform) {
	g.at(id).local = t
}

func (g *Graph) Local(id NodeID) core.Transform {
	return g.at(id).local
}

func (g *Graph) Name(id NodeID) string {
	return g.at(id).name
}

func (g *Graph) Kind(id NodeID) NodeKind {
	return g.at(id).kind
}

func (g *Graph) Parent(id NodeID) NodeID {
	return g.at(id).parent
}

// Children returns the child handles of id. The slice must not be modified.
func (g *Graph) Children(id NodeID) []NodeID {
	return g.at(id).children
}

// Path returns the handles from the root down to id, inclusive.
func (g *Graph) Path(id NodeID) []NodeID {
	var path []NodeID
	for cur := id; cur != InvalidNode; cur = g.at(cur).parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Registry returns the registry stored at id, or nil when id is not a registry node.
func (g *Graph) Registry(id NodeID) *Registry {
	if !g.valid(id) {
		return nil
	}
	return g.nodes[id].registry
}

// Light returns the light source stored at id, or nil.
func (g *Graph) Light(id NodeID) *LightSource {
	if !g.valid(id) {
		return nil
	}
	return g.nodes[id].light
}

// Find returns the first node in creation order named name.
func (g *Graph) Find(name string) (NodeID, bool) {
	for i := range g.nodes {
		if g.nodes[i].name == name {
			return NodeID(i), true
		}
	}
	return InvalidNode, false
}

// SelectionHooks returns the registries whose selection hook is attached at id.
func (g *Graph) SelectionHooks(id NodeID) []*Registry {
	return g.at(id).selectors
}

func (g *Graph) attachSelection(id NodeID, r *Registry) bool {
	n := g.at(id)
	for _, s := range n.selectors {
		if s == r {
			return false
		}
	}
	n.selectors = append(n.selectors, r)
	return true
}
