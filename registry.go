package lightmgr

import (
	"fmt"

	"github.com/gekko3d/lightmgr/core"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// RegisteredLight is a light collected for the current frame. Its index in
// Registry.Lights is only meaningful until the next Reset.
type RegisteredLight struct {
	Node   NodeID
	Source *LightSource
	// World is the light node's local-to-world matrix at registration time.
	World mgl32.Mat4
	// ViewBound is the view-space sphere of influence for the first camera
	// that computed bounds this frame.
	ViewBound core.Sphere
}

// FrameStats counts registry activity since the last Reset.
type FrameStats struct {
	Frame       uint64
	Lights      int
	Selections  int
	StatesBuilt int
	CacheHits   int
	Truncated   int
}

// Registry tracks the lights active under its node for the current frame and
// caches one LightState per ordered light subset.
type Registry struct {
	graph *Graph
	node  NodeID
	opts  Options

	ready     bool
	decorated bool
	frame     uint64

	lights      []RegisteredLight
	inViewSpace bool
	shared      []core.Sphere
	perCamera   map[uuid.UUID][]core.Sphere
	cache       map[stateKey]*LightState
	stats       FrameStats
}

func newRegistry(g *Graph, id NodeID, opts Options) *Registry {
	return &Registry{
		graph:     g,
		node:      id,
		opts:      opts.normalize(),
		perCamera: make(map[uuid.UUID][]core.Sphere),
		cache:     make(map[stateKey]*LightState),
	}
}

func (r *Registry) Node() NodeID     { return r.node }
func (r *Registry) Name() string     { return r.graph.Name(r.node) }
func (r *Registry) Options() Options { return r.opts }

// Ready reports whether Reset has run at least once.
func (r *Registry) Ready() bool     { return r.ready }
func (r *Registry) Decorated() bool { return r.decorated }
func (r *Registry) Frame() uint64   { return r.frame }
func (r *Registry) Stats() FrameStats {
	s := r.stats
	s.Lights = len(r.lights)
	return s
}

// CachedStates is the number of light states built this frame.
func (r *Registry) CachedStates() int { return len(r.cache) }

// Reset starts a new frame: it drops the collected lights, their view-space
// bounds and every cached state. The first Reset also decorates the subtree.
func (r *Registry) Reset() {
	log := r.graph.Logger()
	if r.ready && log.DebugEnabled() {
		s := r.Stats()
		log.Debugf("registry %q frame %d: %d lights, %d selections, %d states, %d cache hits, %d truncated",
			r.Name(), s.Frame, s.Lights, s.Selections, s.StatesBuilt, s.CacheHits, s.Truncated)
	}

	r.lights = r.lights[:0]
	r.shared = r.shared[:0]
	r.inViewSpace = false
	clear(r.perCamera)
	clear(r.cache)
	r.frame++
	r.stats = FrameStats{Frame: r.frame}
	r.ready = true

	if !r.decorated {
		n := r.decorate()
		r.decorated = true
		log.Debugf("registry %q decorated %d cull points", r.Name(), n)
	}
}

// RegisterLight appends a light for this frame. Registering the same source
// twice yields two records.
func (r *Registry) RegisterLight(id NodeID, src *LightSource, world mgl32.Mat4) error {
	if !r.ready {
		return fmt.Errorf("registry %q: register light: %w", r.Name(), ErrNotReset)
	}
	if src == nil {
		return fmt.Errorf("registry %q: register light node %d: %w", r.Name(), id, ErrNilLight)
	}
	r.lights = append(r.lights, RegisteredLight{
		Node:      id,
		Source:    src,
		World:     world,
		ViewBound: core.EmptySphere(),
	})
	return nil
}

// Lights is the current frame's light list in registration order. It must
// not be modified and is nil before the first Reset.
func (r *Registry) Lights() []RegisteredLight {
	return r.lights
}

// ComputeViewSpaceBounds computes the view-space sphere of every registered
// light for cam. Unless Options.PerCameraBounds is set, bounds are computed
// once per frame and later cameras reuse them.
func (r *Registry) ComputeViewSpaceBounds(cam *core.Camera) error {
	if !r.ready {
		return fmt.Errorf("registry %q: compute bounds: %w", r.Name(), ErrNotReset)
	}
	if cam == nil {
		return fmt.Errorf("registry %q: compute bounds: %w", r.Name(), ErrNilCamera)
	}
	r.viewBounds(cam)
	return nil
}

func (r *Registry) viewBounds(cam *core.Camera) []core.Sphere {
	if r.opts.PerCameraBounds {
		if b, ok := r.perCamera[cam.ID]; ok {
			return b
		}
		b := r.computeBounds(cam, nil)
		r.perCamera[cam.ID] = b
		r.markViewSpace(b)
		return b
	}

	if !r.inViewSpace {
		r.shared = r.computeBounds(cam, r.shared[:0])
		r.markViewSpace(r.shared)
	}
	return r.shared
}

func (r *Registry) markViewSpace(b []core.Sphere) {
	if r.inViewSpace {
		return
	}
	for i := range b {
		r.lights[i].ViewBound = b[i]
	}
	r.inViewSpace = true
}

func (r *Registry) computeBounds(cam *core.Camera, dst []core.Sphere) []core.Sphere {
	for _, l := range r.lights {
		worldView := cam.View.Mul4(l.World)
		dst = append(dst, core.TransformSphere(worldView, core.Sphere{Radius: l.Source.Radius}))
	}
	return dst
}

// CompositeState returns the state binding the lights at indices to slots
// 0..n-1 in order. Equal index sequences within a frame return the same
// *LightState; the key is order sensitive.
func (r *Registry) CompositeState(indices []int) (*LightState, error) {
	if !r.ready {
		return nil, fmt.Errorf("registry %q: composite state: %w", r.Name(), ErrNotReset)
	}
	if len(indices) > r.opts.MaxLights {
		return nil, fmt.Errorf("registry %q: %d lights, max %d: %w", r.Name(), len(indices), r.opts.MaxLights, ErrTooManyLights)
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(r.lights) {
			return nil, fmt.Errorf("registry %q: index %d of %d lights: %w", r.Name(), idx, len(r.lights), ErrLightIndex)
		}
	}

	key := makeStateKey(indices)
	if s, ok := r.cache[key]; ok {
		r.stats.CacheHits++
		return s, nil
	}

	s := &LightState{
		frame:   r.frame,
		indices: append([]int(nil), indices...),
		lights:  make([]PointLight, 0, len(indices)),
	}
	for slot, idx := range indices {
		s.lights = append(s.lights, newPointLight(slot, r.lights[idx]))
	}
	r.cache[key] = s
	r.stats.StatesBuilt++
	return s, nil
}

// Select returns the state for the lights whose view-space bound intersects
// nodeBound, or nil when none does. nodeBound must be in cam's view space.
// Past Options.MaxLights the first lights in registration order win.
func (r *Registry) Select(cam *core.Camera, nodeBound core.Sphere) (*LightState, error) {
	if err := r.ComputeViewSpaceBounds(cam); err != nil {
		return nil, err
	}
	r.stats.Selections++

	var buf [MaxLightSlots + 1]int
	indices := selectIndices(r.viewBounds(cam), nodeBound, buf[:0], r.opts.MaxLights+1)
	if len(indices) == 0 {
		return nil, nil
	}
	if len(indices) > r.opts.MaxLights {
		indices = indices[:r.opts.MaxLights]
		r.stats.Truncated++
	}
	return r.CompositeState(indices)
}

// selectIndices appends the indices of bounds intersecting nodeBound, in
// order, stopping once limit entries are collected.
func selectIndices(bounds []core.Sphere, nodeBound core.Sphere, dst []int, limit int) []int {
	for i, b := range bounds {
		if len(dst) == limit {
			break
		}
		if b.Intersects(nodeBound) {
			dst = append(dst, i)
		}
	}
	return dst
}
