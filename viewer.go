package lightmgr

import (
	"fmt"

	"github.com/gekko3d/lightmgr/core"
)

type Stage struct {
	Name string
}

var (
	UpdateStage = Stage{Name: "Update"}
	CullStage   = Stage{Name: "Cull"}
)

// FrameResult holds the cull output of every camera for one frame, in
// camera order.
type FrameResult struct {
	Frame uint64
	Views []*CullResult
}

// Viewer drives frames over a graph: one update pass, then one cull pass
// per camera, strictly in that order.
type Viewer struct {
	graph   *Graph
	cameras []*core.Camera
	frame   uint64
}

func NewViewer(g *Graph, cameras ...*core.Camera) *Viewer {
	return &Viewer{graph: g, cameras: cameras}
}

func (v *Viewer) Graph() *Graph { return v.graph }

func (v *Viewer) AddCamera(cam *core.Camera) *Viewer {
	v.cameras = append(v.cameras, cam)
	return v
}

func (v *Viewer) Cameras() []*core.Camera { return v.cameras }

// Frame runs one frame. An update error (a light outside every registry)
// is returned alongside the cull results; culling still runs for the lights
// that registered. A cull error aborts the frame.
func (v *Viewer) Frame() (*FrameResult, error) {
	v.frame++
	log := v.graph.Logger()
	res := &FrameResult{Frame: v.frame}

	log.Debugf("frame %d: %s", v.frame, UpdateStage.Name)
	updateErr := v.graph.Update()
	if updateErr != nil {
		updateErr = fmt.Errorf("frame %d %s: %w", v.frame, UpdateStage.Name, updateErr)
	}

	for _, cam := range v.cameras {
		log.Debugf("frame %d: %s %q", v.frame, CullStage.Name, camName(cam))
		cr, err := v.graph.Cull(cam)
		if err != nil {
			return nil, fmt.Errorf("frame %d %s: %w", v.frame, CullStage.Name, err)
		}
		res.Views = append(res.Views, cr)
	}

	return res, updateErr
}

func camName(cam *core.Camera) string {
	if cam == nil {
		return "<nil>"
	}
	return cam.Name
}
