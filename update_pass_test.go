package lightmgr

import (
	"fmt"
	"testing"

	"github.com/gekko3d/lightmgr/core"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_collectsLightsEveryFrame(t *testing.T) {
	g := NewGraph()
	regID, reg := g.AddRegistry(g.Root(), "lights", DefaultOptions())
	room := g.AddGroup(regID, "room", core.Translation(mgl32.Vec3{0, 0, 10}))
	a, srcA := g.AddLight(room, "a", 5, DefaultLightParams())
	g.SetLocal(a, core.Translation(mgl32.Vec3{1, 0, 0}))
	b, srcB := g.AddLight(regID, "b", 2, DefaultLightParams())

	for frame := 1; frame <= 3; frame++ {
		require.NoError(t, g.Update())

		lights := reg.Lights()
		require.Len(t, lights, 2)
		assert.Equal(t, a, lights[0].Node)
		assert.Same(t, srcA, lights[0].Source)
		assert.True(t, lights[0].World.Col(3).Vec3().ApproxEqual(mgl32.Vec3{1, 0, 10}))
		assert.Equal(t, b, lights[1].Node)
		assert.Same(t, srcB, lights[1].Source)
		assert.Equal(t, uint64(frame), reg.Frame())
	}
}

func TestUpdate_noEnclosingRegistry(t *testing.T) {
	g := NewGraph()
	_, reg := g.AddRegistry(g.Root(), "lights", DefaultOptions())
	g.AddLight(reg.Node(), "inside", 1, DefaultLightParams())
	stray := g.AddGroup(g.Root(), "stray", core.NewTransform())
	g.AddLight(stray, "orphan", 1, DefaultLightParams())

	err := g.Update()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEnclosingRegistry)
	assert.Contains(t, err.Error(), `"orphan"`)

	// The rest of the frame still went through.
	assert.Len(t, reg.Lights(), 1)
}

func TestUpdate_nearestRegistryWins(t *testing.T) {
	g := NewGraph()
	outerID, outer := g.AddRegistry(g.Root(), "outer", DefaultOptions())
	innerID, inner := g.AddRegistry(outerID, "inner", DefaultOptions())
	_, innerSrc := g.AddLight(innerID, "inner_light", 1, DefaultLightParams())
	_, outerSrc := g.AddLight(outerID, "outer_light", 1, DefaultLightParams())

	require.NoError(t, g.Update())

	require.Len(t, inner.Lights(), 1)
	assert.Same(t, innerSrc, inner.Lights()[0].Source)
	require.Len(t, outer.Lights(), 1)
	assert.Same(t, outerSrc, outer.Lights()[0].Source)
}

func TestUpdate_logsOrphans(t *testing.T) {
	g := NewGraph()
	rec := &recordingLogger{}
	g.SetLogger(rec)
	g.AddLight(g.Root(), "orphan", 1, DefaultLightParams())

	assert.ErrorIs(t, g.Update(), ErrNoEnclosingRegistry)
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "no enclosing light registry")
}

type recordingLogger struct {
	nopLogger
	errors []string
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
