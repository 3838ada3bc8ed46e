package lightmgr

import (
	"testing"

	"github.com/gekko3d/lightmgr/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorate_attachesToDrawableParents(t *testing.T) {
	g := NewGraph()
	regID, reg := g.AddRegistry(g.Root(), "lights", DefaultOptions())
	house := g.AddGroup(regID, "house", core.NewTransform())
	g.AddDrawable(house, "walls", core.Sphere{Radius: 1})
	g.AddDrawable(house, "roof", core.Sphere{Radius: 1})
	chair := g.AddGroup(house, "chair", core.NewTransform())
	g.AddDrawable(chair, "chair_mesh", core.Sphere{Radius: 1})
	g.AddDrawable(regID, "ground", core.Sphere{Radius: 1})
	empty := g.AddGroup(regID, "empty", core.NewTransform())

	outside := g.AddGroup(g.Root(), "outside", core.NewTransform())
	g.AddDrawable(outside, "rock", core.Sphere{Radius: 1})

	assert.False(t, reg.Decorated())
	reg.Reset()
	require.True(t, reg.Decorated())

	assert.Equal(t, []*Registry{reg}, g.SelectionHooks(house), "one hook per parent")
	assert.Equal(t, []*Registry{reg}, g.SelectionHooks(chair))
	assert.Equal(t, []*Registry{reg}, g.SelectionHooks(regID))
	assert.Empty(t, g.SelectionHooks(empty))
	assert.Empty(t, g.SelectionHooks(outside))

	// Later resets do not decorate again, even for new drawables.
	late := g.AddGroup(regID, "late", core.NewTransform())
	g.AddDrawable(late, "late_mesh", core.Sphere{Radius: 1})
	reg.Reset()
	assert.Empty(t, g.SelectionHooks(late))
	assert.Len(t, g.SelectionHooks(house), 1)
}

func TestDecorate_skipsNestedRegistries(t *testing.T) {
	g := NewGraph()
	outerID, outer := g.AddRegistry(g.Root(), "outer", DefaultOptions())
	innerID, inner := g.AddRegistry(outerID, "inner", DefaultOptions())
	innerGroup := g.AddGroup(innerID, "inner_group", core.NewTransform())
	g.AddDrawable(innerGroup, "inner_mesh", core.Sphere{Radius: 1})
	outerGroup := g.AddGroup(outerID, "outer_group", core.NewTransform())
	g.AddDrawable(outerGroup, "outer_mesh", core.Sphere{Radius: 1})

	assert.Equal(t, 1, outer.decorate())
	assert.Equal(t, []*Registry{outer}, g.SelectionHooks(outerGroup))
	assert.Empty(t, g.SelectionHooks(innerGroup))

	assert.Equal(t, 1, inner.decorate())
	assert.Equal(t, []*Registry{inner}, g.SelectionHooks(innerGroup))

	// Decorating twice attaches nothing new.
	assert.Equal(t, 0, inner.decorate())
}
