package systems

import (
	"testing"

	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestFindByName(t *testing.T) {
	d := newDuel()
	finder := WorldFinder{World: d.ecs.World}

	got, ok := finder.FindByName(cfg.PlayerNames[1])
	require.True(t, ok)
	assert.Equal(t, d.p2.Entity(), got)

	_, ok = finder.FindByName("nobody")
	assert.False(t, ok)
}

func TestEntityPositionAimsAtMidHeight(t *testing.T) {
	d := newDuel()

	pos, ok := entityPosition(d.ecs.World, d.p2.Entity())
	require.True(t, ok)
	assertVecInDelta(t, mgl64.Vec3{20, 10, cfg.Player.Height / 2}, pos)

	marker := newMarker(d.ecs, "marker", mgl64.Vec3{1, 2, 3})
	pos, ok = entityPosition(d.ecs.World, marker.Entity())
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, pos)
}

func TestEntityPositionOfGoneEntity(t *testing.T) {
	d := newDuel()
	e := d.p2.Entity()
	d.ecs.World.Remove(e)

	_, ok := entityPosition(d.ecs.World, e)
	assert.False(t, ok)

	_, ok = entityPosition(d.ecs.World, donburi.Null)
	assert.False(t, ok)
}

func TestUnnamedEntitiesAreSkipped(t *testing.T) {
	d := newDuel()
	d.ecs.World.Create(components.Transform)

	_, ok := WorldFinder{World: d.ecs.World}.FindByName("")
	assert.False(t, ok)
}
