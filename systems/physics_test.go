package systems

import (
	"testing"

	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrateBody(t *testing.T) {
	body := &components.BodyData{Mass: 2, GravityScale: 1}
	tr := &components.TransformData{}
	body.ApplyForce(mgl64.Vec3{4, 0, 0})

	IntegrateBody(body, tr, -10, 0.5)

	assertVecInDelta(t, mgl64.Vec3{1, 0, -5}, body.Velocity)
	assertVecInDelta(t, mgl64.Vec3{0.5, 0, -2.5}, tr.Position)
	assert.Equal(t, mgl64.Vec3{}, body.Force, "forces are consumed")
}

func TestIntegrateBodyClampsPlanarSpeedOnly(t *testing.T) {
	body := &components.BodyData{Mass: 1, GravityScale: 1, MaxSpeed: 3, Velocity: mgl64.Vec3{6, 8, -20}}
	tr := &components.TransformData{}

	IntegrateBody(body, tr, 0, 0.25)

	assert.InDelta(t, 3.0, mgl64.Vec2{body.Velocity.X(), body.Velocity.Y()}.Len(), 1e-9)
	assert.Equal(t, -20.0, body.Velocity.Z())
}

func TestKinematicBodiesAreNotIntegrated(t *testing.T) {
	e := newTestECS()
	b := factory.CreateBoomerang(e, newMarker(e, "Owner", mgl64.Vec3{}), parking)
	components.Body.Get(b).ApplyForce(mgl64.Vec3{100, 0, 0})

	tick(e, testDT, UpdatePhysics)

	assert.Equal(t, parking, components.Transform.Get(b).Position)
	assert.Equal(t, mgl64.Vec3{}, components.Body.Get(b).Force)
}

func TestPlayerFallsToFloor(t *testing.T) {
	e := newTestECS()
	p := factory.CreatePlayer(e, 0, mgl64.Vec3{10, 10, 2}, 0)

	for i := 0; i < 120; i++ {
		tick(e, testDT, UpdatePhysics)
	}

	assert.Equal(t, 0.0, components.Transform.Get(p).Position.Z())
	assert.True(t, components.Player.Get(p).OnGround)
	assert.Nil(t, components.Player.Get(p).Support)
}

func TestPlayerLandsOnPlatform(t *testing.T) {
	e := newTestECS()
	platform := factory.CreatePlatform(e, 4, 4, 4, 4, 1.5)
	p := factory.CreatePlayer(e, 0, mgl64.Vec3{6, 6, 3}, 0)

	for i := 0; i < 120; i++ {
		tick(e, testDT, UpdatePhysics)
	}

	player := components.Player.Get(p)
	assert.InDelta(t, 1.5, components.Transform.Get(p).Position.Z(), cfg.Physics.GroundSnap)
	assert.True(t, player.OnGround)
	assert.Same(t, components.Object.Get(platform).Object, player.Support)
}

func TestWallsBlockPlayers(t *testing.T) {
	e := newTestECS()
	factory.CreateWall(e, 12, 0, 1, 20)
	p := factory.CreatePlayer(e, 0, mgl64.Vec3{10, 10, 0}, 0)

	for i := 0; i < 120; i++ {
		components.Body.Get(p).ApplyForce(mgl64.Vec3{50, 0, 0})
		tick(e, testDT, UpdatePhysics)
	}

	pos := components.Transform.Get(p).Position
	assert.LessOrEqual(t, pos.X()+cfg.Player.Size/2, 12.0)
	assert.Greater(t, pos.X(), 10.0, "the player did move toward the wall")
}

func TestPlayersStayInsideArena(t *testing.T) {
	e := newTestECS()
	p := factory.CreatePlayer(e, 0, mgl64.Vec3{1, 1, 0}, 0)
	components.Body.Get(p).SetLinearVelocity(mgl64.Vec3{-50, -50, 0})

	for i := 0; i < 30; i++ {
		tick(e, testDT, UpdatePhysics)
	}

	pos := components.Transform.Get(p).Position
	require.GreaterOrEqual(t, pos.X(), 0.0)
	require.GreaterOrEqual(t, pos.Y(), 0.0)
}
