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

// press sets actions for one frame, after the previous frame's input moved on.
func press(d duel, actions ...cfg.ActionID) *components.PlayerInputData {
	input := components.PlayerInput.Get(d.p1)
	input.Advance()
	for _, a := range actions {
		input.Current[a] = true
	}
	return input
}

func TestPlayerBoomerangCommands(t *testing.T) {
	d := newDuel()

	press(d, cfg.ActionThrow)
	tick(d.ecs, testDT, UpdatePlayers)
	b := components.Boomerang.Get(d.boomerang1)
	require.Equal(t, components.BoomerangForward, b.State.Mode)
	assertVecInDelta(t, mgl64.Vec3{10 + cfg.Boomerang.Spacing, 10, cfg.Boomerang.ThrowHeight}, components.Transform.Get(d.boomerang1).Position)

	press(d, cfg.ActionAim)
	tick(d.ecs, testDT, UpdatePlayers)
	assert.Equal(t, components.BoomerangPointTrack, b.State.Mode)
	assertVecInDelta(t, mgl64.Vec3{10 + cfg.Player.AimDistance, 10, cfg.Boomerang.ThrowHeight}, b.State.Point)

	press(d, cfg.ActionLock)
	tick(d.ecs, testDT, UpdatePlayers)
	assert.Equal(t, components.BoomerangLockTrack, b.State.Mode)
	assert.Equal(t, d.p2.Entity(), b.State.Target)

	press(d, cfg.ActionRecall)
	tick(d.ecs, testDT, UpdatePlayers)
	assert.Equal(t, components.BoomerangReturning, b.State.Mode)
}

func TestHeldThrowDoesNotRethrow(t *testing.T) {
	d := newDuel()

	press(d, cfg.ActionThrow)
	tick(d.ecs, testDT, UpdatePlayers)
	MakeBoomerangInactive(d.boomerang1)

	press(d, cfg.ActionThrow)
	tick(d.ecs, testDT, UpdatePlayers)

	assert.True(t, BoomerangReadyToThrow(d.boomerang1))
}

func TestPlayerMovementAndJump(t *testing.T) {
	d := newDuel()
	body := components.Body.Get(d.p1)

	press(d, cfg.ActionMoveForward, cfg.ActionJump)
	tick(d.ecs, testDT, UpdatePlayers)
	assertVecInDelta(t, mgl64.Vec3{cfg.Player.MoveForce, 0, 0}, body.Force)
	assert.Zero(t, body.Velocity.Z(), "cannot jump in the air")

	body.Force = mgl64.Vec3{}
	components.Player.Get(d.p1).OnGround = true
	press(d)
	press(d, cfg.ActionJump)
	tick(d.ecs, testDT, UpdatePlayers)
	assert.InDelta(t, cfg.Player.JumpImpulse, body.Velocity.Z(), 1e-9)
	assert.False(t, components.Player.Get(d.p1).OnGround)
}

func TestAimPointStaysInArena(t *testing.T) {
	e := newTestECS()
	p := AimPoint(e.World, mgl64.Vec3{46, 10, 0}, mgl64.Vec3{1, 0, 0})
	assert.Equal(t, 48.0, p.X())
}

func TestAimPointStopsAtWall(t *testing.T) {
	e := newTestECS()
	factory.CreateWall(e, 14, 0, 1, 20)

	p := AimPoint(e.World, mgl64.Vec3{10, 10, 0}, mgl64.Vec3{1, 0, 0})
	assertVecInDelta(t, mgl64.Vec3{14, 10, cfg.Boomerang.ThrowHeight}, p)
}

func TestAimPointPassesOverLowPlatform(t *testing.T) {
	e := newTestECS()
	factory.CreatePlatform(e, 13, 8, 2, 4, cfg.Boomerang.ThrowHeight-0.5)
	factory.CreatePlatform(e, 17, 8, 2, 4, cfg.Boomerang.ThrowHeight+0.5)

	p := AimPoint(e.World, mgl64.Vec3{10, 10, 0}, mgl64.Vec3{1, 0, 0})
	assertVecInDelta(t, mgl64.Vec3{17, 10, cfg.Boomerang.ThrowHeight}, p, "hits the raised platform only")
}

func TestRespawnPlayer(t *testing.T) {
	d := newDuel()
	place(d.p1, mgl64.Vec3{3, 4, 5})
	components.Body.Get(d.p1).SetLinearVelocity(mgl64.Vec3{1, 2, 3})
	components.Player.Get(d.p1).Yaw = 2

	RespawnPlayer(d.p1)

	assert.Equal(t, mgl64.Vec3{10, 10, 0}, components.Transform.Get(d.p1).Position)
	assert.Equal(t, mgl64.Vec3{}, components.Body.Get(d.p1).Velocity)
	assert.Zero(t, components.Player.Get(d.p1).Yaw)
}
