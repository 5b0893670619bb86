package systems

import (
	"math"
	"testing"

	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/shared/gamemath"
	"github.com/automoto/wangarena/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var parking = mgl64.Vec3{2, 2, -2}

func antiGravity(body *components.BodyData) mgl64.Vec3 {
	return gamemath.AntiGravity(body.Mass, cfg.Physics.Gravity*body.GravityScale, cfg.Boomerang.GravityCompensation)
}

func assertVecInDelta(t *testing.T, want, got mgl64.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, msgAndArgs...)
	}
}

func setupBoomerang(t *testing.T) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	e := newTestECS()
	owner := newMarker(e, "Owner", mgl64.Vec3{10, 10, 0})
	b := factory.CreateBoomerang(e, owner, parking)
	return e, owner, b
}

func TestThrowPlacesBoomerangAheadOfOrigin(t *testing.T) {
	_, _, b := setupBoomerang(t)

	ThrowBoomerang(b, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{1, 0, 0})

	data := components.Boomerang.Get(b)
	body := components.Body.Get(b)
	assert.Equal(t, components.BoomerangForward, data.State.Mode)
	assertVecInDelta(t, mgl64.Vec3{10 + cfg.Boomerang.Spacing, 10, 1}, components.Transform.Get(b).Position)
	assertVecInDelta(t, mgl64.Vec3{cfg.Boomerang.LaunchForce / cfg.Boomerang.Mass, 0, 0}, body.Velocity)
	assert.False(t, BoomerangReadyToThrow(b))
}

func TestLockTrackSteersTowardTarget(t *testing.T) {
	e, _, b := setupBoomerang(t)
	target := newMarker(e, "Target", mgl64.Vec3{15, 10, 1})

	ThrowBoomerang(b, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{1, 0, 0})
	LockBoomerangTarget(b, target.Entity())
	require.Equal(t, components.BoomerangLockTrack, components.Boomerang.Get(b).State.Mode)

	body := components.Body.Get(b)
	body.SetLinearVelocity(mgl64.Vec3{2, 1, 0})
	pos := components.Transform.Get(b).Position

	tick(e, testDT, UpdateBoomerang)

	want := gamemath.SeekForce(pos, mgl64.Vec3{2, 1, 0}, mgl64.Vec3{15, 10, 1}, cfg.Boomerang.Acceleration).Add(antiGravity(body))
	assertVecInDelta(t, want, body.Force)
	assertVecInDelta(t, mgl64.Vec3{15, 10, 1}, components.Boomerang.Get(b).State.Point, "point follows the target")
}

func TestLockTrackTurnsVelocityTowardTarget(t *testing.T) {
	e, _, b := setupBoomerang(t)
	target := newMarker(e, "Target", mgl64.Vec3{15, 10, 1})

	ThrowBoomerang(b, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{1, 0, 0})
	LockBoomerangTarget(b, target.Entity())
	body := components.Body.Get(b)
	body.SetLinearVelocity(mgl64.Vec3{2, 1, 0})

	alignment := func() float64 {
		toTarget := mgl64.Vec3{15, 10, 1}.Sub(components.Transform.Get(b).Position).Normalize()
		return body.Velocity.Normalize().Dot(toTarget)
	}
	before := alignment()

	for i := 0; i < 5; i++ {
		tick(e, testDT, UpdateBoomerang, UpdatePhysics)
	}

	assert.Greater(t, alignment(), before)
	assert.Equal(t, components.BoomerangLockTrack, components.Boomerang.Get(b).State.Mode)
	assert.InDelta(t, 1.0, components.Transform.Get(b).Position.Z(), 1e-9, "anti-gravity cancels gravity")
}

func TestPointTrackSeeksPoint(t *testing.T) {
	e, _, b := setupBoomerang(t)
	ThrowBoomerang(b, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{1, 0, 0})
	UpdateBoomerangTarget(b, mgl64.Vec3{11.5, 20, 1})
	require.Equal(t, components.BoomerangPointTrack, components.Boomerang.Get(b).State.Mode)

	body := components.Body.Get(b)
	body.SetLinearVelocity(mgl64.Vec3{})
	tick(e, testDT, UpdateBoomerang)

	want := mgl64.Vec3{0, cfg.Boomerang.Acceleration, 0}.Add(antiGravity(body))
	assertVecInDelta(t, want, body.Force)
}

func TestZeroVelocitySteeringStaysFinite(t *testing.T) {
	e, _, b := setupBoomerang(t)
	target := newMarker(e, "Target", mgl64.Vec3{20, 10, 1})
	ThrowBoomerang(b, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{1, 0, 0})
	LockBoomerangTarget(b, target.Entity())

	body := components.Body.Get(b)
	body.SetLinearVelocity(mgl64.Vec3{})
	tick(e, testDT, UpdateBoomerang)

	for _, c := range body.Force {
		assert.False(t, math.IsNaN(c) || math.IsInf(c, 0))
	}
	assertVecInDelta(t, mgl64.Vec3{cfg.Boomerang.Acceleration, 0, 0}.Add(antiGravity(body)), body.Force)
}

func TestScaleByDeltaScalesSteering(t *testing.T) {
	e, _, b := setupBoomerang(t)
	data := components.Boomerang.Get(b)
	data.ScaleByDelta = true
	ThrowBoomerang(b, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{1, 0, 0})
	UpdateBoomerangTarget(b, mgl64.Vec3{20, 10, 1})

	body := components.Body.Get(b)
	body.SetLinearVelocity(mgl64.Vec3{})
	tick(e, testDT, UpdateBoomerang)

	want := mgl64.Vec3{cfg.Boomerang.Acceleration * testDT, 0, 0}.Add(antiGravity(body))
	assertVecInDelta(t, want, body.Force)
}

func TestDanglingTargetSkipsSteering(t *testing.T) {
	e, _, b := setupBoomerang(t)
	target := newMarker(e, "Target", mgl64.Vec3{15, 10, 1})
	ThrowBoomerang(b, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{1, 0, 0})
	LockBoomerangTarget(b, target.Entity())
	tick(e, testDT, UpdateBoomerang)

	data := components.Boomerang.Get(b)
	body := components.Body.Get(b)
	point := data.State.Point
	body.Force = mgl64.Vec3{}

	e.World.Remove(target.Entity())
	tick(e, testDT, UpdateBoomerang)

	assert.Equal(t, components.BoomerangLockTrack, data.State.Mode)
	assert.True(t, data.Stalled)
	assert.Equal(t, point, data.State.Point)
	assertVecInDelta(t, antiGravity(body), body.Force, "only anti-gravity is applied")
}

func TestReturningTracksOwner(t *testing.T) {
	e, owner, b := setupBoomerang(t)
	ThrowBoomerang(b, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{1, 0, 0})
	ReturnBoomerang(b)

	place(owner, mgl64.Vec3{6, 12, 0})
	tick(e, testDT, UpdateBoomerang)

	data := components.Boomerang.Get(b)
	assert.Equal(t, components.BoomerangReturning, data.State.Mode)
	assert.Equal(t, mgl64.Vec3{6, 12, 0}, data.State.Point)
}

func TestLockWhileReturningKeepsReturning(t *testing.T) {
	e, _, b := setupBoomerang(t)
	target := newMarker(e, "Target", mgl64.Vec3{15, 10, 1})
	ThrowBoomerang(b, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{1, 0, 0})
	ReturnBoomerang(b)

	LockBoomerangTarget(b, target.Entity())

	data := components.Boomerang.Get(b)
	assert.Equal(t, components.BoomerangReturning, data.State.Mode)
	assert.Equal(t, target.Entity(), data.State.Target)
}

func TestInactiveIgnoresCommandsAndStaysParked(t *testing.T) {
	e, _, b := setupBoomerang(t)
	target := newMarker(e, "Target", mgl64.Vec3{15, 10, 1})

	UpdateBoomerangTarget(b, mgl64.Vec3{1, 2, 3})
	LockBoomerangTarget(b, target.Entity())
	ReturnBoomerang(b)
	assert.Equal(t, components.BoomerangInactive, components.Boomerang.Get(b).State.Mode)

	place(b, mgl64.Vec3{30, 30, 5})
	components.Body.Get(b).SetLinearVelocity(mgl64.Vec3{1, 1, 1})
	tick(e, testDT, UpdateBoomerang, UpdatePhysics)

	assertVecInDelta(t, parking, components.Transform.Get(b).Position)
	assert.True(t, BoomerangReadyToThrow(b))
}

func TestMakeInactiveIsIdempotent(t *testing.T) {
	e, _, b := setupBoomerang(t)
	target := newMarker(e, "Target", mgl64.Vec3{15, 10, 1})
	ThrowBoomerang(b, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{1, 0, 0})
	LockBoomerangTarget(b, target.Entity())

	MakeBoomerangInactive(b)
	first := *components.Boomerang.Get(b)
	MakeBoomerangInactive(b)
	second := components.Boomerang.Get(b)

	assert.Equal(t, first.State, second.State)
	assert.Equal(t, components.BoomerangInactive, second.State.Mode)
	assert.True(t, second.State.Locked(), "lock is latched while parked")
	assert.Equal(t, mgl64.Vec3{}, components.Body.Get(b).Velocity)
	assertVecInDelta(t, parking, components.Transform.Get(b).Position)
}

func TestCollisionReturnsFlyingBoomerang(t *testing.T) {
	_, _, b := setupBoomerang(t)

	OnBoomerangCollision(b)
	assert.Equal(t, components.BoomerangInactive, components.Boomerang.Get(b).State.Mode, "parked boomerangs ignore hits")

	ThrowBoomerang(b, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{1, 0, 0})
	OnBoomerangCollision(b)
	assert.Equal(t, components.BoomerangReturning, components.Boomerang.Get(b).State.Mode)
}
