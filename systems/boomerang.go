package systems

import (
	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var boomerangLog = log.WithField("system", "boomerang")

// UpdateBoomerang steers every boomerang for one tick. Forces are integrated
// by UpdatePhysics later in the same frame.
func UpdateBoomerang(ecs *ecs.ECS) {
	dt := DeltaTime(ecs.World)
	components.Boomerang.Each(ecs.World, func(e *donburi.Entry) {
		updateBoomerang(ecs.World, e, dt)
	})
}

func updateBoomerang(w donburi.World, e *donburi.Entry, dt float64) {
	b := components.Boomerang.Get(e)
	body := components.Body.Get(e)

	switch b.State.Mode {
	case components.BoomerangInactive:
		park(e)
		return
	case components.BoomerangLockTrack:
		if !resample(w, e, b, b.State.Target) {
			break
		}
		seek(e, b, body, dt)
	case components.BoomerangReturning:
		if !resample(w, e, b, b.Owner) {
			break
		}
		seek(e, b, body, dt)
	case components.BoomerangPointTrack:
		seek(e, b, body, dt)
	}

	body.ApplyForce(gamemath.AntiGravity(body.Mass, cfg.Physics.Gravity*body.GravityScale, cfg.Boomerang.GravityCompensation))
}

// resample copies the tracked entity's position into the seek point. A
// dangling handle leaves the point alone and skips steering.
func resample(w donburi.World, e *donburi.Entry, b *components.BoomerangData, target donburi.Entity) bool {
	pos, ok := entityPosition(w, target)
	if !ok {
		if !b.Stalled {
			boomerangLog.WithField("mode", b.State.Mode).Debugf("entity %v is gone, holding course", target)
		}
		b.Stalled = true
		return false
	}
	b.Stalled = false
	b.State.Point = pos
	return true
}

func seek(e *donburi.Entry, b *components.BoomerangData, body *components.BodyData, dt float64) {
	pos := components.Transform.Get(e).Position
	steer := gamemath.SeekForce(pos, body.LinearVelocity(), b.State.Point, b.Acceleration)
	if b.ScaleByDelta {
		steer = steer.Mul(dt)
	}
	body.ApplyForce(steer)
}

// park holds a boomerang motionless at its parking spot. Parked bodies are
// kinematic so physics leaves them alone.
func park(e *donburi.Entry) {
	b := components.Boomerang.Get(e)
	body := components.Body.Get(e)
	t := components.Transform.Get(e)

	t.Position = b.InactivePosition
	body.Kinematic = true
	body.SetLinearVelocity(mgl64.Vec3{})
	body.Force = mgl64.Vec3{}
	if e.HasComponent(components.Object) {
		components.Object.Get(e).Center(t.Position)
	}
}

// ThrowBoomerang launches e from origin along forward.
func ThrowBoomerang(e *donburi.Entry, origin, forward mgl64.Vec3) {
	b := components.Boomerang.Get(e)
	body := components.Body.Get(e)
	t := components.Transform.Get(e)

	dir := gamemath.SafeNormalize(forward)
	if dir == (mgl64.Vec3{}) {
		dir = t.Forward()
	}

	b.Throw()
	b.Stalled = false
	t.Position = origin.Add(dir.Mul(b.Spacing))
	t.Rotation = gamemath.FacingRotation(dir)
	body.Kinematic = false
	body.SetLinearVelocity(mgl64.Vec3{})
	body.Force = mgl64.Vec3{}
	body.ApplyImpulse(dir.Mul(b.LaunchForce))
	if e.HasComponent(components.Object) {
		components.Object.Get(e).Center(t.Position)
	}

	boomerangLog.WithField("pos", t.Position).Debug("thrown")
}

// UpdateBoomerangTarget points e at point. Ignored for steering while locked.
func UpdateBoomerangTarget(e *donburi.Entry, point mgl64.Vec3) {
	b := components.Boomerang.Get(e)
	logTransition(b, func() { b.UpdateTarget(point) })
}

// LockBoomerangTarget makes e chase target. A returning boomerang keeps returning.
func LockBoomerangTarget(e *donburi.Entry, target donburi.Entity) {
	b := components.Boomerang.Get(e)
	logTransition(b, func() { b.LockTarget(target) })
}

// ReturnBoomerang sends e back to its owner.
func ReturnBoomerang(e *donburi.Entry) {
	b := components.Boomerang.Get(e)
	logTransition(b, b.Return)
}

// MakeBoomerangInactive parks e and zeroes its velocity.
func MakeBoomerangInactive(e *donburi.Entry) {
	b := components.Boomerang.Get(e)
	logTransition(b, b.MakeInactive)
	park(e)
}

// BoomerangReadyToThrow reports whether e is parked.
func BoomerangReadyToThrow(e *donburi.Entry) bool {
	return components.Boomerang.Get(e).ReadyToThrow()
}

// OnBoomerangCollision sends a flying boomerang home after it hits something.
// Callers decide separately whether the hit was a catch or a damaging hit.
func OnBoomerangCollision(e *donburi.Entry) {
	b := components.Boomerang.Get(e)
	if b.State.Mode == components.BoomerangInactive {
		return
	}
	ReturnBoomerang(e)
}

func logTransition(b *components.BoomerangData, fn func()) {
	from := b.State.Mode
	fn()
	if to := b.State.Mode; to != from {
		boomerangLog.Debugf("%s -> %s", from, to)
	}
}
