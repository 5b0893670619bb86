package systems

import (
	"math"

	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/shared/gamemath"
	"github.com/automoto/wangarena/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every body with semi-implicit Euler, then resolves
// players against walls, platforms and the floor.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := DeltaTime(ecs.World)
	if dt <= 0 {
		return
	}

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		t := components.Transform.Get(e)
		if body.Kinematic {
			body.Force = mgl64.Vec3{}
			return
		}

		prev := t.Position
		IntegrateBody(body, t, cfg.Physics.Gravity, dt)

		if e.HasComponent(components.Player) {
			resolvePlayer(ecs.World, e, body, t, prev)
		} else {
			t.Position = clampToArena(ecs.World, t.Position)
		}

		if e.HasComponent(components.Object) {
			components.Object.Get(e).Center(t.Position)
		}
	})
}

// IntegrateBody advances body and t by dt under gravity (an acceleration
// along Z) and clears the force accumulator. Damping and the speed clamp act
// in the XY plane only, so falls and jumps keep their arc.
func IntegrateBody(body *components.BodyData, t *components.TransformData, gravity, dt float64) {
	acc := body.Force.Mul(body.InverseMass())
	acc = acc.Add(mgl64.Vec3{0, 0, gravity * body.GravityScale})
	v := body.Velocity.Add(acc.Mul(dt))

	planar := gamemath.Damp(mgl64.Vec3{v.X(), v.Y(), 0}, body.LinearDamping, dt)
	planar = gamemath.ClampLength(planar, body.MaxSpeed)
	v = mgl64.Vec3{planar.X(), planar.Y(), v.Z()}

	body.Velocity = v
	t.Position = t.Position.Add(v.Mul(dt))
	body.Force = mgl64.Vec3{}
}

// arenaSize returns the floor size of the world's arena, falling back to the
// configured size for worlds built without a space.
func arenaSize(w donburi.World) (float64, float64) {
	if entry, ok := components.ArenaBounds.First(w); ok {
		b := components.ArenaBounds.Get(entry)
		return b.Width, b.Height
	}
	return cfg.Arena.Width, cfg.Arena.Height
}

func clampToArena(w donburi.World, p mgl64.Vec3) mgl64.Vec3 {
	width, height := arenaSize(w)
	return mgl64.Vec3{
		mgl64.Clamp(p.X(), 0, width),
		mgl64.Clamp(p.Y(), 0, height),
		p.Z(),
	}
}

func resolvePlayer(w donburi.World, e *donburi.Entry, body *components.BodyData, t *components.TransformData, prev mgl64.Vec3) {
	player := components.Player.Get(e)
	obj := components.Object.Get(e)

	// Horizontal: move one axis at a time so players slide along walls.
	next := clampToArena(w, t.Position)
	pos := mgl64.Vec3{next.X(), prev.Y(), next.Z()}
	if blocked(obj, pos) {
		pos[0] = prev.X()
		body.Velocity[0] = 0
	}
	pos[1] = next.Y()
	if blocked(obj, pos) {
		pos[1] = prev.Y()
		body.Velocity[1] = 0
	}

	// Vertical: land on the highest surface crossed this step.
	player.OnGround = false
	player.Support = nil
	if body.Velocity.Z() <= 0 {
		top, support, found := landingSurface(obj, pos, prev.Z())
		if found && pos.Z() <= top+cfg.Physics.GroundSnap {
			pos[2] = top
			body.Velocity[2] = 0
			player.OnGround = true
			player.Support = support
		}
	}
	if pos.Z() <= 0 {
		pos[2] = 0
		body.Velocity[2] = 0
		player.OnGround = true
		player.Support = nil
	}

	t.Position = pos
}

// blocked reports whether a player footprint at pos overlaps a wall, or the
// side of a platform it is not standing on top of.
func blocked(obj *components.ObjectData, pos mgl64.Vec3) bool {
	foot := obj.FootprintAt(pos)
	check := obj.CheckAt(pos, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		if o == obj.Object || !foot.Overlaps(components.Bounds(o)) {
			continue
		}
		bottom, height, ok := objectSpan(o)
		if !ok {
			continue
		}
		top := bottom + height
		if pos.Z() >= top-cfg.Physics.GroundSnap {
			continue // standing on or above it
		}
		if components.OverlapsZ(pos.Z(), obj.Height, bottom, height) {
			return true
		}
	}
	return false
}

// landingSurface finds the highest platform top under the footprint at pos
// that the player was above at prevZ.
func landingSurface(obj *components.ObjectData, pos mgl64.Vec3, prevZ float64) (float64, *resolv.Object, bool) {
	foot := obj.FootprintAt(pos)
	check := obj.CheckAt(pos, tags.ResolvPlatform)
	if check == nil {
		return 0, nil, false
	}

	best := math.Inf(-1)
	var support *resolv.Object
	for _, o := range check.Objects {
		if !foot.Overlaps(components.Bounds(o)) {
			continue
		}
		bottom, height, ok := objectSpan(o)
		if !ok {
			continue
		}
		top := bottom + height
		if prevZ >= top-cfg.Physics.GroundSnap && pos.Z() <= top+cfg.Physics.GroundSnap && top > best {
			best, support = top, o
		}
	}
	return best, support, support != nil
}

// objectSpan returns the vertical extent of a collision object's entity.
func objectSpan(o *resolv.Object) (bottom, height float64, ok bool) {
	entry, isEntry := o.Data.(*donburi.Entry)
	if !isEntry || entry == nil || !entry.Valid() {
		return 0, 0, false
	}
	if !entry.HasComponent(components.Transform) || !entry.HasComponent(components.Object) {
		return 0, 0, false
	}
	return components.Transform.Get(entry).Position.Z(), components.Object.Get(entry).Height, true
}
