package systems

import (
	"math"

	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/shared/gamemath"
	"github.com/automoto/wangarena/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers turns input into movement forces and boomerang commands.
// Players are frozen outside the playing phase of a match.
func UpdatePlayers(ecs *ecs.ECS) {
	if !MatchPlaying(ecs.World) {
		return
	}
	dt := DeltaTime(ecs.World)
	finder := WorldFinder{World: ecs.World}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if IsDead(e) {
			return
		}
		input := components.PlayerInput.Get(e)
		player := components.Player.Get(e)

		handleTurn(e, input, player, dt)
		handleMovement(e, input, player)
		handleJump(e, input, player)
		handleBoomerangCommands(ecs.World, finder, e, input, player)
	})
}

func handleTurn(e *donburi.Entry, input *components.PlayerInputData, player *components.PlayerData, dt float64) {
	turn := input.Turn
	if input.Pressed(cfg.ActionTurnLeft) {
		turn--
	}
	if input.Pressed(cfg.ActionTurnRight) {
		turn++
	}
	turn = gamemath.ClampAxis(turn, 1)

	player.Yaw = math.Remainder(player.Yaw+turn*cfg.Player.TurnSpeed*dt, 2*math.Pi)
	components.Transform.Get(e).Rotation = gamemath.YawRotation(player.Yaw)
}

// moveVector combines digital and analog movement into the player's frame:
// X strafes right, Y moves forward.
func moveVector(input *components.PlayerInputData) mgl64.Vec2 {
	move := input.Move
	if input.Pressed(cfg.ActionMoveForward) {
		move[1]++
	}
	if input.Pressed(cfg.ActionMoveBack) {
		move[1]--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		move[0]++
	}
	if input.Pressed(cfg.ActionMoveLeft) {
		move[0]--
	}
	return move
}

func handleMovement(e *donburi.Entry, input *components.PlayerInputData, player *components.PlayerData) {
	move := moveVector(input)
	if move.Len() == 0 {
		return
	}

	forward := gamemath.YawForward(player.Yaw)
	right := gamemath.YawForward(player.Yaw + math.Pi/2)
	dir := gamemath.SafeNormalize(forward.Mul(move.Y()).Add(right.Mul(move.X())))

	force := cfg.Player.MoveForce
	if input.Pressed(cfg.ActionSprint) {
		force *= cfg.Player.SprintMultiplier
	}
	components.Body.Get(e).ApplyForce(dir.Mul(force))
}

func handleJump(e *donburi.Entry, input *components.PlayerInputData, player *components.PlayerData) {
	if !input.JustPressed(cfg.ActionJump) || !player.OnGround {
		return
	}
	body := components.Body.Get(e)
	body.ApplyImpulse(mgl64.Vec3{0, 0, cfg.Player.JumpImpulse * body.Mass})
	player.OnGround = false
	player.Support = nil
}

// handleBoomerangCommands throws a parked boomerang, or steers a flying one:
// aim sets a point ahead of the player, lock chases the opponent and recall
// sends it home.
func handleBoomerangCommands(w donburi.World, finder EntityFinder, e *donburi.Entry, input *components.PlayerInputData, player *components.PlayerData) {
	if !w.Valid(player.Boomerang) {
		return
	}
	boomerang := w.Entry(player.Boomerang)
	pos := components.Transform.Get(e).Position
	forward := gamemath.YawForward(player.Yaw)

	if BoomerangReadyToThrow(boomerang) {
		if input.JustPressed(cfg.ActionThrow) {
			origin := pos.Add(mgl64.Vec3{0, 0, cfg.Boomerang.ThrowHeight})
			ThrowBoomerang(boomerang, origin, forward)
		}
		return
	}

	if input.Pressed(cfg.ActionAim) {
		UpdateBoomerangTarget(boomerang, AimPoint(w, pos, forward))
	}
	if input.JustPressed(cfg.ActionLock) {
		if target, ok := finder.FindByName(player.Opponent); ok {
			LockBoomerangTarget(boomerang, target)
		}
	}
	if input.JustPressed(cfg.ActionRecall) {
		ReturnBoomerang(boomerang)
	}
}

// aimStep is the spacing of the samples along the aim ray, in world units.
const aimStep = 0.25

// AimPoint casts a ray from throw height at pos along forward and returns the
// first wall or platform it meets. With nothing in the way it is the point
// AimDistance ahead, kept inside the arena.
func AimPoint(w donburi.World, pos, forward mgl64.Vec3) mgl64.Vec3 {
	eye := pos.Add(mgl64.Vec3{0, 0, cfg.Boomerang.ThrowHeight})
	far := eye.Add(forward.Mul(cfg.Player.AimDistance))
	far[2] = eye.Z()
	far = clampToArena(w, far)

	if hit, ok := castAim(w, eye, far); ok {
		return hit
	}
	return far
}

// castAim samples the segment from -> to and returns the first sample inside
// a wall or platform.
func castAim(w donburi.World, from, to mgl64.Vec3) (mgl64.Vec3, bool) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return mgl64.Vec3{}, false
	}
	space := components.Space.Get(spaceEntry)

	seg := to.Sub(from)
	dist := seg.Len()
	if dist == 0 {
		return mgl64.Vec3{}, false
	}
	dir := seg.Mul(1 / dist)

	steps := int(dist / aimStep)
	for i := 1; i <= steps; i++ {
		q := from.Add(dir.Mul(float64(i) * aimStep))
		for _, o := range components.ObjectsAt(space, q.X(), q.Y(), tags.ResolvSolid, tags.ResolvPlatform) {
			bottom, height, ok := objectSpan(o)
			if ok && q.Z() >= bottom && q.Z() <= bottom+height {
				return q, true
			}
		}
	}
	return mgl64.Vec3{}, false
}

// RespawnPlayer puts e back on its spawn point at rest.
func RespawnPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	body := components.Body.Get(e)
	t := components.Transform.Get(e)

	player.Yaw = player.SpawnYaw
	player.OnGround = false
	player.Support = nil
	t.Position = player.Spawn
	t.Rotation = gamemath.YawRotation(player.Yaw)
	body.SetLinearVelocity(mgl64.Vec3{})
	body.Force = mgl64.Vec3{}
	components.Object.Get(e).Center(t.Position)
	components.PlayerInput.Get(e).Advance()
}
