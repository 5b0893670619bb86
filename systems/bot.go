package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Random number generator for bot decision making.
// Uses a fixed seed so headless runs repeat.
var rng = rand.New(rand.NewSource(42))

// Enemy boomerang distance that triggers a jump.
const botDodgeRange = 3.0

// UpdateBots fills the input of bot-controlled players. Must run before
// UpdatePlayers.
func UpdateBots(ecs *ecs.ECS) {
	dt := DeltaTime(ecs.World)
	finder := WorldFinder{World: ecs.World}

	components.Bot.Each(ecs.World, func(e *donburi.Entry) {
		input := components.PlayerInput.Get(e)
		input.Advance()

		if !MatchPlaying(ecs.World) || IsDead(e) {
			return
		}
		updateBotAI(ecs.World, finder, e, input, dt)
	})
}

func updateBotAI(w donburi.World, finder EntityFinder, e *donburi.Entry, input *components.PlayerInputData, dt float64) {
	bot := components.Bot.Get(e)
	player := components.Player.Get(e)
	pos := components.Transform.Get(e).Position

	target, ok := finder.FindByName(player.Opponent)
	if !ok {
		return
	}
	targetPos, ok := entityPosition(w, target)
	if !ok {
		return
	}

	toTarget := targetPos.Sub(pos)
	dist := math.Hypot(toTarget.X(), toTarget.Y())

	bot.Cooldown -= dt
	if bot.Cooldown <= 0 {
		bot.Cooldown = bot.Reaction
		updateBotState(bot, components.Health.Get(e), dist)
	}

	// Face the opponent.
	want := math.Atan2(toTarget.Y(), toTarget.X())
	diff := math.Remainder(want-player.Yaw, 2*math.Pi)
	input.Turn = mgl64.Clamp(diff*2, -1, 1)

	generateMoveInputs(bot, input)
	generateBoomerangInputs(w, bot, player, input, math.Abs(diff), dt)

	if player.OnGround && incomingBoomerang(w, e, pos) {
		input.Current[cfg.ActionJump] = true
	}
}

func updateBotState(bot *components.BotData, health *components.HealthData, dist float64) {
	switch {
	case health.Current <= bot.RetreatAt && dist < bot.PreferRange/2:
		bot.State = components.BotRetreat
	case dist > bot.PreferRange:
		bot.State = components.BotApproach
	default:
		bot.State = components.BotCircle
	}
	// Occasionally change circling direction so bots do not orbit forever.
	if rng.Float64() < 0.1 {
		bot.StrafeSign = -bot.StrafeSign
	}
}

func generateMoveInputs(bot *components.BotData, input *components.PlayerInputData) {
	switch bot.State {
	case components.BotApproach:
		input.Current[cfg.ActionMoveForward] = true
		input.Current[cfg.ActionSprint] = true
	case components.BotCircle:
		input.Move[0] = bot.StrafeSign
	case components.BotRetreat:
		input.Current[cfg.ActionMoveBack] = true
		input.Move[0] = bot.StrafeSign * 0.5
	}
}

func generateBoomerangInputs(w donburi.World, bot *components.BotData, player *components.PlayerData, input *components.PlayerInputData, aimError, dt float64) {
	if !w.Valid(player.Boomerang) {
		return
	}
	b := components.Boomerang.Get(w.Entry(player.Boomerang))

	if b.ReadyToThrow() {
		bot.Flight = 0
		if aimError < bot.AimTol && !input.Previous[cfg.ActionThrow] {
			input.Current[cfg.ActionThrow] = true
		}
		return
	}

	bot.Flight += dt
	switch {
	case bot.Flight > bot.RecallAfter && b.State.Mode != components.BoomerangReturning:
		input.Current[cfg.ActionRecall] = true
	case bot.Flight > bot.LockDelay && !b.State.Locked():
		input.Current[cfg.ActionLock] = true
	}
}

// incomingBoomerang reports whether an enemy boomerang is flying close by.
func incomingBoomerang(w donburi.World, self *donburi.Entry, pos mgl64.Vec3) bool {
	threat := false
	tags.Boomerang.Each(w, func(e *donburi.Entry) {
		b := components.Boomerang.Get(e)
		if b.Owner == self.Entity() || b.ReadyToThrow() {
			return
		}
		if components.Transform.Get(e).Position.Sub(pos).Len() < botDodgeRange {
			threat = true
		}
	})
	return threat
}
