package systems

import (
	"testing"

	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestBotStateFollowsRangeAndHealth(t *testing.T) {
	bot := &components.BotData{PreferRange: 8, RetreatAt: 1, StrafeSign: 1}

	updateBotState(bot, &components.HealthData{Current: 3, Max: 3}, 20)
	assert.Equal(t, components.BotApproach, bot.State)

	updateBotState(bot, &components.HealthData{Current: 3, Max: 3}, 5)
	assert.Equal(t, components.BotCircle, bot.State)

	updateBotState(bot, &components.HealthData{Current: 1, Max: 3}, 2)
	assert.Equal(t, components.BotRetreat, bot.State)
}

func TestBotBoomerangInputs(t *testing.T) {
	d := newDuel()
	player := components.Player.Get(d.p1)
	bot := &components.BotData{AimTol: 0.25, LockDelay: 0.5, RecallAfter: 2}
	input := &components.PlayerInputData{}

	generateBoomerangInputs(d.ecs.World, bot, player, input, 1.0, testDT)
	assert.False(t, input.Current[cfg.ActionThrow], "not facing the target")

	generateBoomerangInputs(d.ecs.World, bot, player, input, 0.1, testDT)
	assert.True(t, input.Current[cfg.ActionThrow])

	ThrowBoomerang(d.boomerang1, mgl64.Vec3{10, 10, 1}, mgl64.Vec3{1, 0, 0})
	input.Advance()
	generateBoomerangInputs(d.ecs.World, bot, player, input, 0.1, 0.25)
	assert.False(t, input.Current[cfg.ActionLock])

	input.Advance()
	generateBoomerangInputs(d.ecs.World, bot, player, input, 0.1, 0.5)
	assert.True(t, input.Current[cfg.ActionLock])

	LockBoomerangTarget(d.boomerang1, d.p2.Entity())
	input.Advance()
	generateBoomerangInputs(d.ecs.World, bot, player, input, 0.1, 1.5)
	assert.True(t, input.Current[cfg.ActionRecall])
}

func TestUpdateBotsTurnsTowardOpponent(t *testing.T) {
	e := newTestECS()
	b := factory.CreateBot(e, 0, mgl64.Vec3{10, 10, 0}, 0)
	factory.CreatePlayer(e, 1, mgl64.Vec3{10, 20, 0}, 0)
	factory.CreateBoomerang(e, b, parking)

	tick(e, testDT, UpdateBots)

	input := components.PlayerInput.Get(b)
	assert.Greater(t, input.Turn, 0.0, "opponent lies along +Y")
	assert.NotZero(t, components.Bot.Get(b).Reaction)
}

func TestBotDifficultyTuning(t *testing.T) {
	defer func(d cfg.BotDifficulty) { cfg.Bot.Difficulty = d }(cfg.Bot.Difficulty)
	cfg.Bot.Difficulty = cfg.BotDifficultyHard

	e := newTestECS()
	b := factory.CreateBot(e, 1, mgl64.Vec3{10, 10, 0}, 0)

	bot := components.Bot.Get(b)
	hard := cfg.Bot.Difficulties[cfg.BotDifficultyHard]
	assert.Equal(t, hard.Reaction, bot.Reaction)
	assert.Equal(t, hard.AimTolerance, bot.AimTol)
	assert.Equal(t, -1.0, bot.StrafeSign)
}
