package components

import "github.com/yohamta/donburi"

// BotState is the current bot decision.
type BotState int

const (
	BotApproach BotState = iota
	BotCircle
	BotRetreat
)

// BotData drives a player from simple AI instead of devices.
type BotData struct {
	State       BotState
	Reaction    float64 // seconds between decisions
	Cooldown    float64 // seconds until the next decision
	StrafeSign  float64 // +1 circles right, -1 left
	PreferRange float64
	RetreatAt   int     // health at or below which the bot backs off
	AimTol      float64 // radians
	LockDelay   float64
	RecallAfter float64
	Flight      float64 // seconds the bot's boomerang has been out
}

var Bot = donburi.NewComponentType[BotData]()
