package systems

import (
	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock by one fixed tick.
func UpdateClock(ecs *ecs.ECS) {
	rate := cfg.C.TickRate
	if rate <= 0 {
		rate = 60
	}
	AdvanceClock(ecs.World, 1/float64(rate))
}

// AdvanceClock advances the frame clock by dt seconds, clamped to the
// configured maximum frame delta.
func AdvanceClock(w donburi.World, dt float64) {
	entry, ok := components.Clock.First(w)
	if !ok {
		return
	}
	if max := cfg.Physics.MaxFrameDelta; max > 0 && dt > max {
		dt = max
	}
	if dt < 0 {
		dt = 0
	}
	clock := components.Clock.Get(entry)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Tick++
}

// DeltaTime returns the length of the current tick in seconds.
func DeltaTime(w donburi.World) float64 {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}
