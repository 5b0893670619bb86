// Package sim runs an arena without a window: both slots are bots and the
// clock is driven by the caller instead of ebiten.
package sim

import (
	"fmt"

	"github.com/automoto/wangarena/components"
	"github.com/automoto/wangarena/shared/leveldata"
	"github.com/automoto/wangarena/systems"
	"github.com/automoto/wangarena/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// World is a headless arena.
type World struct {
	ECS     *ecs.ECS
	Players [2]*donburi.Entry
	delta   float64
}

// PlayerSnapshot is one player's state after a tick.
type PlayerSnapshot struct {
	Name      string
	Position  mgl64.Vec3
	Health    int
	Boomerang components.BoomerangMode
}

// Snapshot summarizes a tick for logging.
type Snapshot struct {
	Tick    int
	Elapsed float64
	Match   components.MatchState
	Round   int
	Scores  [2]int
	Players [2]PlayerSnapshot
}

// NewWorld builds arena with both players driven by bots, advancing
// 1/tickRate seconds per Step.
func NewWorld(arena *leveldata.ArenaData, tickRate int) (*World, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %d", tickRate)
	}
	w := &World{delta: 1 / float64(tickRate)}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(w.updateClock)
	e.AddSystem(systems.UpdateBots)
	e.AddSystem(systems.UpdatePlayers)
	e.AddSystem(systems.UpdateBoomerang)
	e.AddSystem(systems.UpdatePlatforms)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateHealth)
	e.AddSystem(systems.UpdateMatch)
	w.ECS = e

	factory.CreateClock(e)
	players, err := factory.CreateArena(e, arena, factory.ArenaOptions{Bots: [2]bool{true, true}})
	if err != nil {
		return nil, err
	}
	w.Players = players
	factory.CreateMatch(e)
	return w, nil
}

func (w *World) updateClock(e *ecs.ECS) {
	systems.AdvanceClock(e.World, w.delta)
}

// Step runs one tick.
func (w *World) Step() {
	w.ECS.Update()
}

// Snapshot reports the state after the last Step.
func (w *World) Snapshot() Snapshot {
	world := w.ECS.World
	var s Snapshot

	if entry, ok := components.Clock.First(world); ok {
		clock := components.Clock.Get(entry)
		s.Tick = clock.Tick
		s.Elapsed = clock.Elapsed
	}
	if entry, ok := components.Match.First(world); ok {
		match := components.Match.Get(entry)
		s.Match = match.State
		s.Round = match.Round
		s.Scores = match.Scores
	}

	for i, p := range w.Players {
		if p == nil || !p.Valid() {
			continue
		}
		ps := PlayerSnapshot{
			Name:     components.Name.Get(p).Name,
			Position: components.Transform.Get(p).Position,
			Health:   components.Health.Get(p).Current,
		}
		if b := components.Player.Get(p).Boomerang; world.Valid(b) {
			ps.Boomerang = components.Boomerang.Get(world.Entry(b)).State.Mode
		}
		s.Players[i] = ps
	}
	return s
}
