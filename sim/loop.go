package sim

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// GameLoop steps a World on a wall-clock ticker until stopped.
type GameLoop struct {
	world    *World
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once

	// OnTick, if set, is called after every step.
	OnTick func(Snapshot)
}

func NewGameLoop(world *World, tickRate int) *GameLoop {
	return &GameLoop{
		world:    world,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called or maxTicks steps have run. maxTicks <= 0
// runs forever.
func (g *GameLoop) Run(maxTicks int) {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.WithField("tickrate", g.tickRate).Info("game loop started")

	ticks := 0
	for {
		select {
		case <-g.stopChan:
			log.Info("game loop stopped")
			return
		case <-ticker.C:
			g.tick()
			ticks++
			if maxTicks > 0 && ticks >= maxTicks {
				log.WithField("ticks", ticks).Info("game loop finished")
				return
			}
		}
	}
}

// RunFast steps n ticks back to back without waiting on the ticker. It
// returns early once Stop is called and reports how many ticks ran.
func (g *GameLoop) RunFast(n int) int {
	for i := 0; i < n; i++ {
		select {
		case <-g.stopChan:
			log.WithField("ticks", i).Info("game loop stopped")
			return i
		default:
		}
		g.tick()
	}
	return n
}

// Stop ends Run or RunFast. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() {
	g.world.Step()
	if g.OnTick != nil {
		g.OnTick(g.world.Snapshot())
	}
}
