// Command arenasim runs a bot-versus-bot arena without a window and logs the
// match as it goes.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/wangarena/assets"
	"github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/sim"
	log "github.com/sirupsen/logrus"
)

func main() {
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (updates per second)")
	ticks := flag.Int("ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	fast := flag.Bool("fast", false, "Do not wait on the wall clock; requires -ticks")
	arenaName := flag.String("arena", "", "Embedded arena name or TMX path")
	tuning := flag.String("config", "", "YAML tuning file (defaults to $"+config.ConfigEnv+")")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if _, err := config.LoadTuning(*tuning); err != nil {
		log.WithError(err).Fatal("could not load tuning")
	}
	if *fast && *ticks <= 0 {
		log.Fatal("-fast needs -ticks")
	}

	arena, err := assets.LoadArena(*arenaName)
	if err != nil {
		log.WithError(err).Fatal("could not load arena")
	}
	world, err := sim.NewWorld(arena, *tickRate)
	if err != nil {
		log.WithError(err).Fatal("could not build arena")
	}

	loop := sim.NewGameLoop(world, *tickRate)
	loop.OnTick = newReporter(*tickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down")
		loop.Stop()
	}()

	log.WithFields(log.Fields{
		"arena":    arena.Name,
		"tickrate": *tickRate,
		"ticks":    *ticks,
	}).Info("starting arena simulation")

	if *fast {
		loop.RunFast(*ticks)
	} else {
		loop.Run(*ticks)
	}

	s := world.Snapshot()
	log.WithFields(log.Fields{
		"tick":   s.Tick,
		"rounds": s.Round,
		"scores": s.Scores,
	}).Info("simulation done")
}

// newReporter logs match transitions, hits and a once-a-second status line.
func newReporter(tickRate int) func(sim.Snapshot) {
	var last sim.Snapshot
	return func(s sim.Snapshot) {
		if s.Match != last.Match {
			log.WithField("round", s.Round).Infof("match %s", s.Match)
		}
		for i, p := range s.Players {
			if last.Tick > 0 && p.Health < last.Players[i].Health {
				log.WithFields(log.Fields{"player": p.Name, "health": p.Health}).Info("hit")
			}
			if p.Boomerang != last.Players[i].Boomerang {
				log.WithFields(log.Fields{"player": p.Name, "mode": p.Boomerang}).Debug("boomerang")
			}
		}
		if s.Tick%tickRate == 0 {
			log.WithFields(log.Fields{
				"t":  s.Elapsed,
				"p1": s.Players[0].Position,
				"p2": s.Players[1].Position,
			}).Debug("status")
		}
		last = s
	}
}
