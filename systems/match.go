package systems

import (
	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/tags"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var matchLog = log.WithField("system", "match")

// MatchPlaying reports whether players may act. Worlds without a match are
// always playing.
func MatchPlaying(w donburi.World) bool {
	entry, ok := components.Match.First(w)
	if !ok {
		return true
	}
	return components.Match.Get(entry).State == components.MatchPlaying
}

// UpdateMatch handles round state transitions and timers.
func UpdateMatch(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	dt := DeltaTime(ecs.World)

	switch match.State {
	case components.MatchCountdown:
		updateCountdown(match, dt)
	case components.MatchPlaying:
		updatePlaying(ecs.World, match)
	case components.MatchFinished:
		match.Timer -= dt
		if match.Timer <= 0 {
			StartRound(ecs.World, match)
		}
	}
}

func updateCountdown(match *components.MatchData, dt float64) {
	before := match.CountdownValue()
	match.Timer -= dt
	if cfg.Debug.SkipCountdown {
		match.Timer = 0
	}

	if match.Timer <= 0 {
		match.State = components.MatchPlaying
		match.Timer = 0
		match.Banner = nil
		matchLog.WithField("round", match.Round).Info("fight")
		return
	}

	if match.Banner == nil || match.CountdownValue() != before {
		match.Banner = gween.New(1.6, 1, 0.4, ease.OutQuad)
	}
	scale, _ := match.Banner.Update(float32(dt))
	match.BannerScale = float64(scale)
}

func updatePlaying(w donburi.World, match *components.MatchData) {
	alive, winner := 0, -1
	tags.Player.Each(w, func(e *donburi.Entry) {
		if !IsDead(e) {
			alive++
			winner = components.Player.Get(e).Index
		}
	})
	if alive > 1 {
		return
	}

	if alive == 0 {
		winner = -1
	}
	match.State = components.MatchFinished
	match.Winner = winner
	match.Timer = cfg.Match.RestartDelay
	if winner >= 0 {
		match.Scores[winner]++
	}
	matchLog.WithFields(log.Fields{"round": match.Round, "winner": winner, "scores": match.Scores}).Info("round over")
}

// StartRound resets players and boomerangs and begins the next countdown.
func StartRound(w donburi.World, match *components.MatchData) {
	components.Boomerang.Each(w, func(e *donburi.Entry) {
		MakeBoomerangInactive(e)
	})
	tags.Player.Each(w, func(e *donburi.Entry) {
		ResetHealth(e)
		RespawnPlayer(e)
	})

	match.Round++
	match.State = components.MatchCountdown
	match.Timer = cfg.Match.CountdownDuration
	match.Winner = -1
	match.Banner = nil
}
