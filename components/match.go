package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MatchState is the phase of a round.
type MatchState int

const (
	MatchCountdown MatchState = iota
	MatchPlaying
	MatchFinished
)

func (s MatchState) String() string {
	switch s {
	case MatchCountdown:
		return "countdown"
	case MatchPlaying:
		return "playing"
	case MatchFinished:
		return "finished"
	}
	return "unknown"
}

// MatchData stores the round state and scores. Singleton.
type MatchData struct {
	State  MatchState
	Timer  float64 // seconds left in the countdown or results screen
	Round  int
	Winner int // player index, -1 draw or undecided
	Scores [2]int

	// Banner scales the countdown text in and out.
	Banner *gween.Tween
	// BannerScale is the last value Banner produced.
	BannerScale float64
}

// CountdownValue returns the whole seconds left, for display.
func (m *MatchData) CountdownValue() int {
	if m.State != MatchCountdown {
		return 0
	}
	return int(m.Timer) + 1
}

// Leader returns the index with the most round wins, or -1 on a tie.
func (m *MatchData) Leader() int {
	switch {
	case m.Scores[0] > m.Scores[1]:
		return 0
	case m.Scores[1] > m.Scores[0]:
		return 1
	}
	return -1
}

var Match = donburi.NewComponentType[MatchData]()
