package factory

import (
	"github.com/automoto/wangarena/archetypes"
	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch creates the match singleton in its countdown phase.
func CreateMatch(ecs *ecs.ECS) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		State:  components.MatchCountdown,
		Timer:  cfg.Match.CountdownDuration,
		Round:  1,
		Winner: -1,
	})
	return match
}
