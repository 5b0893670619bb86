package archetypes

import (
	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Name,
		components.Transform,
		components.Body,
		components.Object,
		components.Health,
		components.PlayerInput,
	)
	Boomerang = newArchetype(
		tags.Boomerang,
		components.Boomerang,
		components.Name,
		components.Transform,
		components.Body,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Transform,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.Platform,
		tags.MovingPlatform,
		components.Name,
		components.Transform,
		components.Object,
		components.PathFollower,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Transform,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
		components.ArenaBounds,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Match = newArchetype(
		components.Match,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
