package factory

import (
	"github.com/automoto/wangarena/archetypes"
	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/shared/gamemath"
	"github.com/automoto/wangarena/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns player index (0 or 1) standing at spawn, facing yaw.
func CreatePlayer(ecs *ecs.ECS, index int, spawn mgl64.Vec3, yaw float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	size := cfg.Player.Size

	components.Name.SetValue(player, components.NameData{Name: cfg.PlayerNames[index]})
	components.Player.SetValue(player, components.PlayerData{
		Index:    index,
		Opponent: cfg.PlayerNames[1-index],
		Yaw:      yaw,
		Spawn:    spawn,
		SpawnYaw: yaw,
	})
	components.Transform.SetValue(player, components.TransformData{
		Position: spawn,
		Rotation: gamemath.YawRotation(yaw),
	})
	components.Body.SetValue(player, components.BodyData{
		Mass:          cfg.Player.Mass,
		GravityScale:  1,
		MaxSpeed:      cfg.Player.MaxSpeed,
		LinearDamping: cfg.Player.LinearDamping,
	})

	obj := newObject(player, spawn.X()-size/2, spawn.Y()-size/2, size, size, tags.ResolvPlayer)
	components.Object.SetValue(player, components.ObjectData{Object: obj, Height: cfg.Player.Height})
	addToSpace(ecs, obj)

	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Health.Max,
		Max:     cfg.Health.Max,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		ControlScheme: cfg.ControlSchemeID(index),
	})

	return player
}

// CreateBot spawns a player driven by the bot system.
func CreateBot(ecs *ecs.ECS, index int, spawn mgl64.Vec3, yaw float64) *donburi.Entry {
	player := CreatePlayer(ecs, index, spawn, yaw)
	strafe := 1.0
	if index%2 == 1 {
		strafe = -1
	}
	d := cfg.Bot.Current()
	donburi.Add(player, components.Bot, &components.BotData{
		Reaction:    d.Reaction,
		StrafeSign:  strafe,
		PreferRange: cfg.Player.AimDistance * d.PreferRange,
		RetreatAt:   d.RetreatHealth,
		AimTol:      d.AimTolerance,
		LockDelay:   d.LockDelay,
		RecallAfter: d.RecallAfter,
	})
	return player
}
