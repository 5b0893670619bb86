package factory

import (
	"github.com/automoto/wangarena/archetypes"
	"github.com/automoto/wangarena/components"
	"github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoomerang spawns owner's boomerang parked at parking.
// Boomerangs live for the whole session and are reused for every throw.
func CreateBoomerang(ecs *ecs.ECS, owner *donburi.Entry, parking mgl64.Vec3) *donburi.Entry {
	b := archetypes.Boomerang.Spawn(ecs)
	size := config.Boomerang.Size

	name := "Boomerang"
	if owner.HasComponent(components.Player) {
		ownerPlayer := components.Player.Get(owner)
		name = config.BoomerangNames[ownerPlayer.Index]
		ownerPlayer.Boomerang = b.Entity()
	}
	components.Name.SetValue(b, components.NameData{Name: name})

	components.Boomerang.SetValue(b, components.BoomerangData{
		Owner:            owner.Entity(),
		Acceleration:     config.Boomerang.Acceleration,
		InactivePosition: parking,
		LaunchForce:      config.Boomerang.LaunchForce,
		Spacing:          config.Boomerang.Spacing,
		ScaleByDelta:     config.Boomerang.ScaleByDelta,
		Damage:           config.Boomerang.Damage,
		HitPlayers:       make(map[donburi.Entity]struct{}),
	})
	components.Transform.SetValue(b, components.TransformData{
		Position: parking,
		Rotation: mgl64.QuatIdent(),
	})
	components.Body.SetValue(b, components.BodyData{
		Mass:          config.Boomerang.Mass,
		GravityScale:  1,
		MaxSpeed:      config.Boomerang.MaxSpeed,
		LinearDamping: config.Boomerang.LinearDamping,
		Kinematic:     true, // parked
	})

	obj := newObject(b, parking.X()-size/2, parking.Y()-size/2, size, size, tags.ResolvBoomerang)
	components.Object.SetValue(b, components.ObjectData{Object: obj, Height: config.Boomerang.Height})
	addToSpace(ecs, obj)

	return b
}
