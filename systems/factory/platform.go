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

// CreatePlatform creates a static platform whose top surface is at top.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h, top float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	thickness := config.Platform.Thickness

	components.Transform.SetValue(platform, components.TransformData{
		Position: mgl64.Vec3{x + w/2, y + h/2, top - thickness},
		Rotation: mgl64.QuatIdent(),
	})

	obj := newObject(platform, x, y, w, h, tags.ResolvPlatform)
	components.Object.SetValue(platform, components.ObjectData{Object: obj, Height: thickness})
	addToSpace(ecs, obj)

	return platform
}

// CreateMovingPlatform creates a platform that follows nodes. Like every
// transform, a node places the footprint centre at the platform's base.
func CreateMovingPlatform(ecs *ecs.ECS, name string, nodes []mgl64.Vec3, mode components.PathMode, duration float64) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)
	size := config.Platform.Size
	thickness := config.Platform.Thickness

	components.Name.SetValue(platform, components.NameData{Name: name})

	path := components.PathFollower.Get(platform)
	path.SetNodes(nodes, duration)
	path.SetMode(mode)
	path.LegacyBezierBasis = config.Platform.LegacyBezierBasis

	var start mgl64.Vec3
	if len(nodes) > 0 {
		start = nodes[0]
	}
	components.Transform.SetValue(platform, components.TransformData{
		Position: start,
		Rotation: mgl64.QuatIdent(),
	})

	obj := newObject(platform, start.X()-size/2, start.Y()-size/2, size, size, tags.ResolvPlatform)
	components.Object.SetValue(platform, components.ObjectData{Object: obj, Height: thickness})
	addToSpace(ecs, obj)

	return platform
}
