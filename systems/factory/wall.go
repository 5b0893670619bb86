package factory

import (
	"github.com/automoto/wangarena/archetypes"
	"github.com/automoto/wangarena/components"
	"github.com/automoto/wangarena/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// wallHeight is tall enough that nothing flies over a wall.
const wallHeight = 100.0

// CreateWall creates a solid wall with its top-left corner at x, y.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	components.Transform.SetValue(wall, components.TransformData{
		Position: mgl64.Vec3{x + w/2, y + h/2, 0},
		Rotation: mgl64.QuatIdent(),
	})

	obj := newObject(wall, x, y, w, h, tags.ResolvSolid)
	components.Object.SetValue(wall, components.ObjectData{Object: obj, Height: wallHeight})
	addToSpace(ecs, obj)

	return wall
}

// CreateBoundary walls in a width x height arena from the outside.
func CreateBoundary(ecs *ecs.ECS, width, height, thickness float64) {
	CreateWall(ecs, -thickness, -thickness, width+2*thickness, thickness)
	CreateWall(ecs, -thickness, height, width+2*thickness, thickness)
	CreateWall(ecs, -thickness, 0, thickness, height)
	CreateWall(ecs, width, 0, thickness, height)
}
