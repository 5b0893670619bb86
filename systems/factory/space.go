package factory

import (
	"github.com/automoto/wangarena/archetypes"
	"github.com/automoto/wangarena/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space for a width x height arena with
// square cells of cell world units.
func CreateSpace(ecs *ecs.ECS, width, height, cell float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := components.NewSpace(width, height, cell)
	components.Space.Set(space, spaceData)
	components.ArenaBounds.SetValue(space, components.ArenaBoundsData{Width: width, Height: height})
	return space
}

// addToSpace registers obj with the world's collision space, if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func newObject(owner *donburi.Entry, x, y, w, h float64, tag string) *resolv.Object {
	obj := components.NewObject(components.Rect{X: x, Y: y, W: w, H: h}, tag)
	obj.Data = owner // Link for O(1) lookup
	return obj
}
