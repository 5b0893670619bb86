package systems

import (
	"github.com/automoto/wangarena/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// EntityFinder resolves scene names to entity handles.
type EntityFinder interface {
	FindByName(name string) (donburi.Entity, bool)
}

// WorldFinder looks names up in a donburi world.
type WorldFinder struct {
	World donburi.World
}

func (f WorldFinder) FindByName(name string) (donburi.Entity, bool) {
	for e := range components.Name.Iter(f.World) {
		if components.Name.Get(e).Name == name {
			return e.Entity(), true
		}
	}
	return donburi.Null, false
}

// entityPosition returns the point a seeker aims at on e: the transform
// position raised to the middle of its collision height.
func entityPosition(w donburi.World, e donburi.Entity) (mgl64.Vec3, bool) {
	if !w.Valid(e) {
		return mgl64.Vec3{}, false
	}
	entry := w.Entry(e)
	if !entry.HasComponent(components.Transform) {
		return mgl64.Vec3{}, false
	}
	pos := components.Transform.Get(entry).Position
	if entry.HasComponent(components.Object) {
		pos = pos.Add(mgl64.Vec3{0, 0, components.Object.Get(entry).Height / 2})
	}
	return pos, true
}
