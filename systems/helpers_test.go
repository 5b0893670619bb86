package systems

import (
	"github.com/automoto/wangarena/components"
	"github.com/automoto/wangarena/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = 1.0 / 64 // binary-exact tick

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	factory.CreateSpace(e, 48, 32, 2)
	return e
}

// tick advances the clock by dt and runs fns in order.
func tick(e *ecs.ECS, dt float64, fns ...func(*ecs.ECS)) {
	AdvanceClock(e.World, dt)
	for _, fn := range fns {
		fn(e)
	}
}

// newMarker creates a named entity with only a position.
func newMarker(e *ecs.ECS, name string, pos mgl64.Vec3) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.Name, components.Transform))
	components.Name.SetValue(entry, components.NameData{Name: name})
	components.Transform.SetValue(entry, components.TransformData{Position: pos, Rotation: mgl64.QuatIdent()})
	return entry
}

// place moves e to pos, keeping its collision footprint in step.
func place(e *donburi.Entry, pos mgl64.Vec3) {
	components.Transform.Get(e).Position = pos
	if e.HasComponent(components.Object) {
		components.Object.Get(e).Center(pos)
	}
}
