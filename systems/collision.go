package systems

import (
	"github.com/automoto/wangarena/components"
	"github.com/automoto/wangarena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions applies boomerang hits. Hitting the owner while returning
// parks the boomerang; hitting the other player deals damage once per throw;
// hitting anything else sends the boomerang home.
func UpdateCollisions(ecs *ecs.ECS) {
	components.Boomerang.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Boomerang.Get(e)
		if b.State.Mode == components.BoomerangInactive {
			return
		}

		obj := components.Object.Get(e)
		pos := components.Transform.Get(e).Position
		z := pos.Z()
		check := obj.CheckAt(pos, tags.ResolvPlayer, tags.ResolvSolid, tags.ResolvPlatform)
		if check == nil {
			return
		}

		for _, o := range check.ObjectsByTags(tags.ResolvPlayer) {
			if !touching(obj, z, o) {
				continue
			}
			player, ok := o.Data.(*donburi.Entry)
			if !ok || !player.Valid() {
				continue
			}
			if hitPlayer(e, b, player) {
				return
			}
		}

		for _, tag := range []string{tags.ResolvSolid, tags.ResolvPlatform} {
			for _, o := range check.ObjectsByTags(tag) {
				if touching(obj, z, o) {
					OnBoomerangCollision(e)
					return
				}
			}
		}
	})
}

// hitPlayer handles contact with a player and reports whether the boomerang
// was parked.
func hitPlayer(e *donburi.Entry, b *components.BoomerangData, player *donburi.Entry) bool {
	if player.Entity() == b.Owner {
		if b.State.Mode == components.BoomerangReturning {
			MakeBoomerangInactive(e)
			return true
		}
		return false
	}

	if b.MarkHit(player.Entity()) {
		DamagePlayer(player, b.Damage)
	}
	OnBoomerangCollision(e)
	return false
}

// touching narrows a resolv cell match down to a real XY and Z overlap.
func touching(obj *components.ObjectData, z float64, o *resolv.Object) bool {
	if o == obj.Object || !obj.Bounds().Overlaps(components.Bounds(o)) {
		return false
	}
	bottom, height, ok := objectSpan(o)
	if !ok {
		return false
	}
	return components.OverlapsZ(z, obj.Height, bottom, height)
}
