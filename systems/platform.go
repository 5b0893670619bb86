package systems

import (
	"github.com/automoto/wangarena/components"
	"github.com/automoto/wangarena/shared/gamemath"
	"github.com/automoto/wangarena/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms moves every path-following platform and carries the
// players standing on it.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := DeltaTime(ecs.World)
	components.PathFollower.Each(ecs.World, func(e *donburi.Entry) {
		pos, ok := AdvancePath(components.PathFollower.Get(e), dt)
		if !ok {
			return
		}

		t := components.Transform.Get(e)
		delta := pos.Sub(t.Position)
		t.Position = pos

		obj := components.Object.Get(e)
		obj.Center(pos)
		carryRiders(ecs.World, obj, delta)
	})
}

func carryRiders(w donburi.World, support *components.ObjectData, delta mgl64.Vec3) {
	if delta == (mgl64.Vec3{}) {
		return
	}
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Support != support.Object {
			return
		}
		t := components.Transform.Get(e)
		t.Position = t.Position.Add(delta)
		components.Object.Get(e).Center(t.Position)
	})
}

// SetPlatformMode changes e's interpolation basis and restarts its path.
func SetPlatformMode(e *donburi.Entry, mode components.PathMode) {
	components.PathFollower.Get(e).SetMode(mode)
}

// SetPlatformNodes replaces e's path without restarting it.
func SetPlatformNodes(e *donburi.Entry, nodes []mgl64.Vec3, duration float64) {
	components.PathFollower.Get(e).SetNodes(nodes, duration)
}

// AdvancePath steps p by dt and returns the platform position. ok is false
// when the path is too short or has no duration, in which case p is untouched.
func AdvancePath(p *components.PathFollowerData, dt float64) (mgl64.Vec3, bool) {
	if !p.Movable() {
		return mgl64.Vec3{}, false
	}
	clampPathIndex(p)

	p.Elapsed += dt
	p.T = p.Elapsed / p.SegmentDuration
	if p.T > 1 {
		p.Elapsed = 0
		p.T = 0
		advanceSegment(p)
	}

	return SamplePath(p), true
}

// advanceSegment moves to the next segment and flips direction at the ends.
func advanceSegment(p *components.PathFollowerData) {
	n := len(p.Nodes)
	if p.Forward {
		p.CurrentIndex++
	} else {
		p.CurrentIndex--
	}

	switch p.Mode {
	case components.PathLerp:
		if p.Forward && p.CurrentIndex >= n-1 {
			p.Forward = false
		} else if !p.Forward && p.CurrentIndex <= 0 {
			p.Forward = true
		}
	case components.PathCatmullRom:
		if p.Forward && p.CurrentIndex+1 >= n {
			p.Forward = false
		} else if !p.Forward && p.CurrentIndex <= 0 {
			p.Forward = true
		}
	case components.PathBezier:
		if p.Forward && p.CurrentIndex+3 >= n {
			p.Forward = false
		} else if !p.Forward && p.CurrentIndex <= 0 {
			p.Forward = true
		}
	}
}

// clampPathIndex keeps CurrentIndex on a segment that exists, for when the
// nodes were replaced by a shorter list.
func clampPathIndex(p *components.PathFollowerData) {
	n := len(p.Nodes)
	lo, hi := 0, n-1
	switch p.Mode {
	case components.PathLerp:
		if p.Forward {
			hi = n - 2
		} else {
			lo = 1
		}
	case components.PathBezier:
		if p.Forward {
			hi = n - 4
		} else {
			lo, hi = 1, n-3
		}
	}
	if p.CurrentIndex > hi {
		p.CurrentIndex = hi
	}
	if p.CurrentIndex < lo {
		p.CurrentIndex = lo
	}
}

// SamplePath evaluates the current segment of p at p.T.
func SamplePath(p *components.PathFollowerData) mgl64.Vec3 {
	n := p.Nodes
	i := p.CurrentIndex

	switch p.Mode {
	case components.PathCatmullRom:
		p0, p1, p2, p3 := catmullPoints(n, i, p.Forward)
		return gamemath.CatmullRom(p0, p1, p2, p3, p.T)
	case components.PathBezier:
		var p0, p1, p2, p3 mgl64.Vec3
		if p.Forward {
			p0, p1, p2, p3 = n[i], n[i+1], n[i+2], n[i+3]
		} else {
			p0, p1, p2, p3 = n[i+2], n[i+1], n[i], n[i-1]
		}
		if p.LegacyBezierBasis {
			return gamemath.CatmullRom(p0, p1, p2, p3, p.T)
		}
		return gamemath.CubicBezier(p0, p1, p2, p3, p.T)
	default:
		if p.Forward {
			return gamemath.Lerp(n[i], n[i+1], p.T)
		}
		return gamemath.Lerp(n[i], n[i-1], p.T)
	}
}

// catmullPoints picks the four points around segment i. Forward wraps with a
// true modulo; backward uses |i-k| % n, which mirrors around node 0.
func catmullPoints(n []mgl64.Vec3, i int, forward bool) (p0, p1, p2, p3 mgl64.Vec3) {
	size := len(n)
	if forward {
		return n[mod(i-1, size)], n[mod(i, size)], n[mod(i+1, size)], n[mod(i+2, size)]
	}
	return n[abs(i+1)%size], n[abs(i)%size], n[abs(i-1)%size], n[abs(i-2)%size]
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
