package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BoomerangMode is the flight mode of a boomerang.
type BoomerangMode int

const (
	BoomerangInactive BoomerangMode = iota
	BoomerangForward
	BoomerangPointTrack
	BoomerangLockTrack
	BoomerangReturning
)

func (m BoomerangMode) String() string {
	switch m {
	case BoomerangInactive:
		return "inactive"
	case BoomerangForward:
		return "forward"
	case BoomerangPointTrack:
		return "point-track"
	case BoomerangLockTrack:
		return "lock-track"
	case BoomerangReturning:
		return "returning"
	}
	return "unknown"
}

// BoomerangState is the flight mode together with the data the modes steer by.
// Locked and Returning are derived from the mode, so a returning boomerang can
// never be point tracking.
type BoomerangState struct {
	Mode   BoomerangMode
	Point  mgl64.Vec3     // seek point, re-sampled each tick while locked
	Target donburi.Entity // lock target, may dangle

	// Latch holds the tracking mode the boomerang was parked from.
	// Only a throw clears it.
	Latch BoomerangMode
}

func (s BoomerangState) effective() BoomerangMode {
	if s.Mode == BoomerangInactive {
		return s.Latch
	}
	return s.Mode
}

// Locked reports whether point updates are currently ignored for steering.
func (s BoomerangState) Locked() bool {
	m := s.effective()
	return m == BoomerangLockTrack || m == BoomerangReturning
}

// Returning reports whether the boomerang is (or was parked while) homing on its owner.
func (s BoomerangState) Returning() bool {
	return s.effective() == BoomerangReturning
}

// Tracking reports whether the mode steers toward Point.
func (s BoomerangState) Tracking() bool {
	switch s.Mode {
	case BoomerangPointTrack, BoomerangLockTrack, BoomerangReturning:
		return true
	}
	return false
}

type BoomerangData struct {
	State BoomerangState
	Owner donburi.Entity

	Acceleration     float64
	InactivePosition mgl64.Vec3
	LaunchForce      float64
	Spacing          float64
	ScaleByDelta     bool
	Damage           int

	// HitPlayers tracks players hit during the current throw.
	HitPlayers map[donburi.Entity]struct{}
	// Stalled is set while the tracked entity no longer exists.
	Stalled bool
}

// Throw starts a new flight. Every flag and the hit registry are reset.
func (b *BoomerangData) Throw() {
	b.State = BoomerangState{Mode: BoomerangForward}
	b.HitPlayers = make(map[donburi.Entity]struct{})
}

// UpdateTarget stores point and starts point tracking unless the boomerang is locked.
func (b *BoomerangData) UpdateTarget(point mgl64.Vec3) {
	b.State.Point = point
	if b.State.Mode == BoomerangInactive || b.State.Locked() {
		return
	}
	b.State.Mode = BoomerangPointTrack
}

// LockTarget stores target and starts lock tracking unless the boomerang is returning.
func (b *BoomerangData) LockTarget(target donburi.Entity) {
	b.State.Target = target
	if b.State.Mode == BoomerangInactive || b.State.Returning() {
		return
	}
	b.State.Mode = BoomerangLockTrack
}

// Return sends the boomerang home.
func (b *BoomerangData) Return() {
	if b.State.Mode == BoomerangInactive {
		return
	}
	b.State.Mode = BoomerangReturning
}

// MakeInactive parks the boomerang, latching its tracking mode.
func (b *BoomerangData) MakeInactive() {
	if b.State.Mode != BoomerangInactive {
		switch b.State.Mode {
		case BoomerangLockTrack, BoomerangReturning:
			b.State.Latch = b.State.Mode
		default:
			b.State.Latch = BoomerangInactive
		}
	}
	b.State.Mode = BoomerangInactive
}

// ReadyToThrow reports whether the boomerang is parked.
func (b *BoomerangData) ReadyToThrow() bool {
	return b.State.Mode == BoomerangInactive
}

// MarkHit records a hit on player and reports whether it is the first this throw.
func (b *BoomerangData) MarkHit(player donburi.Entity) bool {
	if b.HitPlayers == nil {
		b.HitPlayers = make(map[donburi.Entity]struct{})
	}
	if _, ok := b.HitPlayers[player]; ok {
		return false
	}
	b.HitPlayers[player] = struct{}{}
	return true
}

var Boomerang = donburi.NewComponentType[BoomerangData]()
