package components

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func thrown() *BoomerangData {
	b := &BoomerangData{}
	b.Throw()
	return b
}

func TestBoomerangStartsInactive(t *testing.T) {
	b := &BoomerangData{}
	assert.True(t, b.ReadyToThrow())
	assert.Equal(t, BoomerangInactive, b.State.Mode)
	assert.False(t, b.State.Locked())
	assert.False(t, b.State.Returning())
}

func TestBoomerangThrowResetsFlags(t *testing.T) {
	b := thrown()
	b.Return()
	b.MakeInactive()
	assert.True(t, b.State.Returning(), "parked boomerang keeps its latch")

	b.Throw()
	assert.Equal(t, BoomerangForward, b.State.Mode)
	assert.False(t, b.State.Locked())
	assert.False(t, b.State.Returning())
	assert.False(t, b.ReadyToThrow())
	assert.Empty(t, b.HitPlayers)
}

func TestBoomerangTransitions(t *testing.T) {
	target := donburi.Entity(42)

	tests := []struct {
		name string
		run  func(b *BoomerangData)
		want BoomerangMode
	}{
		{"point from forward", func(b *BoomerangData) { b.UpdateTarget(mgl64.Vec3{1, 2, 3}) }, BoomerangPointTrack},
		{"lock from forward", func(b *BoomerangData) { b.LockTarget(target) }, BoomerangLockTrack},
		{"lock from point", func(b *BoomerangData) {
			b.UpdateTarget(mgl64.Vec3{1, 0, 0})
			b.LockTarget(target)
		}, BoomerangLockTrack},
		{"return from point", func(b *BoomerangData) {
			b.UpdateTarget(mgl64.Vec3{1, 0, 0})
			b.Return()
		}, BoomerangReturning},
		{"return from lock", func(b *BoomerangData) {
			b.LockTarget(target)
			b.Return()
		}, BoomerangReturning},
		{"return from forward", func(b *BoomerangData) { b.Return() }, BoomerangReturning},
		{"inactive from anywhere", func(b *BoomerangData) {
			b.LockTarget(target)
			b.MakeInactive()
		}, BoomerangInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := thrown()
			tt.run(b)
			assert.Equal(t, tt.want, b.State.Mode)
		})
	}
}

func TestBoomerangLockWhileReturningKeepsReturning(t *testing.T) {
	b := thrown()
	b.Return()

	for i := 0; i < 5; i++ {
		b.LockTarget(donburi.Entity(i + 1))
		assert.Equal(t, BoomerangReturning, b.State.Mode)
	}
	assert.Equal(t, donburi.Entity(5), b.State.Target, "target data still updates")
}

func TestBoomerangPointUpdateWhileLockedKeepsState(t *testing.T) {
	b := thrown()
	b.LockTarget(donburi.Entity(7))

	b.UpdateTarget(mgl64.Vec3{9, 9, 9})
	assert.Equal(t, BoomerangLockTrack, b.State.Mode)
	assert.Equal(t, mgl64.Vec3{9, 9, 9}, b.State.Point)

	b.Return()
	b.UpdateTarget(mgl64.Vec3{1, 1, 1})
	assert.Equal(t, BoomerangReturning, b.State.Mode)
}

func TestBoomerangInactiveIgnoresTracking(t *testing.T) {
	b := &BoomerangData{}
	b.UpdateTarget(mgl64.Vec3{1, 0, 0})
	b.LockTarget(donburi.Entity(3))
	b.Return()
	assert.Equal(t, BoomerangInactive, b.State.Mode)
	assert.True(t, b.ReadyToThrow())
}

func TestBoomerangMakeInactiveIsIdempotent(t *testing.T) {
	b := thrown()
	b.LockTarget(donburi.Entity(3))
	b.MakeInactive()
	first := b.State
	b.MakeInactive()
	b.MakeInactive()
	assert.Equal(t, first, b.State)
	assert.True(t, b.State.Locked())
}

func TestBoomerangMarkHitOncePerThrow(t *testing.T) {
	b := thrown()
	p := donburi.Entity(11)
	assert.True(t, b.MarkHit(p))
	assert.False(t, b.MarkHit(p))

	b.Throw()
	assert.True(t, b.MarkHit(p))
}
