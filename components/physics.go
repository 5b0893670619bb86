package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BodyData is a rigid body integrated by the physics system.
// Forces accumulate until the next step; impulses change velocity at once.
type BodyData struct {
	Velocity      mgl64.Vec3
	Force         mgl64.Vec3
	Mass          float64
	GravityScale  float64
	MaxSpeed      float64 // 0 = unclamped
	LinearDamping float64
	Kinematic     bool // moved by its owner, never integrated
}

func (b *BodyData) LinearVelocity() mgl64.Vec3 {
	return b.Velocity
}

func (b *BodyData) SetLinearVelocity(v mgl64.Vec3) {
	b.Velocity = v
}

func (b *BodyData) ApplyForce(f mgl64.Vec3) {
	b.Force = b.Force.Add(f)
}

func (b *BodyData) ApplyImpulse(j mgl64.Vec3) {
	b.Velocity = b.Velocity.Add(j.Mul(b.InverseMass()))
}

// InverseMass returns 1/mass, or 0 for massless and kinematic bodies.
func (b *BodyData) InverseMass() float64 {
	if b.Kinematic || b.Mass <= 0 {
		return 0
	}
	return 1 / b.Mass
}

var Body = donburi.NewComponentType[BodyData]()
