package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// normalizeEpsilon is the length below which a vector is treated as zero.
const normalizeEpsilon = 1e-9

// Up is the world up axis. The arena floor is the XY plane.
var Up = mgl64.Vec3{0, 0, 1}

// SafeNormalize returns the unit vector of v, or the zero vector when v has no
// usable length. mgl64's Normalize divides by zero and yields NaN components.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < normalizeEpsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// SeekForce returns the steering force that turns a body at position, moving
// with velocity, toward target. A stationary body contributes no current
// heading, so it is pushed straight at the target.
func SeekForce(position, velocity, target mgl64.Vec3, acceleration float64) mgl64.Vec3 {
	desired := SafeNormalize(target.Sub(position))
	current := SafeNormalize(velocity)
	return SafeNormalize(desired.Sub(current)).Mul(acceleration)
}

// AntiGravity returns the force that cancels gravity (an acceleration along Z)
// for a body of the given mass. compensation scales it, 1.0 is a full cancel.
func AntiGravity(mass, gravity, compensation float64) mgl64.Vec3 {
	return mgl64.Vec3{0, 0, -gravity * mass * compensation}
}

// YawForward returns the unit heading in the XY plane for a yaw angle in radians.
func YawForward(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(yaw), math.Sin(yaw), 0}
}

// YawRotation returns the rotation about the up axis for a yaw angle.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up)
}

// FacingRotation returns the yaw rotation that faces dir. A vertical or zero
// dir faces along +X.
func FacingRotation(dir mgl64.Vec3) mgl64.Quat {
	if math.Abs(dir.X()) < normalizeEpsilon && math.Abs(dir.Y()) < normalizeEpsilon {
		return mgl64.QuatIdent()
	}
	return YawRotation(math.Atan2(dir.Y(), dir.X()))
}
