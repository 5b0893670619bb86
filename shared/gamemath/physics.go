package gamemath

import "github.com/go-gl/mathgl/mgl64"

// ClampLength limits v to max length. A max of zero or less disables the clamp.
func ClampLength(v mgl64.Vec3, max float64) mgl64.Vec3 {
	if max <= 0 {
		return v
	}
	if l := v.Len(); l > max {
		return v.Mul(max / l)
	}
	return v
}

// Damp reduces v by a linear damping coefficient over dt, never reversing it.
func Damp(v mgl64.Vec3, damping, dt float64) mgl64.Vec3 {
	if damping <= 0 {
		return v
	}
	scale := 1 - damping*dt
	if scale < 0 {
		scale = 0
	}
	return v.Mul(scale)
}

// ClampAxis clamps a value to [-max, max].
func ClampAxis(value, max float64) float64 {
	if value > max {
		return max
	}
	if value < -max {
		return -max
	}
	return value
}

// Deadzone zeroes analog input whose magnitude is below threshold.
func Deadzone(value, threshold float64) float64 {
	if value < threshold && value > -threshold {
		return 0
	}
	return value
}
