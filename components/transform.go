package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's world position and orientation. Z is up.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Forward returns the local +X axis rotated into world space.
func (t *TransformData) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
}

var Transform = donburi.NewComponentType[TransformData]()
