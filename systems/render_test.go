package systems

import (
	"image"
	"testing"

	cfg "github.com/automoto/wangarena/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestViewportsFollowPlayers(t *testing.T) {
	d := newDuel()

	vps := Viewports(d.ecs.World, 1280, 720)

	assert.Equal(t, 0, vps[0].Player)
	assert.Equal(t, image.Rect(0, 0, 639, 720), vps[0].Bounds)
	assert.Equal(t, image.Rect(641, 0, 1280, 720), vps[1].Bounds)
	assert.Equal(t, mgl64.Vec3{10, 10, 0}, vps[0].Center)
	assert.Equal(t, mgl64.Vec3{20, 10, 0}, vps[1].Center)
}

func TestProjectCentresOnPlayerAndLiftsHeight(t *testing.T) {
	vp := Viewport{Bounds: image.Rect(0, 0, 640, 720), Center: mgl64.Vec3{10, 10, 0}}

	x, y := vp.project(mgl64.Vec3{10, 10, 0})
	assert.Equal(t, float32(320), x)
	assert.Equal(t, float32(360), y)

	_, high := vp.project(mgl64.Vec3{10, 10, 2})
	assert.InDelta(t, 360-cfg.Arena.PixelsPerUnit, float64(high), 1e-4)
}
