package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/shared/gamemath"
	"github.com/automoto/wangarena/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Viewport is one player's half of the split screen.
type Viewport struct {
	Player int
	Bounds image.Rectangle
	Center mgl64.Vec3 // world point drawn at the middle of Bounds
}

// project converts a world position to screen pixels. Higher objects are
// nudged up the screen so elevation reads in a top-down view.
func (v Viewport) project(p mgl64.Vec3) (float32, float32) {
	ppu := cfg.Arena.PixelsPerUnit
	mid := v.Bounds.Min.Add(v.Bounds.Size().Div(2))
	x := float64(mid.X) + (p.X()-v.Center.X())*ppu
	y := float64(mid.Y) + (p.Y()-v.Center.Y())*ppu - p.Z()*ppu*0.5
	return float32(x), float32(y)
}

// Viewports splits a screen of the given size between the two players, each
// camera following its player.
func Viewports(w donburi.World, width, height int) [2]Viewport {
	half := width / 2
	vps := [2]Viewport{
		{Player: 0, Bounds: image.Rect(0, 0, half-1, height)},
		{Player: 1, Bounds: image.Rect(half+1, 0, width, height)},
	}
	tags.Player.Each(w, func(e *donburi.Entry) {
		i := components.Player.Get(e).Index
		if i >= 0 && i < len(vps) {
			vps[i].Center = components.Transform.Get(e).Position
		}
	})
	return vps
}

// DrawArena renders both split-screen views.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Gray)
	size := screen.Bounds().Size()
	for _, vp := range Viewports(ecs.World, size.X, size.Y) {
		view := screen.SubImage(vp.Bounds).(*ebiten.Image)
		drawView(ecs.World, view, vp)
	}
}

func drawView(w donburi.World, dst *ebiten.Image, vp Viewport) {
	ppu := float32(cfg.Arena.PixelsPerUnit)

	width, height := arenaSize(w)
	x0, y0 := vp.project(mgl64.Vec3{0, 0, 0})
	vector.FillRect(dst, x0, y0, float32(width)*ppu, float32(height)*ppu, cfg.Floor, false)

	tags.Wall.Each(w, func(e *donburi.Entry) {
		drawFootprint(dst, vp, e, cfg.DarkBlue)
	})
	tags.Platform.Each(w, func(e *donburi.Entry) {
		c := cfg.LightBlue
		if e.HasComponent(components.PathFollower) {
			c = cfg.Orange
		}
		drawFootprint(dst, vp, e, shade(c, components.Transform.Get(e).Position.Z()))
	})

	tags.Player.Each(w, func(e *donburi.Entry) {
		drawPlayer(dst, vp, e)
	})
	tags.Boomerang.Each(w, func(e *donburi.Entry) {
		drawBoomerang(w, dst, vp, e)
	})

	if cfg.Debug.DrawColliders {
		drawColliders(w, dst, vp)
	}
}

func drawFootprint(dst *ebiten.Image, vp Viewport, e *donburi.Entry, c color.Color) {
	obj := components.Object.Get(e)
	r := obj.Bounds()
	z := components.Transform.Get(e).Position.Z() + obj.Height
	x, y := vp.project(mgl64.Vec3{r.X, r.Y, math.Min(z, 4)})
	ppu := float32(cfg.Arena.PixelsPerUnit)
	vector.FillRect(dst, x, y, float32(r.W)*ppu, float32(r.H)*ppu, c, false)
}

func drawPlayer(dst *ebiten.Image, vp Viewport, e *donburi.Entry) {
	player := components.Player.Get(e)
	t := components.Transform.Get(e)
	size := components.Object.Get(e).Bounds().W
	ppu := float32(cfg.Arena.PixelsPerUnit)

	c := cfg.PlayerColors[player.Index%len(cfg.PlayerColors)]
	if IsDead(e) {
		c = color.RGBA{R: c.R / 3, G: c.G / 3, B: c.B / 3, A: 255}
	}

	// Shadow on the floor, body at height.
	sx, sy := vp.project(mgl64.Vec3{t.Position.X(), t.Position.Y(), 0})
	vector.FillCircle(dst, sx, sy, float32(size)*ppu/2, color.RGBA{A: 90}, true)

	cx, cy := vp.project(t.Position)
	half := float32(size) * ppu / 2
	vector.FillRect(dst, cx-half, cy-half, half*2, half*2, c, false)

	nose := t.Position.Add(gamemath.YawForward(player.Yaw).Mul(size))
	nx, ny := vp.project(nose)
	vector.StrokeLine(dst, cx, cy, nx, ny, 2, cfg.White, true)
}

func drawBoomerang(w donburi.World, dst *ebiten.Image, vp Viewport, e *donburi.Entry) {
	b := components.Boomerang.Get(e)
	if b.State.Mode == components.BoomerangInactive {
		return
	}
	t := components.Transform.Get(e)
	size := components.Object.Get(e).Bounds().W
	ppu := float32(cfg.Arena.PixelsPerUnit)

	c := cfg.White
	if w.Valid(b.Owner) {
		owner := w.Entry(b.Owner)
		if owner.HasComponent(components.Player) {
			c = cfg.PlayerColors[components.Player.Get(owner).Index%len(cfg.PlayerColors)]
		}
	}

	x, y := vp.project(t.Position)
	vector.FillCircle(dst, x, y, float32(size)*ppu/2, c, true)

	// Seek point marker for the owner's view only.
	if b.State.Tracking() && ownedBy(w, b, vp.Player) {
		tx, ty := vp.project(b.State.Point)
		vector.StrokeCircle(dst, tx, ty, 6, 1.5, cfg.Red, true)
	}
}

func ownedBy(w donburi.World, b *components.BoomerangData, index int) bool {
	if !w.Valid(b.Owner) {
		return false
	}
	owner := w.Entry(b.Owner)
	return owner.HasComponent(components.Player) && components.Player.Get(owner).Index == index
}

func drawColliders(w donburi.World, dst *ebiten.Image, vp Viewport) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	ppu := float32(cfg.Arena.PixelsPerUnit)
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvBoomerang) {
			c = color.RGBA{0, 255, 0, 255}
		}
		r := components.Bounds(obj)
		x, y := vp.project(mgl64.Vec3{r.X, r.Y, 0})
		vector.StrokeRect(dst, x, y, float32(r.W)*ppu, float32(r.H)*ppu, 1, c, false)
	}
}

// shade brightens c with height so stacked platforms stay distinct.
func shade(c color.RGBA, z float64) color.RGBA {
	k := 1 + math.Min(math.Max(z, 0), 4)*0.1
	scale := func(v uint8) uint8 { return uint8(math.Min(float64(v)*k, 255)) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
