package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/fonts"
	"github.com/automoto/wangarena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPip       = 14
	hudPipGap    = 4
	hudMargin    = 10
	bannerWidth  = 320
	bannerHeight = 96
)

var (
	bannerImage  *ebiten.Image
	bannerDrawOp = &ebiten.DrawImageOptions{}
)

// DrawHUD renders each player's health, boomerang state and damage overlay
// in their own viewport, then the match banner across the whole screen.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	size := screen.Bounds().Size()
	vps := Viewports(ecs.World, size.X, size.Y)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		i := components.Player.Get(e).Index
		if i < 0 || i >= len(vps) {
			return
		}
		view := screen.SubImage(vps[i].Bounds).(*ebiten.Image)
		drawPlayerHUD(ecs.World, view, e)
	})

	drawMatchBanner(ecs.World, screen)
}

func drawPlayerHUD(w donburi.World, dst *ebiten.Image, e *donburi.Entry) {
	b := dst.Bounds()
	h := components.Health.Get(e)
	player := components.Player.Get(e)

	// Damage overlay fades out after each hit.
	if h.DamageOpacity > 0 {
		alpha := uint8(h.DamageOpacity * 110)
		vector.FillRect(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), color.RGBA{R: alpha, A: alpha}, false)
	}

	x := float32(b.Min.X + hudMargin)
	y := float32(b.Min.Y + hudMargin)
	for i := 0; i < h.Max; i++ {
		c := cfg.Gray
		if i < h.Current {
			c = cfg.Green
		}
		vector.FillRect(dst, x+float32(i*(hudPip+hudPipGap)), y, hudPip, hudPip, c, false)
	}

	name := components.Name.Get(e).Name
	c := cfg.PlayerColors[player.Index%len(cfg.PlayerColors)]
	text.Draw(dst, name, fonts.HUDBig.Get(), b.Min.X+hudMargin, b.Min.Y+hudMargin+hudPip+24, c)

	status := "no wang"
	if w.Valid(player.Boomerang) {
		status = components.Boomerang.Get(w.Entry(player.Boomerang)).State.Mode.String()
	}
	text.Draw(dst, "wang: "+status, fonts.HUD.Get(), b.Min.X+hudMargin, b.Min.Y+hudMargin+hudPip+44, cfg.White)
}

func drawMatchBanner(w donburi.World, screen *ebiten.Image) {
	entry, ok := components.Match.First(w)
	if !ok {
		return
	}
	match := components.Match.Get(entry)

	var msg string
	scale := 1.0
	switch match.State {
	case components.MatchCountdown:
		msg = fmt.Sprintf("%d", match.CountdownValue())
		if match.BannerScale > 0 {
			scale = match.BannerScale
		}
	case components.MatchFinished:
		if match.Winner >= 0 {
			msg = fmt.Sprintf("%s wins", cfg.PlayerNames[match.Winner])
		} else {
			msg = "draw"
		}
	default:
		score := fmt.Sprintf("%d - %d", match.Scores[0], match.Scores[1])
		sw := screen.Bounds().Dx()
		text.Draw(screen, score, fonts.HUDBig.Get(), sw/2-24, 28, cfg.White)
		return
	}

	if bannerImage == nil {
		bannerImage = ebiten.NewImage(bannerWidth, bannerHeight)
	}
	bannerImage.Clear()
	vector.FillRect(bannerImage, 0, 0, bannerWidth, bannerHeight, cfg.BlackOverlay, false)
	face := fonts.Banner.Get()
	adv := text.BoundString(face, msg).Dx()
	text.Draw(bannerImage, msg, face, (bannerWidth-adv)/2, bannerHeight-24, cfg.White)

	sb := screen.Bounds()
	bannerDrawOp.GeoM.Reset()
	bannerDrawOp.GeoM.Translate(-bannerWidth/2, -bannerHeight/2)
	bannerDrawOp.GeoM.Scale(scale, scale)
	bannerDrawOp.GeoM.Translate(float64(sb.Dx())/2, float64(sb.Dy())/2)
	screen.DrawImage(bannerImage, bannerDrawOp)
}
