package components

import (
	cfg "github.com/automoto/wangarena/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PlayerInputData stores per-player input state.
// JustPressed/JustReleased are computed on demand by comparing frames.
type PlayerInputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Analog movement in the player's frame: X strafes right, Y moves forward.
	Move mgl64.Vec2
	Turn float64 // -1 (left) .. 1 (right)

	ControlScheme  cfg.ControlSchemeID
	BoundGamepadID *ebiten.GamepadID // nil = keyboard only
}

func (p *PlayerInputData) Pressed(a cfg.ActionID) bool {
	return p.Current[a]
}

func (p *PlayerInputData) JustPressed(a cfg.ActionID) bool {
	return p.Current[a] && !p.Previous[a]
}

func (p *PlayerInputData) JustReleased(a cfg.ActionID) bool {
	return !p.Current[a] && p.Previous[a]
}

// Advance moves the current frame into the previous one and clears it.
func (p *PlayerInputData) Advance() {
	p.Previous = p.Current
	p.Current = [cfg.ActionCount]bool{}
	p.Move = mgl64.Vec2{}
	p.Turn = 0
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
