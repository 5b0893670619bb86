package systems

import (
	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reused across frames to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads for every human player. Bots fill
// their own input in UpdateBots.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Bot) {
			return
		}
		input := components.PlayerInput.Get(entry)
		input.Advance()

		if input.BoundGamepadID == nil && entry.HasComponent(components.Player) {
			bindGamepad(input, components.Player.Get(entry).Index)
		}

		pollControlScheme(input, input.ControlScheme)
		if input.BoundGamepadID != nil {
			pollGamepad(input, *input.BoundGamepadID)
		}
	})
}

// bindGamepad gives player index the index-th connected gamepad.
func bindGamepad(input *components.PlayerInputData, index int) {
	if index >= len(gamepadIDs) {
		return
	}
	id := gamepadIDs[index]
	input.BoundGamepadID = &id
	log.WithField("gamepad", ebiten.GamepadName(id)).Infof("bound to player %d", index+1)
}

// pollControlScheme reads one keyboard half into the player's input.
func pollControlScheme(input *components.PlayerInputData, scheme cfg.ControlSchemeID) {
	for actionID, keys := range cfg.Input.Schemes[scheme] {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// pollGamepad reads buttons and sticks from a specific gamepad.
func pollGamepad(input *components.PlayerInputData, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	for actionID, buttons := range cfg.Input.Gamepad {
		for _, btn := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.Current[actionID] = true
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
	turn := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)

	// Stick up is negative.
	input.Move[0] += gamemath.Deadzone(horizontal, deadzone)
	input.Move[1] -= gamemath.Deadzone(vertical, deadzone)
	input.Turn += gamemath.Deadzone(turn, deadzone)
}
